package schedule

import "fmt"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start Clock
	End   Clock
}

// Overlaps uses the half-open test: two intervals that merely touch at a
// boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// Contains reports whether the clock falls inside the interval, inclusive at
// the start and exclusive at the end.
func (i Interval) Contains(c Clock) bool {
	return c >= i.Start && c < i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}
