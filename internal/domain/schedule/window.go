package schedule

import "fmt"

// Window is the salon's fixed daily operating range plus the slot
// granularity. It is built once from configuration and injected wherever the
// engine validates hours, so tests can vary it freely.
type Window struct {
	Open        Clock
	Close       Clock
	SlotMinutes int

	// Earliest/Latest bound the clock values a novelty may carry. They are
	// wider than the operating window: a staff member can report arriving at
	// 08:30 even though bookings start at 10:00.
	Earliest Clock
	Latest   Clock
}

func (w Window) Validate() error {
	if w.SlotMinutes <= 0 {
		return fmt.Errorf("slot minutes must be positive, got %d", w.SlotMinutes)
	}
	if w.Close <= w.Open {
		return fmt.Errorf("window close %s must be after open %s", w.Close, w.Open)
	}
	if w.Earliest > w.Open || w.Latest < w.Close {
		return fmt.Errorf("permitted range %s-%s must contain window %s-%s",
			w.Earliest, w.Latest, w.Open, w.Close)
	}
	return nil
}

// Slots generates the day's bookable grid: consecutive half-open intervals
// of SlotMinutes covering [Open, Close). The grid is identical for every
// date; it is recomputed on each call and never stored.
func (w Window) Slots() []Interval {
	var slots []Interval
	for cur := w.Open; cur.Add(w.SlotMinutes) <= w.Close; cur = cur.Add(w.SlotMinutes) {
		slots = append(slots, Interval{Start: cur, End: cur.Add(w.SlotMinutes)})
	}
	return slots
}

// Contains reports whether a booking may start at the given clock,
// inclusive at open and exclusive at close.
func (w Window) Contains(c Clock) bool {
	return c >= w.Open && c < w.Close
}

// SlotAt returns the grid slot whose interval contains the given clock.
func (w Window) SlotAt(c Clock) (Interval, bool) {
	if !w.Contains(c) {
		return Interval{}, false
	}
	offset := (int(c) - int(w.Open)) / w.SlotMinutes
	start := w.Open.Add(offset * w.SlotMinutes)
	return Interval{Start: start, End: start.Add(w.SlotMinutes)}, true
}

// InPermittedRange checks a novelty clock field against the wider
// permitted range, inclusive at both ends.
func (w Window) InPermittedRange(c Clock) bool {
	return c >= w.Earliest && c <= w.Latest
}
