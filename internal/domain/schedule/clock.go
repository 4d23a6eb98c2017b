package schedule

import (
	"fmt"
	"time"
)

// Clock is a time of day in minutes since midnight. Appointments and
// novelties store their hours as "HH:MM" strings; Clock is the parsed form
// all schedule arithmetic works on.
type Clock int

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) Before(other Clock) bool {
	return c < other
}

func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// At anchors the clock on a calendar date, in that date's location.
func (c Clock) At(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(c)/60, int(c)%60, 0, 0,
		date.Location(),
	)
}
