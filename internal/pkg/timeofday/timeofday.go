package timeofday

import (
	"fmt"
	"time"
)

// Layout is the wall-clock format used by the attendance rule thresholds.
const Layout = "15:04:05"

// TimeOfDay is a clock time without a date, parsed from "HH:MM:SS".
// The zero value is midnight.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

// Parse parses an "HH:MM:SS" string into a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second()}, nil
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// On combines the clock time with the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, t.second, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}
