package attendance

import "time"

// dayBounds returns 00:00:00 and 23:59:59 on the given day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
	return start, end
}

// monthBounds returns the first instant of the month and one second before
// the next month, so February in a leap year ends on the 29th at 23:59:59.
func monthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// firstOfMonth returns midnight on the 1st of t's month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// weekStart returns the most recent Monday at 00:00:00, today included.
func weekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7 // Monday == 0
	d := now.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
