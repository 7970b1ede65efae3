package attendance

import (
	"fmt"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
)

const (
	punchLayout = "2006-01-02 15:04:05"
	dateLayout  = "2006-01-02"
)

// ClassifyDay decides the attendance status of one employee-day from its
// punches and the rules. Weekend days never count as required; on weekdays
// the earliest punch is compared against the late threshold with a strict
// "after" check, so a punch exactly on the threshold is on time.
//
// A malformed punch time fails the whole day with a DataFormatError rather
// than being skipped; a skipped punch could flip a day to absent.
func ClassifyDay(day time.Time, punches []biotime.Transaction, rules attendance.Rules) (attendance.DayResult, error) {
	if day.Weekday() == rules.RestDay {
		if len(punches) == 0 {
			return attendance.DayResult{Status: attendance.StatusWeekendIdle}, nil
		}
		return attendance.DayResult{Status: attendance.StatusWeekendWorked}, nil
	}

	if len(punches) == 0 {
		return attendance.DayResult{Status: attendance.StatusAbsent}, nil
	}

	first, firstAt, err := earliestPunch(punches)
	if err != nil {
		return attendance.DayResult{}, err
	}

	threshold := rules.LateAfter.On(day)
	if firstAt.After(threshold) {
		return attendance.DayResult{
			Status: attendance.StatusPresentLate,
			Late: &attendance.LateDetail{
				Date:      day.Format(dateLayout),
				PunchTime: first.PunchTime,
				LateBy:    formatLateBy(firstAt.Sub(threshold)),
			},
		}, nil
	}

	return attendance.DayResult{Status: attendance.StatusPresentOnTime}, nil
}

// earliestPunch parses every punch and returns the one with the smallest
// timestamp. Ties are don't-care: equal timestamps are equal for lateness.
func earliestPunch(punches []biotime.Transaction) (biotime.Transaction, time.Time, error) {
	var first biotime.Transaction
	var firstAt time.Time
	for i, p := range punches {
		at, err := parsePunchTime(p.PunchTime)
		if err != nil {
			return biotime.Transaction{}, time.Time{}, err
		}
		if i == 0 || at.Before(firstAt) {
			first, firstAt = p, at
		}
	}
	return first, firstAt, nil
}

func parsePunchTime(s string) (time.Time, error) {
	at, err := time.ParseInLocation(punchLayout, s, time.Local)
	if err != nil {
		return time.Time{}, &attendance.DataFormatError{Field: "punch_time", Value: s, Err: err}
	}
	return at, nil
}

// formatLateBy renders a lateness duration as H:MM:SS.
func formatLateBy(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
