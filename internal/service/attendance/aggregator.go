package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
)

// BuildStats runs the daily classifier over every calendar day in
// [start, end] for every rostered employee, accumulating counts and detail
// lists in chronological order. Every employee gets stats, punches or not;
// the result is sorted by employee code for deterministic reports.
//
// A DataFormatError from any employee-day aborts the whole computation:
// a report is either complete and correct or not returned.
func BuildStats(start, end time.Time, employees []biotime.Employee, idx PunchIndex, rules attendance.Rules) ([]attendance.EmployeeStats, error) {
	days := daysBetween(start, end)

	stats := make([]attendance.EmployeeStats, 0, len(employees))
	for _, emp := range employees {
		if emp.EmpCode == "" {
			continue
		}

		byDay := idx.DaysFor(emp.EmpCode)
		s := attendance.PeriodStats{
			LateDetails:   []attendance.LateDetail{},
			AbsentDetails: []string{},
		}

		for _, day := range days {
			dayStr := day.Format(dateLayout)
			res, err := ClassifyDay(day, byDay[dayStr], rules)
			if err != nil {
				return nil, fmt.Errorf("classify employee %s on %s: %w", emp.EmpCode, dayStr, err)
			}

			switch res.Status {
			case attendance.StatusWeekendIdle:
				// Not counted anywhere.
			case attendance.StatusWeekendWorked:
				s.Present++
			case attendance.StatusAbsent:
				s.WorkDaysRequired++
				s.Absent++
				s.AbsentDetails = append(s.AbsentDetails, dayStr)
			case attendance.StatusPresentOnTime:
				s.WorkDaysRequired++
				s.Present++
			case attendance.StatusPresentLate:
				s.WorkDaysRequired++
				s.Present++
				s.Late++
				s.LateDetails = append(s.LateDetails, *res.Late)
			}
		}

		stats = append(stats, attendance.EmployeeStats{
			EmpCode:    emp.EmpCode,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			Department: emp.DepartmentName(),
			Stats:      s,
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].EmpCode < stats[j].EmpCode })
	return stats, nil
}

// FilterLateOrAbsent keeps only employees with at least one late or absent
// day. The report endpoints never show clean employees, however many days
// they were present.
func FilterLateOrAbsent(stats []attendance.EmployeeStats) []attendance.EmployeeStats {
	filtered := make([]attendance.EmployeeStats, 0, len(stats))
	for _, s := range stats {
		if s.Stats.Late > 0 || s.Stats.Absent > 0 {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// daysBetween lists every calendar day from start through end inclusive,
// at midnight in start's location.
func daysBetween(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
