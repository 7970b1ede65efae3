package attendance

import (
	"sort"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/timeofday"
)

// BuildSummary collapses raw punches into one row per employee: first and
// last punch plus total count over the whole range, with no day-by-day
// logic. Rows come back sorted by employee code. Records without an
// employee code are dropped; a malformed punch time aborts the summary.
func BuildSummary(records []biotime.Transaction) ([]attendance.EmployeeSummary, error) {
	type timedPunch struct {
		rec biotime.Transaction
		at  time.Time
	}

	grouped := make(map[string][]timedPunch)
	for _, rec := range records {
		if rec.EmpCode == "" {
			continue
		}
		at, err := parsePunchTime(rec.PunchTime)
		if err != nil {
			return nil, err
		}
		grouped[rec.EmpCode] = append(grouped[rec.EmpCode], timedPunch{rec: rec, at: at})
	}

	summaries := make([]attendance.EmployeeSummary, 0, len(grouped))
	for code, punches := range grouped {
		sort.Slice(punches, func(i, j int) bool { return punches[i].at.Before(punches[j].at) })
		first := punches[0].rec
		last := punches[len(punches)-1].rec

		summaries = append(summaries, attendance.EmployeeSummary{
			EmpCode:            code,
			FirstName:          first.FirstName,
			Department:         first.Department,
			FirstPunchTime:     first.PunchTime,
			FirstTerminalAlias: first.TerminalAlias,
			LastPunchTime:      last.PunchTime,
			LastTerminalAlias:  last.TerminalAlias,
			TotalPunches:       len(punches),
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].EmpCode < summaries[j].EmpCode })
	return summaries, nil
}

// FilterLate keeps summary rows whose first punch lands strictly after the
// late threshold on the given day.
func FilterLate(rows []attendance.EmployeeSummary, day time.Time, lateAfter timeofday.TimeOfDay) ([]attendance.EmployeeSummary, error) {
	threshold := lateAfter.On(day)
	out := make([]attendance.EmployeeSummary, 0, len(rows))
	for _, row := range rows {
		at, err := parsePunchTime(row.FirstPunchTime)
		if err != nil {
			return nil, err
		}
		if at.After(threshold) {
			out = append(out, row)
		}
	}
	return out, nil
}

// FilterEarlyLeave keeps summary rows whose last punch lands strictly
// before the early-leave threshold on the given day.
func FilterEarlyLeave(rows []attendance.EmployeeSummary, day time.Time, before timeofday.TimeOfDay) ([]attendance.EmployeeSummary, error) {
	threshold := before.On(day)
	out := make([]attendance.EmployeeSummary, 0, len(rows))
	for _, row := range rows {
		at, err := parsePunchTime(row.LastPunchTime)
		if err != nil {
			return nil, err
		}
		if at.Before(threshold) {
			out = append(out, row)
		}
	}
	return out, nil
}

// AbsentFromRoster returns the rostered employees whose code appears in
// none of the summary rows, sorted by employee code. Roster entries with an
// empty code are skipped.
func AbsentFromRoster(employees []biotime.Employee, present []attendance.EmployeeSummary) []attendance.AbsentEmployee {
	presentCodes := make(map[string]struct{}, len(present))
	for _, row := range present {
		presentCodes[row.EmpCode] = struct{}{}
	}

	absent := make([]attendance.AbsentEmployee, 0)
	for _, emp := range employees {
		if emp.EmpCode == "" {
			continue
		}
		if _, ok := presentCodes[emp.EmpCode]; ok {
			continue
		}
		absent = append(absent, attendance.AbsentEmployee{
			EmpCode:    emp.EmpCode,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			Department: emp.DepartmentName(),
		})
	}

	sort.Slice(absent, func(i, j int) bool { return absent[i].EmpCode < absent[j].EmpCode })
	return absent
}
