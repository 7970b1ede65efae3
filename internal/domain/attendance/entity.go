package attendance

import (
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/pkg/timeofday"
)

// DayStatus classifies one employee-day. Exactly one status applies.
type DayStatus int

const (
	StatusPresentOnTime DayStatus = iota
	StatusPresentLate
	StatusAbsent
	StatusWeekendWorked
	StatusWeekendIdle
)

func (s DayStatus) String() string {
	switch s {
	case StatusPresentOnTime:
		return "present_on_time"
	case StatusPresentLate:
		return "present_late"
	case StatusAbsent:
		return "absent"
	case StatusWeekendWorked:
		return "weekend_worked"
	case StatusWeekendIdle:
		return "weekend_idle"
	default:
		return "unknown"
	}
}

// Rules are the attendance thresholds and weekend policy applied by the
// classifier. Immutable after construction; carried explicitly rather than
// read from ambient state so tests can use arbitrary thresholds.
type Rules struct {
	LateAfter  timeofday.TimeOfDay
	EarlyLeave timeofday.TimeOfDay
	// RestDay is the single non-required weekday. Sunday in the default
	// policy: Monday through Saturday are working days.
	RestDay time.Weekday
}

// DefaultRules returns the fixed weekend policy with the given thresholds.
func DefaultRules(lateAfter, earlyLeave timeofday.TimeOfDay) Rules {
	return Rules{
		LateAfter:  lateAfter,
		EarlyLeave: earlyLeave,
		RestDay:    time.Sunday,
	}
}

// DayResult is the classification of one employee-day. Late carries the
// lateness detail and is set only for StatusPresentLate.
type DayResult struct {
	Status DayStatus
	Late   *LateDetail
}

// LateDetail records one late arrival.
type LateDetail struct {
	Date      string `json:"date"`
	PunchTime string `json:"punch_time"`
	LateBy    string `json:"late_by"`
}

// PeriodStats accumulates one employee's attendance over a date range.
// Weekend work counts into Present but never into WorkDaysRequired, so over
// the required weekdays Present+Absent always equals WorkDaysRequired.
type PeriodStats struct {
	WorkDaysRequired int          `json:"work_days_required"`
	Present          int          `json:"present"`
	Late             int          `json:"late"`
	Absent           int          `json:"absent"`
	LateDetails      []LateDetail `json:"late_details"`
	AbsentDetails    []string     `json:"absent_details"`
}

// EmployeeStats pairs an employee's identity with their period stats.
type EmployeeStats struct {
	EmpCode    string      `json:"emp_code"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Department *string     `json:"department"`
	Stats      PeriodStats `json:"stats"`
}

// EmployeeSummary is the lighter per-employee record used by the plain
// summary endpoints: first/last punch and total punch count over a range,
// with no day-by-day weekend or lateness logic.
type EmployeeSummary struct {
	EmpCode            string `json:"emp_code"`
	FirstName          string `json:"first_name,omitempty"`
	Department         string `json:"department,omitempty"`
	FirstPunchTime     string `json:"first_punch_time"`
	FirstTerminalAlias string `json:"first_terminal_alias,omitempty"`
	LastPunchTime      string `json:"last_punch_time"`
	LastTerminalAlias  string `json:"last_terminal_alias,omitempty"`
	TotalPunches       int    `json:"total_punches"`
}

// AbsentEmployee is a roster entry with no punches on the requested day.
type AbsentEmployee struct {
	EmpCode    string  `json:"emp_code"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department"`
}
