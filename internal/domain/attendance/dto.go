package attendance

import (
	"fmt"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

// PageRequest selects one upstream page on the proxy endpoints.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (r *PageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be at least 1",
		})
	}
	if r.PageSize < 1 || r.PageSize > 5000 {
		errs = append(errs, validator.ValidationError{
			Field:   "page_size",
			Message: "page_size must be between 1 and 5000",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TransactionsRequest filters the raw transaction proxy endpoint.
type TransactionsRequest struct {
	EmpCode   string `json:"emp_code"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
}

func (r *TransactionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != "" {
		if _, ok := validator.IsValidTimestamp(r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be formatted as YYYY-MM-DD HH:MM:SS",
			})
		}
	}
	if r.EndTime != "" {
		if _, ok := validator.IsValidTimestamp(r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be formatted as YYYY-MM-DD HH:MM:SS",
			})
		}
	}
	if r.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be at least 1",
		})
	}
	if r.PageSize < 1 || r.PageSize > 5000 {
		errs = append(errs, validator.ValidationError{
			Field:   "page_size",
			Message: "page_size must be between 1 and 5000",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyReportRequest selects the month for the monthly report. Both fields
// zero means current month-to-date; both set means that full calendar month.
type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Explicit reports whether a full calendar month was requested.
func (r *MonthlyReportRequest) Explicit() bool {
	return r.Month != 0 && r.Year != 0
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Month == 0) != (r.Year == 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
		return errs
	}

	if r.Month != 0 && (r.Month < 1 || r.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year != 0 && (r.Year < 2000 || r.Year > currentYear+1) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

// RangeSummary is the per-employee summary of a date range. Date is set only
// on the single-day endpoint; Period only on the weekly/monthly ones.
type RangeSummary struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Date      string            `json:"date,omitempty"`
	Period    string            `json:"period,omitempty"`
	Count     int               `json:"count"`
	Data      []EmployeeSummary `json:"data"`
}

// PresenceList is a filtered slice of today's summary rows. The threshold
// that produced the filter is echoed back so callers can see the rule.
type PresenceList struct {
	Date             string            `json:"date"`
	Count            int               `json:"count"`
	Data             []EmployeeSummary `json:"data"`
	LateAfterTime    string            `json:"late_after_time,omitempty"`
	EarlyLeaveBefore string            `json:"early_leave_before,omitempty"`
}

// AbsenceList names the rostered employees with no punches today.
type AbsenceList struct {
	Date  string           `json:"date"`
	Count int              `json:"count"`
	Data  []AbsentEmployee `json:"data"`
}

// PeriodReport is the stats-engine output for a period, filtered to
// employees with at least one late or absent day.
type PeriodReport struct {
	ReportID    string          `json:"report_id"`
	Period      string          `json:"period"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	Count       int             `json:"count"`
	Data        []EmployeeStats `json:"data"`
}
