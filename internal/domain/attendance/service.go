package attendance

import (
	"context"

	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
)

// UpstreamClient is the slice of the upstream time-clock API the attendance
// service consumes.
type UpstreamClient interface {
	// ListEmployees fetches one page of the employee roster.
	ListEmployees(ctx context.Context, page, pageSize int) (biotime.Page[biotime.Employee], error)

	// FetchAllEmployees drains the whole roster.
	FetchAllEmployees(ctx context.Context) ([]biotime.Employee, error)

	// ListTransactions fetches one page of punch records.
	ListTransactions(ctx context.Context, filter biotime.TransactionFilter, page, pageSize int) (biotime.Page[biotime.Transaction], error)

	// FetchAllTransactions drains every punch record in a time window.
	FetchAllTransactions(ctx context.Context, startTime, endTime string) ([]biotime.Transaction, error)
}

// AttendanceService defines the attendance aggregation operations exposed
// over the API. Every call recomputes from upstream data; nothing is cached
// across requests.
type AttendanceService interface {
	// ListEmployees proxies one upstream roster page.
	ListEmployees(ctx context.Context, req PageRequest) (biotime.Page[biotime.Employee], error)

	// ListTransactions proxies one upstream punch page with filters.
	ListTransactions(ctx context.Context, req TransactionsRequest) (biotime.Page[biotime.Transaction], error)

	// TodayTransactions proxies one page of today's raw punches.
	TodayTransactions(ctx context.Context, req PageRequest) (biotime.Page[biotime.Transaction], error)

	// TodaySummary builds today's per-employee punch summary.
	TodaySummary(ctx context.Context) (RangeSummary, error)

	// TodayPresent lists employees with at least one punch today.
	TodayPresent(ctx context.Context) (PresenceList, error)

	// TodayAbsent lists rostered employees with no punch today.
	TodayAbsent(ctx context.Context) (AbsenceList, error)

	// TodayLate lists employees whose first punch landed after the late threshold.
	TodayLate(ctx context.Context) (PresenceList, error)

	// TodayEarlyLeave lists employees whose last punch landed before the
	// early-leave threshold.
	TodayEarlyLeave(ctx context.Context) (PresenceList, error)

	// WeekSummary summarizes the last 7 days including today.
	WeekSummary(ctx context.Context) (RangeSummary, error)

	// MonthSummary summarizes the current month to date.
	MonthSummary(ctx context.Context) (RangeSummary, error)

	// WeeklyReport runs the stats engine over the current week to date.
	WeeklyReport(ctx context.Context) (PeriodReport, error)

	// MonthlyReport runs the stats engine over an explicit month, or the
	// current month to date when none is given.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (PeriodReport, error)

	// PreviousMonthReport runs the stats engine over the completed previous
	// calendar month.
	PreviousMonthReport(ctx context.Context) (PeriodReport, error)
}
