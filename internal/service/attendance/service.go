package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
)

// Period labels carried on summary and report responses.
const (
	periodLastSevenDays      = "last_7_days"
	periodMonthToDate        = "month_to_date"
	periodCurrentWeekToDate  = "current_week_to_date"
	periodCurrentMonthToDate = "current_month_to_date"
	periodCustomMonth        = "custom_month"
	periodPreviousMonth      = "previous_month"
)

// Default page sizes for the proxy endpoints.
const (
	defaultEmployeePageSize         = 100
	defaultTransactionPageSize      = 100
	defaultTodayTransactionPageSize = 500
)

type AttendanceServiceImpl struct {
	client attendance.UpstreamClient
	rules  attendance.Rules

	// now is swapped out in tests; the "today" endpoints depend on it.
	now func() time.Time
}

func NewAttendanceService(client attendance.UpstreamClient, rules attendance.Rules) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		client: client,
		rules:  rules,
		now:    time.Now,
	}
}

// ListEmployees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEmployees(ctx context.Context, req attendance.PageRequest) (biotime.Page[biotime.Employee], error) {
	applyPageDefaults(&req, defaultEmployeePageSize)
	if err := req.Validate(); err != nil {
		return biotime.Page[biotime.Employee]{}, err
	}

	page, err := s.client.ListEmployees(ctx, req.Page, req.PageSize)
	if err != nil {
		return biotime.Page[biotime.Employee]{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return page, nil
}

// ListTransactions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListTransactions(ctx context.Context, req attendance.TransactionsRequest) (biotime.Page[biotime.Transaction], error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultTransactionPageSize
	}
	if err := req.Validate(); err != nil {
		return biotime.Page[biotime.Transaction]{}, err
	}

	filter := biotime.TransactionFilter{
		EmpCode:   req.EmpCode,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	page, err := s.client.ListTransactions(ctx, filter, req.Page, req.PageSize)
	if err != nil {
		return biotime.Page[biotime.Transaction]{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return page, nil
}

// TodayTransactions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayTransactions(ctx context.Context, req attendance.PageRequest) (biotime.Page[biotime.Transaction], error) {
	applyPageDefaults(&req, defaultTodayTransactionPageSize)
	if err := req.Validate(); err != nil {
		return biotime.Page[biotime.Transaction]{}, err
	}

	start, end := dayBounds(s.now())
	filter := biotime.TransactionFilter{
		StartTime: start.Format(punchLayout),
		EndTime:   end.Format(punchLayout),
	}
	page, err := s.client.ListTransactions(ctx, filter, req.Page, req.PageSize)
	if err != nil {
		return biotime.Page[biotime.Transaction]{}, fmt.Errorf("failed to list today's transactions: %w", err)
	}
	return page, nil
}

// TodaySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodaySummary(ctx context.Context) (attendance.RangeSummary, error) {
	start, end := dayBounds(s.now())
	summary, err := s.rangeSummary(ctx, start, end)
	if err != nil {
		return attendance.RangeSummary{}, err
	}
	summary.Date = start.Format(dateLayout)
	return summary, nil
}

// TodayPresent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayPresent(ctx context.Context) (attendance.PresenceList, error) {
	summary, err := s.TodaySummary(ctx)
	if err != nil {
		return attendance.PresenceList{}, err
	}
	return attendance.PresenceList{
		Date:  summary.Date,
		Count: summary.Count,
		Data:  summary.Data,
	}, nil
}

// TodayAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayAbsent(ctx context.Context) (attendance.AbsenceList, error) {
	employees, err := s.client.FetchAllEmployees(ctx)
	if err != nil {
		return attendance.AbsenceList{}, fmt.Errorf("failed to fetch employees: %w", err)
	}

	summary, err := s.TodaySummary(ctx)
	if err != nil {
		return attendance.AbsenceList{}, err
	}

	absent := AbsentFromRoster(employees, summary.Data)
	return attendance.AbsenceList{
		Date:  summary.Date,
		Count: len(absent),
		Data:  absent,
	}, nil
}

// TodayLate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayLate(ctx context.Context) (attendance.PresenceList, error) {
	summary, err := s.TodaySummary(ctx)
	if err != nil {
		return attendance.PresenceList{}, err
	}

	day, _ := time.ParseInLocation(dateLayout, summary.Date, time.Local)
	late, err := FilterLate(summary.Data, day, s.rules.LateAfter)
	if err != nil {
		return attendance.PresenceList{}, err
	}

	return attendance.PresenceList{
		Date:          summary.Date,
		Count:         len(late),
		Data:          late,
		LateAfterTime: s.rules.LateAfter.String(),
	}, nil
}

// TodayEarlyLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayEarlyLeave(ctx context.Context) (attendance.PresenceList, error) {
	summary, err := s.TodaySummary(ctx)
	if err != nil {
		return attendance.PresenceList{}, err
	}

	day, _ := time.ParseInLocation(dateLayout, summary.Date, time.Local)
	early, err := FilterEarlyLeave(summary.Data, day, s.rules.EarlyLeave)
	if err != nil {
		return attendance.PresenceList{}, err
	}

	return attendance.PresenceList{
		Date:             summary.Date,
		Count:            len(early),
		Data:             early,
		EarlyLeaveBefore: s.rules.EarlyLeave.String(),
	}, nil
}

// WeekSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) WeekSummary(ctx context.Context) (attendance.RangeSummary, error) {
	end := s.now()
	start := end.AddDate(0, 0, -6)
	summary, err := s.rangeSummary(ctx, start, end)
	if err != nil {
		return attendance.RangeSummary{}, err
	}
	summary.Period = periodLastSevenDays
	return summary, nil
}

// MonthSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthSummary(ctx context.Context) (attendance.RangeSummary, error) {
	end := s.now()
	start := firstOfMonth(end)
	summary, err := s.rangeSummary(ctx, start, end)
	if err != nil {
		return attendance.RangeSummary{}, err
	}
	summary.Period = periodMonthToDate
	return summary, nil
}

// WeeklyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) WeeklyReport(ctx context.Context) (attendance.PeriodReport, error) {
	end := s.now()
	return s.buildReport(ctx, periodCurrentWeekToDate, weekStart(end), end)
}

// MonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyReport(ctx context.Context, req attendance.MonthlyReportRequest) (attendance.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return attendance.PeriodReport{}, err
	}

	if req.Explicit() {
		start, end := monthBounds(req.Year, time.Month(req.Month), time.Local)
		return s.buildReport(ctx, periodCustomMonth, start, end)
	}

	end := s.now()
	return s.buildReport(ctx, periodCurrentMonthToDate, firstOfMonth(end), end)
}

// PreviousMonthReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PreviousMonthReport(ctx context.Context) (attendance.PeriodReport, error) {
	prevLast := firstOfMonth(s.now()).Add(-time.Second)
	prevFirst := firstOfMonth(prevLast)
	return s.buildReport(ctx, periodPreviousMonth, prevFirst, prevLast)
}

// rangeSummary fetches every punch in [start, end] and collapses them into
// per-employee summary rows.
func (s *AttendanceServiceImpl) rangeSummary(ctx context.Context, start, end time.Time) (attendance.RangeSummary, error) {
	records, err := s.client.FetchAllTransactions(ctx, start.Format(punchLayout), end.Format(punchLayout))
	if err != nil {
		return attendance.RangeSummary{}, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	rows, err := BuildSummary(records)
	if err != nil {
		return attendance.RangeSummary{}, err
	}

	return attendance.RangeSummary{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Count:     len(rows),
		Data:      rows,
	}, nil
}

// buildReport fetches the roster plus every punch in the window, runs the
// stats engine and keeps only employees with lateness or absence.
func (s *AttendanceServiceImpl) buildReport(ctx context.Context, period string, start, end time.Time) (attendance.PeriodReport, error) {
	employees, err := s.client.FetchAllEmployees(ctx)
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to fetch employees: %w", err)
	}

	records, err := s.client.FetchAllTransactions(ctx, start.Format(punchLayout), end.Format(punchLayout))
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	stats, err := BuildStats(start, end, employees, Index(records), s.rules)
	if err != nil {
		return attendance.PeriodReport{}, err
	}

	filtered := FilterLateOrAbsent(stats)
	return attendance.PeriodReport{
		ReportID:    uuid.NewString(),
		Period:      period,
		PeriodStart: start.Format(punchLayout),
		PeriodEnd:   end.Format(punchLayout),
		Count:       len(filtered),
		Data:        filtered,
	}, nil
}

func applyPageDefaults(req *attendance.PageRequest, pageSize int) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = pageSize
	}
}
