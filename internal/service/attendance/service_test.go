package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream serves canned roster and punch data and records the windows
// it was asked for.
type fakeUpstream struct {
	employees    []biotime.Employee
	transactions []biotime.Transaction

	lastStartTime string
	lastEndTime   string
}

func (f *fakeUpstream) ListEmployees(_ context.Context, page, pageSize int) (biotime.Page[biotime.Employee], error) {
	return biotime.Page[biotime.Employee]{Count: len(f.employees), Data: f.employees}, nil
}

func (f *fakeUpstream) FetchAllEmployees(_ context.Context) ([]biotime.Employee, error) {
	return f.employees, nil
}

func (f *fakeUpstream) ListTransactions(_ context.Context, filter biotime.TransactionFilter, page, pageSize int) (biotime.Page[biotime.Transaction], error) {
	f.lastStartTime = filter.StartTime
	f.lastEndTime = filter.EndTime
	return biotime.Page[biotime.Transaction]{Count: len(f.transactions), Data: f.transactions}, nil
}

func (f *fakeUpstream) FetchAllTransactions(_ context.Context, startTime, endTime string) ([]biotime.Transaction, error) {
	f.lastStartTime = startTime
	f.lastEndTime = endTime
	return f.transactions, nil
}

// newTestService pins "now" to Wed 2024-02-07 10:00:00 local time.
func newTestService(fake *fakeUpstream) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		client: fake,
		rules:  testRules(),
		now: func() time.Time {
			return time.Date(2024, time.February, 7, 10, 0, 0, 0, time.Local)
		},
	}
}

func TestMonthlyReport_ExplicitLeapMonth(t *testing.T) {
	fake := &fakeUpstream{
		employees: []biotime.Employee{
			employee("100", "Ada", "A"),
		},
	}
	svc := newTestService(fake)

	report, err := svc.MonthlyReport(context.Background(), attendance.MonthlyReportRequest{Month: 2, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, "custom_month", report.Period)
	assert.Equal(t, "2024-02-01 00:00:00", report.PeriodStart)
	assert.Equal(t, "2024-02-29 23:59:59", report.PeriodEnd)
	assert.Equal(t, report.PeriodStart, fake.lastStartTime)
	assert.Equal(t, report.PeriodEnd, fake.lastEndTime)
	assert.NotEmpty(t, report.ReportID)

	// Ada has zero punches in the whole month, so she survives the
	// late-or-absent filter.
	require.Equal(t, 1, report.Count)
	assert.Equal(t, 25, report.Data[0].Stats.WorkDaysRequired) // 29 days minus 4 Sundays
	assert.Equal(t, 25, report.Data[0].Stats.Absent)
}

func TestMonthlyReport_FilterDropsCleanEmployees(t *testing.T) {
	// Bob punches in on time every working day of Feb 5-9 week; the rest of
	// the report range would make him absent, so give him a tight window
	// via the month-to-date path instead.
	fake := &fakeUpstream{
		employees: []biotime.Employee{
			employee("100", "Ada", "A"),
			employee("200", "Bob", "B"),
		},
		transactions: func() []biotime.Transaction {
			var txs []biotime.Transaction
			// Feb 1-7 working days: 1,2,3,5,6,7 (Feb 4 is Sunday).
			for _, d := range []string{"01", "02", "03", "05", "06", "07"} {
				txs = append(txs, punch("200", "2024-02-"+d+" 08:00:00"))
			}
			return txs
		}(),
	}
	svc := newTestService(fake)

	report, err := svc.MonthlyReport(context.Background(), attendance.MonthlyReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, "current_month_to_date", report.Period)
	require.Equal(t, 1, report.Count, "clean employee must be filtered out")
	assert.Equal(t, "100", report.Data[0].EmpCode)
}

func TestMonthlyReport_MonthWithoutYearIsRejected(t *testing.T) {
	svc := newTestService(&fakeUpstream{})

	_, err := svc.MonthlyReport(context.Background(), attendance.MonthlyReportRequest{Month: 2})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestPreviousMonthReport_Bounds(t *testing.T) {
	fake := &fakeUpstream{}
	svc := newTestService(fake)

	report, err := svc.PreviousMonthReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "previous_month", report.Period)
	assert.Equal(t, "2024-01-01 00:00:00", report.PeriodStart)
	assert.Equal(t, "2024-01-31 23:59:59", report.PeriodEnd)
}

func TestWeeklyReport_StartsOnMonday(t *testing.T) {
	fake := &fakeUpstream{}
	svc := newTestService(fake)

	report, err := svc.WeeklyReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "current_week_to_date", report.Period)
	assert.Equal(t, "2024-02-05 00:00:00", report.PeriodStart)
	assert.Equal(t, "2024-02-07 10:00:00", report.PeriodEnd)
}

func TestTodaySummary(t *testing.T) {
	fake := &fakeUpstream{
		transactions: []biotime.Transaction{
			punch("100", "2024-02-07 08:00:00"),
			punch("100", "2024-02-07 17:10:00"),
		},
	}
	svc := newTestService(fake)

	summary, err := svc.TodaySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-02-07", summary.Date)
	assert.Equal(t, "2024-02-07 00:00:00", fake.lastStartTime)
	assert.Equal(t, "2024-02-07 23:59:59", fake.lastEndTime)
	require.Equal(t, 1, summary.Count)
	assert.Equal(t, 2, summary.Data[0].TotalPunches)
}

func TestTodayAbsent(t *testing.T) {
	fake := &fakeUpstream{
		employees: []biotime.Employee{
			employee("100", "Ada", "A"),
			employee("200", "Bob", "B"),
		},
		transactions: []biotime.Transaction{
			punch("100", "2024-02-07 08:00:00"),
		},
	}
	svc := newTestService(fake)

	absent, err := svc.TodayAbsent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-02-07", absent.Date)
	require.Equal(t, 1, absent.Count)
	assert.Equal(t, "200", absent.Data[0].EmpCode)
}

func TestTodayLate_EchoesThreshold(t *testing.T) {
	fake := &fakeUpstream{
		transactions: []biotime.Transaction{
			punch("100", "2024-02-07 08:04:59"),
			punch("200", "2024-02-07 08:30:00"),
		},
	}
	svc := newTestService(fake)

	late, err := svc.TodayLate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "08:05:00", late.LateAfterTime)
	require.Equal(t, 1, late.Count)
	assert.Equal(t, "200", late.Data[0].EmpCode)
}

func TestTodayEarlyLeave_EchoesThreshold(t *testing.T) {
	fake := &fakeUpstream{
		transactions: []biotime.Transaction{
			punch("100", "2024-02-07 16:00:00"),
			punch("200", "2024-02-07 17:30:00"),
		},
	}
	svc := newTestService(fake)

	early, err := svc.TodayEarlyLeave(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "17:00:00", early.EarlyLeaveBefore)
	require.Equal(t, 1, early.Count)
	assert.Equal(t, "100", early.Data[0].EmpCode)
}

func TestWeekSummary_Window(t *testing.T) {
	fake := &fakeUpstream{}
	svc := newTestService(fake)

	summary, err := svc.WeekSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "last_7_days", summary.Period)
	assert.Equal(t, "2024-02-01", summary.StartDate)
	assert.Equal(t, "2024-02-07", summary.EndDate)
}

func TestMonthSummary_Window(t *testing.T) {
	fake := &fakeUpstream{}
	svc := newTestService(fake)

	summary, err := svc.MonthSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "month_to_date", summary.Period)
	assert.Equal(t, "2024-02-01", summary.StartDate)
	assert.Equal(t, "2024-02-07", summary.EndDate)
}

func TestListEmployees_AppliesDefaults(t *testing.T) {
	fake := &fakeUpstream{employees: []biotime.Employee{employee("100", "Ada", "A")}}
	svc := newTestService(fake)

	page, err := svc.ListEmployees(context.Background(), attendance.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
}

func TestListTransactions_RejectsBadTimestamp(t *testing.T) {
	svc := newTestService(&fakeUpstream{})

	_, err := svc.ListTransactions(context.Background(), attendance.TransactionsRequest{
		StartTime: "2024-02-07T08:00:00Z", // wrong format for the upstream wire
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}
