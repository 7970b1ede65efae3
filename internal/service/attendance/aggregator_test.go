package attendance

import (
	"sort"
	"testing"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employee(code, first, last string) biotime.Employee {
	return biotime.Employee{EmpCode: code, FirstName: first, LastName: last}
}

// Mon 2024-02-05 .. Fri 2024-02-09: five required weekdays, no Sunday.
var (
	weekdayRangeStart = time.Date(2024, time.February, 5, 0, 0, 0, 0, time.Local)
	weekdayRangeEnd   = time.Date(2024, time.February, 9, 23, 59, 59, 0, time.Local)
)

func TestBuildStats_ZeroPunchesAllAbsent(t *testing.T) {
	stats, err := BuildStats(weekdayRangeStart, weekdayRangeEnd,
		[]biotime.Employee{employee("100", "Ada", "Lovelace")}, Index(nil), testRules())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	s := stats[0].Stats
	assert.Equal(t, 5, s.WorkDaysRequired)
	assert.Equal(t, 0, s.Present)
	assert.Equal(t, 5, s.Absent)
	assert.Equal(t, 0, s.Late)
	assert.Equal(t, []string{
		"2024-02-05", "2024-02-06", "2024-02-07", "2024-02-08", "2024-02-09",
	}, s.AbsentDetails)
	assert.Empty(t, s.LateDetails)
}

func TestBuildStats_PresentPlusAbsentEqualsRequired(t *testing.T) {
	records := []biotime.Transaction{
		punch("100", "2024-02-05 08:00:00"),
		punch("100", "2024-02-07 08:30:00"),
	}
	stats, err := BuildStats(weekdayRangeStart, weekdayRangeEnd,
		[]biotime.Employee{employee("100", "Ada", "Lovelace")}, Index(records), testRules())
	require.NoError(t, err)

	s := stats[0].Stats
	assert.Equal(t, s.WorkDaysRequired, s.Present+s.Absent)
	assert.Equal(t, 2, s.Present)
	assert.Equal(t, 3, s.Absent)
	assert.Equal(t, 1, s.Late)
	assert.Len(t, s.LateDetails, s.Late)
	assert.Len(t, s.AbsentDetails, s.Absent)
}

func TestBuildStats_SundayWorkDoesNotTouchRequired(t *testing.T) {
	// Sun 2024-02-04 .. Fri 2024-02-09; punches only on the Sunday.
	start := time.Date(2024, time.February, 4, 0, 0, 0, 0, time.Local)
	records := []biotime.Transaction{
		punch("100", "2024-02-04 09:00:00"),
	}

	stats, err := BuildStats(start, weekdayRangeEnd,
		[]biotime.Employee{employee("100", "Ada", "Lovelace")}, Index(records), testRules())
	require.NoError(t, err)

	s := stats[0].Stats
	assert.Equal(t, 5, s.WorkDaysRequired, "Sunday never counts as required")
	assert.Equal(t, 1, s.Present, "weekend work still counts as presence")
	assert.Equal(t, 5, s.Absent)
	assert.NotContains(t, s.AbsentDetails, "2024-02-04")
}

func TestBuildStats_LateDetailsAscendingByDate(t *testing.T) {
	records := []biotime.Transaction{
		punch("100", "2024-02-08 09:00:00"),
		punch("100", "2024-02-05 08:10:00"),
		punch("100", "2024-02-06 08:45:00"),
	}
	stats, err := BuildStats(weekdayRangeStart, weekdayRangeEnd,
		[]biotime.Employee{employee("100", "Ada", "Lovelace")}, Index(records), testRules())
	require.NoError(t, err)

	details := stats[0].Stats.LateDetails
	require.Len(t, details, 3)
	assert.True(t, sort.SliceIsSorted(details, func(i, j int) bool {
		return details[i].Date < details[j].Date
	}))
}

func TestBuildStats_SortedByEmployeeCode(t *testing.T) {
	stats, err := BuildStats(weekdayRangeStart, weekdayRangeEnd,
		[]biotime.Employee{
			employee("300", "Carol", "C"),
			employee("100", "Ada", "A"),
			employee("200", "Bob", "B"),
		}, Index(nil), testRules())
	require.NoError(t, err)

	require.Len(t, stats, 3)
	assert.Equal(t, "100", stats[0].EmpCode)
	assert.Equal(t, "200", stats[1].EmpCode)
	assert.Equal(t, "300", stats[2].EmpCode)
}

func TestBuildStats_SkipsEmptyEmployeeCodes(t *testing.T) {
	stats, err := BuildStats(weekdayRangeStart, weekdayRangeEnd,
		[]biotime.Employee{employee("", "Ghost", "Entry"), employee("100", "Ada", "A")},
		Index(nil), testRules())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "100", stats[0].EmpCode)
}

func TestBuildStats_Idempotent(t *testing.T) {
	records := []biotime.Transaction{
		punch("100", "2024-02-05 08:30:00"),
		punch("200", "2024-02-06 07:59:59"),
	}
	employees := []biotime.Employee{
		employee("100", "Ada", "A"),
		employee("200", "Bob", "B"),
	}
	idx := Index(records)

	first, err := BuildStats(weekdayRangeStart, weekdayRangeEnd, employees, idx, testRules())
	require.NoError(t, err)
	second, err := BuildStats(weekdayRangeStart, weekdayRangeEnd, employees, idx, testRules())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildStats_MalformedPunchAbortsWholeReport(t *testing.T) {
	records := []biotime.Transaction{
		punch("100", "2024-02-05 08:00:00"),
		punch("200", "2024-02-06 garbage"),
	}
	_, err := BuildStats(weekdayRangeStart, weekdayRangeEnd,
		[]biotime.Employee{employee("100", "Ada", "A"), employee("200", "Bob", "B")},
		Index(records), testRules())

	var formatErr *attendance.DataFormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestFilterLateOrAbsent(t *testing.T) {
	stats := []attendance.EmployeeStats{
		{EmpCode: "100", Stats: attendance.PeriodStats{Present: 5}},
		{EmpCode: "200", Stats: attendance.PeriodStats{Present: 4, Late: 1}},
		{EmpCode: "300", Stats: attendance.PeriodStats{Present: 3, Absent: 2}},
	}

	filtered := FilterLateOrAbsent(stats)

	require.Len(t, filtered, 2)
	assert.Equal(t, "200", filtered[0].EmpCode)
	assert.Equal(t, "300", filtered[1].EmpCode)
}

func TestFilterLateOrAbsent_ExcludesCleanEvenWhenPresent(t *testing.T) {
	stats := []attendance.EmployeeStats{
		{EmpCode: "100", Stats: attendance.PeriodStats{WorkDaysRequired: 20, Present: 20}},
	}
	assert.Empty(t, FilterLateOrAbsent(stats))
}

func TestDaysBetween_InclusiveBounds(t *testing.T) {
	days := daysBetween(
		time.Date(2024, time.February, 5, 9, 30, 0, 0, time.Local),
		time.Date(2024, time.February, 7, 1, 0, 0, 0, time.Local),
	)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-02-05", days[0].Format(dateLayout))
	assert.Equal(t, "2024-02-07", days[2].Format(dateLayout))
}
