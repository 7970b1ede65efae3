package attendance

import "github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"

// PunchIndex groups raw punch records by employee code, then by calendar day
// ("YYYY-MM-DD").
type PunchIndex map[string]map[string][]biotime.Transaction

// Index buckets records by employee and day. Records missing an employee
// code or punch time are dropped; the classifier sorts per-day punches
// itself, so bucket order is whatever the upstream returned.
func Index(records []biotime.Transaction) PunchIndex {
	idx := make(PunchIndex)
	for _, rec := range records {
		if rec.EmpCode == "" || len(rec.PunchTime) < len(dateLayout) {
			continue
		}
		day := rec.PunchTime[:len(dateLayout)]
		byDay, ok := idx[rec.EmpCode]
		if !ok {
			byDay = make(map[string][]biotime.Transaction)
			idx[rec.EmpCode] = byDay
		}
		byDay[day] = append(byDay[day], rec)
	}
	return idx
}

// DaysFor returns the per-day buckets for one employee; nil when the
// employee had no punches at all.
func (idx PunchIndex) DaysFor(empCode string) map[string][]biotime.Transaction {
	return idx[empCode]
}
