package partition

import (
	"fmt"
	"time"
)

// Month identifies one calendar-month range partition of the ledger.
// Partitions are always whole months in UTC: [first day 00:00, first day of next month 00:00).
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the partition month containing t.
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid partition month %q (want YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

// Start is the inclusive lower bound of the partition.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the exclusive upper bound, which is also the next partition's Start.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Next returns the following month.
func (m Month) Next() Month {
	return MonthOf(m.End())
}

// Before reports whether m is strictly earlier than o.
func (m Month) Before(o Month) bool {
	return m.Start().Before(o.Start())
}

// Name returns the physical partition name: <table>_<yyyy>_<mm>.
func (m Month) Name(table string) string {
	return fmt.Sprintf("%s_%04d_%02d", table, m.Year, int(m.Month))
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Range enumerates every month in [from, to], inclusive on both ends.
// Returns nil when to is before from.
func Range(from, to Month) []Month {
	if to.Before(from) {
		return nil
	}
	var months []Month
	for m := from; !to.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}

// Covers reports whether t falls within the provisioned span [from.Start(), to.End()).
// The ledger has no overflow partition, so anything outside is rejected on insert.
func Covers(from, to Month, t time.Time) bool {
	t = t.UTC()
	return !t.Before(from.Start()) && t.Before(to.End())
}
