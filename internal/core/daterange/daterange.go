// Package daterange validates the inclusive YYYY-MM-DD ranges accepted by
// every range-based report. Validation runs before any store access.
package daterange

import (
	"errors"
	"strings"
	"time"
)

// Layout is the only accepted date format.
const Layout = time.DateOnly

var (
	ErrInvalidFormat = errors.New("invalid date format")
	ErrInvertedRange = errors.New("start date after end date")
	ErrFutureEndDate = errors.New("end date after today")
)

// Range is an inclusive span of calendar dates.
type Range struct {
	Start time.Time // midnight of the first day
	End   time.Time // midnight of the last day
}

// Parse validates start and end against today (in loc) and returns the range.
// Rules are checked in order: both dates parse, start <= end, end <= today.
func Parse(start, end string, now time.Time, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}

	s, okStart := parseDate(start)
	e, okEnd := parseDate(end)
	if !okStart || !okEnd {
		return Range{}, ErrInvalidFormat
	}

	if s.After(e) {
		return Range{}, ErrInvertedRange
	}

	n := now.In(loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	if e.After(today) {
		return Range{}, ErrFutureEndDate
	}

	return Range{Start: s, End: e}, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EndExclusive is the instant right after the last day, for timestamp filters.
func (r Range) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Days is the number of calendar days in the range.
func (r Range) Days() int {
	return int(r.EndExclusive().Sub(r.Start) / (24 * time.Hour))
}

func (r Range) String() string {
	return r.Start.Format(Layout) + ".." + r.End.Format(Layout)
}
