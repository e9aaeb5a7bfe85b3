package aggregation

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// ParseLookback parses an incremental refresh lookback. Go duration syntax
// ("90m", "24h") is accepted as well as "Xd" for whole days.
func ParseLookback(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("lookback must not be empty")
	}

	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return 0, fmt.Errorf("invalid lookback %q: %w", s, err)
		}
		if days <= 0 {
			return 0, fmt.Errorf("lookback must be positive, got %q", s)
		}
		return time.Duration(days) * day, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid lookback %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("lookback must be positive, got %q", s)
	}
	return d, nil
}

// Window is a half-open ledger time range [Start, End) recomputed by one refresh.
// Bounds always sit on UTC midnight so every (day, key) row touched is rebuilt
// from a full day of ledger rows; a partial day would overwrite a complete
// count with a smaller one.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayStart truncates t to UTC midnight.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Trailing returns the window covering now-lookback through the end of now's day.
func Trailing(now time.Time, lookback time.Duration) Window {
	return Window{
		Start: DayStart(now.Add(-lookback)),
		End:   DayStart(now).Add(day),
	}
}

// Spanning returns the window covering every day from first through last.
// Used for bootstrap recomputes over the full ledger extent.
func Spanning(first, last time.Time) Window {
	if last.Before(first) {
		first, last = last, first
	}
	return Window{
		Start: DayStart(first),
		End:   DayStart(last).Add(day),
	}
}

// Days is the number of calendar days the window covers.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start) / day)
}

// Contains reports whether t is inside [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly))
}
