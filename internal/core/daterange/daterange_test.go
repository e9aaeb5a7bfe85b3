package daterange

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "valid month", start: "2024-01-01", end: "2024-01-31"},
		{name: "single day", start: "2024-03-01", end: "2024-03-01"},
		{name: "end is today", start: "2025-02-01", end: "2025-02-10"},
		{name: "surrounding whitespace", start: " 2024-01-01 ", end: "2024-01-02\t"},
		{name: "bad month", start: "2024-0A-31", end: "2024-01-01", wantErr: ErrInvalidFormat},
		{name: "slashes", start: "2024/01/01", end: "2024-01-31", wantErr: ErrInvalidFormat},
		{name: "single digit month", start: "2024-1-01", end: "2024-01-31", wantErr: ErrInvalidFormat},
		{name: "empty end", start: "2024-01-01", end: "", wantErr: ErrInvalidFormat},
		{name: "impossible day", start: "2024-02-30", end: "2024-03-01", wantErr: ErrInvalidFormat},
		{name: "inverted", start: "2024-02-01", end: "2024-01-01", wantErr: ErrInvertedRange},
		{name: "inverted beats future", start: "2030-02-01", end: "2030-01-01", wantErr: ErrInvertedRange},
		{name: "tomorrow", start: "2025-02-01", end: "2025-02-11", wantErr: ErrFutureEndDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Parse(tc.start, tc.end, fixedNow, time.UTC)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.False(t, r.Start.After(r.End))
		})
	}
}

func TestParse_TodayFollowsLocation(t *testing.T) {
	// 2025-02-10 15:00 UTC is already 2025-02-11 in UTC+10.
	loc := time.FixedZone("UTC+10", 10*60*60)

	_, err := Parse("2025-02-11", "2025-02-11", fixedNow, loc)
	require.NoError(t, err)

	_, err = Parse("2025-02-11", "2025-02-11", fixedNow, time.UTC)
	require.ErrorIs(t, err, ErrFutureEndDate)
}

func TestRange_Bounds(t *testing.T) {
	r, err := Parse("2024-03-01", "2024-03-31", fixedNow, time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), r.EndExclusive())
	require.Equal(t, 31, r.Days())
	require.Equal(t, "2024-03-01..2024-03-31", r.String())
}

func TestProperty_Validation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	date := func(offset int) string { return base.AddDate(0, 0, offset).Format(Layout) }
	todayOffset := int(fixedNow.Sub(base).Hours() / 24)

	properties.Property("start after end is always an inverted range", prop.ForAll(
		func(a, b int) bool {
			if a == b {
				return true
			}
			if a < b {
				a, b = b, a
			}
			_, err := Parse(date(a), date(b), fixedNow, time.UTC)
			return err == ErrInvertedRange
		},
		gen.IntRange(0, 20000),
		gen.IntRange(0, 20000),
	))

	properties.Property("ordered range ending after today is a future end date", prop.ForAll(
		func(startOffset, daysAhead int) bool {
			end := todayOffset + daysAhead
			if startOffset > end {
				startOffset = end
			}
			_, err := Parse(date(startOffset), date(end), fixedNow, time.UTC)
			return err == ErrFutureEndDate
		},
		gen.IntRange(0, 20000),
		gen.IntRange(1, 5000),
	))

	properties.Property("ordered range ending by today is valid", prop.ForAll(
		func(a, b int) bool {
			if a > b {
				a, b = b, a
			}
			r, err := Parse(date(a), date(b), fixedNow, time.UTC)
			return err == nil && r.Days() == b-a+1
		},
		gen.IntRange(0, todayOffset),
		gen.IntRange(0, todayOffset),
	))

	properties.TestingRun(t)
}
