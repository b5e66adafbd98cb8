package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRange(t *testing.T) {
	now := time.Date(2026, 5, 31, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      RangeName
		wantStart time.Time
	}{
		{RangeThreeMonths, time.Date(2026, 2, 28, 10, 30, 0, 0, time.UTC)},
		{RangeSixMonths, time.Date(2025, 11, 30, 10, 30, 0, 0, time.UTC)},
		{RangeTwelveMonths, time.Date(2025, 5, 31, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			r, ok := ResolveRange(tt.name, now)
			require.True(t, ok)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, now, r.End)
		})
	}

	_, ok := ResolveRange("1year", now)
	assert.False(t, ok)
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: day(2026, 3, 1), End: day(2026, 3, 31)}
	assert.True(t, r.Contains(day(2026, 3, 1)))
	assert.True(t, r.Contains(day(2026, 3, 31)))
	assert.False(t, r.Contains(day(2026, 2, 28)))
	assert.False(t, r.Contains(day(2026, 4, 1)))
}

func TestBuckets_NoGaps(t *testing.T) {
	t.Run("days", func(t *testing.T) {
		r := DateRange{Start: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)}
		bs := dayGrain.buckets(r)
		require.Len(t, bs, 3)
		assert.Equal(t, "2026-03-01", bs[0].Label)
		assert.Equal(t, "2026-03-03", bs[2].Label)
	})

	t.Run("weeks start on monday", func(t *testing.T) {
		r := DateRange{Start: day(2026, 3, 4), End: day(2026, 3, 17)}
		bs := weekGrain.buckets(r)
		require.Len(t, bs, 3)
		assert.Equal(t, day(2026, 3, 2), bs[0].Start)
		assert.Equal(t, time.Monday, bs[0].Start.Weekday())
		assert.Equal(t, []string{"Mar 2", "Mar 9", "Mar 16"}, []string{bs[0].Label, bs[1].Label, bs[2].Label})
	})

	t.Run("months touched by range", func(t *testing.T) {
		r := DateRange{Start: day(2025, 12, 15), End: day(2026, 2, 10)}
		bs := monthGrain.buckets(r)
		require.Len(t, bs, 3)
		assert.Equal(t, "Dec 2025", bs[0].Label)
		assert.Equal(t, "Feb 2026", bs[2].Label)
	})
}

func TestStartOfWeek_Sunday(t *testing.T) {
	assert.Equal(t, day(2026, 3, 2), startOfWeek(time.Date(2026, 3, 8, 18, 0, 0, 0, time.UTC)))
}
