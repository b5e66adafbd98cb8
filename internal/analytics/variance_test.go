package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVariance(t *testing.T) {
	ref := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		planned, actual string
		want            Minutes
	}{
		{"late", "14:00", "14:20", Minutes{Value: 20, Known: true}},
		{"early", "14:00", "13:50", Minutes{Value: -10, Known: true}},
		{"mixed formats", "2:00 PM", "14:45", Minutes{Value: 45, Known: true}},
		{"seconds truncate", "2026-03-10T08:00:00Z", "2026-03-10T08:01:59Z", Minutes{Value: 1, Known: true}},
		{"negative truncates toward zero", "2026-03-10T08:00:00Z", "2026-03-10T07:58:30Z", Minutes{Value: -1, Known: true}},
		{"missing planned", "", "14:20", Minutes{}},
		{"missing actual", "14:00", "", Minutes{}},
		{"unparseable", "14:00", "soon", Minutes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Variance(tt.planned, tt.actual, ref))
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		variance int
		want     PunctualityCategory
	}{
		{-30, CategoryEarly},
		{-10, CategoryEarly},
		{-5, CategoryEarly},
		{-4, CategoryOnTime},
		{0, CategoryOnTime},
		{15, CategoryOnTime},
		{16, CategorySlightlyLate},
		{20, CategorySlightlyLate},
		{30, CategorySlightlyLate},
		{31, CategoryLate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.variance), "variance %d", tt.variance)
	}
}

func TestMinutesDelayed(t *testing.T) {
	assert.False(t, Minutes{Value: 15, Known: true}.Delayed())
	assert.True(t, Minutes{Value: 16, Known: true}.Delayed())
	assert.False(t, Minutes{Value: 60}.Delayed())
}
