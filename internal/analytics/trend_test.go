package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-analytics/internal/domain/load"
)

func TestStatusTrends(t *testing.T) {
	r := DateRange{Start: day(2026, 3, 2), End: time.Date(2026, 3, 22, 23, 59, 0, 0, time.UTC)}
	loads := Decode([]*load.Load{
		newTestLoad(withLoadingDate("2026-03-03"), withStatus(load.StatusDelivered)),
		newTestLoad(withLoadingDate("2026-03-03"), withStatus(load.StatusScheduled)),
		newTestLoad(withLoadingDate("2026-03-04"), withStatus("cancelled")),
		newTestLoad(withLoadingDate("2026-03-18"), withStatus(load.StatusInTransit)),
		newTestLoad(withLoadingDate("not a date")),
	}, time.UTC)

	weekly := WeeklyTrend(loads, r)
	require.Len(t, weekly, 3)
	assert.Equal(t, StatusCounts{Scheduled: 1, Delivered: 1, Total: 3}, weekly[0].StatusCounts)
	assert.Equal(t, StatusCounts{}, weekly[1].StatusCounts)
	assert.Equal(t, StatusCounts{InTransit: 1, Total: 1}, weekly[2].StatusCounts)

	daily := DailyTrend(loads, r)
	require.Len(t, daily, 21)
	assert.Equal(t, 2, daily[1].Total)
	assert.Equal(t, 0, daily[0].Total)

	monthly := MonthlyTrend(loads, r)
	require.Len(t, monthly, 1)
	assert.Equal(t, "Mar 2026", monthly[0].Label)
	assert.Equal(t, 4, monthly[0].Total)
}
