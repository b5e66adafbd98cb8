package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"load-analytics/internal/domain/load"
)

func delivered(destination, planned, actual string) *load.Load {
	return newTestLoad(
		withStatus(load.StatusDelivered),
		withRoute("Farm A", destination),
		withTimes(destinationArrival(planned, actual)),
	)
}

func TestAnalyzeTimeVariance(t *testing.T) {
	loads := Decode([]*load.Load{
		delivered("Depot B", "14:00", "14:20"),
		delivered("Depot B", "14:00", "13:50"),
		delivered("Depot C", "14:00", "14:05"),
		delivered("Depot B", "14:00", "15:00"),
		newTestLoad(withStatus(load.StatusDelivered), withTimes("not json")),
		newTestLoad(withStatus(load.StatusDelivered), withTimes(`{"origin":{"plannedDeparture":"09:00","actualDeparture":"09:30"}}`)),
		newTestLoad(withStatus(load.StatusScheduled), withTimes(destinationArrival("14:00", "18:00"))),
	}, time.UTC)

	report := AnalyzeTimeVariance(loads)

	assert.Equal(t, []VarianceBandRow{
		{Category: CategoryOnTime, Count: 1, Percentage: 25, Fill: "#22c55e"},
		{Category: CategoryEarly, Count: 1, Percentage: 25, Fill: "#3b82f6"},
		{Category: CategorySlightlyLate, Count: 1, Percentage: 25, Fill: "#f59e0b"},
		{Category: CategoryLate, Count: 1, Percentage: 25, Fill: "#ef4444"},
	}, report.Distribution)
	assert.Equal(t, 4, report.TotalAnalyzed)
	assert.Equal(t, 2, report.NoDataCount)
	assert.Equal(t, 50, report.OnTimeRate)
	assert.Equal(t, 19, report.AvgDestVariance)
	assert.Equal(t, 0, report.AvgOriginVariance)
	assert.Equal(t, 2, report.LateCount)
	assert.Equal(t, 1, report.EarlyCount)
	assert.Equal(t, 1, report.OnTimeCount)

	assert.Equal(t, []LocationPerformance{
		{Location: "Depot B", AvgVariance: 23, OnTimeCount: 0, LateCount: 2, EarlyCount: 1, TotalLoads: 3},
		{Location: "Depot C", AvgVariance: 5, OnTimeCount: 1, TotalLoads: 1},
	}, report.RoutePerformance)
}

func TestAnalyzeTimeVariance_PercentagesNotNormalised(t *testing.T) {
	loads := Decode([]*load.Load{
		delivered("Depot B", "14:00", "14:00"),
		delivered("Depot B", "14:00", "13:30"),
		delivered("Depot B", "14:00", "15:00"),
	}, time.UTC)

	report := AnalyzeTimeVariance(loads)

	total := 0
	for _, row := range report.Distribution {
		assert.Equal(t, 33, row.Percentage)
		total += row.Percentage
	}
	assert.Equal(t, 99, total)
}

func TestAnalyzeTimeVariance_BoundaryThresholdsDiffer(t *testing.T) {
	loads := Decode([]*load.Load{
		delivered("Depot B", "14:00", "13:55"),
	}, time.UTC)

	report := AnalyzeTimeVariance(loads)

	assert.Equal(t, 1, report.EarlyCount)
	assert.Equal(t, LocationPerformance{Location: "Depot B", AvgVariance: -5, OnTimeCount: 1, TotalLoads: 1}, report.RoutePerformance[0])
}

func TestAnalyzeTimeVariance_OriginAverage(t *testing.T) {
	raw := `{"origin":{"plannedDeparture":"09:00","actualDeparture":"09:07"},
		"destination":{"plannedArrival":"14:00","actualArrival":"14:00"}}`
	loads := Decode([]*load.Load{
		newTestLoad(withStatus(load.StatusDelivered), withTimes(raw)),
	}, time.UTC)

	assert.Equal(t, 7, AnalyzeTimeVariance(loads).AvgOriginVariance)
}

func TestAnalyzeTimeVariance_Empty(t *testing.T) {
	report := AnalyzeTimeVariance(nil)
	assert.Empty(t, report.Distribution)
	assert.NotNil(t, report.Distribution)
	assert.Equal(t, 0, report.OnTimeRate)
	assert.Empty(t, report.RoutePerformance)
}
