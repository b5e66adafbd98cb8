package analytics

import "load-analytics/internal/domain/load"

// PunctualityReport groups the punctuality tables
type PunctualityReport struct {
	Daily             []PunctualityRow `json:"daily"`
	Weekly            []PunctualityRow `json:"weekly"`
	Delays            DelaySummary     `json:"delays"`
	OriginDelays      []DelayBarRow    `json:"originDelays"`
	DestinationDelays []DelayBarRow    `json:"destinationDelays"`
}

// Report holds every table computed for one date range
type Report struct {
	Range              DateRange          `json:"range"`
	Summary            SummaryStats       `json:"summary"`
	CargoDistribution  []DistributionRow  `json:"cargoDistribution"`
	StatusDistribution []DistributionRow  `json:"statusDistribution"`
	TopRoutes          []RouteRow         `json:"topRoutes"`
	DailyTrend         []TrendRow         `json:"dailyTrend"`
	WeeklyTrend        []TrendRow         `json:"weeklyTrend"`
	MonthlyTrend       []TrendRow         `json:"monthlyTrend"`
	DayOfWeek          []DayOfWeekRow     `json:"dayOfWeek"`
	TimeWindows        []TimeWindowRow    `json:"timeWindows"`
	Punctuality        PunctualityReport  `json:"punctuality"`
	TimeVariance       TimeVarianceReport `json:"timeVariance"`
	Backload           BackloadReport     `json:"backload"`
}

// BuildReport filters the snapshot to r and runs every reducer over it.
// Payloads are decoded once and shared by the reducers; loads are never modified.
func BuildReport(loads []*load.Load, r DateRange) *Report {
	inRange := FilterByRange(loads, r)
	decoded := Decode(inRange, r.Location())

	return &Report{
		Range:              r,
		Summary:            Summarize(inRange),
		CargoDistribution:  CargoDistribution(inRange),
		StatusDistribution: StatusDistribution(inRange),
		TopRoutes:          TopRoutes(inRange),
		DailyTrend:         DailyTrend(decoded, r),
		WeeklyTrend:        WeeklyTrend(decoded, r),
		MonthlyTrend:       MonthlyTrend(decoded, r),
		DayOfWeek:          DayOfWeekDistribution(decoded),
		TimeWindows:        TimeWindowAnalysis(inRange),
		Punctuality:        BuildPunctualityReport(decoded, r),
		TimeVariance:       AnalyzeTimeVariance(decoded),
		Backload:           BuildBackloadReport(inRange, r),
	}
}

// BuildPunctualityReport runs the punctuality reducers over already decoded loads.
func BuildPunctualityReport(decoded []Decoded, r DateRange) PunctualityReport {
	return PunctualityReport{
		Daily:             DailyPunctuality(decoded, r),
		Weekly:            WeeklyPunctuality(decoded, r),
		Delays:            SummarizeDelays(decoded),
		OriginDelays:      OriginDelayBars(decoded),
		DestinationDelays: DestinationDelayBars(decoded),
	}
}
