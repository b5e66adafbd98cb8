package analytics

import "load-analytics/internal/domain/load"

const topPerformanceLocations = 8

// VarianceBandRow is one punctuality band of delivered loads
type VarianceBandRow struct {
	Category   PunctualityCategory `json:"category"`
	Count      int                 `json:"count"`
	Percentage int                 `json:"percentage"`
	Fill       string              `json:"fill"`
}

// LocationPerformance summarises destination arrival variance at one destination
type LocationPerformance struct {
	Location    string `json:"location"`
	AvgVariance int    `json:"avgVariance"`
	OnTimeCount int    `json:"onTimeCount"`
	LateCount   int    `json:"lateCount"`
	EarlyCount  int    `json:"earlyCount"`
	TotalLoads  int    `json:"totalLoads"`
}

// TimeVarianceReport analyses planned vs actual destination arrival of delivered loads
type TimeVarianceReport struct {
	Distribution      []VarianceBandRow     `json:"distribution"`
	OnTimeRate        int                   `json:"onTimeRate"`
	AvgDestVariance   int                   `json:"avgDestVariance"`
	AvgOriginVariance int                   `json:"avgOriginVariance"`
	TotalAnalyzed     int                   `json:"totalAnalyzed"`
	NoDataCount       int                   `json:"noDataCount"`
	RoutePerformance  []LocationPerformance `json:"routePerformance"`
	LateCount         int                   `json:"lateCount"`
	EarlyCount        int                   `json:"earlyCount"`
	OnTimeCount       int                   `json:"onTimeCount"`
}

// bandOrder is the display order of the distribution rows.
var bandOrder = []PunctualityCategory{CategoryOnTime, CategoryEarly, CategorySlightlyLate, CategoryLate}

// AnalyzeTimeVariance classifies the destination arrival variance of delivered
// loads. Loads without a decodable payload or destination arrival data are only
// counted in NoDataCount. Band percentages are rounded independently and need
// not add up to 100.
func AnalyzeTimeVariance(loads []Decoded) TimeVarianceReport {
	counts := make(map[PunctualityCategory]int, len(bandOrder))
	var dest, origin varianceMean
	noData := 0
	byLocation := newGrouped[[]int]()

	for _, d := range loads {
		if d.Load.Status != load.StatusDelivered {
			continue
		}
		if d.Window == nil || !d.Variances.DestinationArrival.Known {
			noData++
			continue
		}

		v := d.Variances.DestinationArrival
		counts[Categorize(v.Value)]++
		dest.add(v)
		origin.add(d.Variances.OriginDeparture)

		variances := byLocation.at(d.Load.Destination)
		*variances = append(*variances, v.Value)
	}

	total := dest.n
	report := TimeVarianceReport{
		Distribution:      []VarianceBandRow{},
		OnTimeRate:        percent(counts[CategoryOnTime]+counts[CategoryEarly], total),
		AvgDestVariance:   averageOrZero(dest),
		AvgOriginVariance: averageOrZero(origin),
		TotalAnalyzed:     total,
		NoDataCount:       noData,
		RoutePerformance:  locationPerformance(byLocation),
		LateCount:         counts[CategorySlightlyLate] + counts[CategoryLate],
		EarlyCount:        counts[CategoryEarly],
		OnTimeCount:       counts[CategoryOnTime],
	}

	for _, category := range bandOrder {
		if counts[category] == 0 {
			continue
		}
		report.Distribution = append(report.Distribution, VarianceBandRow{
			Category:   category,
			Count:      counts[category],
			Percentage: percent(counts[category], total),
			Fill:       colorOf(categoryColors, category),
		})
	}
	return report
}

func averageOrZero(m varianceMean) int {
	if avg := m.average(); avg != nil {
		return *avg
	}
	return 0
}

// locationPerformance uses an inclusive -5..15 on-time window and a strict
// "> 15" late rule, unlike the band classification where -5 is already Early.
func locationPerformance(byLocation *grouped[[]int]) []LocationPerformance {
	rows := make([]LocationPerformance, 0, byLocation.size())
	byLocation.each(func(location string, variances *[]int) {
		row := LocationPerformance{Location: location, TotalLoads: len(*variances)}
		var mean varianceMean
		for _, v := range *variances {
			mean.add(Minutes{Value: v, Known: true})
			switch {
			case v < EarlyThresholdMinutes:
				row.EarlyCount++
			case v > DelayThresholdMinutes:
				row.LateCount++
			default:
				row.OnTimeCount++
			}
		}
		row.AvgVariance = averageOrZero(mean)
		rows = append(rows, row)
	})
	sortDesc(rows, func(r LocationPerformance) int { return r.TotalLoads })
	return topN(rows, topPerformanceLocations)
}
