package analytics

import (
	"time"

	"load-analytics/internal/domain/load"
)

// RouteSeparator joins the two ends of a route key
const RouteSeparator = " → "

const topRoutesLimit = 8

// DistributionRow is one slice of a categorical distribution
type DistributionRow struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}

// RouteRow counts loads on one origin → destination route
type RouteRow struct {
	Route string `json:"route"`
	Loads int    `json:"loads"`
}

// DayOfWeekRow counts loads by weekday of the loading date
type DayOfWeekRow struct {
	Day   string `json:"day"`
	Loads int    `json:"loads"`
}

// TimeWindowRow counts loads per daypart category
type TimeWindowRow struct {
	TimeWindow string `json:"timeWindow"`
	Count      int    `json:"count"`
}

// SummaryStats are the headline totals of a report
type SummaryStats struct {
	TotalLoads     int `json:"totalLoads"`
	DeliveredCount int `json:"deliveredCount"`
	DeliveryRate   int `json:"deliveryRate"`
	UniqueRoutes   int `json:"uniqueRoutes"`
}

// countDistribution counts keys in first-seen order and sorts by count.
func countDistribution(keys []string, name func(string) string, fill func(string) string) []DistributionRow {
	counts := newGrouped[int]()
	for _, k := range keys {
		*counts.at(k)++
	}

	rows := make([]DistributionRow, 0, counts.size())
	counts.each(func(key string, n *int) {
		rows = append(rows, DistributionRow{Name: name(key), Value: *n, Fill: fill(key)})
	})
	sortDesc(rows, func(r DistributionRow) int { return r.Value })
	return rows
}

func identity(s string) string { return s }

func statusName(s string) string { return StatusDisplayName(load.Status(s)) }

func statusFill(s string) string { return colorOf(statusColors, load.Status(s)) }

// CargoDistribution counts loads per cargo type.
func CargoDistribution(loads []*load.Load) []DistributionRow {
	keys := make([]string, len(loads))
	for i, l := range loads {
		keys[i] = l.CargoType
	}
	return countDistribution(keys, identity, func(k string) string { return colorOf(cargoColors, k) })
}

// StatusDistribution counts loads per status, labelled for display.
func StatusDistribution(loads []*load.Load) []DistributionRow {
	keys := make([]string, len(loads))
	for i, l := range loads {
		keys[i] = string(l.Status)
	}
	return countDistribution(keys, statusName, statusFill)
}

// TopRoutes ranks origin → destination routes by load count.
func TopRoutes(loads []*load.Load) []RouteRow {
	routes := newGrouped[int]()
	for _, l := range loads {
		*routes.at(l.Origin + RouteSeparator + l.Destination)++
	}

	rows := make([]RouteRow, 0, routes.size())
	routes.each(func(route string, n *int) {
		rows = append(rows, RouteRow{Route: route, Loads: *n})
	})
	sortDesc(rows, func(r RouteRow) int { return r.Loads })
	return topN(rows, topRoutesLimit)
}

// TimeWindowAnalysis counts loads per daypart of their time-window label.
func TimeWindowAnalysis(loads []*load.Load) []TimeWindowRow {
	windows := newGrouped[int]()
	for _, l := range loads {
		*windows.at(CategorizeTimeWindow(l.TimeWindow))++
	}

	rows := make([]TimeWindowRow, 0, windows.size())
	windows.each(func(window string, n *int) {
		rows = append(rows, TimeWindowRow{TimeWindow: window, Count: *n})
	})
	sortDesc(rows, func(r TimeWindowRow) int { return r.Count })
	return rows
}

// DayOfWeekDistribution always returns seven rows, Sunday first.
func DayOfWeekDistribution(loads []Decoded) []DayOfWeekRow {
	var counts [7]int
	for _, d := range loads {
		if d.HasDate {
			counts[d.Date.Weekday()]++
		}
	}

	rows := make([]DayOfWeekRow, 7)
	for i := range rows {
		day := time.Weekday(i).String()
		rows[i] = DayOfWeekRow{Day: day[:3], Loads: counts[i]}
	}
	return rows
}

// Summarize computes the headline totals.
func Summarize(loads []*load.Load) SummaryStats {
	stats := SummaryStats{TotalLoads: len(loads)}
	routes := make(map[[2]string]struct{})
	for _, l := range loads {
		if l.Status == load.StatusDelivered {
			stats.DeliveredCount++
		}
		routes[[2]string{l.Origin, l.Destination}] = struct{}{}
	}
	stats.DeliveryRate = percent(stats.DeliveredCount, stats.TotalLoads)
	stats.UniqueRoutes = len(routes)
	return stats
}
