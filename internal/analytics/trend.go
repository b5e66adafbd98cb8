package analytics

import (
	"time"

	"load-analytics/internal/domain/load"
)

// StatusCounts splits a load count by status. Unknown statuses only count toward Total.
type StatusCounts struct {
	Scheduled int `json:"scheduled"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
	Pending   int `json:"pending"`
	Total     int `json:"total"`
}

func (c *StatusCounts) add(status load.Status) {
	switch status {
	case load.StatusScheduled:
		c.Scheduled++
	case load.StatusInTransit:
		c.InTransit++
	case load.StatusDelivered:
		c.Delivered++
	case load.StatusPending:
		c.Pending++
	}
	c.Total++
}

// TrendRow is one calendar bucket of a load trend
type TrendRow struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	StatusCounts
}

// DailyTrend has one row per day of r.
func DailyTrend(loads []Decoded, r DateRange) []TrendRow {
	return statusTrend(loads, r, dayGrain)
}

// WeeklyTrend has one row per Monday-start week overlapping r.
func WeeklyTrend(loads []Decoded, r DateRange) []TrendRow {
	return statusTrend(loads, r, weekGrain)
}

// MonthlyTrend has one row per calendar month overlapping r.
func MonthlyTrend(loads []Decoded, r DateRange) []TrendRow {
	return statusTrend(loads, r, monthGrain)
}

func statusTrend(loads []Decoded, r DateRange, g bucketGrain) []TrendRow {
	bs := g.buckets(r)
	rows := make([]TrendRow, len(bs))
	for i, b := range bs {
		rows[i] = TrendRow{Label: b.Label, Start: b.Start}
	}

	idx := g.index(bs)
	loc := r.Location()
	for _, d := range loads {
		if !d.HasDate {
			continue
		}
		if i, ok := idx[g.keyOf(d.Date, loc)]; ok {
			rows[i].add(d.Load.Status)
		}
	}
	return rows
}
