package analytics

import (
	"time"

	"github.com/google/uuid"

	"load-analytics/internal/domain/load"
)

// Packaging type names
const (
	PackagingBins    = "Bins"
	PackagingCrates  = "Crates"
	PackagingPallets = "Pallets"
)

const (
	unnamedBackloadDestination = "Other"
	topBackloadRoutes          = 8
)

// BackloadMovement is a return movement of empty packaging recorded on a load
type BackloadMovement struct {
	LoadID              uuid.UUID   `json:"loadId"`
	LoadNumber          string      `json:"loadNumber"`
	Origin              string      `json:"origin"`
	Destination         string      `json:"destination"`
	BackloadDestination string      `json:"backloadDestination"`
	CargoType           string      `json:"cargoType"`
	OffloadingDate      string      `json:"offloadingDate"`
	Quantities          Quantities  `json:"quantities"`
	Status              load.Status `json:"status"`
	Driver              string      `json:"driver,omitempty"`
	Notes               string      `json:"notes,omitempty"`
}

// BackloadDestinationRow totals movements and packaging per backload destination
type BackloadDestinationRow struct {
	Destination    string `json:"destination"`
	TotalMovements int    `json:"totalMovements"`
	Quantities
	Fill string `json:"fill"`
}

// BackloadWeekRow is one week of the backload trend, keyed by offloading date
type BackloadWeekRow struct {
	Label     string    `json:"label"`
	Start     time.Time `json:"start"`
	Movements int       `json:"movements"`
	Quantities
}

// BackloadRouteRow totals movements on a destination → backload destination route
type BackloadRouteRow struct {
	Route string `json:"route"`
	Count int    `json:"count"`
	Quantities
	TotalPackaging int `json:"totalPackaging"`
}

// BackloadSummary holds the backload headline totals
type BackloadSummary struct {
	TotalMovements     int `json:"totalMovements"`
	TotalBins          int `json:"totalBins"`
	TotalCrates        int `json:"totalCrates"`
	TotalPallets       int `json:"totalPallets"`
	TotalPackaging     int `json:"totalPackaging"`
	DeliveredCount     int `json:"deliveredCount"`
	DeliveryRate       int `json:"deliveryRate"`
	UniqueDestinations int `json:"uniqueDestinations"`
}

// BackloadReport is the full backload report family
type BackloadReport struct {
	Movements    []BackloadMovement       `json:"movements"`
	Destinations []BackloadDestinationRow `json:"destinations"`
	Packaging    []DistributionRow        `json:"packaging"`
	CargoTypes   []DistributionRow        `json:"cargoTypes"`
	WeeklyTrend  []BackloadWeekRow        `json:"weeklyTrend"`
	Statuses     []DistributionRow        `json:"statuses"`
	Routes       []BackloadRouteRow       `json:"routes"`
	Summary      BackloadSummary          `json:"summary"`
}

// ExtractBackloadMovements emits one movement per load carrying an enabled backload.
func ExtractBackloadMovements(loads []*load.Load) []BackloadMovement {
	movements := []BackloadMovement{}
	for _, l := range loads {
		info := DecodeBackload(l.Times)
		if info == nil {
			continue
		}
		movements = append(movements, BackloadMovement{
			LoadID:              l.ID,
			LoadNumber:          l.LoadNumber,
			Origin:              l.Origin,
			Destination:         l.Destination,
			BackloadDestination: info.Destination,
			CargoType:           info.CargoType,
			OffloadingDate:      info.OffloadingDate,
			Quantities:          info.Quantities,
			Status:              l.Status,
			Driver:              l.Driver(),
			Notes:               info.Notes,
		})
	}
	return movements
}

// BackloadDestinations totals movements per backload destination; movements
// without a destination are grouped under "Other".
func BackloadDestinations(movements []BackloadMovement) []BackloadDestinationRow {
	byDestination := newGrouped[BackloadDestinationRow]()
	for _, m := range movements {
		name := m.BackloadDestination
		if name == "" {
			name = unnamedBackloadDestination
		}
		row := byDestination.at(name)
		row.TotalMovements++
		row.Quantities.add(m.Quantities)
	}

	rows := make([]BackloadDestinationRow, 0, byDestination.size())
	byDestination.each(func(name string, row *BackloadDestinationRow) {
		row.Destination = name
		row.Fill = colorOf(backloadDestinationColors, name)
		rows = append(rows, *row)
	})
	sortDesc(rows, func(r BackloadDestinationRow) int { return r.TotalMovements })
	return rows
}

// BackloadPackaging totals packaging by type, omitting types with no units.
func BackloadPackaging(movements []BackloadMovement) []DistributionRow {
	var total Quantities
	for _, m := range movements {
		total.add(m.Quantities)
	}

	rows := []DistributionRow{}
	for _, p := range []struct {
		name  string
		value int
	}{
		{PackagingBins, total.Bins},
		{PackagingCrates, total.Crates},
		{PackagingPallets, total.Pallets},
	} {
		if p.value > 0 {
			rows = append(rows, DistributionRow{Name: p.name, Value: p.value, Fill: colorOf(packagingColors, p.name)})
		}
	}
	sortDesc(rows, func(r DistributionRow) int { return r.Value })
	return rows
}

// BackloadCargoTypes counts movements per backload cargo type.
func BackloadCargoTypes(movements []BackloadMovement) []DistributionRow {
	keys := make([]string, len(movements))
	for i, m := range movements {
		keys[i] = m.CargoType
	}
	return countDistribution(keys, identity, func(k string) string { return colorOf(backloadDestinationColors, k) })
}

// BackloadStatuses counts movements per load status.
func BackloadStatuses(movements []BackloadMovement) []DistributionRow {
	keys := make([]string, len(movements))
	for i, m := range movements {
		keys[i] = string(m.Status)
	}
	return countDistribution(keys, statusName, statusFill)
}

// BackloadWeeklyTrend buckets movements by their own offloading date, not the
// load's loading date. Movements with an unparseable date fall in no week.
func BackloadWeeklyTrend(movements []BackloadMovement, r DateRange) []BackloadWeekRow {
	bs := weekGrain.buckets(r)
	rows := make([]BackloadWeekRow, len(bs))
	for i, b := range bs {
		rows[i] = BackloadWeekRow{Label: b.Label, Start: b.Start}
	}

	idx := weekGrain.index(bs)
	loc := r.Location()
	for _, m := range movements {
		date, ok := ParseDate(m.OffloadingDate, loc)
		if !ok {
			continue
		}
		if i, ok := idx[weekGrain.keyOf(date, loc)]; ok {
			rows[i].Movements++
			rows[i].Quantities.add(m.Quantities)
		}
	}
	return rows
}

// BackloadRoutes ranks destination → backload destination routes by movement count.
func BackloadRoutes(movements []BackloadMovement) []BackloadRouteRow {
	routes := newGrouped[BackloadRouteRow]()
	for _, m := range movements {
		row := routes.at(m.Destination + RouteSeparator + m.BackloadDestination)
		row.Count++
		row.Quantities.add(m.Quantities)
	}

	rows := make([]BackloadRouteRow, 0, routes.size())
	routes.each(func(route string, row *BackloadRouteRow) {
		row.Route = route
		row.TotalPackaging = row.Quantities.Total()
		rows = append(rows, *row)
	})
	sortDesc(rows, func(r BackloadRouteRow) int { return r.Count })
	return topN(rows, topBackloadRoutes)
}

// SummarizeBackloads computes the backload headline totals.
func SummarizeBackloads(movements []BackloadMovement) BackloadSummary {
	var total Quantities
	summary := BackloadSummary{TotalMovements: len(movements)}
	destinations := make(map[string]struct{})
	for _, m := range movements {
		total.add(m.Quantities)
		if m.Status == load.StatusDelivered {
			summary.DeliveredCount++
		}
		destinations[m.BackloadDestination] = struct{}{}
	}

	summary.TotalBins = total.Bins
	summary.TotalCrates = total.Crates
	summary.TotalPallets = total.Pallets
	summary.TotalPackaging = total.Total()
	summary.DeliveryRate = percent(summary.DeliveredCount, summary.TotalMovements)
	summary.UniqueDestinations = len(destinations)
	return summary
}

// BuildBackloadReport runs every backload reducer over the loads.
func BuildBackloadReport(loads []*load.Load, r DateRange) BackloadReport {
	movements := ExtractBackloadMovements(loads)
	return BackloadReport{
		Movements:    movements,
		Destinations: BackloadDestinations(movements),
		Packaging:    BackloadPackaging(movements),
		CargoTypes:   BackloadCargoTypes(movements),
		WeeklyTrend:  BackloadWeeklyTrend(movements, r),
		Statuses:     BackloadStatuses(movements),
		Routes:       BackloadRoutes(movements),
		Summary:      SummarizeBackloads(movements),
	}
}
