package analytics

const (
	topDelayLocations = 5
	delayBarsLimit    = 10
)

// LocationDelay is the total delay minutes accumulated at one location
type LocationDelay struct {
	Location     string `json:"location"`
	DelayMinutes int    `json:"delayMinutes"`
}

// DelaySummary lists where delays occurred, by origin and destination name
type DelaySummary struct {
	TopOrigins      []LocationDelay `json:"topOrigins"`
	TopDestinations []LocationDelay `json:"topDestinations"`
}

// DelayBarRow counts late events at one location
type DelayBarRow struct {
	Location       string `json:"location"`
	ArrivalsLate   int    `json:"arrLate"`
	DeparturesLate int    `json:"depLate"`
	TotalLate      int    `json:"totalLate"`
}

// SummarizeDelays sums the minutes of every delay event per location and keeps the top five.
func SummarizeDelays(loads []Decoded) DelaySummary {
	origins := newGrouped[int]()
	destinations := newGrouped[int]()

	for _, d := range loads {
		if d.Window == nil {
			continue
		}
		v := d.Variances
		addDelayMinutes(origins, d.Load.Origin, v.OriginArrival, v.OriginDeparture)
		addDelayMinutes(destinations, d.Load.Destination, v.DestinationArrival, v.DestinationDeparture)
	}

	return DelaySummary{
		TopOrigins:      rankDelays(origins),
		TopDestinations: rankDelays(destinations),
	}
}

func addDelayMinutes(g *grouped[int], location string, vs ...Minutes) {
	for _, v := range vs {
		if v.Delayed() {
			*g.at(location) += v.Value
		}
	}
}

func rankDelays(g *grouped[int]) []LocationDelay {
	rows := make([]LocationDelay, 0, g.size())
	g.each(func(location string, minutes *int) {
		rows = append(rows, LocationDelay{Location: location, DelayMinutes: *minutes})
	})
	sortDesc(rows, func(r LocationDelay) int { return r.DelayMinutes })
	return topN(rows, topDelayLocations)
}

// OriginDelayBars counts late arrivals and departures per origin.
func OriginDelayBars(loads []Decoded) []DelayBarRow {
	return delayBars(loads, func(d Decoded) (string, Minutes, Minutes) {
		return d.Load.Origin, d.Variances.OriginArrival, d.Variances.OriginDeparture
	})
}

// DestinationDelayBars counts late arrivals and departures per destination.
func DestinationDelayBars(loads []Decoded) []DelayBarRow {
	return delayBars(loads, func(d Decoded) (string, Minutes, Minutes) {
		return d.Load.Destination, d.Variances.DestinationArrival, d.Variances.DestinationDeparture
	})
}

// delayBars creates a row for every location seen on a load with a decodable
// payload, even when that location never ran late.
func delayBars(loads []Decoded, leg func(Decoded) (string, Minutes, Minutes)) []DelayBarRow {
	byLocation := newGrouped[DelayBarRow]()
	for _, d := range loads {
		if d.Window == nil {
			continue
		}
		location, arrival, departure := leg(d)
		row := byLocation.at(location)
		if arrival.Delayed() {
			row.ArrivalsLate++
		}
		if departure.Delayed() {
			row.DeparturesLate++
		}
	}

	rows := make([]DelayBarRow, 0, byLocation.size())
	byLocation.each(func(location string, row *DelayBarRow) {
		row.Location = location
		row.TotalLate = row.ArrivalsLate + row.DeparturesLate
		rows = append(rows, *row)
	})
	sortDesc(rows, func(r DelayBarRow) int { return r.TotalLate })
	return topN(rows, delayBarsLimit)
}
