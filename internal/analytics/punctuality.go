package analytics

import "time"

// PunctualityRow aggregates leg variances for one calendar bucket.
// An average is nil when no load in the bucket had data for that event.
type PunctualityRow struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`

	// Loads counts every load in the bucket; TimedLoads only those with a decodable payload.
	Loads              int  `json:"loads"`
	TimedLoads         int  `json:"timedLoads"`
	OriginArrivalAvg   *int `json:"originArrivalAvg"`
	OriginDepartureAvg *int `json:"originDepartureAvg"`
	DestArrivalAvg     *int `json:"destArrivalAvg"`
	DestDepartureAvg   *int `json:"destDepartureAvg"`

	// Delay counts are per event: a load late on arrival and departure counts twice.
	OriginDelayCount int `json:"originDelayCount"`
	DestDelayCount   int `json:"destDelayCount"`
}

type varianceMean struct {
	sum, n int
}

func (m *varianceMean) add(v Minutes) {
	if v.Known {
		m.sum += v.Value
		m.n++
	}
}

func (m varianceMean) average() *int {
	if m.n == 0 {
		return nil
	}
	avg := roundHalfUp(float64(m.sum) / float64(m.n))
	return &avg
}

type punctualityAcc struct {
	loads, timed   int
	oa, od, da, dd varianceMean
	originDelays   int
	destDelays     int
}

func (a *punctualityAcc) add(d Decoded) {
	a.loads++
	if d.Window == nil {
		return
	}
	a.timed++

	v := d.Variances
	a.oa.add(v.OriginArrival)
	a.od.add(v.OriginDeparture)
	a.da.add(v.DestinationArrival)
	a.dd.add(v.DestinationDeparture)
	a.originDelays += countDelayed(v.OriginArrival, v.OriginDeparture)
	a.destDelays += countDelayed(v.DestinationArrival, v.DestinationDeparture)
}

func countDelayed(vs ...Minutes) int {
	n := 0
	for _, v := range vs {
		if v.Delayed() {
			n++
		}
	}
	return n
}

// DailyPunctuality has one row per day of r.
func DailyPunctuality(loads []Decoded, r DateRange) []PunctualityRow {
	return punctuality(loads, r, dayGrain)
}

// WeeklyPunctuality has one row per Monday-start week overlapping r.
func WeeklyPunctuality(loads []Decoded, r DateRange) []PunctualityRow {
	return punctuality(loads, r, weekGrain)
}

func punctuality(loads []Decoded, r DateRange, g bucketGrain) []PunctualityRow {
	bs := g.buckets(r)
	accs := make([]punctualityAcc, len(bs))

	idx := g.index(bs)
	loc := r.Location()
	for _, d := range loads {
		if !d.HasDate {
			continue
		}
		if i, ok := idx[g.keyOf(d.Date, loc)]; ok {
			accs[i].add(d)
		}
	}

	rows := make([]PunctualityRow, len(bs))
	for i, b := range bs {
		acc := accs[i]
		rows[i] = PunctualityRow{
			Label:              b.Label,
			Start:              b.Start,
			Loads:              acc.loads,
			TimedLoads:         acc.timed,
			OriginArrivalAvg:   acc.oa.average(),
			OriginDepartureAvg: acc.od.average(),
			DestArrivalAvg:     acc.da.average(),
			DestDepartureAvg:   acc.dd.average(),
			OriginDelayCount:   acc.originDelays,
			DestDelayCount:     acc.destDelays,
		}
	}
	return rows
}
