package analytics

import (
	"time"

	"load-analytics/internal/domain/load"
)

// Decoded is a load with its loading date and time payload decoded once, so
// reducers do not repeat the work.
type Decoded struct {
	Load *load.Load

	// Date is the parsed loading date; HasDate is false when it did not parse.
	Date    time.Time
	HasDate bool

	// Window is nil when the payload is missing or malformed.
	Window *TimeWindow

	// Variances is only meaningful when Window is non-nil.
	Variances LegVariances
}

// Decode prepares loads for the reducers. Clock tokens in a payload are
// anchored to the load's own loading date.
func Decode(loads []*load.Load, loc *time.Location) []Decoded {
	out := make([]Decoded, 0, len(loads))
	for _, l := range loads {
		d := Decoded{Load: l}
		d.Date, d.HasDate = ParseDate(l.LoadingDate, loc)

		ref := time.Time{}.In(loc)
		if d.HasDate {
			ref = startOfDay(d.Date)
		}

		if w := DecodeTimeWindow(l.Times); w != nil {
			d.Window = w
			d.Variances = legVariances(w, ref)
		}
		out = append(out, d)
	}
	return out
}

// FilterByRange keeps loads whose loading date parses and lies within r.
// The input slice is not modified.
func FilterByRange(loads []*load.Load, r DateRange) []*load.Load {
	loc := r.Location()
	out := make([]*load.Load, 0, len(loads))
	for _, l := range loads {
		date, ok := ParseDate(l.LoadingDate, loc)
		if !ok || !r.Contains(date) {
			continue
		}
		out = append(out, l)
	}
	return out
}
