package analytics

import "time"

// RangeName is one of the named report ranges
type RangeName string

const (
	RangeThreeMonths  RangeName = "3months"
	RangeSixMonths    RangeName = "6months"
	RangeTwelveMonths RangeName = "12months"
)

var rangeMonths = map[RangeName]int{
	RangeThreeMonths:  3,
	RangeSixMonths:    6,
	RangeTwelveMonths: 12,
}

// DateRange is an inclusive [Start, End] window. Its location (End's) is the
// location used to read zone-less dates and clock tokens.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Location returns the location reports are computed in.
func (r DateRange) Location() *time.Location {
	return r.End.Location()
}

// ResolveRange turns a named range into [now - N months, now].
func ResolveRange(name RangeName, now time.Time) (DateRange, bool) {
	months, ok := rangeMonths[name]
	if !ok {
		return DateRange{}, false
	}
	return DateRange{Start: subMonths(now, months), End: now}, true
}

// subMonths moves back n calendar months, clamping the day to the target month's length.
func subMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(target); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday that starts t's week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// bucketGrain describes a calendar interval used for trend rows
type bucketGrain struct {
	start func(time.Time) time.Time
	next  func(time.Time) time.Time
	key   string // time layout of the bucket key
	label string // time layout of the row label
}

var (
	dayGrain = bucketGrain{
		start: startOfDay,
		next:  func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
		key:   "2006-01-02",
		label: "2006-01-02",
	}
	weekGrain = bucketGrain{
		start: startOfWeek,
		next:  func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
		key:   "2006-01-02",
		label: "Jan 2",
	}
	monthGrain = bucketGrain{
		start: startOfMonth,
		next:  func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
		key:   "2006-01",
		label: "Jan 2006",
	}
)

// bucket is one calendar interval of a trend
type bucket struct {
	Start time.Time
	Label string
}

// buckets enumerates every interval that overlaps r, in chronological order,
// so empty intervals still produce rows.
func (g bucketGrain) buckets(r DateRange) []bucket {
	loc := r.Location()
	var out []bucket
	for b := g.start(r.Start.In(loc)); !b.After(r.End); b = g.next(b) {
		out = append(out, bucket{Start: b, Label: b.Format(g.label)})
	}
	return out
}

// keyOf returns the bucket key for t in loc.
func (g bucketGrain) keyOf(t time.Time, loc *time.Location) string {
	return g.start(t.In(loc)).Format(g.key)
}

// index maps bucket keys to positions in the slice returned by buckets.
func (g bucketGrain) index(bs []bucket) map[string]int {
	idx := make(map[string]int, len(bs))
	for i, b := range bs {
		idx[b.Start.Format(g.key)] = i
	}
	return idx
}
