package analytics

import (
	"regexp"
	"strconv"
)

// Daypart categories for time-window labels
const (
	DaypartUnspecified  = "Unspecified"
	DaypartEarlyMorning = "Early Morning"
	DaypartMidMorning   = "Mid Morning"
	DaypartMidday       = "Midday"
	DaypartAfternoon    = "Afternoon"
	DaypartEvening      = "Evening"
	DaypartOther        = "Other"
)

// startHourPattern finds the first clock-like run, e.g. "06:00 AM" in "06:00 AM - 02:00 PM".
var startHourPattern = regexp.MustCompile(`(?i)(\d{1,2}):?\d{0,2}\s*(AM|PM)?`)

// daypartBands are half-open [from, to) hour ranges.
var daypartBands = []struct {
	from, to int
	label    string
}{
	{5, 8, DaypartEarlyMorning},
	{8, 11, DaypartMidMorning},
	{11, 14, DaypartMidday},
	{14, 17, DaypartAfternoon},
	{17, 20, DaypartEvening},
}

// CategorizeTimeWindow buckets a time-window label by its start hour.
// Labels without any digits are returned unchanged.
func CategorizeTimeWindow(label string) string {
	if label == "" || label == DaypartUnspecified {
		return DaypartUnspecified
	}

	m := startHourPattern.FindStringSubmatch(label)
	if m == nil {
		return label
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return label
	}
	hour = to24Hour(hour, m[2])

	for _, band := range daypartBands {
		if hour >= band.from && hour < band.to {
			return band.label
		}
	}
	return DaypartOther
}
