package analytics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clock24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Pattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
)

// isoLayouts are tried in order once the clock patterns have failed.
// Zone-less layouts are interpreted in the reference location.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimeToken converts a time-of-day or ISO timestamp token into an instant.
// Clock tokens ("08:00", "8:00 pm") are anchored to midnight of ref in ref's location.
// Out-of-range clock values roll over into the next hour or day.
func ParseTimeToken(token string, ref time.Time) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	if m := clock24Pattern.FindStringSubmatch(token); m != nil {
		hours, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return atClock(ref, hours, mins), true
	}

	if m := clock12Pattern.FindStringSubmatch(token); m != nil {
		hours, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		hours = to24Hour(hours, m[3])
		return atClock(ref, hours, mins), true
	}

	return parseISO(token, ref.Location())
}

// ParseDate parses an ISO date or timestamp as stored on a load.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	return parseISO(value, loc)
}

func parseISO(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func atClock(ref time.Time, hours, mins int) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, hours, mins, 0, 0, ref.Location())
}

// to24Hour applies an AM/PM period to a 12-hour clock value.
// An empty period leaves the hour untouched.
func to24Hour(hour int, period string) int {
	switch strings.ToUpper(period) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}
