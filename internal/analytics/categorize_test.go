package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeTimeWindow(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"", DaypartUnspecified},
		{"Unspecified", DaypartUnspecified},
		{"2:30 PM - 5:00 PM", DaypartAfternoon},
		{"06:00 AM - 02:00 PM", DaypartEarlyMorning},
		{"08:00 - 10:00", DaypartMidMorning},
		{"11:00", DaypartMidday},
		{"12 PM", DaypartMidday},
		{"5:00 PM - 8:00 PM", DaypartEvening},
		{"12:00 AM", DaypartOther},
		{"22:00 - 02:00", DaypartOther},
		{"Flexible", "Flexible"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeTimeWindow(tt.label))
		})
	}
}
