package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain clock", "08:30", "08:30"},
		{"surrounding whitespace", "  2026-03-10T14:20 \n", "2026-03-10T14:20"},
		{"html tags", "<b>8:00 PM</b>", "8:00 PM"},
		{"control characters", "3months\x00\x07", "3months"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeToken(tt.input))
		})
	}
}
