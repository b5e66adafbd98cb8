package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeToken(t *testing.T) {
	ref := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  time.Time
	}{
		{"24h clock", "08:00", time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"single digit hour", "7:05", time.Date(2026, 3, 10, 7, 5, 0, 0, time.UTC)},
		{"12h pm lower case", "8:15 pm", time.Date(2026, 3, 10, 20, 15, 0, 0, time.UTC)},
		{"12h no space", "9:30AM", time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"midnight", "12:00 AM", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"noon", "12:30 PM", time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)},
		{"hour rolls over", "25:00", time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)},
		{"rfc3339", "2026-03-09T22:45:00Z", time.Date(2026, 3, 9, 22, 45, 0, 0, time.UTC)},
		{"zone-less timestamp", "2026-03-10T06:15", time.Date(2026, 3, 10, 6, 15, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeToken(tt.token, ref)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseTimeToken_Rejects(t *testing.T) {
	ref := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, token := range []string{"", "later", "8am", "08:00 XM", "10/03/2026"} {
		_, ok := ParseTimeToken(token, ref)
		assert.False(t, ok, "token %q", token)
	}
}

func TestParseTimeToken_UsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	ref := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	got, ok := ParseTimeToken("2026-03-10 09:00", ref)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2026-02-28", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("", time.UTC)
	assert.False(t, ok)

	_, ok = ParseDate("28 Feb", time.UTC)
	assert.False(t, ok)
}
