package load

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-analytics/internal/analytics"
	domainLoad "load-analytics/internal/domain/load"
	"load-analytics/pkg/utils"
)

func TestPatchActualTime(t *testing.T) {
	at := time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)

	t.Run("empty payload", func(t *testing.T) {
		patched, err := patchActualTime("", domainLoad.LegOrigin, domainLoad.EventDeparture, &at, time.UTC)
		require.NoError(t, err)

		window := analytics.DecodeTimeWindow(patched)
		require.NotNil(t, window)
		assert.Equal(t, "2026-03-10T08:15:00Z", window.Origin.ActualDeparture)
	})

	t.Run("replaces existing leaf", func(t *testing.T) {
		raw := `{"destination":{"plannedArrival":"14:00","actualArrival":"14:30"},"backload":{"enabled":true}}`
		patched, err := patchActualTime(raw, domainLoad.LegDestination, domainLoad.EventArrival, &at, time.UTC)
		require.NoError(t, err)

		window := analytics.DecodeTimeWindow(patched)
		require.NotNil(t, window)
		assert.Equal(t, "2026-03-10T08:15:00Z", window.Destination.ActualArrival)
		assert.Equal(t, "14:00", window.Destination.PlannedArrival)
		assert.NotNil(t, analytics.DecodeBackload(patched))
	})

	t.Run("clears leaf", func(t *testing.T) {
		raw := `{"origin":{"actualArrival":"06:10"}}`
		patched, err := patchActualTime(raw, domainLoad.LegOrigin, domainLoad.EventArrival, nil, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "", analytics.DecodeTimeWindow(patched).Origin.ActualArrival)
	})

	t.Run("formats in location", func(t *testing.T) {
		loc := time.FixedZone("SAST", 2*60*60)
		patched, err := patchActualTime("{}", domainLoad.LegOrigin, domainLoad.EventArrival, &at, loc)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10T10:15:00+02:00", analytics.DecodeTimeWindow(patched).Origin.ActualArrival)
	})

	t.Run("malformed payload is left untouched", func(t *testing.T) {
		for _, raw := range []string{`{"origin":`, `[1,2]`, `"text"`} {
			patched, err := patchActualTime(raw, domainLoad.LegOrigin, domainLoad.EventArrival, &at, time.UTC)
			assert.ErrorIs(t, err, errPayloadNotObject, raw)
			assert.Equal(t, raw, patched)
		}
	})
}

func TestPayloadLeaf(t *testing.T) {
	assert.Equal(t, []string{"origin", "actualArrival"}, payloadLeaf(domainLoad.LegOrigin, domainLoad.EventArrival))
	assert.Equal(t, []string{"destination", "actualDeparture"}, payloadLeaf(domainLoad.LegDestination, domainLoad.EventDeparture))
}

func TestValidateLoadTimeRule(t *testing.T) {
	valid := []string{"", "  ", "06:20", "6:30 pm", "2026-03-10T14:45", "2026-03-10T14:45:00+02:00"}
	for _, v := range valid {
		req := &UpdateActualTimesRequest{LoadingArrival: &ActualTimeInput{Time: strPtr(v)}}
		assert.NoError(t, utils.ValidateStruct(req), v)
	}

	invalid := []string{"tomorrow", "25/03/2026", "6h30"}
	for _, v := range invalid {
		req := &UpdateActualTimesRequest{OffloadingDeparture: &ActualTimeInput{Time: strPtr(v)}}
		err := utils.ValidateStruct(req)
		require.Error(t, err, v)
		assert.Contains(t, utils.ValidationMessage(err), "actual_offloading_departure.time: failed load_time")
	}
}
