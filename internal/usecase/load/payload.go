package load

import (
	"errors"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"

	domainLoad "load-analytics/internal/domain/load"
)

var errPayloadNotObject = errors.New("time payload is not a JSON object")

// payloadLeaf maps a leg event to its key path in the legacy time payload
func payloadLeaf(leg domainLoad.Leg, event domainLoad.Event) []string {
	field := "actualArrival"
	if event == domainLoad.EventDeparture {
		field = "actualDeparture"
	}
	return []string{string(leg), field}
}

// patchActualTime writes at (RFC3339 in loc) into the payload leaf of the leg
// event, or an empty string when at is nil. Other keys are left untouched.
func patchActualTime(raw string, leg domainLoad.Leg, event domainLoad.Event, at *time.Time, loc *time.Location) (string, error) {
	data := []byte(strings.TrimSpace(raw))
	if len(data) == 0 {
		data = []byte("{}")
	}

	if !json.Valid(data) {
		return raw, errPayloadNotObject
	}
	if _, dataType, _, err := jsonparser.Get(data); err != nil || dataType != jsonparser.Object {
		return raw, errPayloadNotObject
	}

	// Replace a leg that is not an object rather than failing the update
	legKey := string(leg)
	if _, dataType, _, err := jsonparser.Get(data, legKey); err == nil && dataType != jsonparser.Object {
		data = jsonparser.Delete(data, legKey)
	}

	value := ""
	if at != nil {
		value = at.In(loc).Format(time.RFC3339)
	}
	quoted, err := json.Marshal(value)
	if err != nil {
		return raw, err
	}

	patched, err := jsonparser.Set(data, quoted, payloadLeaf(leg, event)...)
	if err != nil {
		return raw, err
	}
	return string(patched), nil
}
