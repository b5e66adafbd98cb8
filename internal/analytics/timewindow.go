package analytics

import (
	"math"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
)

// LegTimes holds the planned and actual times of one leg. Every field is
// present after decoding; missing values are empty strings.
type LegTimes struct {
	PlannedArrival   string `json:"plannedArrival"`
	PlannedDeparture string `json:"plannedDeparture"`
	ActualArrival    string `json:"actualArrival"`
	ActualDeparture  string `json:"actualDeparture"`
}

// TimeWindow is the decoded time payload of a load
type TimeWindow struct {
	Origin      LegTimes `json:"origin"`
	Destination LegTimes `json:"destination"`
}

// Quantities counts returned packaging by type
type Quantities struct {
	Bins    int `json:"bins"`
	Crates  int `json:"crates"`
	Pallets int `json:"pallets"`
}

// Total returns the packaging count across all types
func (q Quantities) Total() int {
	return q.Bins + q.Crates + q.Pallets
}

func (q *Quantities) add(other Quantities) {
	q.Bins += other.Bins
	q.Crates += other.Crates
	q.Pallets += other.Pallets
}

// BackloadInfo is the decoded backload sub-payload
type BackloadInfo struct {
	Enabled        bool       `json:"enabled"`
	Destination    string     `json:"destination"`
	CargoType      string     `json:"cargoType"`
	OffloadingDate string     `json:"offloadingDate"`
	Quantities     Quantities `json:"quantities"`
	Notes          string     `json:"notes,omitempty"`
}

// DecodeTimeWindow decodes the legacy time payload. It returns nil when raw is
// not a JSON object; it never panics.
func DecodeTimeWindow(raw string) *TimeWindow {
	data, ok := payloadObject(raw)
	if !ok {
		return nil
	}

	return &TimeWindow{
		Origin:      decodeLeg(data, "origin"),
		Destination: decodeLeg(data, "destination"),
	}
}

// DecodeBackload decodes the optional backload sub-payload. It returns nil when
// the payload is malformed, has no backload object, or the backload is not enabled.
func DecodeBackload(raw string) *BackloadInfo {
	data, ok := payloadObject(raw)
	if !ok {
		return nil
	}

	if _, dataType, _, err := jsonparser.Get(data, "backload"); err != nil || dataType != jsonparser.Object {
		return nil
	}
	if !truthy(data, "backload", "enabled") {
		return nil
	}

	return &BackloadInfo{
		Enabled:        true,
		Destination:    stringField(data, "backload", "destination"),
		CargoType:      stringField(data, "backload", "cargoType"),
		OffloadingDate: stringField(data, "backload", "offloadingDate"),
		Quantities: Quantities{
			Bins:    quantity(data, "bins"),
			Crates:  quantity(data, "crates"),
			Pallets: quantity(data, "pallets"),
		},
		Notes: stringField(data, "backload", "notes"),
	}
}

func payloadObject(raw string) ([]byte, bool) {
	data := []byte(raw)
	if !json.Valid(data) {
		return nil, false
	}
	_, dataType, _, err := jsonparser.Get(data)
	if err != nil || dataType != jsonparser.Object {
		return nil, false
	}
	return data, true
}

func decodeLeg(data []byte, leg string) LegTimes {
	return LegTimes{
		PlannedArrival:   stringField(data, leg, "plannedArrival"),
		PlannedDeparture: stringField(data, leg, "plannedDeparture"),
		ActualArrival:    stringField(data, leg, "actualArrival"),
		ActualDeparture:  stringField(data, leg, "actualDeparture"),
	}
}

// stringField returns the string at keys, or "" when absent or not a string.
func stringField(data []byte, keys ...string) string {
	value, err := jsonparser.GetString(data, keys...)
	if err != nil {
		return ""
	}
	return value
}

// maxQuantity caps a single backload count
const maxQuantity = math.MaxInt32

// quantity reads a whole, non-negative count. Fractions and negatives read as 0.
func quantity(data []byte, key string) int {
	value, err := jsonparser.GetFloat(data, "backload", "quantities", key)
	if err != nil || value < 0 || value != math.Trunc(value) {
		return 0
	}
	if value > maxQuantity {
		return maxQuantity
	}
	return int(value)
}

// truthy follows JSON-as-script truthiness: false, 0, "", null and absent are false.
func truthy(data []byte, keys ...string) bool {
	value, dataType, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return false
	}

	switch dataType {
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		return err == nil && b
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(value)
		return err == nil && f != 0
	case jsonparser.String:
		return len(value) > 0
	case jsonparser.Object, jsonparser.Array:
		return true
	}
	return false
}
