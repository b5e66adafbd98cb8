package ingestion

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// LegEventMessage is an arrival or departure reported by vehicle telematics
type LegEventMessage struct {
	LoadID    string    `json:"load_id"`
	Leg       string    `json:"leg"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

// ParseLegEvent parses a JSON payload received on topic. The load ID falls
// back to the topic segment after "loads/" when the payload omits it.
func ParseLegEvent(topic string, payload []byte) (*LegEventMessage, error) {
	var msg LegEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.LoadID == "" {
		msg.LoadID = loadIDFromTopic(topic)
	}
	// Set timestamp if not provided
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

// loadIDFromTopic extracts <id> from "loads/<id>/events"
func loadIDFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "loads" {
			return parts[i+1]
		}
	}
	return ""
}
