package ingestion

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	domainLoad "load-analytics/internal/domain/load"
)

// Telematics clocks may run slightly ahead of ours
const maxClockSkew = 5 * time.Minute

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// ValidateLegEvent validates a leg event message against now
func ValidateLegEvent(msg *LegEventMessage, now time.Time) error {
	// Validate load ID
	if msg.LoadID == "" {
		return &ValidationError{Field: "load_id", Message: "load_id is required"}
	}
	if _, err := uuid.Parse(msg.LoadID); err != nil {
		return &ValidationError{Field: "load_id", Message: "load_id must be valid UUID"}
	}

	if !domainLoad.ValidLeg(domainLoad.Leg(msg.Leg)) {
		return &ValidationError{Field: "leg", Message: "leg must be origin or destination"}
	}
	if !domainLoad.ValidEvent(domainLoad.Event(msg.Event)) {
		return &ValidationError{Field: "event", Message: "event must be arrival or departure"}
	}

	// Validate timestamp
	if msg.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}
	if msg.Timestamp.After(now.Add(maxClockSkew)) {
		return &ValidationError{Field: "timestamp", Message: "timestamp is in the future"}
	}

	return nil
}
