package load

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle status of a load
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusInTransit Status = "in-transit"
	StatusDelivered Status = "delivered"
	StatusPending   Status = "pending"
)

// TimeSource records who captured an actual time
type TimeSource string

const (
	SourceManual TimeSource = "manual" // Entered or corrected by a dispatcher
	SourceAuto   TimeSource = "auto"   // Captured by vehicle telematics
)

// Leg is one directional segment of a shipment
type Leg string

const (
	LegOrigin      Leg = "origin"
	LegDestination Leg = "destination"
)

// Event is a leg event
type Event string

const (
	EventArrival   Event = "arrival"
	EventDeparture Event = "departure"
)

// ActualTime is one captured arrival or departure
type ActualTime struct {
	At       *time.Time
	Source   TimeSource
	Verified bool
}

// Load represents a single freight shipment
type Load struct {
	ID         uuid.UUID
	LoadNumber string

	// Route
	Origin      string
	Destination string

	CargoType string
	Status    Status

	// Dates are kept as stored (ISO date strings)
	LoadingDate    string
	OffloadingDate string

	// TimeWindow is the free-text window label, e.g. "06:00 AM - 02:00 PM"
	TimeWindow string

	// Times is the legacy JSON payload with planned/actual leg times and an optional backload
	Times string

	DriverName *string

	// Actual times captured at origin (loading) and destination (offloading)
	LoadingArrival      ActualTime
	LoadingDeparture    ActualTime
	OffloadingArrival   ActualTime
	OffloadingDeparture ActualTime

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actual returns the actual time slot for a leg event, or nil for an unknown pair.
func (l *Load) Actual(leg Leg, event Event) *ActualTime {
	switch {
	case leg == LegOrigin && event == EventArrival:
		return &l.LoadingArrival
	case leg == LegOrigin && event == EventDeparture:
		return &l.LoadingDeparture
	case leg == LegDestination && event == EventArrival:
		return &l.OffloadingArrival
	case leg == LegDestination && event == EventDeparture:
		return &l.OffloadingDeparture
	}
	return nil
}

// Driver returns the driver name or an empty string
func (l *Load) Driver() string {
	if l.DriverName == nil {
		return ""
	}
	return *l.DriverName
}

// ValidLeg reports whether leg is origin or destination
func ValidLeg(leg Leg) bool {
	return leg == LegOrigin || leg == LegDestination
}

// ValidEvent reports whether event is arrival or departure
func ValidEvent(event Event) bool {
	return event == EventArrival || event == EventDeparture
}
