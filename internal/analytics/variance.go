package analytics

import "time"

// Thresholds in minutes. The delay flag and the four-way punctuality bands are
// separate report semantics and must stay separate constants.
const (
	// DelayThresholdMinutes marks a leg event as a delay event (strictly greater).
	DelayThresholdMinutes = 15
	// EarlyThresholdMinutes is the upper bound (inclusive) of the Early band.
	EarlyThresholdMinutes = -5
	// OnTimeThresholdMinutes is the upper bound (inclusive) of the On Time band.
	OnTimeThresholdMinutes = 15
	// LateThresholdMinutes separates Slightly Late (inclusive) from Late.
	LateThresholdMinutes = 30
)

// PunctualityCategory is one of the four delivery variance bands
type PunctualityCategory string

const (
	CategoryEarly        PunctualityCategory = "Early"
	CategoryOnTime       PunctualityCategory = "On Time"
	CategorySlightlyLate PunctualityCategory = "Slightly Late"
	CategoryLate         PunctualityCategory = "Late"
)

// Minutes is a signed variance (actual - planned). Known is false when either
// side was missing or unparseable.
type Minutes struct {
	Value int
	Known bool
}

// Delayed reports whether the variance counts as a delay event.
func (m Minutes) Delayed() bool {
	return m.Known && m.Value > DelayThresholdMinutes
}

// Variance returns actual - planned in whole minutes, truncated toward zero.
func Variance(planned, actual string, ref time.Time) Minutes {
	if planned == "" || actual == "" {
		return Minutes{}
	}

	plannedAt, ok := ParseTimeToken(planned, ref)
	if !ok {
		return Minutes{}
	}
	actualAt, ok := ParseTimeToken(actual, ref)
	if !ok {
		return Minutes{}
	}

	return Minutes{Value: int(actualAt.Sub(plannedAt) / time.Minute), Known: true}
}

// Categorize maps a known variance onto a punctuality band.
func Categorize(variance int) PunctualityCategory {
	switch {
	case variance <= EarlyThresholdMinutes:
		return CategoryEarly
	case variance <= OnTimeThresholdMinutes:
		return CategoryOnTime
	case variance <= LateThresholdMinutes:
		return CategorySlightlyLate
	default:
		return CategoryLate
	}
}

// LegVariances holds the four per-event variances of one load
type LegVariances struct {
	OriginArrival        Minutes
	OriginDeparture      Minutes
	DestinationArrival   Minutes
	DestinationDeparture Minutes
}

func legVariances(w *TimeWindow, ref time.Time) LegVariances {
	return LegVariances{
		OriginArrival:        Variance(w.Origin.PlannedArrival, w.Origin.ActualArrival, ref),
		OriginDeparture:      Variance(w.Origin.PlannedDeparture, w.Origin.ActualDeparture, ref),
		DestinationArrival:   Variance(w.Destination.PlannedArrival, w.Destination.ActualArrival, ref),
		DestinationDeparture: Variance(w.Destination.PlannedDeparture, w.Destination.ActualDeparture, ref),
	}
}
