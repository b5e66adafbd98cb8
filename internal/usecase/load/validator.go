package load

import (
	"time"

	"github.com/go-playground/validator/v10"

	"load-analytics/internal/analytics"
	domainLoad "load-analytics/internal/domain/load"
	"load-analytics/pkg/utils"
)

func init() {
	if err := utils.RegisterValidation("load_time", validateLoadTime); err != nil {
		panic(err)
	}
}

// validateLoadTime accepts an empty value (clear) or any token the time parser understands
func validateLoadTime(fl validator.FieldLevel) bool {
	value := utils.SanitizeToken(fl.Field().String())
	if value == "" {
		return true
	}
	_, ok := analytics.ParseTimeToken(value, time.Time{})
	return ok
}

// slotInput pairs a request field with the leg event it alters
type slotInput struct {
	leg   domainLoad.Leg
	event domainLoad.Event
	input *ActualTimeInput
}

func (r *UpdateActualTimesRequest) slots() []slotInput {
	return []slotInput{
		{domainLoad.LegOrigin, domainLoad.EventArrival, r.LoadingArrival},
		{domainLoad.LegOrigin, domainLoad.EventDeparture, r.LoadingDeparture},
		{domainLoad.LegDestination, domainLoad.EventArrival, r.OffloadingArrival},
		{domainLoad.LegDestination, domainLoad.EventDeparture, r.OffloadingDeparture},
	}
}

// ValidateLegEvent checks a leg/event pair coming from outside the service
func ValidateLegEvent(leg domainLoad.Leg, event domainLoad.Event) error {
	if !domainLoad.ValidLeg(leg) {
		return domainLoad.ErrInvalidLeg
	}
	if !domainLoad.ValidEvent(event) {
		return domainLoad.ErrInvalidEvent
	}
	return nil
}
