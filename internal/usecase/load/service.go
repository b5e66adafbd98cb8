package load

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"load-analytics/internal/analytics"
	domainLoad "load-analytics/internal/domain/load"
	"load-analytics/internal/logger"
	appErrors "load-analytics/pkg/errors"
	"load-analytics/pkg/utils"
)

// Service implements load time use cases
type Service struct {
	loadRepo domainLoad.Repository
	location *time.Location
}

// NewService creates a new load service. Zone-less times are read in loc.
func NewService(loadRepo domainLoad.Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		loadRepo: loadRepo,
		location: loc,
	}
}

func (s *Service) GetLoad(ctx context.Context, loadID uuid.UUID) (*LoadResponse, error) {
	l, err := s.loadRepo.GetByID(ctx, loadID)
	if err != nil {
		return nil, err
	}
	return ToLoadResponse(l), nil
}

// UpdateActualTimes alters or verifies actual times on behalf of a dispatcher.
// Every time set here is recorded as manual and may replace a verified value.
func (s *Service) UpdateActualTimes(ctx context.Context, loadID uuid.UUID, req *UpdateActualTimesRequest) (*LoadResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	changed := 0
	l, err := s.loadRepo.ModifyActualTimes(ctx, loadID, func(l *domainLoad.Load) (bool, error) {
		changed = 0
		ref := s.referenceDate(l)
		for _, slot := range req.slots() {
			if slot.input == nil {
				continue
			}
			if err := s.applyManual(l, slot, ref); err != nil {
				return false, err
			}
			changed++
		}
		return changed > 0, nil
	})
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return ToLoadResponse(l), nil
	}

	logger.WithLoad(l.ID, l.LoadNumber).Info("Actual times updated",
		zap.Int("fields", changed),
		zap.String("event", "actual_times_updated"),
	)

	return ToLoadResponse(l), nil
}

// RecordAutoTime stores a telematics time for one leg event. Verified values are never overwritten.
func (s *Service) RecordAutoTime(ctx context.Context, loadID uuid.UUID, leg domainLoad.Leg, event domainLoad.Event, at time.Time) error {
	if err := ValidateLegEvent(leg, event); err != nil {
		return err
	}

	at = at.In(s.location)
	_, err := s.loadRepo.ModifyActualTimes(ctx, loadID, func(l *domainLoad.Load) (bool, error) {
		slot := l.Actual(leg, event)
		if slot.Verified {
			return false, domainLoad.ErrVerifiedTimeLocked
		}
		*slot = domainLoad.ActualTime{At: &at, Source: domainLoad.SourceAuto}
		s.patchPayload(l, leg, event, slot.At)
		return true, nil
	})
	if err != nil {
		return err
	}

	logger.WithLoad(loadID).Debug("Automatic time recorded",
		zap.String("leg", string(leg)),
		zap.String("leg_event", string(event)),
		zap.Time("at", at),
		zap.String("event", "auto_time_recorded"),
	)

	return nil
}

func (s *Service) applyManual(l *domainLoad.Load, in slotInput, ref time.Time) error {
	slot := l.Actual(in.leg, in.event)

	if in.input.Time != nil {
		token := utils.SanitizeToken(*in.input.Time)
		if token == "" {
			*slot = domainLoad.ActualTime{}
		} else {
			at, ok := analytics.ParseTimeToken(token, ref)
			if !ok {
				return appErrors.NewAppError(appErrors.CodeValidation, "Invalid time: "+token, appErrors.ErrInvalidInput)
			}
			slot.At = &at
			slot.Source = domainLoad.SourceManual
		}
		s.patchPayload(l, in.leg, in.event, slot.At)
	}

	if in.input.Verified != nil {
		slot.Verified = *in.input.Verified
	}
	if slot.At == nil {
		slot.Verified = false
	}

	return nil
}

// referenceDate anchors clock-only tokens to the load's loading date, or today when it does not parse
func (s *Service) referenceDate(l *domainLoad.Load) time.Time {
	if date, ok := analytics.ParseDate(l.LoadingDate, s.location); ok {
		y, m, d := date.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, s.location)
	}
	y, m, d := time.Now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

func (s *Service) patchPayload(l *domainLoad.Load, leg domainLoad.Leg, event domainLoad.Event, at *time.Time) {
	patched, err := patchActualTime(l.Times, leg, event, at, s.location)
	if err != nil {
		logger.WithLoad(l.ID, l.LoadNumber).Warn("Leaving time payload unpatched",
			zap.String("leg", string(leg)),
			zap.String("leg_event", string(event)),
			zap.Error(err),
		)
		return
	}
	l.Times = patched
}
