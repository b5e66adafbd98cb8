package report

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"load-analytics/internal/analytics"
	domainLoad "load-analytics/internal/domain/load"
	"load-analytics/internal/logger"
)

// Cache stores serialized reports. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Service implements report use cases
type Service struct {
	loadRepo domainLoad.Repository
	cache    Cache
	ttl      time.Duration
	location *time.Location
	now      func() time.Time
}

type Option func(*Service)

// WithCache memoizes reports per snapshot version, range and day
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.ttl = ttl
	}
}

// WithClock overrides the time source used to resolve ranges
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new report service computing in loc
func NewService(loadRepo domainLoad.Repository, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		loadRepo: loadRepo,
		location: loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report returns every table for the named range
func (s *Service) Report(ctx context.Context, rangeName string) (*analytics.Report, error) {
	r, ok := analytics.ResolveRange(analytics.RangeName(rangeName), s.now().In(s.location))
	if !ok {
		return nil, ErrInvalidRange
	}

	version, err := s.loadRepo.SnapshotVersion(ctx)
	if err != nil {
		return nil, err
	}
	key := cacheKey(rangeName, version, r.End)

	// Cached tables are day-granular; the range reflects this request
	if cached := s.cached(ctx, key); cached != nil {
		cached.Range = r
		return cached, nil
	}

	loads, err := s.loadRepo.ListByLoadingDate(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	report := analytics.BuildReport(loads, r)

	logger.Info("Report built",
		zap.String("range", rangeName),
		zap.String("snapshot", version),
		zap.Int("loads", report.Summary.TotalLoads),
		zap.String("event", "report_built"),
	)

	s.store(ctx, key, report)
	return report, nil
}

// Punctuality returns the punctuality tables for the named range
func (s *Service) Punctuality(ctx context.Context, rangeName string) (*analytics.PunctualityReport, error) {
	report, err := s.Report(ctx, rangeName)
	if err != nil {
		return nil, err
	}
	return &report.Punctuality, nil
}

// TimeVariance returns the delivery time-variance analysis for the named range
func (s *Service) TimeVariance(ctx context.Context, rangeName string) (*analytics.TimeVarianceReport, error) {
	report, err := s.Report(ctx, rangeName)
	if err != nil {
		return nil, err
	}
	return &report.TimeVariance, nil
}

// Backloads returns the backload tables and movements for the named range
func (s *Service) Backloads(ctx context.Context, rangeName string) (*analytics.BackloadReport, error) {
	report, err := s.Report(ctx, rangeName)
	if err != nil {
		return nil, err
	}
	return &report.Backload, nil
}

// The day is part of the key because ranges end at "now".
func cacheKey(rangeName, version string, end time.Time) string {
	return fmt.Sprintf("reports:%s:%s:%s", rangeName, version, end.Format("2006-01-02"))
}

func (s *Service) cached(ctx context.Context, key string) *analytics.Report {
	if s.cache == nil {
		return nil
	}

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Report cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var report analytics.Report
	if err := json.Unmarshal(data, &report); err != nil {
		logger.Warn("Discarding undecodable cached report", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &report
}

func (s *Service) store(ctx context.Context, key string, report *analytics.Report) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		logger.Warn("Failed to encode report for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		logger.Warn("Report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
