// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/secondwind/planner/internal/domain/assumptions"
	"github.com/secondwind/planner/internal/domain/projection"
	"github.com/secondwind/planner/pkg/logger"
	"github.com/secondwind/planner/pkg/metrics"
)

// Service wires the projection engine and the configured default assumptions,
// and keeps lightweight request counters for the stats endpoint. The engine is
// stateless, so the service needs no locking beyond atomic counters.
type Service struct {
	engine   *projection.Engine
	defaults assumptions.Set
	logger   logger.Logger

	maxPortfolioYears int

	started time.Time

	analysesTotal      atomic.Int64
	analysesOnTrack    atomic.Int64
	validationFailures atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultAssumptions sets the base assumption set requests resolve against.
func WithDefaultAssumptions(set assumptions.Set) Option {
	return func(s *Service) {
		s.defaults = set
	}
}

// WithMaxPortfolioYears caps the portfolio duration simulation.
func WithMaxPortfolioYears(years int) Option {
	return func(s *Service) {
		if years > 0 {
			s.maxPortfolioYears = years
		}
	}
}

// New creates a Service with options applied.
func New(opts ...Option) *Service {
	s := &Service{
		defaults: assumptions.Default(),
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	engineOpts := []projection.Option{}
	if s.maxPortfolioYears > 0 {
		engineOpts = append(engineOpts, projection.WithMaxPortfolioYears(s.maxPortfolioYears))
	}
	s.engine = projection.NewEngine(engineOpts...)
	return s
}

// Analyze resolves assumption overrides against the configured defaults and
// runs the projection. Counters and metrics are recorded on every outcome.
func (s *Service) Analyze(ctx context.Context, in projection.Input, overrides assumptions.Overrides) (projection.Result, assumptions.Set, error) {
	set := assumptions.ResolveBase(s.defaults, overrides)

	start := time.Now()
	res, err := s.engine.Compute(ctx, in, set)
	durationMs := float64(time.Since(start).Microseconds()) / 1e3

	if err != nil {
		s.validationFailures.Add(1)
		if _, ok := projection.AsValidation(err); ok {
			metrics.RecordValidationFailure()
		} else {
			metrics.RecordComputationError()
		}
		if s.logger != nil {
			s.logger.Warn(ctx, "analysis rejected", logger.Error(err))
		}
		return projection.Result{}, set, err
	}

	s.analysesTotal.Add(1)
	if res.IsOnTrack {
		s.analysesOnTrack.Add(1)
	}
	metrics.RecordAnalysis(res.IsOnTrack, res.FeasibilityScore, durationMs)

	if s.logger != nil {
		s.logger.Debug(ctx, "analysis computed",
			logger.Int("years_to_retirement", res.YearsToRetirement),
			logger.Bool("on_track", res.IsOnTrack),
			logger.Float64("feasibility_score", res.FeasibilityScore),
		)
	}
	return res, set, nil
}

// DefaultAssumptions returns the configured base assumption set.
func (s *Service) DefaultAssumptions() assumptions.Set {
	return s.defaults
}

// Profiles returns the built-in assumption presets.
func (s *Service) Profiles() []assumptions.Profile {
	return assumptions.Profiles()
}

// GetStats returns service counters for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	total := s.analysesTotal.Load()
	onTrack := s.analysesOnTrack.Load()
	return map[string]interface{}{
		"analysesTotal":      total,
		"analysesOnTrack":    onTrack,
		"analysesOffTrack":   total - onTrack,
		"validationFailures": s.validationFailures.Load(),
		"uptimeSeconds":      int64(time.Since(s.started).Seconds()),
	}
}
