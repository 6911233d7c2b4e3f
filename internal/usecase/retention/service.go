// Package retention removes stored summaries older than a configured age.
// It is driven by the worker's cron schedule.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fidel-summary/internal/observability/metrics"
)

// DefaultPeriod is how long summaries are kept when no period is configured.
const DefaultPeriod = 90 * 24 * time.Hour

// Deleter is the slice of the summary repository the cleanup needs.
type Deleter interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Stats describes one cleanup run.
type Stats struct {
	Deleted  int64
	Cutoff   time.Time
	Duration time.Duration
}

// Service deletes summaries whose created_at is older than the retention
// period. Runs are idempotent.
type Service struct {
	Repo   Deleter
	Period time.Duration
	Logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a retention service. A non-positive period falls back to
// DefaultPeriod.
func NewService(repo Deleter, period time.Duration, logger *slog.Logger) *Service {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Service{
		Repo:   repo,
		Period: period,
		Logger: logger,
		now:    time.Now,
	}
}

// Run performs one cleanup pass and reports what it removed.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	start := s.now()
	cutoff := start.Add(-s.Period)

	deleted, err := s.Repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return Stats{}, fmt.Errorf("delete expired summaries: %w", err)
	}

	elapsed := s.now().Sub(start)
	metrics.SummariesDeletedTotal.Add(float64(deleted))
	metrics.RetentionRunDuration.Observe(elapsed.Seconds())

	s.logger().InfoContext(ctx, "retention run completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
		slog.Duration("duration", elapsed))

	return Stats{Deleted: deleted, Cutoff: cutoff, Duration: elapsed}, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
