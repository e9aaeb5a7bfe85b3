package aggregation

import (
	"context"
	"log/slog"
	"time"

	"github.com/retail-lab/salesboard/internal/core/aggregation"
)

type incrementalRunner interface {
	RunIncremental(ctx context.Context) []aggregation.RefreshResult
}

// Scheduler runs the incremental refresh on a fixed interval.
// Each tick recomputes the trailing window from scratch, so a missed or
// failed tick is healed by the next one.
type Scheduler struct {
	interval time.Duration
	runner   incrementalRunner
}

// NewScheduler creates an interval scheduler for the incremental aggregates.
func NewScheduler(interval time.Duration, runner incrementalRunner) *Scheduler {
	return &Scheduler{
		interval: interval,
		runner:   runner,
	}
}

// Start begins periodic refresh.
// Runs until context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting incremental refresh scheduler", "interval", s.interval)

	// Refresh once at startup so a restart does not wait a full interval.
	s.runner.RunIncremental(ctx)

	for {
		select {
		case <-ticker.C:
			s.runner.RunIncremental(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}
