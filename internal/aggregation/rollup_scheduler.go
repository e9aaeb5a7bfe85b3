package aggregation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const cronStopTimeout = 30 * time.Second

type rollupRunner interface {
	RunRollup(ctx context.Context)
}

// RollupScheduler rebuilds the yearly rollup at a fixed wall-clock time,
// by default daily at 03:00. A run still in progress when the next one is
// due causes that one to be skipped.
type RollupScheduler struct {
	spec     string
	location *time.Location
	schedule cron.Schedule
	runner   rollupRunner
}

// NewRollupScheduler parses a standard five-field cron spec evaluated in loc.
func NewRollupScheduler(spec string, loc *time.Location, runner rollupRunner) (*RollupScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid rollup schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &RollupScheduler{
		spec:     spec,
		location: loc,
		schedule: schedule,
		runner:   runner,
	}, nil
}

// Next returns the first run time after t.
func (s *RollupScheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.location))
}

// Start runs the cron loop until ctx is cancelled, then waits for a running
// rebuild to finish.
func (s *RollupScheduler) Start(ctx context.Context) error {
	logger := newCronLogger(slog.Default())
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() {
		s.runner.RunRollup(ctx)
	}))

	slog.Info("[Scheduler] Starting rollup scheduler",
		"schedule", s.spec,
		"timezone", s.location.String(),
		"next_run", s.Next(time.Now()))

	c.Start()
	<-ctx.Done()

	slog.Info("[Scheduler] Stopping rollup scheduler (context cancelled)")
	stopped := c.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(cronStopTimeout):
		slog.Warn("[Scheduler] Rollup refresh still running at shutdown", "waited", cronStopTimeout)
	}
	return nil
}
