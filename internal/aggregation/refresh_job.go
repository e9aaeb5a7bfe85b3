package aggregation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/retail-lab/salesboard/internal/core/aggregation"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	defaultLookback    = 24 * time.Hour
	defaultParallelism = 3
)

// EngineOptions controls the incremental refresh window and fan-out.
type EngineOptions struct {
	// Lookback is how far behind now the trailing window starts.
	// The window is widened to whole UTC days.
	Lookback time.Duration

	// Parallelism caps how many aggregate kinds recompute at once.
	Parallelism int
}

func (o EngineOptions) normalized() EngineOptions {
	n := o
	if n.Lookback <= 0 {
		n.Lookback = defaultLookback
	}
	if n.Parallelism <= 0 {
		n.Parallelism = defaultParallelism
	}
	return n
}

// Engine runs recompute-window jobs against a RefreshStore.
//
// Concurrent requests for the same kind and window share a single store call,
// so an hourly tick that overlaps a manual trigger does the work once.
type Engine struct {
	store    RefreshStore
	ledger   LedgerBounds
	opts     EngineOptions
	inflight singleflight.Group
	now      func() time.Time
}

// NewEngine creates a refresh engine. ledger may be nil when Bootstrap is not used.
func NewEngine(store RefreshStore, ledger LedgerBounds, opts EngineOptions) *Engine {
	return &Engine{
		store:  store,
		ledger: ledger,
		opts:   opts.normalized(),
		now:    time.Now,
	}
}

// TrailingWindow is the window the next incremental run will recompute.
func (e *Engine) TrailingWindow() aggregation.Window {
	return aggregation.Trailing(e.now(), e.opts.Lookback)
}

// RecomputeWindow rebuilds one incremental aggregate over w.
func (e *Engine) RecomputeWindow(ctx context.Context, kind aggregation.Kind, w aggregation.Window) (aggregation.RefreshResult, error) {
	def, ok := aggregation.Kinds[kind]
	if !ok || def.Policy != aggregation.PolicyIncremental {
		return aggregation.RefreshResult{}, fmt.Errorf("%s is not an incremental aggregate", kind)
	}

	runID := uuid.NewString()
	key := string(kind) + " " + w.String()

	v, shared, err := e.share(ctx, key, func(runCtx context.Context) (interface{}, error) {
		started := time.Now()
		rows, err := e.store.RecomputeWindow(runCtx, kind, w)
		if err != nil {
			return nil, err
		}
		return aggregation.RefreshResult{
			Kind:         kind,
			Window:       w,
			RowsUpserted: rows,
			Duration:     time.Since(started),
		}, nil
	})
	if err != nil {
		slog.Error("[RefreshJob] Recompute failed",
			"run_id", runID,
			"kind", kind,
			"window", w.String(),
			"error", err)
		return aggregation.RefreshResult{}, fmt.Errorf("recompute %s: %w", kind, err)
	}

	result := v.(aggregation.RefreshResult)
	slog.Info("[RefreshJob] Recompute complete",
		"run_id", runID,
		"kind", kind,
		"window", w.String(),
		"rows_upserted", result.RowsUpserted,
		"duration", result.Duration,
		"shared", shared)
	return result, nil
}

// share runs fn once per key across concurrent callers. The run ignores the
// cancellation of whichever caller started it; each caller stops waiting
// when its own ctx ends.
func (e *Engine) share(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	runCtx := context.WithoutCancel(ctx)
	ch := e.inflight.DoChan(key, func() (interface{}, error) {
		return fn(runCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// RunIncremental recomputes every incremental aggregate over the trailing
// window. Failures are logged and dropped; the next tick is the retry.
func (e *Engine) RunIncremental(ctx context.Context) []aggregation.RefreshResult {
	window := e.TrailingWindow()
	kinds := aggregation.KindsWithPolicy(aggregation.PolicyIncremental)
	results := make([]aggregation.RefreshResult, len(kinds))
	ok := make([]bool, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Parallelism)
	for i, kind := range kinds {
		g.Go(func() error {
			result, err := e.RecomputeWindow(gctx, kind, window)
			if err != nil {
				// Already logged; one failing kind must not cancel the others.
				return nil
			}
			results[i], ok[i] = result, true
			return nil
		})
	}
	_ = g.Wait()

	done := make([]aggregation.RefreshResult, 0, len(kinds))
	for i := range kinds {
		if ok[i] {
			done = append(done, results[i])
		}
	}

	slog.Info("[RefreshJob] Incremental refresh finished",
		"window", window.String(),
		"kinds", len(kinds),
		"succeeded", len(done))
	return done
}

// RefreshRollup rebuilds the yearly rollup.
func (e *Engine) RefreshRollup(ctx context.Context) error {
	runID := uuid.NewString()

	_, shared, err := e.share(ctx, string(aggregation.KindYearlyRollup), func(runCtx context.Context) (interface{}, error) {
		started := time.Now()
		if err := e.store.RefreshRollup(runCtx); err != nil {
			return nil, err
		}
		return time.Since(started), nil
	})
	if err != nil {
		slog.Error("[RefreshJob] Rollup refresh failed",
			"run_id", runID,
			"kind", aggregation.KindYearlyRollup,
			"error", err)
		return fmt.Errorf("refresh %s: %w", aggregation.KindYearlyRollup, err)
	}

	slog.Info("[RefreshJob] Rollup refresh complete",
		"run_id", runID,
		"kind", aggregation.KindYearlyRollup,
		"shared", shared)
	return nil
}

// RunRollup is the scheduled form of RefreshRollup: errors are logged only.
func (e *Engine) RunRollup(ctx context.Context) {
	_ = e.RefreshRollup(ctx)
}

// Trigger runs one kind immediately: the trailing window for incremental
// kinds, a full rebuild for the rollup.
func (e *Engine) Trigger(ctx context.Context, kind aggregation.Kind) (aggregation.RefreshResult, error) {
	def, ok := aggregation.Kinds[kind]
	if !ok {
		return aggregation.RefreshResult{}, fmt.Errorf("unknown aggregate kind %q", kind)
	}

	if def.Policy == aggregation.PolicyFullRebuild {
		started := time.Now()
		if err := e.RefreshRollup(ctx); err != nil {
			return aggregation.RefreshResult{}, err
		}
		return aggregation.RefreshResult{Kind: kind, Duration: time.Since(started)}, nil
	}

	return e.RecomputeWindow(ctx, kind, e.TrailingWindow())
}

// Bootstrap recomputes every incremental aggregate over the ledger's full
// extent and then rebuilds the rollup. An empty ledger is a no-op.
func (e *Engine) Bootstrap(ctx context.Context) error {
	if e.ledger == nil {
		return fmt.Errorf("bootstrap: no ledger configured")
	}

	first, last, ok, err := e.ledger.Bounds(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if !ok {
		slog.Info("[RefreshJob] Bootstrap skipped, ledger is empty")
		return nil
	}

	window := aggregation.Spanning(first, last)
	slog.Info("[RefreshJob] Bootstrap starting",
		"window", window.String(),
		"days", window.Days())

	for _, kind := range aggregation.KindsWithPolicy(aggregation.PolicyIncremental) {
		if _, err := e.RecomputeWindow(ctx, kind, window); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	if err := e.RefreshRollup(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	slog.Info("[RefreshJob] Bootstrap complete", "window", window.String())
	return nil
}
