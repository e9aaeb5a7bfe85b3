package aggregation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/retail-lab/salesboard/internal/core/aggregation"
	aggregationmocks "github.com/retail-lab/salesboard/internal/mocks/aggregation"
	storagemocks "github.com/retail-lab/salesboard/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var refreshNow = time.Date(2024, 3, 15, 14, 20, 0, 0, time.UTC)

func newTestEngine(store RefreshStore, ledger LedgerBounds) *Engine {
	e := NewEngine(store, ledger, EngineOptions{Lookback: 24 * time.Hour, Parallelism: 3})
	e.now = func() time.Time { return refreshNow }
	return e
}

func TestEngine_TrailingWindowIsDayAligned(t *testing.T) {
	e := newTestEngine(aggregationmocks.NewRefreshStore(t), nil)

	w := e.TrailingWindow()
	require.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), w.Start)
	require.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), w.End)
}

func TestEngine_RecomputeWindow(t *testing.T) {
	store := aggregationmocks.NewRefreshStore(t)
	e := newTestEngine(store, nil)
	w := e.TrailingWindow()

	store.EXPECT().
		RecomputeWindow(mock.Anything, aggregation.KindProductSales, w).
		Return(int64(42), nil).
		Once()

	result, err := e.RecomputeWindow(context.Background(), aggregation.KindProductSales, w)
	require.NoError(t, err)
	require.Equal(t, aggregation.KindProductSales, result.Kind)
	require.Equal(t, w, result.Window)
	require.Equal(t, int64(42), result.RowsUpserted)
}

func TestEngine_RecomputeWindowRejectsNonIncrementalKinds(t *testing.T) {
	e := newTestEngine(aggregationmocks.NewRefreshStore(t), nil)

	_, err := e.RecomputeWindow(context.Background(), aggregation.KindYearlyRollup, e.TrailingWindow())
	require.ErrorContains(t, err, "not an incremental aggregate")

	_, err = e.RecomputeWindow(context.Background(), aggregation.Kind("bogus"), e.TrailingWindow())
	require.Error(t, err)
}

func TestEngine_RunIncrementalSwallowsFailures(t *testing.T) {
	store := aggregationmocks.NewRefreshStore(t)
	e := newTestEngine(store, nil)
	w := e.TrailingWindow()

	store.EXPECT().RecomputeWindow(mock.Anything, aggregation.KindProductSales, w).Return(int64(10), nil).Once()
	store.EXPECT().RecomputeWindow(mock.Anything, aggregation.KindCategoryRevenue, w).
		Return(int64(0), errors.New("connection refused")).Once()
	store.EXPECT().RecomputeWindow(mock.Anything, aggregation.KindCustomerPurchases, w).Return(int64(7), nil).Once()

	results := e.RunIncremental(context.Background())
	require.Len(t, results, 2)

	kinds := []aggregation.Kind{results[0].Kind, results[1].Kind}
	require.ElementsMatch(t, []aggregation.Kind{aggregation.KindProductSales, aggregation.KindCustomerPurchases}, kinds)
}

func TestEngine_RunIncrementalAllFail(t *testing.T) {
	store := aggregationmocks.NewRefreshStore(t)
	e := newTestEngine(store, nil)

	store.EXPECT().RecomputeWindow(mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database is shutting down")).Times(3)

	require.NotPanics(t, func() {
		require.Empty(t, e.RunIncremental(context.Background()))
	})
}

// countingStore blocks every call until release is closed, then fails if
// the ctx it was handed has been cancelled.
type countingStore struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (s *countingStore) wait(ctx context.Context) error {
	if s.calls.Add(1) == 1 {
		close(s.started)
	}
	<-s.release
	return ctx.Err()
}

func (s *countingStore) RecomputeWindow(ctx context.Context, kind aggregation.Kind, w aggregation.Window) (int64, error) {
	if err := s.wait(ctx); err != nil {
		return 0, err
	}
	return 5, nil
}

func (s *countingStore) RefreshRollup(ctx context.Context) error { return s.wait(ctx) }

func TestEngine_OverlappingRunsShareOneRecompute(t *testing.T) {
	store := &countingStore{started: make(chan struct{}), release: make(chan struct{})}
	e := newTestEngine(store, nil)
	w := e.TrailingWindow()

	var wg sync.WaitGroup
	results := make([]aggregation.RefreshResult, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = e.RecomputeWindow(context.Background(), aggregation.KindCustomerPurchases, w)
	}()
	<-store.started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = e.RecomputeWindow(context.Background(), aggregation.KindCustomerPurchases, w)
	}()

	// Give the second caller time to join the in-flight run.
	time.Sleep(100 * time.Millisecond)
	close(store.release)
	wg.Wait()

	require.Equal(t, int32(1), store.calls.Load())
	require.Equal(t, int64(5), results[0].RowsUpserted)
	require.Equal(t, int64(5), results[1].RowsUpserted)
}

func TestEngine_CancelledCallerDoesNotFailSharedRecompute(t *testing.T) {
	store := &countingStore{started: make(chan struct{}), release: make(chan struct{})}
	e := newTestEngine(store, nil)
	w := e.TrailingWindow()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firstErr := make(chan error, 1)
	go func() {
		_, err := e.RecomputeWindow(ctx, aggregation.KindProductSales, w)
		firstErr <- err
	}()
	<-store.started

	type outcome struct {
		result aggregation.RefreshResult
		err    error
	}
	second := make(chan outcome, 1)
	go func() {
		result, err := e.RecomputeWindow(context.Background(), aggregation.KindProductSales, w)
		second <- outcome{result, err}
	}()

	// Give the second caller time to join the in-flight run.
	time.Sleep(100 * time.Millisecond)

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(store.release)
	got := <-second
	require.NoError(t, got.err)
	require.Equal(t, int64(5), got.result.RowsUpserted)
	require.Equal(t, int32(1), store.calls.Load())
}

func TestEngine_CancelledCallerDoesNotFailSharedRollup(t *testing.T) {
	store := &countingStore{started: make(chan struct{}), release: make(chan struct{})}
	e := newTestEngine(store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firstErr := make(chan error, 1)
	go func() { firstErr <- e.RefreshRollup(ctx) }()
	<-store.started

	secondErr := make(chan error, 1)
	go func() { secondErr <- e.RefreshRollup(context.Background()) }()

	time.Sleep(100 * time.Millisecond)

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(store.release)
	require.NoError(t, <-secondErr)
	require.Equal(t, int32(1), store.calls.Load())
}

func TestEngine_Trigger(t *testing.T) {
	t.Run("incremental kind uses trailing window", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		e := newTestEngine(store, nil)

		store.EXPECT().
			RecomputeWindow(mock.Anything, aggregation.KindCategoryRevenue, e.TrailingWindow()).
			Return(int64(3), nil).
			Once()

		result, err := e.Trigger(context.Background(), aggregation.KindCategoryRevenue)
		require.NoError(t, err)
		require.Equal(t, int64(3), result.RowsUpserted)
	})

	t.Run("rollup is a full rebuild", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		e := newTestEngine(store, nil)

		store.EXPECT().RefreshRollup(mock.Anything).Return(nil).Once()

		result, err := e.Trigger(context.Background(), aggregation.KindYearlyRollup)
		require.NoError(t, err)
		require.Equal(t, aggregation.KindYearlyRollup, result.Kind)
	})

	t.Run("rollup failure is returned", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		e := newTestEngine(store, nil)

		store.EXPECT().RefreshRollup(mock.Anything).Return(errors.New("cannot refresh concurrently")).Once()

		_, err := e.Trigger(context.Background(), aggregation.KindYearlyRollup)
		require.ErrorContains(t, err, "cannot refresh concurrently")
	})

	t.Run("unknown kind", func(t *testing.T) {
		e := newTestEngine(aggregationmocks.NewRefreshStore(t), nil)

		_, err := e.Trigger(context.Background(), aggregation.Kind("weekly"))
		require.ErrorContains(t, err, "unknown aggregate kind")
	})
}

func TestEngine_RunRollupSwallowsErrors(t *testing.T) {
	store := aggregationmocks.NewRefreshStore(t)
	e := newTestEngine(store, nil)

	store.EXPECT().RefreshRollup(mock.Anything).Return(errors.New("lock timeout")).Once()

	require.NotPanics(t, func() { e.RunRollup(context.Background()) })
}

func TestEngine_Bootstrap(t *testing.T) {
	t.Run("empty ledger is a no-op", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		ledger := storagemocks.NewLedgerStore(t)
		e := newTestEngine(store, ledger)

		ledger.EXPECT().Bounds(mock.Anything).Return(time.Time{}, time.Time{}, false, nil).Once()

		require.NoError(t, e.Bootstrap(context.Background()))
	})

	t.Run("recomputes the full extent then the rollup", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		ledger := storagemocks.NewLedgerStore(t)
		e := newTestEngine(store, ledger)

		first := time.Date(2020, 1, 3, 9, 15, 0, 0, time.UTC)
		last := time.Date(2024, 3, 15, 13, 59, 0, 0, time.UTC)
		full := aggregation.Window{
			Start: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		}

		ledger.EXPECT().Bounds(mock.Anything).Return(first, last, true, nil).Once()
		for _, kind := range aggregation.KindsWithPolicy(aggregation.PolicyIncremental) {
			store.EXPECT().RecomputeWindow(mock.Anything, kind, full).Return(int64(1000), nil).Once()
		}
		store.EXPECT().RefreshRollup(mock.Anything).Return(nil).Once()

		require.NoError(t, e.Bootstrap(context.Background()))
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		ledger := storagemocks.NewLedgerStore(t)
		e := newTestEngine(store, ledger)

		day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ledger.EXPECT().Bounds(mock.Anything).Return(day, day, true, nil).Once()
		store.EXPECT().RecomputeWindow(mock.Anything, aggregation.KindCategoryRevenue, mock.Anything).
			Return(int64(0), errors.New("disk full")).Once()

		require.ErrorContains(t, e.Bootstrap(context.Background()), "disk full")
	})

	t.Run("ledger error", func(t *testing.T) {
		store := aggregationmocks.NewRefreshStore(t)
		ledger := storagemocks.NewLedgerStore(t)
		e := newTestEngine(store, ledger)

		ledger.EXPECT().Bounds(mock.Anything).Return(time.Time{}, time.Time{}, false, errors.New("timeout")).Once()

		require.ErrorContains(t, e.Bootstrap(context.Background()), "bootstrap: timeout")
	})
}
