package aggregation

import (
	"context"
	"time"

	"github.com/retail-lab/salesboard/internal/core/aggregation"
)

// RefreshStore recomputes derived aggregate state from the ledger.
//
// Contract: RecomputeWindow overwrites the measure of every (day, key) row it
// produces, it never adds to the stored value. Running it twice over the same
// window with no ledger writes in between leaves identical rows.
type RefreshStore interface {
	// RecomputeWindow rebuilds one incremental aggregate over window and
	// returns the number of rows upserted.
	RecomputeWindow(ctx context.Context, kind aggregation.Kind, window aggregation.Window) (int64, error)

	// RefreshRollup rebuilds the yearly rollup from the whole ledger.
	RefreshRollup(ctx context.Context) error
}

// LedgerBounds reports the ledger's time extent for bootstrap recomputes.
type LedgerBounds interface {
	Bounds(ctx context.Context) (first, last time.Time, ok bool, err error)
}
