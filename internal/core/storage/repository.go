package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/retail-lab/salesboard/internal/api/v1"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicate is returned when a row with the same natural key already exists.
	ErrDuplicate = errors.New("entry already exists")

	// ErrNoPartition is returned when a sale timestamp falls outside every
	// provisioned monthly partition. There is no overflow partition.
	ErrNoPartition = errors.New("no partition for timestamp")

	// ErrUnknownReference is returned when a referenced user, sale, product or
	// category does not exist. Integrity is enforced by the store.
	ErrUnknownReference = errors.New("referenced entity does not exist")
)

// LedgerStore is the append-only sales ledger.
type LedgerStore interface {
	// RecordSale inserts the sale and one line item per product id in a single
	// transaction and populates sale.ID.
	RecordSale(ctx context.Context, sale *v1.Sale) error

	// CountSales counts sales with start <= datetime < end.
	CountSales(ctx context.Context, start, end time.Time) (int64, error)

	// SalesByUser scans one user's sales with start <= datetime < end, newest first.
	SalesByUser(ctx context.Context, userID int64, start, end time.Time, limit int) ([]*v1.Sale, error)

	// Bounds returns the earliest and latest sale timestamps.
	// ok is false when the ledger is empty.
	Bounds(ctx context.Context) (first, last time.Time, ok bool, err error)
}

// CatalogStore creates the reference data sales point at.
// Every upsert is keyed by the entity's natural key and populates the ID.
type CatalogStore interface {
	UpsertUser(ctx context.Context, user *v1.User) error
	UpsertCategory(ctx context.Context, category *v1.Category) error
	UpsertProduct(ctx context.Context, product *v1.Product) error
}

// ProductRank is the best selling product in a date range.
type ProductRank struct {
	ProductID   int64
	Description string
	TotalSold   int64
}

// CustomerRank is the user with the most purchases in a date range.
type CustomerRank struct {
	UserID         int64
	Name           string
	NationalID     string
	TotalPurchases int64
}

// CategoryRevenue is one category's revenue over a date range.
type CategoryRevenue struct {
	CategoryID   int64
	Category     string
	TotalRevenue decimal.Decimal
}

// BackfillStats reports one batched copy of the ledger into its partitioned shadow.
type BackfillStats struct {
	Batches int
	Rows    int64
}
