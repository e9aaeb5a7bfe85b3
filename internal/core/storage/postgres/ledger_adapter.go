package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/retail-lab/salesboard/internal/api/v1"
)

// LedgerAdapter implements storage.LedgerStore and storage.CatalogStore.
//
// The read statements are prepared once at construction, so the adapter must
// be built after migrations have created the partitioned ledger.
type LedgerAdapter struct {
	db                *sql.DB
	stmtCountSales    *sql.Stmt
	stmtSalesByUser   *sql.Stmt
	stmtLedgerBounds  *sql.Stmt
	stmtUpsertProduct *sql.Stmt
}

// NewLedgerAdapter prepares the ledger statements on the shared pool.
func NewLedgerAdapter(db *sql.DB) (*LedgerAdapter, error) {
	prepared := make([]*sql.Stmt, 0, 4)
	prepare := func(name, query string) (*sql.Stmt, error) {
		stmt, err := db.Prepare(query)
		if err != nil {
			for _, s := range prepared {
				s.Close()
			}
			return nil, fmt.Errorf("failed to prepare %s statement: %w", name, err)
		}
		prepared = append(prepared, stmt)
		return stmt, nil
	}

	stmtCount, err := prepare("countSales", queryCountSales)
	if err != nil {
		return nil, err
	}
	stmtByUser, err := prepare("salesByUser", querySalesByUser)
	if err != nil {
		return nil, err
	}
	stmtBounds, err := prepare("ledgerBounds", queryLedgerBounds)
	if err != nil {
		return nil, err
	}
	stmtProduct, err := prepare("upsertProduct", queryUpsertProduct)
	if err != nil {
		return nil, err
	}

	slog.Info("[Ledger] Adapter initialized with prepared statements")

	return &LedgerAdapter{
		db:                db,
		stmtCountSales:    stmtCount,
		stmtSalesByUser:   stmtByUser,
		stmtLedgerBounds:  stmtBounds,
		stmtUpsertProduct: stmtProduct,
	}, nil
}

// RecordSale writes the sale row and its line items in one transaction and
// populates sale.ID.
//
// Returns storage.ErrNoPartition when no monthly partition covers the sale
// timestamp, and storage.ErrUnknownReference when the user or a product does
// not exist. Nothing is written in either case.
func (a *LedgerAdapter) RecordSale(ctx context.Context, sale *v1.Sale) error {
	occurredAt := ledgerTime(sale.OccurredAt)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record sale: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var saleID int64
	if err := tx.QueryRowContext(ctx, queryInsertSale, sale.UserID, occurredAt).Scan(&saleID); err != nil {
		return classifyError("record sale: insert sale", err)
	}

	lineStmt, err := tx.PrepareContext(ctx, queryInsertLineItem)
	if err != nil {
		return fmt.Errorf("record sale: prepare line item: %w", err)
	}
	defer lineStmt.Close()

	for _, productID := range sale.ProductIDs {
		if _, err := lineStmt.ExecContext(ctx, saleID, occurredAt, productID); err != nil {
			return classifyError(fmt.Sprintf("record sale: insert line item (product %d)", productID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record sale: commit: %w", err)
	}

	sale.ID = saleID

	slog.Debug("[Ledger] Recorded sale",
		"sale_id", saleID,
		"user_id", sale.UserID,
		"datetime", occurredAt,
		"line_items", len(sale.ProductIDs))
	return nil
}

// CountSales counts sales with start <= datetime < end.
func (a *LedgerAdapter) CountSales(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	if err := a.stmtCountSales.QueryRowContext(ctx, ledgerTime(start), ledgerTime(end)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}

// SalesByUser scans one user's sales in [start, end), newest first.
func (a *LedgerAdapter) SalesByUser(ctx context.Context, userID int64, start, end time.Time, limit int) ([]*v1.Sale, error) {
	rows, err := a.stmtSalesByUser.QueryContext(ctx, userID, ledgerTime(start), ledgerTime(end), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales by user: %w", err)
	}
	defer rows.Close()

	sales := make([]*v1.Sale, 0)
	for rows.Next() {
		sale, err := scanSaleRow(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

// Bounds returns the earliest and latest sale timestamps.
func (a *LedgerAdapter) Bounds(ctx context.Context) (time.Time, time.Time, bool, error) {
	var first, last sql.NullTime
	if err := a.stmtLedgerBounds.QueryRowContext(ctx).Scan(&first, &last); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("ledger bounds: %w", err)
	}
	if !first.Valid || !last.Valid {
		return time.Time{}, time.Time{}, false, nil
	}
	return first.Time.UTC(), last.Time.UTC(), true, nil
}

// UpsertUser creates the user or resolves the existing one by national id.
// On conflict the stored name wins.
func (a *LedgerAdapter) UpsertUser(ctx context.Context, user *v1.User) error {
	err := a.db.QueryRowContext(ctx, queryUpsertUser, user.Name, user.NationalID).Scan(&user.ID, &user.Name)
	if err != nil {
		return classifyError("upsert user", err)
	}
	return nil
}

// UpsertCategory creates the category or resolves the existing one by description.
func (a *LedgerAdapter) UpsertCategory(ctx context.Context, category *v1.Category) error {
	if err := a.db.QueryRowContext(ctx, queryUpsertCategory, category.Description).Scan(&category.ID); err != nil {
		return classifyError("upsert category", err)
	}
	return nil
}

// UpsertProduct creates the product or updates its category and current price.
func (a *LedgerAdapter) UpsertProduct(ctx context.Context, product *v1.Product) error {
	err := a.stmtUpsertProduct.QueryRowContext(ctx,
		product.CategoryID,
		product.Description,
		product.Price,
	).Scan(&product.ID)
	if err != nil {
		return classifyError("upsert product", err)
	}
	return nil
}

// Close closes the prepared statements. The pool itself belongs to Adapter.
func (a *LedgerAdapter) Close() error {
	var firstErr error

	for _, s := range []struct {
		name string
		stmt *sql.Stmt
	}{
		{"countSales", a.stmtCountSales},
		{"salesByUser", a.stmtSalesByUser},
		{"ledgerBounds", a.stmtLedgerBounds},
		{"upsertProduct", a.stmtUpsertProduct},
	} {
		if err := s.stmt.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close %s statement: %w", s.name, err)
		}
	}

	return firstErr
}
