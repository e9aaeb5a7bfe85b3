package postgres

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	v1 "github.com/retail-lab/salesboard/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanSaleRow scans one row of querySalesByUser.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanSaleRow(row scanner) (*v1.Sale, error) {
	var sale v1.Sale
	var productIDs pq.Int64Array

	if err := row.Scan(&sale.ID, &sale.UserID, &sale.OccurredAt, &productIDs); err != nil {
		return nil, fmt.Errorf("failed to scan sale row: %w", err)
	}

	sale.OccurredAt = sale.OccurredAt.UTC()
	sale.ProductIDs = []int64(productIDs)
	if sale.ProductIDs == nil {
		sale.ProductIDs = []int64{}
	}
	return &sale, nil
}

// ledgerTime converts t to the wall-clock UTC value stored in TIMESTAMP columns.
func ledgerTime(t time.Time) time.Time {
	return t.UTC()
}

// dateParam formats t as a DATE literal for $n::date parameters.
func dateParam(t time.Time) string {
	return t.Format(time.DateOnly)
}
