package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/retail-lab/salesboard/internal/core/storage"
)

const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

// classifyError maps constraint violations onto storage sentinels and wraps
// everything else with op. The original *pq.Error stays in the chain.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case sqlStateUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, storage.ErrDuplicate, err)
		case sqlStateForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, storage.ErrUnknownReference, err)
		case sqlStateCheckViolation:
			// Routing failure on a partitioned table:
			// "no partition of relation \"sales\" found for row"
			if strings.Contains(pqErr.Message, "no partition") {
				return fmt.Errorf("%s: %w: %w", op, storage.ErrNoPartition, err)
			}
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
