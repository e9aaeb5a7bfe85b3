package ingestion

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/retail-lab/salesboard/internal/api/v1"
	"github.com/retail-lab/salesboard/internal/core/daterange"
	httperr "github.com/retail-lab/salesboard/internal/core/errors"
	"github.com/retail-lab/salesboard/internal/core/storage"
)

const (
	maxSalesPageSize = 1000

	msgReadBodyFailed   = "Failed to read request body"
	msgInvalidJSON      = "Invalid JSON body"
	msgPersistFailed    = "Failed to persist entry"
	msgDuplicateEntry   = "Entry already exists"
	msgUnknownReference = "Referenced user, product or category does not exist"
	msgNoPartition      = "Sale datetime is outside the provisioned ledger range"
	msgInvalidUserID    = "User id must be a positive integer"
	msgInvalidLimit     = "Limit must be a positive integer"
	msgListSalesFailed  = "Failed to list sales"
	msgBodyTooLarge     = "Request body exceeds maximum allowed size"
	msgUnknownAggregate = "Unknown aggregate kind"
	msgRefreshFailed    = "Refresh failed"
	msgNoDailyRows      = "Aggregate kind has no daily rows"
	msgReadAggregates   = "Failed to read aggregates"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// RecordSaleHandler handles POST /v1/sales.
// The sale row and every line item are written in one transaction.
func (s *Service) RecordSaleHandler(c *gin.Context) {
	var sale v1.Sale
	if err := s.parseBody(c, &sale); err != nil {
		writeError(c, err)
		return
	}

	if err := sale.Validate(); err != nil {
		slog.Warn("[Ledger] Sale validation failed", "error", err, "user_id", sale.UserID)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    err.Error(),
		})
		return
	}

	if err := s.ledger.RecordSale(c.Request.Context(), &sale); err != nil {
		writeError(c, persistError("sale", err))
		return
	}

	slog.Info("[Ledger] Recorded sale",
		"sale_id", sale.ID,
		"user_id", sale.UserID,
		"datetime", sale.OccurredAt,
		"line_items", len(sale.ProductIDs))

	c.JSON(http.StatusCreated, sale)
}

// ListUserSalesHandler handles GET /v1/users/:id/sales?start_date&end_date&limit
func (s *Service) ListUserSalesHandler(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidUserID,
		})
		return
	}

	limit := defaultSalesPageSize
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(c, &ingestionError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpInvalidJsonError,
				message:    msgInvalidLimit,
			})
			return
		}
		limit = min(limit, maxSalesPageSize)
	}

	r, err := daterange.Parse(c.Query("start_date"), c.Query("end_date"), s.nowFn(), s.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.DateRangeResponse(err))
		return
	}

	from := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 0, r.Days())

	sales, err := s.ledger.SalesByUser(c.Request.Context(), userID, from, to, limit)
	if err != nil {
		slog.Error("[Ledger] Failed to list sales", "error", err, "user_id", userID, "range", r.String())
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgListSalesFailed,
		})
		return
	}
	if sales == nil {
		sales = []*v1.Sale{}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"sales":   sales,
	})
}

// parseBody reads the raw request body under the size limit and binds it into dst.
func (s *Service) parseBody(c *gin.Context, dst interface{}) *ingestionError {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgBodyTooLarge,
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	return nil
}

// persistError maps a store error to its HTTP shape. Only the classified
// sentinels get a specific status; everything else is a generic 500.
func persistError(entity string, err error) *ingestionError {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		slog.Info("Duplicate entry rejected", "entity", entity)
		return &ingestionError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpDuplicateEntryError,
			message:    msgDuplicateEntry,
		}
	case errors.Is(err, storage.ErrUnknownReference):
		return &ingestionError{
			statusCode: http.StatusUnprocessableEntity,
			errorType:  httperr.HttpUnknownReference,
			message:    msgUnknownReference,
		}
	case errors.Is(err, storage.ErrNoPartition):
		slog.Warn("[Ledger] Sale rejected, no partition for timestamp", "entity", entity)
		return &ingestionError{
			statusCode: http.StatusUnprocessableEntity,
			errorType:  httperr.HttpNoPartition,
			message:    msgNoPartition,
		}
	}

	slog.Error("Failed to persist entry", "entity", entity, "error", err)
	return &ingestionError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    msgPersistFailed,
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
