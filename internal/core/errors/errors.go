package errors

import (
	"errors"

	"github.com/retail-lab/salesboard/internal/core/daterange"
)

const (
	HttpInternalError       = "internal_error"
	HttpInvalidDateFormat   = "invalid_date_format"
	HttpInvalidDateRange    = "invalid_date_range"
	HttpFutureEndDate       = "future_end_date"
	HttpNotFound            = "not_found"
	HttpInvalidJsonError    = "invalid_json"
	HttpUnknownReference    = "unknown_reference"
	HttpNoPartition         = "no_partition"
	HttpDuplicateEntryError = "duplicate_entry"
	HttpUnknownAggregate    = "unknown_aggregate"
)

// Canonical user-facing messages. Store error text never reaches a client.
const (
	MsgInvalidDateFormat = "Date format is invalid. Use this format: 'YYYY-MM-DD'."
	MsgInvertedRange     = "Initial date cannot be greater than the final date."
	MsgFutureEndDate     = "The end date cannot be greater than today."
	MsgInternal          = "Internal server error."
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// DateRangeResponse maps a daterange validation error to its canonical body.
// Anything that is not an inverted range or future end date is reported as a
// format error.
func DateRangeResponse(err error) ErrorResponse {
	switch {
	case errors.Is(err, daterange.ErrInvertedRange):
		return ErrorResponse{ErrorType: HttpInvalidDateRange, Message: MsgInvertedRange}
	case errors.Is(err, daterange.ErrFutureEndDate):
		return ErrorResponse{ErrorType: HttpFutureEndDate, Message: MsgFutureEndDate}
	default:
		return ErrorResponse{ErrorType: HttpInvalidDateFormat, Message: MsgInvalidDateFormat}
	}
}
