package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeNoChange         ErrorCode = "no_change"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeNothingOwed      ErrorCode = "nothing_owed"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError  ErrorCode = "internal_error"
	ErrCodeDatabaseError  ErrorCode = "database_error"
	ErrCodeServiceError   ErrorCode = "service_error"
	ErrCodeTransferFailed ErrorCode = "transfer_failed"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`

	// Field, Expected and Actual describe a rejected split
	Field    string `json:"field,omitempty"`
	Expected *int64 `json:"expected,omitempty"`
	Actual   *int64 `json:"actual,omitempty"`

	// TransferRef is set when money moved on-chain but the ledger write failed
	TransferRef string `json:"transfer_ref,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// StatusCode returns the HTTP status code of the error
func (e *APIError) StatusCode() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeNoChange, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeNothingOwed:
		return http.StatusUnprocessableEntity
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeTransferFailed:
		return http.StatusBadGateway
	case ErrCodeServiceError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError converts a domain error into an APIError; unknown errors become internal errors
func FromError(err error, message string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *domain.ValidationError
	var persistenceErr *domain.PersistenceError
	switch {
	case errors.As(err, &validationErr):
		e := NewValidationError(validationErr.Error())
		e.Field = validationErr.Field
		if validationErr.Expected != 0 || validationErr.Actual != 0 {
			expected, actual := validationErr.Expected, validationErr.Actual
			e.Expected = &expected
			e.Actual = &actual
		}
		return e
	case errors.As(err, &persistenceErr) && persistenceErr.TransferRef != "":
		e := NewDatabaseError(message, err.Error())
		e.TransferRef = persistenceErr.TransferRef
		return e
	case errors.Is(err, domain.ErrNoChange):
		return &APIError{Code: ErrCodeNoChange, Message: "Split is unchanged", Details: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return &APIError{Code: ErrCodeConflict, Message: "Concurrent modification, retry the request", Details: err.Error()}
	case errors.Is(err, domain.ErrNothingOwed):
		return &APIError{Code: ErrCodeNothingOwed, Message: "Nothing is owed", Details: err.Error()}
	case errors.Is(err, domain.ErrExternalTransfer):
		return &APIError{Code: ErrCodeTransferFailed, Message: "Transfer failed", Details: err.Error()}
	case errors.Is(err, domain.ErrPersistence):
		return NewDatabaseError(message, err.Error())
	case errors.Is(err, domain.ErrAssetNotFound):
		return NewNotFoundError("Asset not found")
	case errors.Is(err, domain.ErrAgreementNotFound):
		return NewNotFoundError("Agreement not found")
	case errors.Is(err, context.DeadlineExceeded):
		return NewServiceError(message, err.Error())
	default:
		return NewInternalError(message, err.Error())
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: "Too many requests",
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}
