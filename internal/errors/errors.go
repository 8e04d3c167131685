// Package errors provides custom error types for the Dealflow API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryHasDeals = &AppError{Code: "CATEGORY_HAS_DEALS", Message: "Category has associated deals", StatusCode: http.StatusConflict}
)

// Deal errors.
var (
	ErrDealNotFound      = &AppError{Code: "DEAL_NOT_FOUND", Message: "Deal not found", StatusCode: http.StatusNotFound}
	ErrDuplicateDealCode = &AppError{Code: "DUPLICATE_DEAL_CODE", Message: "A deal with this code already exists", StatusCode: http.StatusConflict}
)

// Deal detail errors.
var (
	ErrDealDetailNotFound = &AppError{Code: "DEAL_DETAIL_NOT_FOUND", Message: "Deal detail not found", StatusCode: http.StatusNotFound}
	ErrDealDetailExists   = &AppError{Code: "DEAL_DETAIL_EXISTS", Message: "Deal detail already exists for this deal", StatusCode: http.StatusConflict}
)
