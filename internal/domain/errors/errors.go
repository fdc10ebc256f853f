// Package errors defines the application error taxonomy: conflicts on
// strict-create tables, not-found on absent keys, and bad-request on
// path/body key mismatches or malformed input.
package errors

import (
	"net/http"

	"directory/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Address-related errors. Duplicate creation surfaces as 400 on the
	// wire to keep the original API contract.
	ErrAddressAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_ALREADY_EXISTS",
		"Address with this ID already exists",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	// Person-related errors
	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"Person not found",
		"",
	)

	// Age-related errors
	ErrAgeNotFound = NewBaseError(
		http.StatusNotFound,
		"AGE_NOT_FOUND",
		"Age record not found",
		"",
	)

	ErrAgeNameMismatch = NewBaseError(
		http.StatusBadRequest,
		"AGE_NAME_MISMATCH",
		"Person name in URL must match payload",
		"",
	)

	// Job-related errors
	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"Job not found",
		"",
	)

	ErrJobIDMismatch = NewBaseError(
		http.StatusBadRequest,
		"JOB_ID_MISMATCH",
		"Job ID in URL must match payload",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Health-related errors
	ErrHostResolutionFailed = NewBaseError(
		http.StatusInternalServerError,
		"HOST_RESOLUTION_FAILED",
		"Failed to resolve host address",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
