// Package errors defines the application error taxonomy. Every refusal the system can
// give carries a stable error code, so callers and tests can tell why an action was denied.
package errors

import (
	"net/http"

	"canteen/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, the kind tag of the error
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any AppError carrying the same error code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	var other AppError
	if !errors.As(target, &other) {
		return false
	}

	return other.ErrorCode() == e.errorCode
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

// Kind returns the error code of the first AppError in err's chain, or "" when there is none.
func Kind(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

// DetailsOf returns the details of the first AppError in err's chain, or "" when there is none.
func DetailsOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Details()
	}

	return ""
}

// IsDenial reports whether err is a refusal rather than a fault: the caller asked for
// something the rules do not allow, and nothing was written.
func IsDenial(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() < http.StatusInternalServerError
}

// Admission denials
var (
	ErrOutsideWindow = NewBaseError(
		http.StatusConflict,
		"OUTSIDE_WINDOW",
		"Ordering is closed: outside any meal window",
		"",
	)

	ErrWrongWindow = NewBaseError(
		http.StatusConflict,
		"WRONG_WINDOW",
		"This item is not served in the requested meal window",
		"",
	)

	ErrItemUnavailable = NewBaseError(
		http.StatusConflict,
		"ITEM_UNAVAILABLE",
		"This item is marked unavailable",
		"",
	)

	ErrNoLinkedIdentity = NewBaseError(
		http.StatusForbidden,
		"NO_LINKED_IDENTITY",
		"No identity is linked to this account",
		"",
	)
)

// Transition and payment denials
var (
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"This status change is not allowed",
		"",
	)

	ErrNotOrderOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_ORDER_OWNER",
		"Only the employee who placed this order may do that",
		"",
	)

	ErrRoleNotPermitted = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_PERMITTED",
		"Your role is not permitted to do that",
		"",
	)

	ErrOrderCancelled = NewBaseError(
		http.StatusConflict,
		"ORDER_CANCELLED",
		"A cancelled order cannot be paid",
		"",
	)

	ErrAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ALREADY_PAID",
		"This order is already paid",
		"",
	)
)

// Lookup, validation and authentication errors
var (
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"A profile with this email already exists",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidSimulation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIMULATION",
		"Simulation parameters are invalid",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_EXISTS",
		"An account with this email already exists",
		"",
	)

	ErrUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"UNSUPPORTED",
		"This operation is not supported by the configured identity provider",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// StoreError represents a rejected read or write against an external store
// (document store, blob store, identity provider), implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a backend failure error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "store operation failed: "+e.details).Error()
}

// Unwrap returns the underlying store error
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "Operation failed, please try again"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
