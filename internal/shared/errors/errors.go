// Package errors provides application-level error types and utilities.
// Every rejected operation surfaces one AppError whose Type is stable and
// machine-readable, so callers can render a specific message per failure kind.
package errors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation            ErrorType = "validation_error"
	ErrorTypeNotFound              ErrorType = "not_found"
	ErrorTypeConflict              ErrorType = "conflict"
	ErrorTypeUnauthorized          ErrorType = "unauthorized"
	ErrorTypeForbidden             ErrorType = "forbidden"
	ErrorTypeInternal              ErrorType = "internal_error"
	ErrorTypeBadRequest            ErrorType = "bad_request"
	ErrorTypeInvalidTransition     ErrorType = "invalid_transition"
	ErrorTypeTerminalState         ErrorType = "terminal_state"
	ErrorTypeAgentInactive         ErrorType = "agent_inactive"
	ErrorTypeAgentHasOpenInquiries ErrorType = "agent_has_open_inquiries"
	ErrorTypeTransient             ErrorType = "transient_error"
	ErrorTypeTooManyRequests       ErrorType = "too_many_requests"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error (missing or invalid credentials)
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error (role or ownership check failed)
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewInvalidTransitionError creates an error for an illegal workflow move
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidTransition, http.StatusUnprocessableEntity, message, details)
}

// NewTerminalStateError creates an error for a mutation attempted on a closed record
func NewTerminalStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTerminalState, http.StatusUnprocessableEntity, message, details)
}

// NewAgentInactiveError creates an error for an assignment to a deactivated agent
func NewAgentInactiveError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAgentInactive, http.StatusUnprocessableEntity, message, details)
}

// NewAgentHasOpenInquiriesError creates an error for deleting an agent that still holds work
func NewAgentHasOpenInquiriesError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAgentHasOpenInquiries, http.StatusConflict, message, details)
}

// NewTransientError creates an error for storage or network failures that are safe to retry
func NewTransientError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTransient, http.StatusServiceUnavailable, message, details)
}

// NewTooManyRequestsError creates a rate limit error
func NewTooManyRequestsError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTooManyRequests, http.StatusTooManyRequests, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsTransientError checks if the error is a retryable storage error
func IsTransientError(err error) bool {
	return IsType(err, ErrorTypeTransient)
}

// FromStorage converts a raw storage failure into an AppError. Only failures
// a retry can clear (timeouts, lost connections, lock contention) become a
// TransientError; anything else, such as a row that no longer maps onto the
// domain, is an InternalError.
func FromStorage(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewTransientError(message, "operation timed out")
	}
	if IsRetryableStorageError(err) {
		return NewTransientError(message)
	}
	return NewInternalError(message)
}

var retryableStorageMessages = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"bad connection",
	"invalid connection",
	"i/o timeout",
	"too many connections",
	"database is locked",
	"lock wait timeout",
	"deadlock found",
}

// IsRetryableStorageError reports whether err comes from the connection or
// lock layer rather than from the data itself.
func IsRetryableStorageError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range retryableStorageMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite and PostgreSQL unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "unique constraint") {
		return true
	}
	return false
}
