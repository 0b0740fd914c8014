// Package errors defines the typed errors shared by the operation layer
// and the CLI/HTTP/MCP surfaces.
package errors

import "fmt"

// ErrorCode represents a board error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrInvalidRecord    ErrorCode = "INVALID_RECORD"    // 422
	ErrStoreUnavailable ErrorCode = "STORE_UNAVAILABLE" // 503
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// BoardError represents a structured error with code, status, and details.
type BoardError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *BoardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for malformed request parameters.
func NewInvalidRequest(msg string) *BoardError {
	return &BoardError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for an unknown posting id.
func NewNotFound(id string) *BoardError {
	return &BoardError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("internship not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewInvalidRecord creates a 422 error for a draft that fails validation.
func NewInvalidRecord(reason string) *BoardError {
	return &BoardError{
		Code:    ErrInvalidRecord,
		Status:  422,
		Message: reason,
		Details: map[string]any{"reason": reason},
	}
}

// NewStoreUnavailable creates a 503 error for persistence failures that
// could not be degraded away.
func NewStoreUnavailable(msg string) *BoardError {
	return &BoardError{
		Code:    ErrStoreUnavailable,
		Status:  503,
		Message: msg,
	}
}

// NewInternal creates a 500 error wrapping an unexpected failure.
func NewInternal(err error) *BoardError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &BoardError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a BoardError with the given code.
func Is(err error, code ErrorCode) bool {
	if bErr, ok := err.(*BoardError); ok {
		return bErr.Code == code
	}
	return false
}
