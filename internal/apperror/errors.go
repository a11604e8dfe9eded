// Package apperror defines the domain error taxonomy. Every error crossing a
// service boundary is one of these; handlers map them to HTTP responses with
// errors.As and never expose raw infrastructure errors to the client.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	TypeValidation = "validation"
	TypeNotFound   = "not_found"
	TypeConflict   = "conflict"
	TypeGeneration = "generation"
	TypeStore      = "store"
)

// AppError carries an HTTP status code, a machine-readable type, and a
// message safe to show to the client. Internal holds the underlying cause
// for logging only.
type AppError struct {
	Code     int
	Type     string
	Message  string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewValidation reports malformed or missing input. Message is the first
// failing field's message, verbatim.
func NewValidation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Type: TypeValidation, Message: message}
}

// NewNotFound reports a referenced entity that does not exist.
func NewNotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Type: TypeNotFound, Message: message}
}

// NewConflict reports a duplicate pairing. Surfaced as 400, matching the
// public API contract.
func NewConflict(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Type: TypeConflict, Message: message}
}

// NewGeneration reports an oracle call that failed or returned unusable
// output. The cause stays internal.
func NewGeneration(message string, cause error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Type: TypeGeneration, Message: message, Internal: cause}
}

// NewStore reports a persistence failure. The cause stays internal.
func NewStore(message string, cause error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Type: TypeStore, Message: message, Internal: cause}
}

// HTTPStatus returns the status code for err, or 500 when err is not an
// AppError.
func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return http.StatusInternalServerError
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, typ string) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == typ
}
