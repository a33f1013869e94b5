// Package apperror defines a centralized system for application-specific errors.
// Every failure that crosses a package boundary is classified into one of the
// types below, so handlers can map it to an HTTP response without inspecting
// driver or library internals.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the type of application error.
type ErrorType int

const (
	// DatabaseError represents an unclassified error originating from the database.
	DatabaseError ErrorType = iota
	// AuthError represents an authentication error (e.g. invalid credentials).
	AuthError
	// NotFoundError represents a resource not found error.
	NotFoundError
	// ValidationError represents a field-level validation error.
	ValidationError
	// BadRequestError represents a generic bad request, including malformed identifiers.
	BadRequestError
	// InternalError represents a generic internal server error.
	InternalError
	// ConflictError represents a conflict, e.g. a unique constraint violation.
	ConflictError
)

// AppError is the tagged error type used across the application.
// It carries a user-facing message and optionally wraps an underlying error
// for debugging; only the message ever reaches API clients.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is/errors.As can walk the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case DatabaseError:
		return http.StatusInternalServerError
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError:
		return http.StatusBadRequest
	case BadRequestError:
		return http.StatusBadRequest
	case InternalError:
		return http.StatusInternalServerError
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError with an explicit type.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewDatabaseError creates a new DatabaseError.
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewAuthError creates a new AuthError.
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewBadRequestError creates a new BadRequestError.
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// ErrorResponse represents the error response payload sent to API clients.
type ErrorResponse struct {
	Error string `json:"error" example:"A description of the error"`
}

// ToResponse converts an AppError to an ErrorResponse.
// Only the user-facing Message is included, never the underlying error.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsBadRequest checks if an error is a BadRequestError.
func IsBadRequest(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == BadRequestError
}

// IsConflictError checks if an error is a ConflictError.
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
