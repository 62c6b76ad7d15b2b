// Package errors defines the application error taxonomy. Every workflow
// failure maps to an AppError, which the HTTP adapter renders as a
// field-to-message JSON object with the matching status code.
package errors

import (
	"net/http"

	"devnet/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int             // HTTP status code
	ErrorCode() string         // Business error code
	Fields() map[string]string // Field-to-message payload rendered to the client
}

// FieldError is an error tied to a single input field.
type FieldError struct {
	httpCode  int
	errorCode string
	field     string
	message   string
}

// NewFieldError creates a field-scoped application error.
func NewFieldError(httpCode int, errorCode, field, message string) *FieldError {
	return &FieldError{
		httpCode:  httpCode,
		errorCode: errorCode,
		field:     field,
		message:   message,
	}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *FieldError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *FieldError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *FieldError) ErrorCode() string {
	return e.errorCode
}

// Fields returns the field-to-message payload.
func (e *FieldError) Fields() map[string]string {
	return map[string]string{e.field: e.message}
}

// Predefined error types. The messages are part of the API contract and
// rendered to clients verbatim.
var (
	ErrEmailExists = NewFieldError(
		http.StatusBadRequest,
		"EMAIL_EXISTS",
		"email",
		"Email already exist",
	)

	ErrUserNotFound = NewFieldError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"email",
		"User not found",
	)

	ErrPasswordIncorrect = NewFieldError(
		http.StatusBadRequest,
		"PASSWORD_INCORRECT",
		"password",
		"Password incorrect",
	)

	ErrInvalidBody = NewFieldError(
		http.StatusBadRequest,
		"INVALID_BODY",
		"error",
		"Invalid request body",
	)
)

// ValidationError carries the full field-to-message mapping produced by
// structural input validation.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from a field-to-message map.
func NewValidationError(fields map[string]string) AppError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "input validation failed"
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Fields returns the field-to-message payload.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// StorageError represents a credential store failure. It surfaces as a 5xx
// response rather than being swallowed into a server-side log line.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error.
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Fields returns the field-to-message payload.
func (e *StorageError) Fields() map[string]string {
	return map[string]string{"error": "Storage failure: " + e.details}
}
