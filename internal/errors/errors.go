// Package errors provides sentinel errors and structured error details for the mlbundle CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a definition or config failed schema validation.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates the filesystem refused an operation.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file, directory, or definition was not found.
	ErrNotFound = errors.New("not found")

	// ErrNotImplemented indicates an operation that is deliberately unsupported.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCapability indicates a transformer is missing a required attribute.
	ErrCapability = errors.New("missing capability")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path (optional).
	Location string

	// Field is the field name for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
// The result matches both ErrPermission and cause.
func NewPermissionError(message string, context map[string]string, hint string, cause error) error {
	wrapped := ErrPermission
	if cause != nil {
		wrapped = errors.Join(ErrPermission, cause)
	}
	return &DetailError{
		Type:    "permission denied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   wrapped,
	}
}

// NewNotImplementedError creates an unsupported-operation error.
func NewNotImplementedError(operation, location string) error {
	return &DetailError{
		Type:     "not implemented",
		Message:  operation + " is not supported",
		Location: location,
		Hint:     "Bundles can be written and inspected with 'mlbundle tree', but not loaded back.",
		Cause:    ErrNotImplemented,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
