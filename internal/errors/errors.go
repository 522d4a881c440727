// Package errors provides error types with actionable suggestions for the
// todo application. Errors include contextual information to help users
// resolve issues quickly.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates an operation referenced a nonexistent task.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates invalid user input.
	ErrValidation = errors.New("validation error")
	// ErrStorage indicates a persistence failure.
	ErrStorage = errors.New("storage error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
)

// TodoError is the base error type for todo errors.
// It wraps an underlying error and provides additional context.
type TodoError struct {
	// Kind is the category of error (e.g., ErrNotFound, ErrStorage).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, task ID).
	Details map[string]string
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *TodoError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *TodoError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *TodoError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for k, v := range e.Details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *TodoError) WithDetails(key, value string) *TodoError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *TodoError) WithCause(cause error) *TodoError {
	e.Cause = cause
	return e
}

// New creates a new TodoError with the given kind and message.
func New(kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
