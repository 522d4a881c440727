// Package errors provides error types for the todo application.
// This file contains task and persistence error constructors.
package errors

import (
	"fmt"
)

// TaskNotFound creates an error for an unknown task ID.
func TaskNotFound(id int) *TodoError {
	return &TodoError{
		Kind:       ErrNotFound,
		Message:    fmt.Sprintf("task %d not found", id),
		Suggestion: "List your tasks to see valid task IDs.",
		Details: map[string]string{
			"id": fmt.Sprintf("%d", id),
		},
	}
}

// EmptyDescription creates an error for a blank task description.
func EmptyDescription() *TodoError {
	return &TodoError{
		Kind:       ErrValidation,
		Message:    "task description cannot be empty",
		Suggestion: "Enter a short description of the task.",
	}
}

// InvalidPriority creates an error for an unknown priority value.
func InvalidPriority(p string) *TodoError {
	return &TodoError{
		Kind:       ErrValidation,
		Message:    fmt.Sprintf("invalid priority %q", p),
		Suggestion: "Use one of: high, medium, low.",
	}
}

// InvalidDueDate creates an error for an unparseable due date.
func InvalidDueDate(s string) *TodoError {
	return &TodoError{
		Kind:       ErrValidation,
		Message:    fmt.Sprintf("invalid due date %q", s),
		Suggestion: "Use the YYYY-MM-DD format, e.g. 2026-12-31.",
	}
}

// SaveFailed creates an error for a failed save.
// The in-memory task list is unaffected by a failed save.
func SaveFailed(path string, cause error) *TodoError {
	return &TodoError{
		Kind:       ErrStorage,
		Message:    fmt.Sprintf("failed to save tasks to %s", path),
		Suggestion: "Check that the file is writable and the disk is not full, then save again.",
		Cause:      cause,
		Details: map[string]string{
			"path": path,
		},
	}
}

// LoadFailed creates an error for an unrecoverable read failure.
// A missing or malformed file is not a load failure; it loads as empty.
func LoadFailed(path string, cause error) *TodoError {
	return &TodoError{
		Kind:       ErrStorage,
		Message:    fmt.Sprintf("failed to read tasks from %s", path),
		Suggestion: "Check the file permissions.",
		Cause:      cause,
		Details: map[string]string{
			"path": path,
		},
	}
}
