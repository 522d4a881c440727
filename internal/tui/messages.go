// Package tui provides the terminal user interface for todo.
package tui

// Message types for store operations that run as commands.

// SaveResultMsg reports the outcome of writing tasks to disk.
type SaveResultMsg struct {
	Count int
	Path  string
	Err   error
}

// LoadResultMsg reports the outcome of reloading tasks from disk.
type LoadResultMsg struct {
	Count int
	Path  string
	Err   error
}
