// Package components provides reusable TUI components for todo.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/todo/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Pending   int
	Completed int
	Dirty     bool   // Unsaved changes since the last save or load
	StorePath string // Task file location
	Message   string // Result of the last action
	IsError   bool   // Whether Message reports a failure
}

// StatusBar displays task counts, the store path, and the outcome of
// the last action.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetCounts sets the pending and completed task counts.
func (s *StatusBar) SetCounts(pending, completed int) {
	s.data.Pending = pending
	s.data.Completed = completed
}

// SetDirty marks whether there are unsaved changes.
func (s *StatusBar) SetDirty(dirty bool) {
	s.data.Dirty = dirty
}

// SetStorePath sets the displayed task file path.
func (s *StatusBar) SetStorePath(path string) {
	s.data.StorePath = path
}

// SetMessage sets the last action's result message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
	s.data.IsError = false
}

// SetError sets the last action's result as a failure.
func (s *StatusBar) SetError(message string) {
	s.data.Message = message
	s.data.IsError = true
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.data.Message
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	countLabel := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render("Tasks: ")
	countValue := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Render(fmt.Sprintf("%d open, %d done", s.data.Pending, s.data.Completed))

	leftContent := countLabel + countValue

	if s.data.StorePath != "" {
		fileLabel := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Render("File: ")
		fileValue := lipgloss.NewStyle().
			Foreground(styles.Foreground).
			Render(s.data.StorePath)
		leftContent += sep + fileLabel + fileValue
	}

	if s.data.Dirty {
		leftContent += sep + lipgloss.NewStyle().
			Foreground(styles.Warning).
			Render("● unsaved")
	}

	rightContent := ""
	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.Success)
		if s.data.IsError {
			msgStyle = lipgloss.NewStyle().
				Foreground(styles.Error)
		}
		rightContent = msgStyle.Render(s.data.Message)
	}

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // -2 for container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	if rightContent != "" {
		return containerStyle.Render(leftContent + "  " + rightContent)
	}
	return containerStyle.Render(leftContent)
}
