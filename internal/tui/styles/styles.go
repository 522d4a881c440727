// Package styles provides Lip Gloss styles for the todo TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)
)

// Priority styles. High priority renders red, medium amber, low green.
var (
	PriorityHighStyle = lipgloss.NewStyle().
				Foreground(Error).
				Bold(true)

	PriorityMediumStyle = lipgloss.NewStyle().
				Foreground(Warning)

	PriorityLowStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Task status icons.
var (
	// StatusCompleted is the completed task icon.
	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Render("✓")

	// StatusPending is the pending task icon.
	StatusPending = lipgloss.NewStyle().
			Foreground(Muted).
			Render("○")

	// OverdueMarkerStyle renders the overdue tag next to a due date.
	OverdueMarkerStyle = lipgloss.NewStyle().
				Foreground(Error).
				Bold(true)
)

// Menu styles.
var (
	// MenuNumberStyle is for the numeric shortcut of a menu entry.
	MenuNumberStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// MenuLabelStyle is for the menu entry label.
	MenuLabelStyle = lipgloss.NewStyle().
			Foreground(Foreground)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Form component styles.
var (
	// FormTitleStyle is for form titles.
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// FormLabelStyle is for form field labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for focused form field labels.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// ButtonPrimaryStyle is for primary buttons (focused).
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryUnfocusedStyle is for secondary buttons (unfocused).
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	// ButtonDangerStyle is for danger buttons (focused).
	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)
