// Package components provides reusable TUI components for todo.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/todo/internal/tui/styles"
)

// ConfirmAction represents the question being confirmed.
type ConfirmAction string

const (
	// ConfirmActionShowCompleted asks whether to include completed
	// tasks in the view.
	ConfirmActionShowCompleted ConfirmAction = "show_completed"
	// ConfirmActionSaveOnExit asks whether to save before exiting.
	ConfirmActionSaveOnExit ConfirmAction = "save_on_exit"
)

// ConfirmDialog displays a yes/no prompt.
type ConfirmDialog struct {
	visible     bool
	action      ConfirmAction
	title       string
	message     string
	width       int
	destructive bool
}

// NewConfirmDialog creates a new ConfirmDialog component.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{
		visible: false,
		width:   50,
	}
}

// Show displays the dialog with the given action, title, and message.
func (c *ConfirmDialog) Show(action ConfirmAction, title, message string, destructive bool) {
	c.visible = true
	c.action = action
	c.title = title
	c.message = message
	c.destructive = destructive
}

// ShowCompleted asks whether the task view should include completed tasks.
func (c *ConfirmDialog) ShowCompleted() {
	c.Show(ConfirmActionShowCompleted, "Show completed tasks?",
		"Include tasks that are already done in the list.",
		false)
}

// ShowSaveOnExit asks whether to save before exiting.
func (c *ConfirmDialog) ShowSaveOnExit(path string) {
	c.Show(ConfirmActionSaveOnExit, "Save before exiting?",
		"Unsaved changes will be written to "+path+".",
		false)
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
}

// IsVisible returns whether the dialog is visible.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// Action returns the current action being confirmed.
func (c *ConfirmDialog) Action() ConfirmAction {
	return c.action
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
}

// Update handles input messages.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !c.visible {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			action := c.action
			c.Hide()
			return func() tea.Msg {
				return ConfirmYesMsg{Action: action}
			}
		case "n", "esc":
			action := c.action
			c.Hide()
			return func() tea.Msg {
				return ConfirmNoMsg{Action: action}
			}
		}
	}
	return nil
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	var b strings.Builder

	titleBg := styles.Primary
	if c.destructive {
		titleBg = styles.Error
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(titleBg).
		Bold(true).
		Padding(0, 1).
		Width(c.width - 4)
	b.WriteString(titleStyle.Render("  " + c.title))
	b.WriteString("\n\n")

	msgStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(c.width - 8)
	b.WriteString(msgStyle.Render(c.message))
	b.WriteString("\n\n")

	yesStyle := styles.ButtonPrimaryStyle
	if c.destructive {
		yesStyle = styles.ButtonDangerStyle
	}
	b.WriteString(yesStyle.Render("[Y]es"))
	b.WriteString("  ")
	b.WriteString(styles.ButtonSecondaryUnfocusedStyle.Render("[N]o"))

	borderColor := styles.BorderColor
	if c.destructive {
		borderColor = styles.Error
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// ConfirmYesMsg is sent when the user confirms.
type ConfirmYesMsg struct {
	Action ConfirmAction
}

// ConfirmNoMsg is sent when the user declines.
type ConfirmNoMsg struct {
	Action ConfirmAction
}
