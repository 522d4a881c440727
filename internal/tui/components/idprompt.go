// Package components provides reusable TUI components for todo.
package components

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/todo/internal/tui/styles"
)

// IDAction identifies what the prompted task ID will be used for.
type IDAction string

const (
	// IDActionComplete marks a task as completed.
	IDActionComplete IDAction = "complete"
	// IDActionEdit edits a task's description.
	IDActionEdit IDAction = "edit"
	// IDActionDelete deletes a task.
	IDActionDelete IDAction = "delete"
)

// IDPrompt asks the user for a numeric task ID. Non-numeric input
// keeps the prompt open with an inline error.
type IDPrompt struct {
	input  *TextInput
	action IDAction
	active bool
	width  int
}

// NewIDPrompt creates a new IDPrompt component.
func NewIDPrompt() *IDPrompt {
	input := NewTextInput("task_id", "Task ID")
	input.SetPlaceholder("e.g. 3")
	input.SetCharLimit(10)

	return &IDPrompt{
		input: input,
		width: 50,
	}
}

// SetWidth sets the prompt width.
func (p *IDPrompt) SetWidth(width int) {
	p.width = width
	p.input.SetWidth(width - 8)
}

// Show opens the prompt for the given action.
func (p *IDPrompt) Show(action IDAction) tea.Cmd {
	p.active = true
	p.action = action
	p.input.Reset()
	return p.input.Focus()
}

// Hide closes the prompt.
func (p *IDPrompt) Hide() {
	p.active = false
	p.input.Blur()
}

// IsActive returns whether the prompt is shown.
func (p *IDPrompt) IsActive() bool {
	return p.active
}

// Action returns the action the prompt was opened for.
func (p *IDPrompt) Action() IDAction {
	return p.action
}

// Update handles input messages.
func (p *IDPrompt) Update(msg tea.Msg) tea.Cmd {
	if !p.active {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			id, err := strconv.Atoi(strings.TrimSpace(p.input.Value()))
			if err != nil || id < 1 {
				p.input.SetError("enter a task number")
				return nil
			}
			action := p.action
			p.Hide()
			return func() tea.Msg {
				return IDSubmitMsg{Action: action, ID: id}
			}
		case "esc":
			p.Hide()
			return func() tea.Msg {
				return IDCancelMsg{}
			}
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// title returns the prompt title for the current action.
func (p *IDPrompt) title() string {
	switch p.action {
	case IDActionComplete:
		return "Complete which task?"
	case IDActionEdit:
		return "Edit which task?"
	case IDActionDelete:
		return "Delete which task?"
	default:
		return "Which task?"
	}
}

// View renders the prompt.
func (p *IDPrompt) View() string {
	if !p.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render(p.title()))
	b.WriteString("\n\n  ")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Enter: confirm  Esc: cancel"))

	return styles.FocusedBoxStyle.Width(p.width - 2).Render(b.String())
}

// IDSubmitMsg is sent when the user enters a valid task ID.
type IDSubmitMsg struct {
	Action IDAction
	ID     int
}

// IDCancelMsg is sent when the user cancels the prompt.
type IDCancelMsg struct{}
