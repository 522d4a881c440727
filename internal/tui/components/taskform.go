// Package components provides reusable TUI components for todo.
package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui/styles"
)

// TaskFormMode represents the current form mode.
type TaskFormMode int

const (
	// TaskFormModeIdle means the form is not shown.
	TaskFormModeIdle TaskFormMode = iota
	// TaskFormModeAdd collects a new task's fields.
	TaskFormModeAdd
	// TaskFormModeEdit collects a replacement description for an
	// existing task.
	TaskFormModeEdit
)

// TaskForm collects task fields inline. In add mode it shows
// description, priority, and due date inputs; in edit mode only the
// description. Invalid input keeps the form open with an inline error.
type TaskForm struct {
	mode       TaskFormMode
	descInput  *TextInput
	priInput   *TextInput
	dueInput   *TextInput
	focusField int
	editID     int
	width      int
}

// NewTaskForm creates a new TaskForm component.
func NewTaskForm() *TaskForm {
	descInput := NewTextInput("description", "Description")
	descInput.SetPlaceholder("What needs doing?")
	descInput.SetCharLimit(500)

	priInput := NewTextInput("priority", "Priority")
	priInput.SetPlaceholder("high, medium, or low (default medium)")

	dueInput := NewTextInput("due_date", "Due date")
	dueInput.SetPlaceholder("YYYY-MM-DD (optional)")
	dueInput.SetCharLimit(10)

	return &TaskForm{
		mode:      TaskFormModeIdle,
		descInput: descInput,
		priInput:  priInput,
		dueInput:  dueInput,
		width:     80,
	}
}

// SetWidth sets the form width.
func (f *TaskForm) SetWidth(width int) {
	f.width = width
	f.descInput.SetWidth(width - 8)
	f.priInput.SetWidth(width - 8)
	f.dueInput.SetWidth(width - 8)
}

// Mode returns the current form mode.
func (f *TaskForm) Mode() TaskFormMode {
	return f.mode
}

// IsActive returns true if the form is shown.
func (f *TaskForm) IsActive() bool {
	return f.mode != TaskFormModeIdle
}

// StartAdd opens the form for a new task.
func (f *TaskForm) StartAdd() tea.Cmd {
	f.mode = TaskFormModeAdd
	f.editID = 0
	f.descInput.Reset()
	f.priInput.Reset()
	f.dueInput.Reset()
	f.focusField = 0
	return f.updateFocus()
}

// StartEdit opens the form to change the description of task id.
func (f *TaskForm) StartEdit(id int, description string) tea.Cmd {
	f.mode = TaskFormModeEdit
	f.editID = id
	f.descInput.Reset()
	f.descInput.SetValue(description)
	f.focusField = 0
	return f.updateFocus()
}

// Cancel closes the form.
func (f *TaskForm) Cancel() {
	f.mode = TaskFormModeIdle
	f.editID = 0
	f.descInput.Blur()
	f.priInput.Blur()
	f.dueInput.Blur()
}

// EditID returns the task being edited (0 if adding).
func (f *TaskForm) EditID() int {
	return f.editID
}

// fieldCount returns how many inputs the current mode shows.
func (f *TaskForm) fieldCount() int {
	if f.mode == TaskFormModeEdit {
		return 1
	}
	return 3
}

// nextField moves focus to the next field.
func (f *TaskForm) nextField() tea.Cmd {
	f.focusField = (f.focusField + 1) % f.fieldCount()
	return f.updateFocus()
}

// prevField moves focus to the previous field.
func (f *TaskForm) prevField() tea.Cmd {
	n := f.fieldCount()
	f.focusField = (f.focusField + n - 1) % n
	return f.updateFocus()
}

// updateFocus updates input focus based on focusField.
func (f *TaskForm) updateFocus() tea.Cmd {
	inputs := []*TextInput{f.descInput, f.priInput, f.dueInput}
	var cmd tea.Cmd
	for i, in := range inputs {
		if i == f.focusField {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// validate checks the current values and sets inline errors.
// Returns the parsed values when everything is valid.
func (f *TaskForm) validate() (desc string, pri task.Priority, due string, ok bool) {
	ok = true

	desc = strings.TrimSpace(f.descInput.Value())
	if desc == "" {
		f.descInput.SetError("description required")
		ok = false
	}

	if f.mode == TaskFormModeEdit {
		return desc, "", "", ok
	}

	pri, valid := task.ParsePriority(f.priInput.Value())
	if !valid {
		f.priInput.SetError("must be high, medium, or low")
		ok = false
	}

	due = strings.TrimSpace(f.dueInput.Value())
	if due != "" && !task.ValidDate(due) {
		f.dueInput.SetError("must be YYYY-MM-DD")
		ok = false
	}

	return desc, pri, due, ok
}

// Update handles input messages.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	if f.mode == TaskFormModeIdle {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return f.nextField()
		case "shift+tab", "up":
			return f.prevField()
		case "enter":
			desc, pri, due, ok := f.validate()
			if !ok {
				return nil
			}
			mode := f.mode
			editID := f.editID
			f.Cancel()
			return func() tea.Msg {
				return TaskFormSubmitMsg{
					Mode:        mode,
					EditID:      editID,
					Description: desc,
					Priority:    pri,
					DueDate:     due,
				}
			}
		case "esc":
			f.Cancel()
			return func() tea.Msg {
				return TaskFormCancelMsg{}
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusField {
	case 0:
		f.descInput, cmd = f.descInput.Update(msg)
	case 1:
		f.priInput, cmd = f.priInput.Update(msg)
	case 2:
		f.dueInput, cmd = f.dueInput.Update(msg)
	}
	return cmd
}

// View renders the task form.
func (f *TaskForm) View() string {
	if f.mode == TaskFormModeIdle {
		return ""
	}

	title := "Add Task"
	if f.mode == TaskFormModeEdit {
		title = fmt.Sprintf("Edit Task %d", f.editID)
	}

	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render(title))
	b.WriteString("\n\n  ")
	b.WriteString(f.descInput.View())
	if f.mode == TaskFormModeAdd {
		b.WriteString("\n  ")
		b.WriteString(f.priInput.View())
		b.WriteString("\n  ")
		b.WriteString(f.dueInput.View())
	}
	b.WriteString("\n\n")
	if f.mode == TaskFormModeAdd {
		b.WriteString(styles.HelpStyle.Render("Tab: next field  Enter: save  Esc: cancel"))
	} else {
		b.WriteString(styles.HelpStyle.Render("Enter: save  Esc: cancel"))
	}

	return styles.FocusedBoxStyle.Width(f.width - 2).Render(b.String())
}

// TaskFormSubmitMsg is sent when the user submits valid input.
type TaskFormSubmitMsg struct {
	Mode        TaskFormMode
	EditID      int // Non-zero if editing
	Description string
	Priority    task.Priority
	DueDate     string
}

// TaskFormCancelMsg is sent when the user cancels the form.
type TaskFormCancelMsg struct{}
