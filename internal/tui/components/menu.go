// Package components provides reusable TUI components for todo.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/todo/internal/tui/styles"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	// MenuExit exits the application.
	MenuExit MenuChoice = iota
	// MenuAdd adds a new task.
	MenuAdd
	// MenuView displays the task table.
	MenuView
	// MenuComplete marks a task as completed.
	MenuComplete
	// MenuEdit changes a task's description.
	MenuEdit
	// MenuDelete removes a task.
	MenuDelete
	// MenuSave writes tasks to disk.
	MenuSave
	// MenuLoad reloads tasks from disk.
	MenuLoad
)

// menuEntry pairs a digit key with its label.
type menuEntry struct {
	key    string
	choice MenuChoice
	label  string
}

// Menu is the numbered main menu. Digit keys select an entry directly.
type Menu struct {
	entries []menuEntry
	width   int
}

// NewMenu creates the main menu with its fixed entries.
func NewMenu() *Menu {
	return &Menu{
		entries: []menuEntry{
			{"1", MenuAdd, "Add task"},
			{"2", MenuView, "View tasks"},
			{"3", MenuComplete, "Complete task"},
			{"4", MenuEdit, "Edit task"},
			{"5", MenuDelete, "Delete task"},
			{"6", MenuSave, "Save tasks"},
			{"7", MenuLoad, "Load tasks"},
			{"0", MenuExit, "Exit"},
		},
	}
}

// SetWidth sets the menu width.
func (m *Menu) SetWidth(width int) {
	m.width = width
}

// Update maps digit keys to menu selections. Any other key is ignored
// and the menu is shown again.
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	key := keyMsg.String()
	for _, entry := range m.entries {
		if entry.key == key {
			choice := entry.choice
			return func() tea.Msg {
				return MenuSelectedMsg{Choice: choice}
			}
		}
	}
	return nil
}

// View renders the numbered menu.
func (m *Menu) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("What would you like to do?"))
	b.WriteString("\n\n")

	for _, entry := range m.entries {
		b.WriteString("  ")
		b.WriteString(styles.MenuNumberStyle.Render(entry.key))
		b.WriteString("  ")
		b.WriteString(styles.MenuLabelStyle.Render(entry.label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Press a number key to choose"))

	return b.String()
}

// MenuSelectedMsg is sent when the user picks a menu entry.
type MenuSelectedMsg struct {
	Choice MenuChoice
}
