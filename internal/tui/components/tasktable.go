// Package components provides reusable TUI components for todo.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui/styles"
)

// TaskTable renders tasks as a table with ID, status, priority,
// due date, and description columns. Overdue tasks carry an OVERDUE
// marker next to their due date.
type TaskTable struct {
	tasks []*task.Task
	now   time.Time
	width int
}

// NewTaskTable creates a new TaskTable component.
func NewTaskTable() *TaskTable {
	return &TaskTable{
		now: time.Now(),
	}
}

// SetTasks updates the rows. The reference time is captured here so
// the overdue marker stays stable for the life of the view.
func (t *TaskTable) SetTasks(tasks []*task.Task) {
	t.tasks = tasks
	t.now = time.Now()
}

// SetNow overrides the reference time used for the overdue marker.
func (t *TaskTable) SetNow(now time.Time) {
	t.now = now
}

// SetWidth sets the table width.
func (t *TaskTable) SetWidth(width int) {
	t.width = width
}

// Count returns the number of rows.
func (t *TaskTable) Count() int {
	return len(t.tasks)
}

// View renders the table.
func (t *TaskTable) View() string {
	if len(t.tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No tasks")
	}

	var b strings.Builder

	header := fmt.Sprintf("  %-4s %-3s %-8s %-20s %-19s %s",
		"ID", "St", "Pri", "Due", "Created", "Description")
	b.WriteString(styles.HeaderLabelStyle.Render(header))
	b.WriteString("\n")

	for _, tsk := range t.tasks {
		b.WriteString(t.renderRow(tsk))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderRow renders a single task row.
func (t *TaskTable) renderRow(tsk *task.Task) string {
	icon := styles.StatusPending
	if tsk.Completed {
		icon = styles.StatusCompleted
	}

	pri := priorityStyle(tsk.Priority).Render(fmt.Sprintf("%-8s", tsk.Priority.Title()))

	due := tsk.DueDate
	if due == "" {
		due = "-"
	}
	dueCell := fmt.Sprintf("%-12s", due)
	if tsk.Overdue(t.now) {
		dueCell = fmt.Sprintf("%-12s", due) + styles.OverdueMarkerStyle.Render("OVERDUE ")
	} else {
		dueCell += strings.Repeat(" ", 8)
	}

	desc := tsk.Description
	if tsk.Completed {
		desc = styles.MutedTextStyle.Render(desc)
	}

	return fmt.Sprintf("  %-4d %s   %s %s %-19s %s",
		tsk.ID, icon, pri, dueCell, tsk.CreatedAt.String(), desc)
}

// priorityStyle returns the render style for a priority.
func priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return styles.PriorityHighStyle
	case task.PriorityLow:
		return styles.PriorityLowStyle
	default:
		return styles.PriorityMediumStyle
	}
}
