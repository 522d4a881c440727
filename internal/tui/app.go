// Package tui provides the terminal user interface for todo.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/todo/internal/config"
	"github.com/dbmrq/todo/internal/logging"
	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui/components"
	"github.com/dbmrq/todo/internal/tui/styles"
)

// screen identifies what the main area currently shows.
type screen int

const (
	// screenMenu shows the numbered main menu.
	screenMenu screen = iota
	// screenView shows the task table until any key is pressed.
	screenView
)

// Model is the Bubble Tea model for the todo TUI.
type Model struct {
	// Components
	menu      *components.Menu
	taskTable *components.TaskTable
	taskForm  *components.TaskForm
	idPrompt  *components.IDPrompt
	confirm   *components.ConfirmDialog
	statusBar *components.StatusBar

	// State
	store         *task.Store
	saveOnExit    config.SaveOnExit
	screen        screen
	dirty         bool
	quitting      bool
	quitAfterSave bool

	// Window dimensions
	width  int
	height int
}

// New creates a new TUI model around a task store.
func New(store *task.Store, saveOnExit config.SaveOnExit) *Model {
	m := &Model{
		menu:       components.NewMenu(),
		taskTable:  components.NewTaskTable(),
		taskForm:   components.NewTaskForm(),
		idPrompt:   components.NewIDPrompt(),
		confirm:    components.NewConfirmDialog(),
		statusBar:  components.NewStatusBar(),
		store:      store,
		saveOnExit: saveOnExit,
		screen:     screenMenu,
	}
	m.statusBar.SetStorePath(store.Path())
	m.refreshCounts()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetWidth(msg.Width)
		m.taskTable.SetWidth(msg.Width)
		m.taskForm.SetWidth(msg.Width - 4)
		m.idPrompt.SetWidth(50)
		m.confirm.SetSize(50)
		m.statusBar.SetWidth(msg.Width)
		return m, nil

	case components.MenuSelectedMsg:
		return m.handleMenuChoice(msg.Choice)

	case components.TaskFormSubmitMsg:
		return m.handleFormSubmit(msg)

	case components.TaskFormCancelMsg:
		return m, nil

	case components.IDSubmitMsg:
		return m.handleIDSubmit(msg)

	case components.IDCancelMsg:
		return m, nil

	case components.ConfirmYesMsg:
		return m.handleConfirm(msg.Action, true)

	case components.ConfirmNoMsg:
		return m.handleConfirm(msg.Action, false)

	case SaveResultMsg:
		if msg.Err != nil {
			m.statusBar.SetError("Save failed: " + msg.Err.Error())
			m.quitAfterSave = false
			return m, nil
		}
		m.dirty = false
		m.statusBar.SetMessage(fmt.Sprintf("Saved %d tasks to %s", msg.Count, msg.Path))
		m.statusBar.SetDirty(false)
		if m.quitAfterSave {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case LoadResultMsg:
		if msg.Err != nil {
			m.statusBar.SetError("Load failed: " + msg.Err.Error())
			return m, nil
		}
		m.dirty = false
		m.refreshCounts()
		m.statusBar.SetMessage(fmt.Sprintf("Loaded %d tasks from %s", msg.Count, msg.Path))
		return m, nil
	}

	// Dialogs and forms capture input while active.
	if m.confirm.IsVisible() {
		return m, m.confirm.Update(msg)
	}
	if m.taskForm.IsActive() {
		return m, m.taskForm.Update(msg)
	}
	if m.idPrompt.IsActive() {
		return m, m.idPrompt.Update(msg)
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		switch m.screen {
		case screenView:
			// Any key returns to the menu.
			m.screen = screenMenu
			return m, nil
		default:
			return m, m.menu.Update(msg)
		}
	}

	return m, nil
}

// handleMenuChoice dispatches a main menu selection.
func (m *Model) handleMenuChoice(choice components.MenuChoice) (tea.Model, tea.Cmd) {
	m.statusBar.SetMessage("")
	logging.Debug("menu selection", "choice", int(choice))

	switch choice {
	case components.MenuAdd:
		return m, m.taskForm.StartAdd()

	case components.MenuView:
		m.confirm.ShowCompleted()
		return m, nil

	case components.MenuComplete:
		m.taskTable.SetTasks(m.store.Tasks())
		return m, m.idPrompt.Show(components.IDActionComplete)

	case components.MenuEdit:
		m.taskTable.SetTasks(m.store.Tasks())
		return m, m.idPrompt.Show(components.IDActionEdit)

	case components.MenuDelete:
		m.taskTable.SetTasks(m.store.Tasks())
		return m, m.idPrompt.Show(components.IDActionDelete)

	case components.MenuSave:
		return m, m.saveCmd()

	case components.MenuLoad:
		return m, m.loadCmd()

	case components.MenuExit:
		return m.handleExit()
	}

	return m, nil
}

// handleExit applies the configured exit behavior.
func (m *Model) handleExit() (tea.Model, tea.Cmd) {
	switch m.saveOnExit {
	case config.SaveOnExitAlways:
		if m.dirty {
			m.quitAfterSave = true
			return m, m.saveCmd()
		}
	case config.SaveOnExitAsk:
		if m.dirty {
			m.confirm.ShowSaveOnExit(m.store.Path())
			return m, nil
		}
	}
	m.quitting = true
	return m, tea.Quit
}

// handleFormSubmit applies a submitted add or edit form.
func (m *Model) handleFormSubmit(msg components.TaskFormSubmitMsg) (tea.Model, tea.Cmd) {
	if msg.Mode == components.TaskFormModeEdit {
		if err := m.store.Edit(msg.EditID, msg.Description); err != nil {
			m.statusBar.SetError(err.Error())
			return m, nil
		}
		m.markDirty()
		m.statusBar.SetMessage(fmt.Sprintf("Task %d updated", msg.EditID))
		return m, nil
	}

	t, err := m.store.Add(msg.Description, msg.Priority, msg.DueDate)
	if err != nil {
		m.statusBar.SetError(err.Error())
		return m, nil
	}
	m.markDirty()
	m.statusBar.SetMessage(fmt.Sprintf("Task %d added", t.ID))
	return m, nil
}

// handleIDSubmit applies a task ID entered for complete, edit, or delete.
func (m *Model) handleIDSubmit(msg components.IDSubmitMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case components.IDActionComplete:
		if err := m.store.Complete(msg.ID); err != nil {
			m.statusBar.SetError(err.Error())
			return m, nil
		}
		m.markDirty()
		m.statusBar.SetMessage(fmt.Sprintf("Task %d completed", msg.ID))

	case components.IDActionEdit:
		t, ok := m.store.Get(msg.ID)
		if !ok {
			m.statusBar.SetError(fmt.Sprintf("Task %d not found", msg.ID))
			return m, nil
		}
		return m, m.taskForm.StartEdit(t.ID, t.Description)

	case components.IDActionDelete:
		if err := m.store.Delete(msg.ID); err != nil {
			m.statusBar.SetError(err.Error())
			return m, nil
		}
		m.markDirty()
		m.statusBar.SetMessage(fmt.Sprintf("Task %d deleted", msg.ID))
	}
	return m, nil
}

// handleConfirm applies a yes/no answer.
func (m *Model) handleConfirm(action components.ConfirmAction, yes bool) (tea.Model, tea.Cmd) {
	switch action {
	case components.ConfirmActionShowCompleted:
		m.taskTable.SetTasks(m.store.List(yes))
		m.screen = screenView
		return m, nil

	case components.ConfirmActionSaveOnExit:
		if yes {
			m.quitAfterSave = true
			return m, m.saveCmd()
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveCmd writes the store to disk as a command.
func (m *Model) saveCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		err := store.Save()
		return SaveResultMsg{Count: store.Count(), Path: store.Path(), Err: err}
	}
}

// loadCmd reloads the store from disk as a command.
func (m *Model) loadCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		err := store.Load()
		return LoadResultMsg{Count: store.Count(), Path: store.Path(), Err: err}
	}
}

// markDirty records an unsaved mutation and refreshes the counts.
func (m *Model) markDirty() {
	m.dirty = true
	m.statusBar.SetDirty(true)
	m.refreshCounts()
}

// refreshCounts pushes the current task counts to the status bar.
func (m *Model) refreshCounts() {
	pending := len(m.store.List(false))
	m.statusBar.SetCounts(pending, m.store.Count()-pending)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var view string

	view += styles.TitleStyle.Render("todo") + "\n\n"

	switch {
	case m.taskForm.IsActive():
		view += m.taskForm.View() + "\n"
	case m.idPrompt.IsActive():
		view += m.taskTable.View() + "\n\n"
		view += m.idPrompt.View() + "\n"
	case m.screen == screenView:
		view += m.taskTable.View() + "\n\n"
		view += styles.HelpStyle.Render("Press any key to return to the menu") + "\n"
	default:
		view += m.menu.View() + "\n"
	}

	if m.width > 0 {
		divider := lipgloss.NewStyle().
			Foreground(styles.BorderColor).
			Render(strings.Repeat("─", m.width))
		view += divider + "\n"
	}

	view += m.statusBar.View()

	if m.confirm.IsVisible() {
		view += "\n" + m.confirm.View()
	}

	return view
}

// Run starts the TUI around the given store and blocks until exit.
func Run(store *task.Store, saveOnExit config.SaveOnExit) error {
	p := tea.NewProgram(New(store, saveOnExit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
