package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/todo/internal/config"
	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui/components"
)

// newTestModel creates a model around a store in a temp directory.
func newTestModel(t *testing.T, saveOnExit config.SaveOnExit) (*Model, *task.Store) {
	t.Helper()
	store := task.NewStoreInDir(t.TempDir())
	return New(store, saveOnExit), store
}

// drive sends msg through Update and feeds any resulting application
// messages back in, the way the Bubble Tea runtime would. Cursor blink
// ticks and other component noise are dropped. Returns true if the
// model quit.
func drive(t *testing.T, m *Model, msg tea.Msg) bool {
	t.Helper()
	for msg != nil {
		model, cmd := m.Update(msg)
		if model.(*Model) != m {
			t.Fatal("Update should return the same model")
		}
		if cmd == nil {
			return false
		}
		msg = cmd()
		switch msg.(type) {
		case tea.QuitMsg:
			return true
		case components.MenuSelectedMsg,
			components.TaskFormSubmitMsg, components.TaskFormCancelMsg,
			components.IDSubmitMsg, components.IDCancelMsg,
			components.ConfirmYesMsg, components.ConfirmNoMsg,
			SaveResultMsg, LoadResultMsg:
			// Feed back in.
		default:
			return false
		}
	}
	return false
}

// press sends a single rune key through drive.
func press(t *testing.T, m *Model, s string) bool {
	t.Helper()
	return drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// typeText sends each rune and then enter.
func typeText(t *testing.T, m *Model, s string) bool {
	t.Helper()
	for _, r := range s {
		press(t, m, string(r))
	}
	return drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestAddTaskFlow(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)

	press(t, m, "1")
	if !m.taskForm.IsActive() {
		t.Fatal("menu choice 1 should open the add form")
	}

	typeText(t, m, "Buy milk")

	if store.Count() != 1 {
		t.Fatalf("store should have 1 task, got %d", store.Count())
	}
	tsk, ok := store.Get(1)
	if !ok {
		t.Fatal("task 1 should exist")
	}
	if tsk.Description != "Buy milk" {
		t.Errorf("Description = %q", tsk.Description)
	}
	if tsk.Priority != task.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", tsk.Priority)
	}
	if !strings.Contains(m.statusBar.Message(), "Task 1 added") {
		t.Errorf("status = %q, want add confirmation", m.statusBar.Message())
	}
	if !m.dirty {
		t.Error("adding a task should mark the model dirty")
	}
}

func TestAddInvalidInputReprompts(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)

	press(t, m, "1")
	drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.taskForm.IsActive() {
		t.Error("empty description should keep the form open")
	}
	if store.Count() != 0 {
		t.Error("no task should be created")
	}

	typeText(t, m, "Now valid")
	if store.Count() != 1 {
		t.Error("valid retry should create the task")
	}
}

func TestViewFlowAndReturnToMenu(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)
	store.Add("Open task", task.PriorityHigh, "")
	done, _ := store.Add("Done task", task.PriorityLow, "")
	store.Complete(done.ID)

	// 2 then n: pending tasks only.
	press(t, m, "2")
	if !m.confirm.IsVisible() {
		t.Fatal("menu choice 2 should ask about completed tasks")
	}
	press(t, m, "n")

	if m.screen != screenView {
		t.Fatal("answering the prompt should show the task table")
	}
	view := m.View()
	if !strings.Contains(view, "Open task") {
		t.Error("view should contain the pending task")
	}
	if strings.Contains(view, "Done task") {
		t.Error("view should hide the completed task")
	}

	// Any key returns to the menu.
	press(t, m, "x")
	if m.screen != screenMenu {
		t.Error("any key should return to the menu")
	}

	// 2 then y: completed included.
	press(t, m, "2")
	press(t, m, "y")
	if !strings.Contains(m.View(), "Done task") {
		t.Error("view should include the completed task after y")
	}
}

func TestCompleteFlow(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)
	store.Add("Some task", task.PriorityMedium, "")

	press(t, m, "3")
	if !m.idPrompt.IsActive() {
		t.Fatal("menu choice 3 should open the ID prompt")
	}
	typeText(t, m, "1")

	tsk, _ := store.Get(1)
	if !tsk.Completed {
		t.Error("task 1 should be completed")
	}
	if !strings.Contains(m.statusBar.Message(), "Task 1 completed") {
		t.Errorf("status = %q", m.statusBar.Message())
	}
}

func TestCompleteUnknownIDShowsError(t *testing.T) {
	m, _ := newTestModel(t, config.SaveOnExitNever)

	press(t, m, "3")
	typeText(t, m, "9")

	if !strings.Contains(m.statusBar.Message(), "task 9 not found") {
		t.Errorf("status = %q, want not-found message", m.statusBar.Message())
	}
	if m.dirty {
		t.Error("a failed action should not mark the model dirty")
	}
}

func TestEditFlow(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)
	store.Add("Old text", task.PriorityMedium, "")

	press(t, m, "4")
	typeText(t, m, "1")

	if !m.taskForm.IsActive() {
		t.Fatal("a valid ID should open the edit form")
	}
	if m.taskForm.Mode() != components.TaskFormModeEdit {
		t.Fatal("form should be in edit mode")
	}

	// Clear the prefilled text, then type the replacement.
	for range "Old text" {
		drive(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	typeText(t, m, "New text")

	tsk, _ := store.Get(1)
	if tsk.Description != "New text" {
		t.Errorf("Description = %q, want New text", tsk.Description)
	}
}

func TestEditUnknownIDShowsError(t *testing.T) {
	m, _ := newTestModel(t, config.SaveOnExitNever)

	press(t, m, "4")
	typeText(t, m, "5")

	if m.taskForm.IsActive() {
		t.Error("unknown ID should not open the edit form")
	}
	if !strings.Contains(m.statusBar.Message(), "Task 5 not found") {
		t.Errorf("status = %q", m.statusBar.Message())
	}
}

func TestDeleteFlow(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)
	store.Add("Doomed", task.PriorityMedium, "")

	press(t, m, "5")
	typeText(t, m, "1")

	if store.Count() != 0 {
		t.Error("task should be deleted")
	}
	if !strings.Contains(m.statusBar.Message(), "Task 1 deleted") {
		t.Errorf("status = %q", m.statusBar.Message())
	}
}

func TestSaveAndLoadFlow(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)
	store.Add("Persisted", task.PriorityHigh, "")
	m.markDirty()

	press(t, m, "6")

	if m.dirty {
		t.Error("save should clear the dirty flag")
	}
	if !strings.Contains(m.statusBar.Message(), "Saved 1 tasks") {
		t.Errorf("status = %q", m.statusBar.Message())
	}

	// Mutate in memory, then reload from disk.
	store.Add("Unsaved", task.PriorityLow, "")
	press(t, m, "7")

	if store.Count() != 1 {
		t.Errorf("load should restore the saved state, got %d tasks", store.Count())
	}
	if !strings.Contains(m.statusBar.Message(), "Loaded 1 tasks") {
		t.Errorf("status = %q", m.statusBar.Message())
	}
}

func TestExitCleanQuitsImmediately(t *testing.T) {
	m, _ := newTestModel(t, config.SaveOnExitAsk)

	if !press(t, m, "0") {
		t.Error("exit with no unsaved changes should quit without asking")
	}
}

func TestExitAskSavesOnYes(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitAsk)
	store.Add("Keep me", task.PriorityMedium, "")
	m.markDirty()

	press(t, m, "0")
	if !m.confirm.IsVisible() {
		t.Fatal("exit with unsaved changes should ask about saving")
	}

	if !press(t, m, "y") {
		t.Error("answering yes should save and quit")
	}

	// The file exists with the task in it.
	reload := task.NewStore(store.Path())
	if err := reload.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reload.Count() != 1 {
		t.Errorf("saved file should have 1 task, got %d", reload.Count())
	}
}

func TestExitAskDiscardsOnNo(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitAsk)
	store.Add("Discard me", task.PriorityMedium, "")
	m.markDirty()

	press(t, m, "0")
	if !press(t, m, "n") {
		t.Error("answering no should quit without saving")
	}

	reload := task.NewStore(store.Path())
	if err := reload.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reload.Count() != 0 {
		t.Error("nothing should have been written")
	}
}

func TestExitAlwaysSavesWithoutAsking(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitAlways)
	store.Add("Auto saved", task.PriorityMedium, "")
	m.markDirty()

	if !press(t, m, "0") {
		t.Error("exit should save and quit without a prompt")
	}

	reload := task.NewStore(store.Path())
	if err := reload.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reload.Count() != 1 {
		t.Errorf("saved file should have 1 task, got %d", reload.Count())
	}
}

func TestExitNeverDiscardsWithoutAsking(t *testing.T) {
	m, store := newTestModel(t, config.SaveOnExitNever)
	store.Add("Gone", task.PriorityMedium, "")
	m.markDirty()

	if !press(t, m, "0") {
		t.Error("exit should quit without a prompt")
	}

	reload := task.NewStore(store.Path())
	if err := reload.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reload.Count() != 0 {
		t.Error("nothing should have been written")
	}
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	m, _ := newTestModel(t, config.SaveOnExitAsk)

	press(t, m, "1") // open the add form

	quit := drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit {
		t.Error("ctrl+c should quit from any screen")
	}
}

func TestUnknownMenuKeyIgnored(t *testing.T) {
	m, _ := newTestModel(t, config.SaveOnExitNever)

	press(t, m, "9")
	press(t, m, "x")

	if m.taskForm.IsActive() || m.idPrompt.IsActive() || m.confirm.IsVisible() {
		t.Error("unknown keys should leave the menu showing")
	}
	if m.screen != screenMenu {
		t.Error("screen should still be the menu")
	}
}

func TestViewShowsMenuByDefault(t *testing.T) {
	m, _ := newTestModel(t, config.SaveOnExitNever)

	view := m.View()
	if !strings.Contains(view, "Add task") {
		t.Error("default view should show the menu")
	}
	if !strings.Contains(view, "0 open, 0 done") {
		t.Error("default view should show the task counts")
	}
}
