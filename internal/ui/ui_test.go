package ui_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todopad/internal/controller"
	"todopad/internal/testutil"
	"todopad/internal/ui"
)

func newModel(t *testing.T, svc *testutil.FakeService) *ui.Model {
	t.Helper()
	ctl := controller.New(svc, nil, nil)
	m := ui.New(context.Background(), ctl, nil)
	m.Update(m.Init()())
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(m *ui.Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func expectStatus(t *testing.T, m *ui.Model, level controller.Level, text string) {
	t.Helper()
	got := m.Status()
	if got.Level != level || got.Text != text {
		t.Errorf("expected %s %q, got %s %q", level, text, got.Level, got.Text)
	}
}

func TestWelcomeThenLoad(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	ctl := controller.New(svc, nil, nil)
	m := ui.New(context.Background(), ctl, nil)

	expectStatus(t, m, controller.Info, ui.Welcome)

	m.Update(m.Init()())
	expectStatus(t, m, controller.Info, "Tasks loaded: 1")
}

func TestAddTask(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)

	press(m, "a", "Buy milk", "enter")

	expectStatus(t, m, controller.Info, "Task added: Buy milk")
	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Buy milk" {
		t.Fatalf("unexpected store %+v", tasks)
	}
	if !strings.Contains(m.View(), "[ ] Buy milk") {
		t.Errorf("expected task in view, got:\n%s", m.View())
	}
}

func TestAddTask_EmptyStaysInInput(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)

	press(m, "a", "   ", "enter")
	expectStatus(t, m, controller.Warning, "Please enter a task.")

	press(m, "Pay rent", "enter")
	expectStatus(t, m, controller.Info, "Task added: Pay rent")
	if svc.Calls != 1 {
		t.Errorf("expected 1 store call, got %d", svc.Calls)
	}
}

func TestAddTask_CursorOnNewRow(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	m := newModel(t, svc)

	press(m, "a", "Pay rent", "enter")

	if m.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", m.Cursor())
	}
}

func TestToggle(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.AddTask("Pay rent", false)
	m := newModel(t, svc)

	press(m, "j", "c")

	expectStatus(t, m, controller.Info, "Task marked complete: Pay rent")
	if !svc.Tasks()[1].Completed {
		t.Errorf("expected Pay rent completed")
	}
	if m.Cursor() != 1 {
		t.Errorf("expected cursor to stay on row 1, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "[✔] Pay rent") {
		t.Errorf("expected check mark in view, got:\n%s", m.View())
	}

	press(m, "c")
	expectStatus(t, m, controller.Info, "Task marked incomplete: Pay rent")
}

func TestToggle_EmptyList(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)

	press(m, "c")

	expectStatus(t, m, controller.Warning, "Please select a task to mark complete.")
	if svc.Calls != 0 {
		t.Errorf("expected no store call, got %d", svc.Calls)
	}
}

func TestCursorMovement(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", false)
	svc.AddTask("b", false)
	m := newModel(t, svc)

	press(m, "down", "down", "down")
	if m.Cursor() != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", m.Cursor())
	}
	press(m, "k", "up")
	if m.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", m.Cursor())
	}
}

func TestEdit(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	m := newModel(t, svc)

	press(m, "e", " today", "enter")

	expectStatus(t, m, controller.Info, "Task edited: Buy milk today")
	if got := svc.Tasks()[0].Text; got != "Buy milk today" {
		t.Errorf("expected renamed task, got %q", got)
	}
}

func TestEdit_Cancel(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	m := newModel(t, svc)

	press(m, "e", "x", "esc")

	if svc.Calls != 0 {
		t.Errorf("expected no store call, got %d", svc.Calls)
	}
	expectStatus(t, m, controller.Info, "Tasks loaded: 1")
}

func TestDelete_Confirmed(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	m := newModel(t, svc)

	press(m, "d")
	if !strings.Contains(m.View(), `Delete "Buy milk"? (y/n)`) {
		t.Errorf("expected confirmation in view, got:\n%s", m.View())
	}
	press(m, "y")

	expectStatus(t, m, controller.Info, "Task deleted: Buy milk")
	if len(svc.Tasks()) != 0 {
		t.Errorf("expected empty store, got %+v", svc.Tasks())
	}
}

func TestDelete_Declined(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	m := newModel(t, svc)

	press(m, "d", "n")

	expectStatus(t, m, controller.Info, "Tasks loaded: 1")
	if len(svc.Tasks()) != 1 || svc.Calls != 0 {
		t.Errorf("expected store unchanged, got %+v (%d calls)", svc.Tasks(), svc.Calls)
	}

	// A later action must not inherit a yes.
	press(m, "X", "esc")
	if len(svc.Tasks()) != 1 {
		t.Errorf("expected store unchanged after esc")
	}
}

func TestClearAll(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", false)
	svc.AddTask("b", true)
	m := newModel(t, svc)

	press(m, "X", "y")

	expectStatus(t, m, controller.Info, "All tasks cleared.")
	if len(svc.Tasks()) != 0 {
		t.Errorf("expected empty store, got %+v", svc.Tasks())
	}
	if !strings.Contains(m.View(), "No tasks yet.") {
		t.Errorf("expected empty list in view, got:\n%s", m.View())
	}
}

func TestExportTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", true)
	svc.AddTask("Pay rent", false)
	m := newModel(t, svc)
	path := filepath.Join(t.TempDir(), "tasks.txt")

	press(m, "s", path, "enter")

	expectStatus(t, m, controller.Info, "Tasks saved to "+path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[✔] Buy milk\n[ ] Pay rent\n" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestNote_SaveAndOpen(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	press(m, "n", "hello", "ctrl+s", path, "enter")

	expectStatus(t, m, controller.Info, "Note saved to "+path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("unexpected note contents %q", data)
	}

	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(other, []byte("from disk\n"), 0644); err != nil {
		t.Fatal(err)
	}
	press(m, "ctrl+o")
	// The path prompt starts with the last note path.
	for range path {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	press(m, other, "enter")

	expectStatus(t, m, controller.Info, "Note opened: "+other)
	if m.NoteText() != "from disk\n" {
		t.Errorf("unexpected editor text %q", m.NoteText())
	}
}

func TestNote_SaveFailure(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)
	path := filepath.Join(t.TempDir(), "missing", "note.txt")

	press(m, "n", "hello", "ctrl+s", path, "enter")

	if m.Status().Level != controller.Error {
		t.Errorf("expected error status, got %+v", m.Status())
	}
}

func TestNote_KeysDoNotTriggerListActions(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	m := newModel(t, svc)

	press(m, "n", "d", "X", "q", "esc")

	if len(svc.Tasks()) != 1 || svc.Calls != 0 {
		t.Errorf("expected store untouched, got %+v", svc.Tasks())
	}
	if m.NoteText() != "dXq" {
		t.Errorf("expected keys typed into note, got %q", m.NoteText())
	}
}

func TestQuit(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newModel(t, svc)

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestCursor_NotPulledBackToToggledRow(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", false)
	svc.AddTask("B", false)
	svc.AddTask("C", false)
	m := newModel(t, svc)

	press(m, "j", "j", "c", "k", "k")
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.Cursor())
	}

	press(m, "a", "enter")
	expectStatus(t, m, controller.Warning, "Please enter a task.")
	if m.Cursor() != 0 {
		t.Errorf("expected cursor to stay on row 0, got %d", m.Cursor())
	}

	press(m, "esc", "d", "y")
	expectStatus(t, m, controller.Info, "Task deleted: A")
	tasks := svc.Tasks()
	if len(tasks) != 2 || tasks[0].Text != "B" || tasks[1].Text != "C" {
		t.Errorf("expected A deleted, got %+v", tasks)
	}
}

func TestCursor_ExportKeepsRow(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", false)
	svc.AddTask("B", false)
	m := newModel(t, svc)
	path := filepath.Join(t.TempDir(), "tasks.txt")

	press(m, "j", "e", "!", "enter", "k", "s", path, "enter")

	expectStatus(t, m, controller.Info, "Tasks saved to "+path)
	if m.Cursor() != 0 {
		t.Errorf("expected cursor 0 after export, got %d", m.Cursor())
	}
}
