// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todopad/internal/controller"
	"todopad/internal/export"
	"todopad/internal/logging"
	"todopad/internal/notes"
)

// Welcome is the status shown before the first load.
const Welcome = "Welcome! Add your first task."

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeConfirmClear
	modePath
	modeNote
)

// pathTarget says what a destination path is for.
type pathTarget int

const (
	pathExport pathTarget = iota
	pathSaveNote
	pathOpenNote
)

// answer is the controller's prompter while the UI runs. The UI collects
// y/n itself and arms the answer just before calling the controller.
type answer struct {
	yes bool
}

// Confirm implements controller.Prompter. The answer is used once.
func (a *answer) Confirm(title, message string) bool {
	yes := a.yes
	a.yes = false
	return yes
}

// loadMsg triggers the initial refresh.
type loadMsg struct{}

// Model is the bubbletea model over a controller.
type Model struct {
	ctx    context.Context
	ctl    *controller.Controller
	gate   *answer
	logger *log.Logger

	mode     mode
	target   pathTarget
	cursor   int
	input    textinput.Model
	editor   textarea.Model
	notePath string
	confirm  string
	status   controller.Status
}

// New creates a model and installs its prompter on ctl.
func New(ctx context.Context, ctl *controller.Controller, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}

	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Write…"
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(12)
	ta.ShowLineNumbers = false

	gate := &answer{}
	ctl.SetPrompter(gate)

	return &Model{
		ctx:    ctx,
		ctl:    ctl,
		gate:   gate,
		logger: logger.WithPrefix("ui"),
		input:  ti,
		editor: ta,
		status: controller.Status{Level: controller.Info, Text: Welcome},
	}
}

// Run starts the interface and blocks until the user quits.
func Run(ctx context.Context, ctl *controller.Controller, logger *log.Logger) error {
	m := New(ctx, ctl, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Status returns the status line currently shown.
func (m *Model) Status() controller.Status {
	return m.status
}

// Cursor returns the highlighted row.
func (m *Model) Cursor() int {
	return m.cursor
}

// NoteText returns the contents of the note editor.
func (m *Model) NoteText() string {
	return m.editor.Value()
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return loadMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMsg:
		m.apply(m.ctl.Refresh(m.ctx))
		return m, nil
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 20)
		m.editor.SetWidth(max(msg.Width-4, 20))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit, modePath:
			return m.updateInput(msg)
		case modeConfirmDelete, modeConfirmClear:
			return m.updateConfirm(msg.String())
		case modeNote:
			return m.updateNote(msg)
		default:
			return m.updateList(msg.String())
		}
	}
	return m, nil
}

func (m *Model) updateList(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, m.ctl.Len())
	case "a":
		m.openInput(modeAdd, "New task", "")
	case "e":
		tasks := m.ctl.Tasks()
		if m.cursor >= len(tasks) {
			m.apply(m.ctl.Edit(m.ctx, m.cursor, ""))
			return m, nil
		}
		m.openInput(modeEdit, "Task", tasks[m.cursor].Text)
	case " ", "space", "c":
		m.applyKeep(m.ctl.ToggleComplete(m.ctx, m.cursor))
	case "d":
		text, ok := m.ctl.ConfirmDeleteMessage(m.cursor)
		if !ok {
			m.apply(m.ctl.Delete(m.ctx, m.cursor))
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.confirm = text + " (y/n)"
	case "X":
		m.mode = modeConfirmClear
		m.confirm = "Delete ALL tasks? (y/n)"
	case "s":
		m.target = pathExport
		m.openInput(modePath, "Save tasks to", "")
	case "n":
		m.mode = modeNote
		return m, m.editor.Focus()
	}
	return m, nil
}

func (m *Model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	var yes bool
	switch key {
	case "y", "Y":
		yes = true
	case "n", "N", "esc":
	default:
		return m, nil
	}

	m.gate.yes = yes
	if m.mode == modeConfirmDelete {
		m.apply(m.ctl.Delete(m.ctx, m.cursor))
	} else {
		m.apply(m.ctl.ClearAll(m.ctx))
	}
	m.gate.yes = false
	m.mode = modeList
	m.confirm = ""
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		if m.target != pathExport {
			m.target = pathExport
			m.mode = modeNote
			return m, m.editor.Focus()
		}
		return m, nil
	case "enter":
		return m.submitInput()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	switch m.mode {
	case modeAdd:
		s := m.ctl.Add(m.ctx, value)
		m.apply(s)
		if s.Level == controller.Warning {
			return m, nil
		}
		m.cursor = clampCursor(m.ctl.Len()-1, m.ctl.Len())
	case modeEdit:
		s := m.ctl.Edit(m.ctx, m.cursor, value)
		m.applyKeep(s)
		if s.Level == controller.Warning {
			return m, nil
		}
	case modePath:
		path := strings.TrimSpace(value)
		switch m.target {
		case pathExport:
			m.apply(m.ctl.Export(m.ctx, path))
		case pathSaveNote:
			m.saveNote(path)
		case pathOpenNote:
			m.openNote(path)
		}
		if m.target != pathExport {
			m.closeInput()
			m.target = pathExport
			m.mode = modeNote
			return m, m.editor.Focus()
		}
	}
	m.closeInput()
	return m, nil
}

func (m *Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.mode = modeList
		return m, nil
	case "ctrl+s":
		m.editor.Blur()
		m.target = pathSaveNote
		m.openInput(modePath, "Save note to", m.notePath)
		return m, nil
	case "ctrl+o":
		m.editor.Blur()
		m.target = pathOpenNote
		m.openInput(modePath, "Open note", m.notePath)
		return m, nil
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
}

func (m *Model) saveNote(path string) {
	if path == "" {
		m.status = controller.Status{Level: controller.Warning, Text: "Please choose a file to save to."}
		return
	}
	if err := notes.Save(path, m.editor.Value()); err != nil {
		m.logger.Error("save note", "path", path, "err", err)
		m.status = controller.Status{Level: controller.Error, Text: fmt.Sprintf("Could not save note: %v", cause(err)), Err: err}
		return
	}
	m.notePath = path
	m.status = controller.Status{Level: controller.Info, Text: "Note saved to " + path}
}

func (m *Model) openNote(path string) {
	if path == "" {
		m.status = controller.Status{Level: controller.Warning, Text: "Please choose a file to open."}
		return
	}
	text, err := notes.Load(path)
	if err != nil {
		m.logger.Error("open note", "path", path, "err", err)
		m.status = controller.Status{Level: controller.Error, Text: fmt.Sprintf("Could not open note: %v", cause(err)), Err: err}
		return
	}
	m.editor.SetValue(text)
	m.notePath = path
	m.status = controller.Status{Level: controller.Info, Text: "Note opened: " + path}
}

func (m *Model) openInput(md mode, placeholder, value string) {
	m.mode = md
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.input.SetValue("")
	m.input.Blur()
	m.mode = modeList
}

// apply shows a controller status and keeps the cursor inside the list.
// A None status leaves the status line alone.
func (m *Model) apply(s controller.Status) {
	if s.Level != controller.None {
		m.status = s
	}
	m.cursor = clampCursor(m.cursor, m.ctl.Len())
}

// applyKeep is apply for toggle and edit, which re-select their row.
func (m *Model) applyKeep(s controller.Status) {
	m.apply(s)
	if sel := m.ctl.Selected(); sel != controller.NoSelection {
		m.cursor = sel
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todopad"))
	b.WriteString("\n\n")

	if m.mode == modeNote || (m.mode == modePath && m.target != pathExport) {
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	switch m.mode {
	case modeAdd, modeEdit, modePath:
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeConfirmDelete, modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render(m.confirm))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderStatus(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTaskList() string {
	tasks := m.ctl.Tasks()
	if len(tasks) == 0 {
		return "No tasks yet. Press 'a' to add one.\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		cursor := " "
		line := export.Line(t)
		switch {
		case i == m.cursor:
			cursor = ">"
			line = selectedStyle.Render(line)
		case t.Completed:
			line = doneStyle.Render(line)
		}
		b.WriteString(cursor + " " + line + "\n")
	}
	return b.String()
}

func (m *Model) helpText() string {
	switch m.mode {
	case modeNote:
		return "ctrl+s save • ctrl+o open • esc back"
	case modeAdd, modeEdit, modePath:
		return "enter confirm • esc cancel"
	case modeConfirmDelete, modeConfirmClear:
		return "y yes • n no"
	default:
		return "↑/k ↓/j move • a add • e edit • space/c done • d delete • X clear • s save • n note • q quit"
	}
}

// cause strips the package prefix notes adds to its errors.
func cause(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
