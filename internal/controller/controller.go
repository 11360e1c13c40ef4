// Package controller mediates user actions against the task store and keeps
// the display snapshot.
//
// Every action validates its input, asks for confirmation when it destroys
// data, calls the store by task ID, re-fetches the full task list and
// replaces the snapshot. Store failures never escape as errors; they come
// back as an Error status.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"todopad/internal/export"
	"todopad/internal/logging"
	"todopad/internal/service"
)

// NoSelection is the selection after actions that do not keep a row selected.
const NoSelection = -1

// Prompter asks the user to confirm a destructive action.
type Prompter interface {
	Confirm(title, message string) bool
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(title, message string) bool

// Confirm implements Prompter.
func (f PrompterFunc) Confirm(title, message string) bool { return f(title, message) }

// AlwaysYes confirms everything.
var AlwaysYes = PrompterFunc(func(string, string) bool { return true })

// Controller owns the snapshot of the store and the last status.
type Controller struct {
	svc    service.Service
	prompt Prompter
	logger *log.Logger

	tasks    []service.Task
	selected int
	status   Status
}

// New creates a controller. The snapshot starts empty; call Refresh to load it.
func New(svc service.Service, prompt Prompter, logger *log.Logger) *Controller {
	if prompt == nil {
		prompt = AlwaysYes
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		svc:      svc,
		prompt:   prompt,
		logger:   logger.WithPrefix("controller"),
		selected: NoSelection,
	}
}

// SetPrompter replaces the confirmation prompter.
func (c *Controller) SetPrompter(p Prompter) {
	c.prompt = p
}

// Tasks returns a copy of the current snapshot.
func (c *Controller) Tasks() []service.Task {
	tasks := make([]service.Task, len(c.tasks))
	copy(tasks, c.tasks)
	return tasks
}

// Len returns the number of tasks in the snapshot.
func (c *Controller) Len() int {
	return len(c.tasks)
}

// Selected returns the row selected after the last action, or NoSelection.
func (c *Controller) Selected() int {
	return c.selected
}

// Status returns the status of the last action.
func (c *Controller) Status() Status {
	return c.status
}

// resolve maps a snapshot index to a task.
func (c *Controller) resolve(index int) (service.Task, bool) {
	if index < 0 || index >= len(c.tasks) {
		return service.Task{}, false
	}
	return c.tasks[index], true
}

// reload replaces the snapshot from the store. On failure the old snapshot
// is kept.
func (c *Controller) reload(ctx context.Context) error {
	tasks, err := c.svc.ListAll(ctx)
	if err != nil {
		return err
	}
	c.tasks = tasks
	return nil
}

// selectRow re-selects index, clamped to the snapshot.
func (c *Controller) selectRow(index int) {
	switch {
	case len(c.tasks) == 0:
		c.selected = NoSelection
	case index >= len(c.tasks):
		c.selected = len(c.tasks) - 1
	default:
		c.selected = index
	}
}

// finish records s as the last status and clears the selection; actions
// that keep a row selected re-select it after finish. Outcomes are logged
// at debug level; surfaces show the status itself to the user.
func (c *Controller) finish(s Status) Status {
	c.status = s
	c.selected = NoSelection
	if s.Err != nil {
		c.logger.Debug(s.Text, "level", s.Level, "tasks", len(c.tasks), "err", s.Err)
	} else {
		c.logger.Debug(s.Text, "level", s.Level, "tasks", len(c.tasks))
	}
	return s
}

// afterMutation refreshes the snapshot and returns ok, or a reload failure.
func (c *Controller) afterMutation(ctx context.Context, ok Status) Status {
	if err := c.reload(ctx); err != nil {
		return c.finish(failure(err, "Could not reload tasks: %v", err))
	}
	return c.finish(ok)
}

// Refresh loads the snapshot from the store.
func (c *Controller) Refresh(ctx context.Context) Status {
	if err := c.reload(ctx); err != nil {
		return c.finish(failure(err, "Could not load tasks: %v", err))
	}
	return c.finish(info("Tasks loaded: %d", len(c.tasks)))
}

// Add creates a task from text.
func (c *Controller) Add(ctx context.Context, text string) Status {
	text, err := service.ValidateText(text)
	if err != nil {
		return c.finish(warning("Please enter a task."))
	}

	if err := c.svc.Create(ctx, text); err != nil {
		return c.finish(failure(err, "Could not add task: %v", err))
	}
	return c.afterMutation(ctx, info("Task added: %s", text))
}

// Delete removes the task at index after confirmation.
// A declined confirmation returns a None status and leaves Status unchanged.
func (c *Controller) Delete(ctx context.Context, index int) Status {
	task, ok := c.resolve(index)
	if !ok {
		return c.finish(warning("Please select a task to delete."))
	}
	if !c.prompt.Confirm("Confirm Delete", "Are you sure you want to delete the task?\n\n"+task.Text) {
		c.logger.Debug("delete declined", "id", task.ID)
		c.selected = NoSelection
		return Status{}
	}

	if err := c.svc.Delete(ctx, task.ID); err != nil {
		return c.finish(failure(err, "Could not delete task: %v", err))
	}
	return c.afterMutation(ctx, info("Task deleted: %s", task.Text))
}

// ToggleComplete flips the completion flag of the task at index and keeps
// the row selected.
func (c *Controller) ToggleComplete(ctx context.Context, index int) Status {
	task, ok := c.resolve(index)
	if !ok {
		return c.finish(warning("Please select a task to mark complete."))
	}

	completed := !task.Completed
	if err := c.svc.SetCompleted(ctx, task.ID, completed); err != nil {
		return c.finish(failure(err, "Could not update task: %v", err))
	}

	s := info("Task marked incomplete: %s", task.Text)
	if completed {
		s = info("Task marked complete: %s", task.Text)
	}
	s = c.afterMutation(ctx, s)
	c.selectRow(index)
	return s
}

// Edit replaces the text of the task at index and keeps the row selected.
func (c *Controller) Edit(ctx context.Context, index int, newText string) Status {
	task, ok := c.resolve(index)
	if !ok {
		return c.finish(warning("Please select a task to edit."))
	}
	newText, err := service.ValidateText(newText)
	if err != nil {
		return c.finish(warning("Task cannot be empty."))
	}

	if err := c.svc.Rename(ctx, task.ID, newText); err != nil {
		return c.finish(failure(err, "Could not edit task: %v", err))
	}
	s := c.afterMutation(ctx, info("Task edited: %s", newText))
	c.selectRow(index)
	return s
}

// ClearAll removes every task after confirmation.
func (c *Controller) ClearAll(ctx context.Context) Status {
	if !c.prompt.Confirm("Clear All", "Are you sure you want to delete ALL tasks?") {
		c.logger.Debug("clear declined")
		c.selected = NoSelection
		return Status{}
	}

	if err := c.svc.ClearAll(ctx); err != nil {
		return c.finish(failure(err, "Could not clear tasks: %v", err))
	}
	return c.afterMutation(ctx, info("All tasks cleared."))
}

// Export writes the current store contents, not the snapshot, to path.
// The format follows the path extension.
func (c *Controller) Export(ctx context.Context, path string) Status {
	return c.ExportAs(ctx, path, export.FormatFor(path))
}

// ExportAs is like Export with an explicit format.
func (c *Controller) ExportAs(ctx context.Context, path string, format export.Format) Status {
	if path == "" {
		return c.finish(warning("Please choose a file to save to."))
	}

	tasks, err := c.svc.ListAll(ctx)
	if err != nil {
		return c.finish(failure(err, "Could not save tasks: %v", err))
	}
	if len(tasks) == 0 {
		return c.finish(info("There are no tasks to save."))
	}

	if err := export.ToFile(path, format, tasks); err != nil {
		var we *export.WriteError
		if errors.As(err, &we) {
			return c.finish(failure(err, "Could not save tasks: %v", we.Err))
		}
		return c.finish(failure(err, "Could not save tasks: %v", err))
	}
	return c.finish(info("Tasks saved to %s", path))
}

// ConfirmDeleteMessage returns the prompt text Delete would show for index.
func (c *Controller) ConfirmDeleteMessage(index int) (string, bool) {
	task, ok := c.resolve(index)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Delete %q?", task.Text), true
}
