// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todopad/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int64

	// Calls counts mutating calls that reached the store.
	Calls int

	// Error injection for testing
	InitErr         error
	ListAllErr      error
	CreateErr       error
	DeleteErr       error
	RenameErr       error
	SetCompletedErr error
	ClearAllErr     error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask adds a task directly, bypassing validation, and returns its ID.
func (f *FakeService) AddTask(text string, completed bool) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Text: text, Completed: completed})
	return id
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Init implements service.Service.
func (f *FakeService) Init(ctx context.Context) error {
	return f.InitErr
}

// ListAll implements service.Service.
func (f *FakeService) ListAll(ctx context.Context) ([]service.Task, error) {
	if f.ListAllErr != nil {
		return nil, f.ListAllErr
	}
	return f.Tasks(), nil
}

// Create implements service.Service.
func (f *FakeService) Create(ctx context.Context, text string) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	text, err := service.ValidateText(text)
	if err != nil {
		return err
	}
	f.AddTask(text, false)
	f.Calls++
	return nil
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, id int64) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// Rename implements service.Service.
func (f *FakeService) Rename(ctx context.Context, id int64, text string) error {
	if f.RenameErr != nil {
		return f.RenameErr
	}
	text, err := service.ValidateText(text)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Text = text
			return nil
		}
	}
	return nil
}

// SetCompleted implements service.Service.
func (f *FakeService) SetCompleted(ctx context.Context, id int64, completed bool) error {
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = completed
			return nil
		}
	}
	return nil
}

// ClearAll implements service.Service.
func (f *FakeService) ClearAll(ctx context.Context) error {
	if f.ClearAllErr != nil {
		return f.ClearAllErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.tasks = nil
	return nil
}

// StubPrompter answers every confirmation with Answer and records prompts.
type StubPrompter struct {
	Answer  bool
	Prompts []string
}

// Confirm implements controller.Prompter.
func (p *StubPrompter) Confirm(title, message string) bool {
	p.Prompts = append(p.Prompts, title)
	return p.Answer
}
