// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task store operations.
// The controller and commands only talk to storage through this interface.
// Mutations by id are no-ops when the id does not exist.
// Failures to open, read or write the store are returned as *StorageError.
type Service interface {
	// Init creates the persistent structure if it is missing.
	// Safe to call on every startup.
	Init(ctx context.Context) error

	// ListAll returns every task ordered by ID ascending (creation order).
	// Returns an empty slice, not an error, when there are no tasks.
	ListAll(ctx context.Context) ([]Task, error)

	// Create appends a new open task with a freshly assigned ID.
	// Returns ErrEmptyText if text is empty or whitespace only.
	Create(ctx context.Context, text string) error

	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id int64) error

	// Rename replaces the text of the task with the given ID.
	// Returns ErrEmptyText if text is empty or whitespace only.
	Rename(ctx context.Context, id int64, text string) error

	// SetCompleted replaces the completion flag of the task with the given ID.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// ClearAll deletes every task. IDs are not reused afterwards.
	ClearAll(ctx context.Context) error
}
