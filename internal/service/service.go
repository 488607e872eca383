package service

import "context"

// Service defines the task store operations.
// Implementations persist every mutation before returning.
type Service interface {
	// AddTask inserts an open task.
	// Returns ErrExists if id is already open; nothing is changed.
	AddTask(ctx context.Context, id int, description string) error

	// CompleteTask moves an open task into the completed set, appending its
	// description to any earlier completions under the same ID.
	// Returns ErrNotFound if id is not open.
	CompleteTask(ctx context.Context, id int) (Task, error)

	// RemoveTask deletes an open task permanently.
	// The completed set is never touched.
	// Returns ErrNotFound if id is not open.
	RemoveTask(ctx context.Context, id int) (Task, error)

	// ListOpenTasks returns open tasks ordered by ascending ID.
	ListOpenTasks(ctx context.Context) ([]Task, error)

	// ListCompletedTasks returns every completion ordered by ascending ID,
	// repeated IDs in completion order.
	ListCompletedTasks(ctx context.Context) ([]Task, error)

	// Close flushes and releases the underlying stores.
	Close() error
}
