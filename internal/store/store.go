package store

import "context"

// Store defines the interface for task backend operations.
// All SQLite and Notion calls go through this interface.
// Commands never touch a storage driver or SDK directly.
type Store interface {
	// List returns non-archived tasks, oldest insertion first where the
	// backend preserves order. filter restricts the result to one status;
	// AnyStatus returns everything.
	List(ctx context.Context, filter Status) ([]Task, error)

	// Add creates a task and returns it with the assigned id.
	// An AnyStatus argument falls back to StatusNotStarted.
	Add(ctx context.Context, name string, status Status) (Task, error)

	// UpdateStatus sets the task's status.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// UpdateName sets the task's name.
	UpdateName(ctx context.Context, id, name string) error

	// Delete archives the task. The record remains restorable.
	Delete(ctx context.Context, id string) error

	// Restore unarchives a task archived by Delete.
	Restore(ctx context.Context, id string) error

	// ClearAll removes every task, archived ones included.
	// Returns the number of tasks removed. Irreversible.
	ClearAll(ctx context.Context) (int, error)

	// ClearByStatus removes non-archived tasks with the given status.
	// Archived tasks with that status are untouched.
	// Returns the number of tasks removed. Irreversible.
	ClearByStatus(ctx context.Context, status Status) (int, error)

	// Close releases backend resources.
	Close() error
}
