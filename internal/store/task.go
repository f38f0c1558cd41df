package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations own the current task collection and commit the result of
// the pure operations in this package.
type TaskStore interface {
	// List returns every task in insertion order.
	// Returns an empty, non-nil collection when the store is empty.
	List(ctx context.Context) domain.Tasks

	// Get retrieves a task by its ID.
	// Returns a *domain.NotFoundError if no task matches.
	Get(ctx context.Context, id string) (domain.Task, error)

	// Create appends a new task with the given name and returns it.
	// Returns a *domain.ValidationError if name is empty.
	Create(ctx context.Context, name string) (domain.Task, error)

	// Update applies patch to the task with the given ID and returns the result.
	// Returns a *domain.NotFoundError if no task matches.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns a *domain.NotFoundError if no task matches.
	Delete(ctx context.Context, id string) error
}
