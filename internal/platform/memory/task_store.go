package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// Compile-time check to ensure MemoryTaskStore implements store.TaskStore.
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// MemoryTaskStore holds the current task collection. Writes run one of the
// pure operations from the store package and replace the collection with
// the returned value; failed operations leave it untouched.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks domain.Tasks
}

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks: domain.Tasks{},
	}
}

// List returns a copy of the current collection.
func (s *MemoryTaskStore) List(ctx context.Context) domain.Tasks {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tasks.Clone()
}

// Get retrieves a task by its ID.
func (s *MemoryTaskStore) Get(ctx context.Context, id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return store.GetTaskByID(id, s.tasks)
}

// Create appends a new task and returns it.
func (s *MemoryTaskStore) Create(ctx context.Context, name string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := store.CreateTask(name, s.tasks)
	if err != nil {
		return domain.Task{}, err
	}

	s.commit(ctx, "create", next)
	return next[len(next)-1], nil
}

// Update applies patch to the task with the given ID and returns the result.
func (s *MemoryTaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := store.UpdateTaskByID(id, s.tasks, patch)
	if err != nil {
		return domain.Task{}, err
	}

	s.commit(ctx, "update", next)
	return next[next.IndexOf(id)], nil
}

// Delete removes the task with the given ID.
func (s *MemoryTaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := store.DeleteTaskByID(id, s.tasks)
	if err != nil {
		return err
	}

	s.commit(ctx, "delete", next)
	return nil
}

// commit replaces the collection. Callers must hold the write lock.
func (s *MemoryTaskStore) commit(ctx context.Context, op string, next domain.Tasks) {
	s.tasks = next
	logger.FromContextOrDefault(ctx, slog.Default()).Debug("task collection committed",
		slog.String("operation", op),
		slog.Int("task_count", len(next)))
}
