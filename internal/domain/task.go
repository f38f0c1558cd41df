package domain

import (
	"github.com/google/uuid"
)

// TaskEntity is the entity name used in task errors.
const TaskEntity = "Task"

// Task is a unit of work tracked by the service.
type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

// Tasks is an ordered collection of tasks. Order reflects insertion order.
type Tasks []Task

// TaskPatch carries the optional fields of an update. A nil field is left
// unchanged.
type TaskPatch struct {
	Name     *string
	Complete *bool
}

// ErrEmptyTaskName is the validation error returned when a task is created
// without a name.
var ErrEmptyTaskName = NewValidationError("name", "Name must exist!", ErrValidation)

// NewTask creates an incomplete task with a fresh ID.
// Returns ErrEmptyTaskName if name is empty.
func NewTask(name string) (Task, error) {
	if name == "" {
		return Task{}, ErrEmptyTaskName
	}

	return Task{
		ID:       uuid.NewString(),
		Name:     name,
		Complete: false,
	}, nil
}

// Apply returns a copy of t with the provided patch fields overwritten.
// An empty name counts as not provided, so a task never loses its name.
func (t Task) Apply(patch TaskPatch) Task {
	if patch.Name != nil && *patch.Name != "" {
		t.Name = *patch.Name
	}
	if patch.Complete != nil {
		t.Complete = *patch.Complete
	}
	return t
}

// IndexOf returns the position of the task with the given ID, or -1.
func (ts Tasks) IndexOf(id string) int {
	for i := range ts {
		if ts[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the collection that never aliases ts.
// The result is non-nil so it always encodes as a JSON array.
func (ts Tasks) Clone() Tasks {
	out := make(Tasks, len(ts))
	copy(out, ts)
	return out
}
