package store

import (
	"github.com/phrazzld/task-api/internal/domain"
)

// CreateTask returns a new collection with a freshly created task appended.
// The input collection is never modified.
func CreateTask(name string, tasks domain.Tasks) (domain.Tasks, error) {
	task, err := domain.NewTask(name)
	if err != nil {
		return nil, err
	}

	next := make(domain.Tasks, len(tasks), len(tasks)+1)
	copy(next, tasks)
	return append(next, task), nil
}

// GetTaskByID returns the task whose ID matches exactly.
func GetTaskByID(id string, tasks domain.Tasks) (domain.Task, error) {
	i := tasks.IndexOf(id)
	if i < 0 {
		return domain.Task{}, domain.NewNotFoundError(domain.TaskEntity, id)
	}
	return tasks[i], nil
}

// UpdateTaskByID returns a new collection where the matched task has the
// provided patch fields overwritten. All other tasks are unchanged.
func UpdateTaskByID(id string, tasks domain.Tasks, patch domain.TaskPatch) (domain.Tasks, error) {
	i := tasks.IndexOf(id)
	if i < 0 {
		return nil, domain.NewNotFoundError(domain.TaskEntity, id)
	}

	next := tasks.Clone()
	next[i] = next[i].Apply(patch)
	return next, nil
}

// DeleteTaskByID returns a new collection without the matched task,
// preserving the relative order of the remaining tasks.
func DeleteTaskByID(id string, tasks domain.Tasks) (domain.Tasks, error) {
	i := tasks.IndexOf(id)
	if i < 0 {
		return nil, domain.NewNotFoundError(domain.TaskEntity, id)
	}

	next := make(domain.Tasks, 0, len(tasks)-1)
	next = append(next, tasks[:i]...)
	return append(next, tasks[i+1:]...), nil
}
