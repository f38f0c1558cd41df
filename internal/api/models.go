package api

import (
	"net/http"
	"strconv"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
)

// CreateTaskRequest is the body of POST /create.
type CreateTaskRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateTaskRequest is the body of PUT /{id}. Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Name     *string `json:"name"`
	Complete *bool   `json:"complete"`
}

// Patch converts the request into a domain.TaskPatch.
func (req UpdateTaskRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Name:     req.Name,
		Complete: req.Complete,
	}
}

// decodeCreateTaskRequest reads a CreateTaskRequest from a JSON or form body.
// Bodies of any other media type are ignored and yield an empty request.
func decodeCreateTaskRequest(r *http.Request) (CreateTaskRequest, error) {
	var req CreateTaskRequest

	switch {
	case shared.IsFormRequest(r):
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostForm.Get("name")
	case shared.IsJSONRequest(r):
		if err := shared.DecodeJSON(r, &req); err != nil {
			return req, err
		}
	}

	return req, nil
}

// decodeUpdateTaskRequest reads an UpdateTaskRequest from a JSON or form body.
// Bodies of any other media type are ignored and yield an empty request.
func decodeUpdateTaskRequest(r *http.Request) (UpdateTaskRequest, error) {
	var req UpdateTaskRequest

	switch {
	case shared.IsFormRequest(r):
		if err := r.ParseForm(); err != nil {
			return req, err
		}

		// Only fields present in the form are applied
		if values, ok := r.PostForm["name"]; ok && len(values) > 0 {
			name := values[0]
			req.Name = &name
		}
		if values, ok := r.PostForm["complete"]; ok && len(values) > 0 {
			complete, err := strconv.ParseBool(values[0])
			if err != nil {
				return req, err
			}
			req.Complete = &complete
		}
	case shared.IsJSONRequest(r):
		if err := shared.DecodeJSON(r, &req); err != nil {
			return req, err
		}
	}

	return req, nil
}
