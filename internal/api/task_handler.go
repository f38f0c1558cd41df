package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// HealthResponseBody is the body returned by the liveness check.
const HealthResponseBody = "pong!"

// invalidRequestMessage is returned when a body cannot be decoded.
const invalidRequestMessage = "Invalid request format"

const textContentType = "text/plain; charset=utf-8"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks store.TaskStore, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task store cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// Healthz handles GET /check/healthz requests
func (h *TaskHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, HealthResponseBody)
}

// ListTasks handles GET / requests
// It returns the whole task collection as a JSON array.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	// List never returns nil, so an empty store encodes as []
	tasks := h.tasks.List(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetTask handles GET /{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := getPathTaskID(r)

	// Look up the task; unknown ids surface as not-found
	task, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		h.respondWithStoreError(w, r, err)
		return
	}

	log.Debug("task retrieved", slog.String("task_id", id))
	h.respondWithPrettyJSON(w, r, http.StatusOK, "", "application/json", task)
}

// CreateTask handles POST /create requests
// On success it responds 201 with "Created" followed by the new task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request
	req, err := decodeCreateTaskRequest(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, invalidRequestMessage, err)
		return
	}

	// Validate request; a missing name is reported with the domain message
	if err := shared.ValidateRequest(req); err != nil {
		h.respondWithStoreError(w, r, fmt.Errorf("%w: %v", domain.ErrEmptyTaskName, err))
		return
	}

	// Append the task to the store
	task, err := h.tasks.Create(r.Context(), req.Name)
	if err != nil {
		h.respondWithStoreError(w, r, err)
		return
	}

	log.Info("task created", slog.String("task_id", task.ID))
	h.respondWithPrettyJSON(w, r, http.StatusCreated, "Created", textContentType, task)
}

// UpdateTask handles PUT /{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := getPathTaskID(r)

	// Parse request
	req, err := decodeUpdateTaskRequest(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, invalidRequestMessage, err)
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, invalidRequestMessage, err)
		return
	}

	// Apply only the provided fields
	if _, err := h.tasks.Update(r.Context(), id, req.Patch()); err != nil {
		h.respondWithStoreError(w, r, err)
		return
	}

	log.Info("task updated", slog.String("task_id", id))
	shared.RespondWithText(w, r, http.StatusOK, fmt.Sprintf("Task with %s updated", id))
}

// DeleteTask handles DELETE /{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := getPathTaskID(r)

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		h.respondWithStoreError(w, r, err)
		return
	}

	log.Info("task deleted", slog.String("task_id", id))
	shared.RespondWithText(w, r, http.StatusOK, fmt.Sprintf("Task with %s deleted", id))
}

// respondWithStoreError maps err to a status code and a safe message.
func (h *TaskHandler) respondWithStoreError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
