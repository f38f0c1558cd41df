package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

// taskIDParam is the chi route parameter holding a task id.
const taskIDParam = "id"

// getPathTaskID extracts the task id from the URL path parameters.
// Ids are opaque: any value is passed through and an unknown one
// surfaces as a not-found error from the store.
func getPathTaskID(r *http.Request) string {
	return chi.URLParam(r, taskIDParam)
}

// respondWithPrettyJSON writes body as indented JSON with the given
// content type. An encoding failure is reported through the normal
// store error path, which yields a 500.
func (h *TaskHandler) respondWithPrettyJSON(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	prefix string,
	contentType string,
	v interface{},
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, err := shared.PrettyJSON(v)
	if err != nil {
		h.respondWithStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(append([]byte(prefix), body...)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
