package main

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api"
)

// setupRouter creates the application router from the application dependencies.
func (app *application) setupRouter() http.Handler {
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	return api.NewRouter(taskHandler, app.logger)
}
