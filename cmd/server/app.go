package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// taskStore owns the process-wide task collection.
	taskStore store.TaskStore
}

// newApplication creates a new application with an empty task store.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		taskStore: memory.NewMemoryTaskStore(),
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	// Set up the router with all routes and middleware
	router := app.setupRouter()

	// Start the server and block until it shuts down
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
