package cli

import (
	"fmt"
	"os"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/repository/sqlite"
)

// App is the dependency container command handlers draw from
type App struct {
	api    api.API
	repo   sqlite.Repository
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, repo sqlite.Repository, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		repo:   repo,
		config: cfg,
	}
}

// warnIfStorageUnavailable prints the session-only warning once the
// controller has recorded a store-level failure.
func (a *App) warnIfStorageUnavailable() {
	if !a.api.StorageAvailable() {
		fmt.Fprintln(os.Stderr, "warning: the task store could not be reached; changes are not saved")
	}
}
