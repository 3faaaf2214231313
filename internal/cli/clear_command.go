package cli

import (
	"context"
	"fmt"

	"todo-list/internal/api"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if err := c.api.Reload(ctx); err != nil {
		c.app.warnIfStorageUnavailable()
		return c.errorHandler.Handle("load tasks", err)
	}

	count := len(c.api.FinishedTasks())
	if err := c.api.ClearFinished(ctx); err != nil {
		c.app.warnIfStorageUnavailable()
		return c.errorHandler.Handle("clear finished tasks", err)
	}

	if count == 0 {
		fmt.Println("No finished tasks to clear")
	} else {
		fmt.Printf("Cleared %d finished task(s)\n", count)
	}
	return nil
}
