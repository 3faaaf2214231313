package cli

import (
	"context"
	"fmt"

	"todo-list/internal/api"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
	activeOnly   bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, activeOnly bool) *ListCommand {
	return &ListCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
		activeOnly:   activeOnly,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if err := c.api.Reload(ctx); err != nil {
		c.app.warnIfStorageUnavailable()
		return c.errorHandler.Handle("list tasks", err)
	}
	return c.printTasks()
}

func (c *ListCommand) printTasks() error {
	active := c.api.ActiveTasks()
	finished := c.api.FinishedTasks()

	if len(active) == 0 {
		fmt.Println("No active tasks")
	} else {
		fmt.Println("Active tasks:")
		for i, task := range active {
			fmt.Printf("%3d. %s %s (added %s)\n", i+1, task.Checkbox(), task.TaskName, task.TimeAdded.Format("2006-01-02 15:04"))
		}
	}

	if c.activeOnly {
		return nil
	}

	if len(finished) > 0 {
		fmt.Println()
		fmt.Println("Finished tasks:")
		for i, task := range finished {
			fmt.Printf("%3d. %s\n", i+1, task.TaskName)
		}
	}

	return nil
}
