package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/api"
	"todo-list/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: todo add \"your task here\"")
	}
	text := strings.Join(args, " ")
	return c.addTask(ctx, text)
}

func (c *AddCommand) addTask(ctx context.Context, text string) error {
	task, err := c.api.AddTask(ctx, text)
	if err != nil {
		c.app.warnIfStorageUnavailable()
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task: %s\n", task.TaskName)
	return nil
}
