package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-list/internal/api"
	"todo-list/internal/errors"
)

// DoneCommand handles the done command: mark one or more active tasks
// finished and move them to the finished collection in one pass.
type DoneCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command. Arguments are the 1-based indexes
// shown by the list command.
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "done", "usage: todo done <number> [number...]")
	}

	if err := c.api.Reload(ctx); err != nil {
		c.app.warnIfStorageUnavailable()
		return c.errorHandler.Handle("load tasks", err)
	}

	indexes, err := c.parseIndexes(args)
	if err != nil {
		return err
	}

	active := c.api.ActiveTasks()
	var names []string
	for _, idx := range indexes {
		if err := c.api.ToggleTask(idx, true); err != nil {
			return c.errorHandler.Handle("mark task done", err)
		}
		names = append(names, active[idx].TaskName)
	}

	if err := c.api.DeleteSelected(ctx); err != nil {
		c.app.warnIfStorageUnavailable()
		return c.errorHandler.Handle("finish tasks", err)
	}

	for _, name := range names {
		fmt.Printf("Finished task: %s\n", name)
	}
	return nil
}

// parseIndexes converts 1-based display indexes to 0-based collection indexes
func (c *DoneCommand) parseIndexes(args []string) ([]int, error) {
	indexes := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, errors.NewInvalidInputError("index", arg, "must be a positive task number from the list")
		}
		indexes = append(indexes, n-1)
	}
	return indexes, nil
}
