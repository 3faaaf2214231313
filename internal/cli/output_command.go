package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/export"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app          *App
	exporter     *export.Exporter
	errorHandler *ErrorHandler
	filePath     string
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App, filePath string) *OutputCommand {
	return &OutputCommand{
		app:          app,
		exporter:     export.NewExporter(app.repo),
		errorHandler: NewErrorHandler(),
		filePath:     filePath,
	}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	format := c.app.config.Commands.OutputDefaultFormat

	if len(args) > 0 {
		arg := args[0]
		if !strings.HasPrefix(arg, "format=") {
			return errors.NewInvalidInputError("format", arg, "usage: todo output format=csv|json|pdf")
		}
		format = strings.TrimPrefix(arg, "format=")
	}

	if format == "pdf" && c.filePath == "" {
		return errors.NewInvalidInputError("format", format, "pdf output requires --file")
	}

	data, err := c.exporter.Export(ctx, format)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	if c.filePath != "" {
		if err := os.WriteFile(c.filePath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.filePath, err)
		}
		fmt.Printf("Wrote %s export to %s\n", format, c.filePath)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
