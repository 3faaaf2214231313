package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line to-do list application",
		Long: `todo keeps a to-do list in a local SQLite database, split into an
active view and a finished view.

EXAMPLES:
  todo add "Buy milk"              # Add a new task
  todo list                        # Show active and finished tasks
  todo done 2                      # Mark task 2 finished
  todo clear                       # Delete all finished tasks
  todo output format=csv           # Export all tasks as CSV
  todo output format=pdf --file=tasks.pdf
  todo remind --every 1h           # Print unfinished tasks every hour

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  TODO_DB                          Full database path (overrides dir + filename)
  TODO_DB_DIR                      Database directory (default: ~/.todo)
  TODO_DB_FILENAME                 Database filename (default: todo_list.db)
  TODO_DB_QUERY_TIMEOUT            Query timeout (default: 10s)
  TODO_DB_WRITE_TIMEOUT            Write timeout (default: 5s)
  TODO_VALIDATION_TASK_NAME_MIN    Min task name length (default: 1)
  TODO_VALIDATION_TASK_NAME_MAX    Max task name length (default: 0, unbounded)
  TODO_APP_TIMEOUT                 Application timeout (default: 60s)
  TODO_APP_VERBOSE                 Enable verbose output (default: false)
  TODO_OUTPUT_DEFAULT_FORMAT       Default output format (default: csv)
  TODO_REMIND_AT                   Daily reminder time (default: 09:00)

GETTING HELP:
  todo [command] --help            # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Duration("app-timeout", 0, "Application timeout (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TODO_VALIDATION_TASK_NAME_MAX)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")
}

// applyFlagOverrides copies any set global flags into the configuration
func (r *RootCommand) applyFlagOverrides() error {
	flags := r.cmd.PersistentFlags()
	cfg := r.app.config

	if flags.Changed("app-timeout") {
		if d, err := flags.GetDuration("app-timeout"); err == nil {
			cfg.Application.Timeout = d
		}
	}
	if flags.Changed("verbose") {
		if b, err := flags.GetBool("verbose"); err == nil {
			cfg.Application.Verbose = b
		}
	}
	if flags.Changed("task-name-max-length") {
		if n, err := flags.GetInt("task-name-max-length"); err == nil {
			cfg.Validation.TaskNameMaxLength = n
		}
	}
	if flags.Changed("db-query-timeout") {
		if d, err := flags.GetDuration("db-query-timeout"); err == nil {
			cfg.Database.QueryTimeout = d
		}
	}
	if flags.Changed("db-write-timeout") {
		if d, err := flags.GetDuration("db-write-timeout"); err == nil {
			cfg.Database.WriteTimeout = d
		}
	}

	return cfg.Validate()
}

// getAppTimeout returns the configured per-command timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	return r.app.config.Application.Timeout
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a new task",
		Long:  "Add a new task to the active list. The task is persisted immediately.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			addHandler := NewAddCommand(r.app)
			return addHandler.Execute(ctx, args)
		},
	}

	// List command
	var activeOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List active tasks with their numbers, followed by finished tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			listHandler := NewListCommand(r.app, activeOnly)
			return listHandler.Execute(ctx, args)
		},
	}
	listCmd.Flags().BoolVar(&activeOnly, "active-only", false, "Hide the finished section")

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done <number> [number...]",
		Short: "Mark tasks finished",
		Long: `Mark one or more active tasks finished and move them to the finished
list. Numbers are the ones shown by "todo list".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			doneHandler := NewDoneCommand(r.app)
			return doneHandler.Execute(ctx, args)
		},
	}

	// Clear command
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all finished tasks",
		Long:  "Delete every finished task from the store. Active tasks are untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			clearHandler := NewClearCommand(r.app)
			return clearHandler.Execute(ctx, args)
		},
	}

	// Output command
	var outputFile string
	outputCmd := &cobra.Command{
		Use:   "output [format=csv|json|pdf]",
		Short: "Export tasks in the specified format",
		Long: `Export the full task table in the specified format.

Supported formats:
  csv  - Comma-separated values
  json - Indented JSON
  pdf  - A4 document (requires --file)

Examples:
  todo output format=csv > tasks.csv
  todo output format=pdf --file=tasks.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			outputHandler := NewOutputCommand(r.app, outputFile)
			return outputHandler.Execute(ctx, args)
		},
	}
	outputCmd.Flags().StringVar(&outputFile, "file", "", "Write the export to a file instead of stdout")

	// Remind command
	var remindAt string
	var remindEvery time.Duration
	remindCmd := &cobra.Command{
		Use:   "remind",
		Short: "Periodically print unfinished tasks",
		Long: `Run in the foreground and periodically print a digest of unfinished
tasks, either daily at a fixed time or on a fixed interval.

Examples:
  todo remind                 # Daily at the configured time (default 09:00)
  todo remind --at 18:30      # Daily at 18:30
  todo remind --every 1h      # Every hour`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Runs until interrupted; no command timeout applies
			remindHandler := NewRemindCommand(r.app, remindAt, remindEvery)
			return remindHandler.Execute(context.Background(), args)
		},
	}
	remindCmd.Flags().StringVar(&remindAt, "at", "", "Daily reminder time as HH:MM (overrides TODO_REMIND_AT)")
	remindCmd.Flags().DurationVar(&remindEvery, "every", 0, "Reminder interval, e.g. 30m or 1h")

	r.cmd.AddCommand(addCmd, listCmd, doneCmd, clearCmd, outputCmd, remindCmd)
}
