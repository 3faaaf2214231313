package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-list/internal/api"
	"todo-list/internal/logging"
	"todo-list/internal/reminder"
)

// RemindCommand runs a periodic digest of unfinished tasks
type RemindCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
	dailyAt      string
	every        time.Duration
}

// NewRemindCommand creates a new remind command handler
func NewRemindCommand(app *App, dailyAt string, every time.Duration) *RemindCommand {
	return &RemindCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
		dailyAt:      dailyAt,
		every:        every,
	}
}

// Execute schedules the digest and blocks until interrupted
func (c *RemindCommand) Execute(ctx context.Context, args []string) error {
	scheduler := reminder.NewScheduler(time.Local)

	job := func() {
		if err := c.printDigest(); err != nil {
			logging.Errorf("reminder digest failed: %v\n", err)
		}
	}

	var err error
	if c.every > 0 {
		_, err = scheduler.ScheduleInterval(c.every, job)
		fmt.Printf("Reminding every %s. Press Ctrl+C to stop.\n", c.every)
	} else {
		at := c.dailyAt
		if at == "" {
			at = c.app.config.Reminder.DailyAt
		}
		_, err = scheduler.ScheduleDaily(at, job)
		fmt.Printf("Reminding daily at %s. Press Ctrl+C to stop.\n", at)
	}
	if err != nil {
		return c.errorHandler.Handle("schedule reminder", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	return nil
}

// printDigest reloads and prints the active collection. The digest runs
// on the scheduler's goroutine, so it carries its own context.
func (c *RemindCommand) printDigest() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.app.config.GetQueryTimeout())
	defer cancel()

	if err := c.api.Reload(ctx); err != nil {
		return err
	}

	active := c.api.ActiveTasks()
	if len(active) == 0 {
		fmt.Println("Nothing left to do!")
		return nil
	}

	fmt.Printf("You have %d unfinished task(s):\n", len(active))
	for i, task := range active {
		fmt.Printf("%3d. %s\n", i+1, task.TaskName)
	}
	return nil
}
