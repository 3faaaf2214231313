package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for task storage operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListActiveTasks(ctx context.Context) ([]*Task, error)
	ListFinishedTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTaskStatuses(ctx context.Context, tasks []*Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error
	DeleteFinishedTasks(ctx context.Context) (int64, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance.
// The schema is established exactly once here; callers never reissue DDL.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(dbPath, err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStoreUnavailableError(dbPath, err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a new task as unfinished and fills in its generated ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (task_name, task_finished, time_added)
	VALUES (?, 0, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.TaskName, FormatTimeForDB(task.TimeAdded))
	if err != nil {
		return err
	}

	task.ID = id
	task.Finished = false
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, task_name, task_finished, time_added
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks regardless of status
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, task_name, task_finished, time_added
	FROM tasks
	ORDER BY time_added ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListActiveTasks retrieves all tasks with task_finished = 0
func (r *SQLiteRepository) ListActiveTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, task_name, task_finished, time_added
	FROM tasks
	WHERE task_finished = 0
	ORDER BY time_added ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "active tasks")
}

// ListFinishedTasks retrieves all tasks with task_finished = 1
func (r *SQLiteRepository) ListFinishedTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, task_name, task_finished, time_added
	FROM tasks
	WHERE task_finished = 1
	ORDER BY time_added ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "finished tasks")
}

// UpdateTaskStatuses writes each task's completion flag back to its row, keyed on ID
func (r *SQLiteRepository) UpdateTaskStatuses(ctx context.Context, tasks []*Task) error {
	query := `UPDATE tasks SET task_finished = ? WHERE id = ?`

	for _, task := range tasks {
		err := ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID), FormatBoolForDB(task.Finished), task.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// DeleteFinishedTasks removes every finished row and reports how many were deleted
func (r *SQLiteRepository) DeleteFinishedTasks(ctx context.Context) (int64, error) {
	query := `DELETE FROM tasks WHERE task_finished = 1`
	return ExecuteCountingRows(ctx, r.db, query)
}
