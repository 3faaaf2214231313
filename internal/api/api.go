package api

import (
	"context"
	"fmt"
	"time"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// API defines the task-list controller the front end drives.
// It owns the in-memory active and finished collections and keeps them
// consistent with the task store.
type API interface {
	// Reload replaces both in-memory collections with the persisted rows
	Reload(ctx context.Context) error

	// AddTask validates the name, persists a new unfinished task and
	// appends it to the active collection. Nothing is appended if the
	// store rejects the insert.
	AddTask(ctx context.Context, name string) (*domain.Task, error)

	// ToggleTask sets the completion flag on the active collection's
	// element at index. Purely in-memory until DeleteSelected runs.
	ToggleTask(index int, done bool) error

	// DeleteSelected pushes all completion flags to the store, drops the
	// checked tasks from the active collection and reloads the finished
	// collection from storage.
	DeleteSelected(ctx context.Context) error

	// ClearFinished deletes every finished row from the store and
	// empties the finished collection. The active collection is untouched.
	ClearFinished(ctx context.Context) error

	// Views over the in-memory collections, in display order
	ActiveTasks() []domain.Task
	FinishedTasks() []domain.Task

	// StorageAvailable reports false once any persistence call has
	// failed at the store level, so the front end can warn that changes
	// are session-only.
	StorageAvailable() bool
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator

	active    []domain.Task
	finished  []domain.Task
	storageOK bool
}

// New creates a new controller instance. Collections start empty;
// call Reload to populate them from the store.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		storageOK:     true,
	}
}

// NewWithValidator creates a controller with a caller-supplied validator,
// used when validation bounds come from configuration.
func NewWithValidator(repo sqlite.Repository, taskValidator *validation.TaskValidator) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: taskValidator,
		storageOK:     true,
	}
}

func (a *apiImpl) Reload(ctx context.Context) error {
	dbActive, err := a.repo.ListActiveTasks(ctx)
	if err != nil {
		return a.noteStorageError(err)
	}
	dbFinished, err := a.repo.ListFinishedTasks(ctx)
	if err != nil {
		return a.noteStorageError(err)
	}

	// Clear-then-repopulate, never incremental
	a.active = a.mapper.Task.FromDatabaseSlice(dbActive)
	a.finished = a.mapper.Task.FromDatabaseSlice(dbFinished)
	return nil
}

func (a *apiImpl) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	cleanedName, err := a.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{
		TaskName:  cleanedName,
		TimeAdded: timeNow(),
	}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		// The in-memory collection stays untouched so the view never
		// shows a task the store does not hold.
		return nil, a.noteStorageError(err)
	}

	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	a.active = append(a.active, domainTask)
	return &domainTask, nil
}

func (a *apiImpl) ToggleTask(index int, done bool) error {
	if index < 0 || index >= len(a.active) {
		return errors.NewNotFoundError("active task", fmt.Sprintf("%d", index))
	}
	a.active[index].Finished = done
	return nil
}

func (a *apiImpl) DeleteSelected(ctx context.Context) error {
	if err := a.repo.UpdateTaskStatuses(ctx, a.mapper.Task.ToDatabaseSlice(a.active)); err != nil {
		return a.noteStorageError(err)
	}

	remaining := a.active[:0:0]
	for _, task := range a.active {
		if !task.Finished {
			remaining = append(remaining, task)
		}
	}
	a.active = remaining

	dbFinished, err := a.repo.ListFinishedTasks(ctx)
	if err != nil {
		return a.noteStorageError(err)
	}
	a.finished = a.mapper.Task.FromDatabaseSlice(dbFinished)
	return nil
}

func (a *apiImpl) ClearFinished(ctx context.Context) error {
	deleted, err := a.repo.DeleteFinishedTasks(ctx)
	if err != nil {
		return a.noteStorageError(err)
	}
	logging.Debugf("cleared %d finished tasks\n", deleted)

	a.finished = nil
	return nil
}

func (a *apiImpl) ActiveTasks() []domain.Task {
	tasks := make([]domain.Task, len(a.active))
	copy(tasks, a.active)
	return tasks
}

func (a *apiImpl) FinishedTasks() []domain.Task {
	tasks := make([]domain.Task, len(a.finished))
	copy(tasks, a.finished)
	return tasks
}

func (a *apiImpl) StorageAvailable() bool {
	return a.storageOK
}

// noteStorageError records store-level failures so StorageAvailable can
// surface them, and passes the error through unchanged.
func (a *apiImpl) noteStorageError(err error) error {
	if errors.IsErrorType(err, errors.ErrorTypeDatabase) || errors.IsErrorType(err, errors.ErrorTypeStoreUnavailable) {
		a.storageOK = false
	}
	return err
}
