package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
)

func setupTestAPI(t *testing.T) (API, sqlite.Repository) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return New(repo), repo
}

func seedTask(t *testing.T, repo sqlite.Repository, name string, finished bool) {
	task := &sqlite.Task{TaskName: name, TimeAdded: time.Now()}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	if finished {
		task.Finished = true
		require.NoError(t, repo.UpdateTaskStatuses(context.Background(), []*sqlite.Task{task}))
	}
}

func activeNames(api API) []string {
	tasks := api.ActiveTasks()
	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.TaskName
	}
	return names
}

func finishedNames(api API) []string {
	tasks := api.FinishedTasks()
	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.TaskName
	}
	return names
}

func TestAddTask(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	t.Run("appends to active collection and persists", func(t *testing.T) {
		task, err := api.AddTask(ctx, "Buy milk")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", task.TaskName)
		assert.False(t, task.Finished)
		assert.Greater(t, task.ID, int64(0))
		assert.False(t, task.TimeAdded.IsZero())

		assert.Equal(t, []string{"Buy milk"}, activeNames(api))

		stored, err := repo.ListActiveTasks(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Buy milk", stored[0].TaskName)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := api.AddTask(ctx, "   ")
		assert.Error(t, err)

		// Neither memory nor storage changed
		assert.Len(t, api.ActiveTasks(), 1)
		stored, err := repo.ListActiveTasks(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("trims an enclosing quote pair", func(t *testing.T) {
		task, err := api.AddTask(ctx, "'Call mom'")
		require.NoError(t, err)
		assert.Equal(t, "Call mom", task.TaskName)
	})

	t.Run("rejects text that is only quotes", func(t *testing.T) {
		_, err := api.AddTask(ctx, "''")
		assert.Error(t, err)
	})
}

func TestAddTaskRoundTrip(t *testing.T) {
	api, _ := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.AddTask(ctx, "X")
	require.NoError(t, err)

	// A fresh reload must reproduce the task from storage
	require.NoError(t, api.Reload(ctx))
	active := api.ActiveTasks()
	require.Len(t, active, 1)
	assert.Equal(t, "X", active[0].TaskName)
	assert.False(t, active[0].Finished)
}

func TestReload(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	seedTask(t, repo, "Buy milk", false)
	seedTask(t, repo, "Pay bill", true)

	require.NoError(t, api.Reload(ctx))
	assert.Equal(t, []string{"Buy milk"}, activeNames(api))
	assert.Equal(t, []string{"Pay bill"}, finishedNames(api))

	// Reload replaces, never accumulates
	require.NoError(t, api.Reload(ctx))
	assert.Len(t, api.ActiveTasks(), 1)
	assert.Len(t, api.FinishedTasks(), 1)
}

func TestToggleTask(t *testing.T) {
	api, _ := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.AddTask(ctx, "Buy milk")
	require.NoError(t, err)

	t.Run("flips the flag in memory only", func(t *testing.T) {
		require.NoError(t, api.ToggleTask(0, true))
		assert.True(t, api.ActiveTasks()[0].Finished)

		// Storage is untouched until DeleteSelected
		require.NoError(t, api.Reload(ctx))
		assert.False(t, api.ActiveTasks()[0].Finished)
	})

	t.Run("is idempotent for a repeated target state", func(t *testing.T) {
		require.NoError(t, api.ToggleTask(0, true))
		require.NoError(t, api.ToggleTask(0, true))
		assert.True(t, api.ActiveTasks()[0].Finished)

		require.NoError(t, api.ToggleTask(0, false))
		assert.False(t, api.ActiveTasks()[0].Finished)
	})

	t.Run("rejects an out-of-range index", func(t *testing.T) {
		assert.Error(t, api.ToggleTask(-1, true))
		assert.Error(t, api.ToggleTask(5, true))
	})
}

func TestDeleteSelected(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	for _, name := range []string{"Buy milk", "Pay bill", "Call mom"} {
		_, err := api.AddTask(ctx, name)
		require.NoError(t, err)
	}

	require.NoError(t, api.ToggleTask(0, true))
	require.NoError(t, api.ToggleTask(2, true))
	require.NoError(t, api.DeleteSelected(ctx))

	// No checked task remains active
	for _, task := range api.ActiveTasks() {
		assert.False(t, task.Finished)
	}
	assert.Equal(t, []string{"Pay bill"}, activeNames(api))

	// The finished collection mirrors storage
	assert.Equal(t, []string{"Buy milk", "Call mom"}, finishedNames(api))
	stored, err := repo.ListFinishedTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestDeleteSelectedWithNothingChecked(t *testing.T) {
	api, _ := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.AddTask(ctx, "Buy milk")
	require.NoError(t, err)

	require.NoError(t, api.DeleteSelected(ctx))
	assert.Equal(t, []string{"Buy milk"}, activeNames(api))
	assert.Empty(t, api.FinishedTasks())
}

func TestClearFinished(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	seedTask(t, repo, "Buy milk", false)
	seedTask(t, repo, "Pay bill", true)
	require.NoError(t, api.Reload(ctx))

	require.NoError(t, api.ClearFinished(ctx))
	assert.Empty(t, api.FinishedTasks())

	// Active rows survive in memory and in storage
	assert.Equal(t, []string{"Buy milk"}, activeNames(api))
	stored, err := repo.ListFinishedTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	active, err := repo.ListActiveTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

// TestTaskLifecycleScenario walks a seeded store through the full
// add / toggle / sweep / clear sequence.
func TestTaskLifecycleScenario(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	seedTask(t, repo, "Buy milk", false)
	seedTask(t, repo, "Pay bill", true)

	require.NoError(t, api.Reload(ctx))
	assert.Equal(t, []string{"Buy milk"}, activeNames(api))
	assert.Equal(t, []string{"Pay bill"}, finishedNames(api))

	_, err := api.AddTask(ctx, "Call mom")
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk", "Call mom"}, activeNames(api))

	require.NoError(t, api.ToggleTask(0, true))
	require.NoError(t, api.DeleteSelected(ctx))
	assert.Equal(t, []string{"Call mom"}, activeNames(api))
	assert.ElementsMatch(t, []string{"Buy milk", "Pay bill"}, finishedNames(api))

	require.NoError(t, api.ClearFinished(ctx))
	assert.Empty(t, api.FinishedTasks())

	stored, err := repo.ListFinishedTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestViewsReturnCopies(t *testing.T) {
	api, _ := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.AddTask(ctx, "Buy milk")
	require.NoError(t, err)

	view := api.ActiveTasks()
	view[0].Finished = true

	assert.False(t, api.ActiveTasks()[0].Finished)
}

// failingRepository simulates a store that cannot be reached.
type failingRepository struct{}

func (f *failingRepository) CreateTask(ctx context.Context, task *sqlite.Task) error {
	return errors.NewDatabaseError("execute query", assert.AnError)
}

func (f *failingRepository) GetTask(ctx context.Context, id int64) (*sqlite.Task, error) {
	return nil, errors.NewDatabaseError("query task", assert.AnError)
}

func (f *failingRepository) ListTasks(ctx context.Context) ([]*sqlite.Task, error) {
	return nil, errors.NewDatabaseError("query tasks", assert.AnError)
}

func (f *failingRepository) ListActiveTasks(ctx context.Context) ([]*sqlite.Task, error) {
	return nil, errors.NewDatabaseError("query active tasks", assert.AnError)
}

func (f *failingRepository) ListFinishedTasks(ctx context.Context) ([]*sqlite.Task, error) {
	return nil, errors.NewDatabaseError("query finished tasks", assert.AnError)
}

func (f *failingRepository) UpdateTaskStatuses(ctx context.Context, tasks []*sqlite.Task) error {
	return errors.NewDatabaseError("execute query", assert.AnError)
}

func (f *failingRepository) DeleteTask(ctx context.Context, id int64) error {
	return errors.NewDatabaseError("execute query", assert.AnError)
}

func (f *failingRepository) DeleteFinishedTasks(ctx context.Context) (int64, error) {
	return 0, errors.NewDatabaseError("execute query", assert.AnError)
}

func (f *failingRepository) Close() error { return nil }

func TestStorageUnavailableSignal(t *testing.T) {
	api := New(&failingRepository{})
	ctx := context.Background()

	assert.True(t, api.StorageAvailable())

	_, err := api.AddTask(ctx, "Buy milk")
	assert.Error(t, err)
	assert.False(t, api.StorageAvailable())

	// The failed add left no phantom task behind
	assert.Empty(t, api.ActiveTasks())
}

func TestValidationFailureDoesNotTripStorageSignal(t *testing.T) {
	api := New(&failingRepository{})

	_, err := api.AddTask(context.Background(), "")
	assert.Error(t, err)
	assert.True(t, api.StorageAvailable())
}
