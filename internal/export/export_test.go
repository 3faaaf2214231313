package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/repository/sqlite"
)

func setupTestExporter(t *testing.T) (*Exporter, sqlite.Repository) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewExporter(repo), repo
}

func seedTasks(t *testing.T, repo sqlite.Repository) {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	milk := &sqlite.Task{TaskName: "Buy milk", TimeAdded: base}
	require.NoError(t, repo.CreateTask(ctx, milk))

	bill := &sqlite.Task{TaskName: "Pay bill", TimeAdded: base.Add(time.Minute)}
	require.NoError(t, repo.CreateTask(ctx, bill))

	bill.Finished = true
	require.NoError(t, repo.UpdateTaskStatuses(ctx, []*sqlite.Task{bill}))
}

func TestExportCSV(t *testing.T) {
	exporter, repo := setupTestExporter(t)
	seedTasks(t, repo)

	data, err := exporter.Export(context.Background(), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Task Name,Finished,Time Added", lines[0])
	assert.Contains(t, lines[1], "Buy milk")
	assert.Contains(t, lines[1], "false")
	assert.Contains(t, lines[2], "Pay bill")
	assert.Contains(t, lines[2], "true")
}

func TestExportCSVEmptyStore(t *testing.T) {
	exporter, _ := setupTestExporter(t)

	data, err := exporter.Export(context.Background(), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestExportJSON(t *testing.T) {
	exporter, repo := setupTestExporter(t)
	seedTasks(t, repo)

	data, err := exporter.Export(context.Background(), "json")
	require.NoError(t, err)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)

	assert.Equal(t, "Buy milk", records[0].TaskName)
	assert.False(t, records[0].Finished)
	assert.Equal(t, "Pay bill", records[1].TaskName)
	assert.True(t, records[1].Finished)
	assert.Greater(t, records[0].ID, int64(0))
}

func TestExportPDF(t *testing.T) {
	exporter, repo := setupTestExporter(t)
	seedTasks(t, repo)

	data, err := exporter.Export(context.Background(), "pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportFormatIsCaseInsensitive(t *testing.T) {
	exporter, repo := setupTestExporter(t)
	seedTasks(t, repo)

	_, err := exporter.Export(context.Background(), "JSON")
	assert.NoError(t, err)
}

func TestExportUnknownFormat(t *testing.T) {
	exporter, _ := setupTestExporter(t)

	_, err := exporter.Export(context.Background(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported formats")
}
