package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"

	"github.com/jung-kurt/gofpdf"
)

// Record is one exported task row
type Record struct {
	ID        int64     `json:"id"`
	TaskName  string    `json:"task_name"`
	Finished  bool      `json:"finished"`
	TimeAdded time.Time `json:"time_added"`
}

// Exporter renders the full task table in a requested format
type Exporter struct {
	repo sqlite.Repository
}

// NewExporter creates a new Exporter over the given repository
func NewExporter(repo sqlite.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export returns all tasks encoded as csv, json or pdf
func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	tasks, err := e.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(tasks))
	for i, task := range tasks {
		records[i] = Record{
			ID:        task.ID,
			TaskName:  task.TaskName,
			Finished:  task.Finished,
			TimeAdded: task.TimeAdded,
		}
	}

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(records, "", "  ")
	case "csv":
		return exportCSV(records)
	case "pdf":
		return exportPDF(records)
	default:
		return nil, errors.NewInvalidInputError("format", format, "supported formats: csv, json, pdf")
	}
}

func exportCSV(records []Record) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{"ID", "Task Name", "Finished", "Time Added"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.TaskName,
			strconv.FormatBool(r.Finished),
			r.TimeAdded.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func exportPDF(records []Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "To-Do List")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	for _, r := range records {
		status := "open"
		if r.Finished {
			status = "done"
		}
		line := "[" + status + "] " + r.TaskName + " (added " + r.TimeAdded.Format("2006-01-02 15:04") + ")"
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
