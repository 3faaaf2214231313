package domain

import (
	"time"
)

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	TaskName  string
	Finished  bool
	TimeAdded time.Time
}

// NewTask creates a new unfinished Task with the given name and creation time.
func NewTask(name string, timeAdded time.Time) Task {
	return Task{
		TaskName:  name,
		TimeAdded: timeAdded,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.TaskName != "" && !t.TimeAdded.IsZero()
}

// Checkbox returns the display marker for the task's completion state.
func (t Task) Checkbox() string {
	if t.Finished {
		return "[x]"
	}
	return "[ ]"
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.TaskName
}
