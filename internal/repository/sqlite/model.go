package sqlite

import "time"

// Task represents one row of the tasks table
type Task struct {
	ID        int64
	TaskName  string
	Finished  bool
	TimeAdded time.Time
}
