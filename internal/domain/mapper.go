package domain

import (
	"todo-list/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:        domainTask.ID,
		TaskName:  domainTask.TaskName,
		Finished:  domainTask.Finished,
		TimeAdded: domainTask.TimeAdded,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:        dbTask.ID,
		TaskName:  dbTask.TaskName,
		Finished:  dbTask.Finished,
		TimeAdded: dbTask.TimeAdded,
	}
}

// ToDatabaseSlice converts a slice of domain Tasks to database Tasks.
func (m *TaskMapper) ToDatabaseSlice(domainTasks []Task) []*sqlite.Task {
	dbTasks := make([]*sqlite.Task, len(domainTasks))
	for i, task := range domainTasks {
		dbTask := m.ToDatabase(task)
		dbTasks[i] = &dbTask
	}
	return dbTasks
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
