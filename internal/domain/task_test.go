package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	now := time.Now()
	task := NewTask("Buy milk", now)

	assert.Equal(t, "Buy milk", task.TaskName)
	assert.False(t, task.Finished)
	assert.Equal(t, now, task.TimeAdded)
	assert.Zero(t, task.ID)
}

func TestTaskIsValid(t *testing.T) {
	now := time.Now()

	assert.True(t, NewTask("Buy milk", now).IsValid())
	assert.False(t, NewTask("", now).IsValid())
	assert.False(t, NewTask("Buy milk", time.Time{}).IsValid())
}

func TestTaskCheckbox(t *testing.T) {
	task := NewTask("Buy milk", time.Now())
	assert.Equal(t, "[ ]", task.Checkbox())

	task.Finished = true
	assert.Equal(t, "[x]", task.Checkbox())
}

func TestTaskString(t *testing.T) {
	task := NewTask("Buy milk", time.Now())
	assert.Equal(t, "Buy milk", task.String())
}
