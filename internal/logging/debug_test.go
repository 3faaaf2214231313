package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("TODO_DEBUG", "1")
	assert.True(t, DebugEnabled())

	t.Setenv("TODO_DEBUG", "true")
	assert.True(t, DebugEnabled())
}
