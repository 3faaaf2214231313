package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessages(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())
	assert.Equal(t, "validation error", ve.Error())

	ve.AddRequiredError("task_name")
	assert.True(t, ve.HasErrors())
	assert.Contains(t, ve.Error(), "task_name is required")
	assert.Equal(t, "task_name is required", ve.GetUserFriendlyMessage())

	ve.AddInvalidCharacterError("task_name", "bad\nvalue")
	assert.Contains(t, ve.Error(), "multiple validation errors")
	assert.Contains(t, ve.GetUserFriendlyMessage(), "Multiple validation errors occurred")
}

func TestValidationErrorFieldLookup(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")
	ve.AddInvalidValueError("task_id", -1, "must be a positive integer")

	nameErrors := ve.GetFieldErrors("task_name")
	assert.Len(t, nameErrors, 1)
	assert.Equal(t, ErrorTypeRequired, nameErrors[0].Type)

	assert.Empty(t, ve.GetFieldErrors("unknown"))
}

func TestInvalidLengthMessages(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidLengthError("task_name", "x", 1, 255)
	assert.Contains(t, ve.Errors[0].Message, "between 1 and 255")

	ve = NewValidationError()
	ve.AddInvalidLengthError("task_name", "", 1, 0)
	assert.Contains(t, ve.Errors[0].Message, "at least 1")
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}
