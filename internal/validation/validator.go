package validation

import (
	"strings"
	"unicode"

	"todo-list/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *Config
}

// Config holds the bounds the validator enforces
type Config struct {
	TaskNameMinLength int
	TaskNameMaxLength int
}

// NewValidator creates a new validator instance with default bounds
func NewValidator() *Validator {
	return &Validator{
		config: &Config{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 0, // no cap; the storage column is unbounded TEXT
		},
	}
}

// NewValidatorWithConfig creates a new validator instance with configured bounds
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: &Config{
			TaskNameMinLength: cfg.Validation.TaskNameMinLength,
			TaskNameMaxLength: cfg.Validation.TaskNameMaxLength,
		},
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks if a task name length is within configured limits.
// A zero maximum means unbounded.
func (v *Validator) IsValidTaskNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	if length < v.config.TaskNameMinLength {
		return false
	}
	if v.config.TaskNameMaxLength > 0 && length > v.config.TaskNameMaxLength {
		return false
	}
	return true
}

// HasNoControlCharacters checks that a task name contains no control characters.
// Printable text of any script is accepted; newlines and tabs are not.
func (v *Validator) HasNoControlCharacters(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// TrimTaskName trims surrounding whitespace and at most one enclosing
// quote pair, so shell-quoted input like "'buy milk'" stores as buy milk.
func (v *Validator) TrimTaskName(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if first == last && (first == '"' || first == '\'') {
			trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		}
	}
	return trimmed
}

// MinLength returns the configured minimum task name length
func (v *Validator) MinLength() int {
	return v.config.TaskNameMinLength
}

// MaxLength returns the configured maximum task name length (0 = unbounded)
func (v *Validator) MaxLength() int {
	return v.config.TaskNameMaxLength
}
