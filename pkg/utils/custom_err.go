package utils

import (
	"errors"
	"strings"
)

var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrInvalidSortBy = errors.New("invalid sortBy field")
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrDatabaseError = errors.New("database error")
)

// ValidationError collects every violated invariant of a write request so
// the caller sees all problems at once instead of fixing them one by one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
