// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Task is a single task: a caller-chosen positive ID and its description.
type Task struct {
	ID          int
	Description string
}

// Key returns the store key for the task ID.
func (t Task) Key() string {
	return Key(t.ID)
}

// String renders the task as "{id}. {description}".
func (t Task) String() string {
	return fmt.Sprintf("%d. %s", t.ID, t.Description)
}

// Key converts a task ID to its store key.
func Key(id int) string {
	return strconv.Itoa(id)
}

var (
	// ErrExists is returned when adding an ID that is already open.
	ErrExists = errors.New("already exists")

	// ErrNotFound is returned when an ID is not in the open set.
	ErrNotFound = errors.New("not found")

	// ErrInvalidFormat is returned for input that is not "id:description".
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidID is returned for an ID that is not a positive integer.
	ErrInvalidID = errors.New("invalid task id")
)

// ParseID parses a positive decimal task ID.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, s)
	}
	return id, nil
}

// ParseEntry parses an "id:description" entry.
// Exactly one ':' is allowed; the id must be a positive integer and the
// description must not be blank. Surrounding whitespace is trimmed from both.
func ParseEntry(s string) (int, string, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, "", ErrInvalidFormat
	}

	id, err := ParseID(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	description := strings.TrimSpace(parts[1])
	if description == "" {
		return 0, "", ErrInvalidFormat
	}
	return id, description, nil
}
