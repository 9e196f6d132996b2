// Package store defines the backend-agnostic contract for task storage.
package store

import (
	"fmt"
	"strings"
)

// Status is a task's workflow state.
type Status string

// The three workflow states. The display strings are also the stored values.
const (
	StatusNotStarted Status = "Not started"
	StatusInProgress Status = "In progress"
	StatusDone       Status = "Done"
)

// AnyStatus matches every status when used as a list filter.
const AnyStatus Status = ""

// Statuses returns the workflow states in display order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the three workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus converts user input to a Status.
// Matching is case-insensitive and treats hyphens and underscores as
// spaces, so "in-progress" and "In progress" name the same value.
func ParseStatus(input string) (Status, error) {
	norm := strings.ToLower(input)
	norm = strings.ReplaceAll(norm, "-", " ")
	norm = strings.ReplaceAll(norm, "_", " ")
	norm = strings.Join(strings.Fields(norm), " ")

	for _, s := range Statuses() {
		if norm == strings.ToLower(string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidStatus, input)
}

// Task represents a single task item.
// Archived tasks never appear in List results, so the record carries
// no archived field; backends track that state internally.
type Task struct {
	ID     string
	Name   string
	Status Status
}
