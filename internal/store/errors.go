package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when a task name is empty or blank.
var ErrEmptyName = errors.New("task name is empty")

// ErrInvalidStatus is returned for a status outside the three workflow states.
var ErrInvalidStatus = errors.New("invalid status")

// ErrNotConfigured is returned when a backend's credentials are missing.
var ErrNotConfigured = errors.New("backend not configured")

// ClearError reports tasks a clear operation could not remove.
// The remote backend archives tasks one call at a time, so a failure
// partway leaves earlier tasks removed and the rest in place.
type ClearError struct {
	FailedIDs []string
	Cause     error // first underlying failure
}

func (e *ClearError) Error() string {
	n := len(e.FailedIDs)
	if n == 1 {
		return fmt.Sprintf("failed to clear 1 task: %s", e.FailedIDs[0])
	}
	return fmt.Sprintf("failed to clear %d tasks: %s", n, strings.Join(e.FailedIDs, ", "))
}

func (e *ClearError) Unwrap() error { return e.Cause }
