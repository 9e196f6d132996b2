package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tasksync/internal/store"
)

// errOutOfRange indicates a task number past the end of the listing.
var errOutOfRange = errors.New("task number out of range")

// parseTaskNumber parses a 1-based task number argument.
func parseTaskNumber(s string) (int, error) {
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	if num < 1 {
		return 0, fmt.Errorf("%w: %d", errOutOfRange, num)
	}
	return num, nil
}

// resolveTask maps a 1-based position in the unfiltered listing to the task
// at that position. Numbers printed by list stay valid until the next change.
func resolveTask(ctx context.Context, st store.Store, num int) (store.Task, error) {
	tasks, err := st.List(ctx, store.AnyStatus)
	if err != nil {
		return store.Task{}, err
	}
	if num > len(tasks) {
		return store.Task{}, fmt.Errorf("%w: %d", errOutOfRange, num)
	}
	return tasks[num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
