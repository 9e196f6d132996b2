package store_test

import (
	"errors"
	"testing"

	"tasksync/internal/store"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  store.Status
	}{
		{"Not started", store.StatusNotStarted},
		{"not started", store.StatusNotStarted},
		{"NOT STARTED", store.StatusNotStarted},
		{"not-started", store.StatusNotStarted},
		{"not_started", store.StatusNotStarted},
		{"  not   started  ", store.StatusNotStarted},
		{"In progress", store.StatusInProgress},
		{"in-progress", store.StatusInProgress},
		{"In_Progress", store.StatusInProgress},
		{"Done", store.StatusDone},
		{"done", store.StatusDone},
		{"DONE", store.StatusDone},
	}

	for _, tt := range tests {
		got, err := store.ParseStatus(tt.input)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	inputs := []string{"", "pending", "donee", "started", "in", "not"}

	for _, input := range inputs {
		_, err := store.ParseStatus(input)
		if err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", input)
			continue
		}
		if !errors.Is(err, store.ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", input, err)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range store.Statuses() {
		if !s.Valid() {
			t.Errorf("Statuses() entry %q reported invalid", s)
		}
	}

	invalid := []store.Status{"", "done", "Pending", "In Progress "}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("Status(%q).Valid() = true, want false", s)
		}
	}
}

func TestClearError(t *testing.T) {
	cause := errors.New("boom")
	err := &store.ClearError{FailedIDs: []string{"a", "b"}, Cause: cause}

	if got, want := err.Error(), "failed to clear 2 tasks: a, b"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected ClearError to unwrap to its cause")
	}

	one := &store.ClearError{FailedIDs: []string{"a"}}
	if got, want := one.Error(), "failed to clear 1 task: a"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
