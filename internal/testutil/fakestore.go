// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tasksync/internal/store"
)

type fakeTask struct {
	task     store.Task
	archived bool
}

// FakeStore is an in-memory implementation of store.Store for testing.
// It mirrors the relational semantics: mutations on unknown ids succeed
// as no-ops, and archived tasks stay around until cleared.
type FakeStore struct {
	mu    sync.RWMutex
	tasks []fakeTask
	seq   int

	// Error injection for testing
	ListErr          error
	AddErr           error
	UpdateStatusErr  error
	UpdateNameErr    error
	DeleteErr        error
	RestoreErr       error
	ClearAllErr      error
	ClearByStatusErr error

	// ClearedBeforeErr is the count returned alongside ClearAllErr or
	// ClearByStatusErr, for partial clear failures.
	ClearedBeforeErr int

	// FailAddAfter makes Add fail once this many adds have succeeded.
	// Zero disables it.
	FailAddAfter int
	added        int
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed adds a task directly, bypassing validation, and returns it.
func (f *FakeStore) Seed(name string, status store.Status) store.Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := store.Task{ID: fmt.Sprintf("task-%d", f.seq), Name: name, Status: status}
	f.tasks = append(f.tasks, fakeTask{task: t})
	return t
}

// List implements store.Store.
func (f *FakeStore) List(ctx context.Context, filter store.Status) ([]store.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if filter != store.AnyStatus && !filter.Valid() {
		return nil, fmt.Errorf("%w: %s", store.ErrInvalidStatus, filter)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []store.Task
	for _, ft := range f.tasks {
		if ft.archived {
			continue
		}
		if filter != store.AnyStatus && ft.task.Status != filter {
			continue
		}
		result = append(result, ft.task)
	}
	return result, nil
}

// Add implements store.Store.
func (f *FakeStore) Add(ctx context.Context, name string, status store.Status) (store.Task, error) {
	if f.AddErr != nil {
		return store.Task{}, f.AddErr
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return store.Task{}, store.ErrEmptyName
	}
	if status == store.AnyStatus {
		status = store.StatusNotStarted
	}
	if !status.Valid() {
		return store.Task{}, fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailAddAfter > 0 && f.added >= f.FailAddAfter {
		return store.Task{}, errors.New("insert failed")
	}
	f.added++

	f.seq++
	t := store.Task{ID: fmt.Sprintf("task-%d", f.seq), Name: name, Status: status}
	f.tasks = append(f.tasks, fakeTask{task: t})
	return t, nil
}

// UpdateStatus implements store.Store.
func (f *FakeStore) UpdateStatus(ctx context.Context, id string, status store.Status) error {
	if f.UpdateStatusErr != nil {
		return f.UpdateStatusErr
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, ft := range f.tasks {
		if ft.task.ID == id {
			f.tasks[i].task.Status = status
			break
		}
	}
	return nil
}

// UpdateName implements store.Store.
func (f *FakeStore) UpdateName(ctx context.Context, id, name string) error {
	if f.UpdateNameErr != nil {
		return f.UpdateNameErr
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return store.ErrEmptyName
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, ft := range f.tasks {
		if ft.task.ID == id {
			f.tasks[i].task.Name = name
			break
		}
	}
	return nil
}

// Delete implements store.Store.
func (f *FakeStore) Delete(ctx context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, ft := range f.tasks {
		if ft.task.ID == id {
			f.tasks[i].archived = true
			break
		}
	}
	return nil
}

// Restore implements store.Store.
func (f *FakeStore) Restore(ctx context.Context, id string) error {
	if f.RestoreErr != nil {
		return f.RestoreErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, ft := range f.tasks {
		if ft.task.ID == id {
			f.tasks[i].archived = false
			break
		}
	}
	return nil
}

// ClearAll implements store.Store.
func (f *FakeStore) ClearAll(ctx context.Context) (int, error) {
	if f.ClearAllErr != nil {
		return f.ClearedBeforeErr, f.ClearAllErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.tasks)
	f.tasks = nil
	return n, nil
}

// ClearByStatus implements store.Store.
func (f *FakeStore) ClearByStatus(ctx context.Context, status store.Status) (int, error) {
	if f.ClearByStatusErr != nil {
		return f.ClearedBeforeErr, f.ClearByStatusErr
	}
	if !status.Valid() {
		return 0, fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	kept := f.tasks[:0]
	for _, ft := range f.tasks {
		if !ft.archived && ft.task.Status == status {
			n++
			continue
		}
		kept = append(kept, ft)
	}
	f.tasks = kept
	return n, nil
}

// Close implements store.Store.
func (f *FakeStore) Close() error { return nil }
