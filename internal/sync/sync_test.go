package sync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/store"
	"tasksync/internal/sync"
	"tasksync/internal/testutil"
)

func TestRunReplacesDestination(t *testing.T) {
	src := testutil.NewFakeStore()
	src.Seed("Buy milk", store.StatusNotStarted)
	src.Seed("Walk dog", store.StatusDone)

	dst := testutil.NewFakeStore()
	dst.Seed("Stale local task", store.StatusInProgress)

	res, err := sync.Run(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Equal(t, sync.Result{Fetched: 2, Copied: 2}, res)

	tasks, err := dst.List(context.Background(), store.AnyStatus)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Name)
	assert.Equal(t, store.StatusNotStarted, tasks[0].Status)
	assert.Equal(t, "Walk dog", tasks[1].Name)
	assert.Equal(t, store.StatusDone, tasks[1].Status)
}

func TestRunEmptySourceLeavesDestination(t *testing.T) {
	src := testutil.NewFakeStore()
	dst := testutil.NewFakeStore()
	dst.Seed("Keep me", store.StatusNotStarted)

	res, err := sync.Run(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Equal(t, sync.Result{RemoteEmpty: true}, res)

	tasks, err := dst.List(context.Background(), store.AnyStatus)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep me", tasks[0].Name)
}

func TestRunSkipsArchivedSourceTasks(t *testing.T) {
	src := testutil.NewFakeStore()
	src.Seed("Visible", store.StatusNotStarted)
	gone := src.Seed("Archived remotely", store.StatusDone)
	require.NoError(t, src.Delete(context.Background(), gone.ID))

	dst := testutil.NewFakeStore()

	res, err := sync.Run(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Equal(t, sync.Result{Fetched: 1, Copied: 1}, res)
}

func TestRunPartialFailure(t *testing.T) {
	src := testutil.NewFakeStore()
	src.Seed("First", store.StatusNotStarted)
	src.Seed("Second", store.StatusNotStarted)
	src.Seed("Third", store.StatusDone)

	dst := testutil.NewFakeStore()
	dst.FailAddAfter = 2

	res, err := sync.Run(context.Background(), src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `copy "Third"`)
	assert.Equal(t, sync.Result{Fetched: 3, Copied: 2, Failed: 1}, res)
}

func TestRunSourceError(t *testing.T) {
	src := testutil.NewFakeStore()
	src.ListErr = errors.New("boom")
	dst := testutil.NewFakeStore()

	_, err := sync.Run(context.Background(), src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch tasks")
}

func TestRunClearError(t *testing.T) {
	src := testutil.NewFakeStore()
	src.Seed("Buy milk", store.StatusNotStarted)

	dst := testutil.NewFakeStore()
	dst.Seed("Keep me", store.StatusDone)
	dst.ClearAllErr = errors.New("locked")

	res, err := sync.Run(context.Background(), src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear destination")
	assert.Equal(t, 1, res.Fetched)
	assert.Zero(t, res.Copied)

	tasks, err := dst.List(context.Background(), store.AnyStatus)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}
