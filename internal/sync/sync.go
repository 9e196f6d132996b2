// Package sync copies every task from one store into another.
//
// The copy is destructive on the destination side: its rows are cleared
// before the source tasks are inserted. When the source is empty the
// destination is left untouched, so a misconfigured source cannot wipe
// local data.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tasksync/internal/store"
)

// Result reports what a run did.
type Result struct {
	Fetched     int  // tasks read from the source
	Copied      int  // tasks written to the destination
	Failed      int  // tasks that could not be written
	RemoteEmpty bool // source had no tasks; destination untouched
}

// Run replaces the contents of dst with the tasks in src.
// A partial run is possible: dst is cleared first, and each insert that
// fails afterwards is counted and reported without stopping the rest.
func Run(ctx context.Context, src, dst store.Store) (Result, error) {
	tasks, err := src.List(ctx, store.AnyStatus)
	if err != nil {
		return Result{}, fmt.Errorf("fetch tasks: %w", err)
	}
	if len(tasks) == 0 {
		return Result{RemoteEmpty: true}, nil
	}

	res := Result{Fetched: len(tasks)}
	slog.Debug("sync fetched tasks", "count", res.Fetched)

	if _, err := dst.ClearAll(ctx); err != nil {
		return res, fmt.Errorf("clear destination: %w", err)
	}

	var errs []error
	for _, t := range tasks {
		if _, err := dst.Add(ctx, t.Name, t.Status); err != nil {
			res.Failed++
			errs = append(errs, fmt.Errorf("copy %q: %w", t.Name, err))
			continue
		}
		res.Copied++
	}

	return res, errors.Join(errs...)
}
