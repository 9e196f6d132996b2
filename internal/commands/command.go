// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the selected
	// backend store. Commands like help, version, init, backends and
	// sync return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, backend selection).
	// st is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int
}

// StoreFactory opens a backend store of the given kind (config.BackendSQLite
// or config.BackendNotion). The dispatcher opens the selected store with it;
// the sync command uses it to open both sides of the copy.
type StoreFactory func(ctx context.Context, cfg *config.Config, kind string) (store.Store, error)

// storeError prints a failed store call and picks the exit code.
// Validation failures are user errors; everything else is the backend's.
func storeError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, store.ErrEmptyName):
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	case errors.Is(err, store.ErrInvalidStatus):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, store.ErrNotConfigured):
		fmt.Fprintln(errOut, "error: notion not configured (run: tasksync init)")
		return exitcode.ConfigError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
