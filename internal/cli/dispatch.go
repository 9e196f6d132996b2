// Package cli parses arguments and dispatches registered commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tasksync/internal/commands"
	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/store"
)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  commands.StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store
// factory. The factory must be non-nil.
func NewDispatcher(registry *commands.Registry, factory commands.StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var backend string
	var dbPath string
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&backend, "backend", "", "")
	fs.StringVar(&dbPath, "db", "", "")
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Missing flag value: "flag needs an argument: -status"
		if rest, ok := strings.CutPrefix(errStr, "flag needs an argument: "); ok {
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", rest)
			return exitcode.UserError
		}

		// Unknown flag
		if rest, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", rest)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	if backend != "" {
		cfg.Backend = backend
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	setupLogging(cfg.Debug, errOut)

	// Commands that open stores themselves get the factory instead
	if su, ok := cmd.(interface{ SetStoreFactory(commands.StoreFactory) }); ok {
		su.SetStoreFactory(d.factory)
	}

	var st store.Store
	if cmd.NeedsStore() {
		if cfg.Backend != config.BackendSQLite && cfg.Backend != config.BackendNotion {
			fmt.Fprintf(errOut, "error: unknown backend: %s\n", cfg.Backend)
			return exitcode.UserError
		}
		st, err = d.factory(ctx, cfg, cfg.Backend)
		if err != nil {
			if errors.Is(err, store.ErrNotConfigured) {
				fmt.Fprintln(errOut, "error: notion not configured (run: tasksync init)")
				return exitcode.ConfigError
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		defer st.Close()
	}

	return cmd.Run(ctx, cfg, st, positionalArgs, out, errOut)
}

// setupLogging routes logs to errOut. Backends log through the default
// slog logger; without --debug only warnings get through.
func setupLogging(debug bool, errOut io.Writer) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
		Level: level,
	})))
}
