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

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"del"} }
func (c *RmCmd) Synopsis() string  { return "Archive a task" }
func (c *RmCmd) Usage() string     { return "tasksync rm <n>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task number required")
		return exitcode.UserError
	}

	num, err := parseTaskNumber(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := resolveTask(ctx, st, num)
	if err != nil {
		if errors.Is(err, errOutOfRange) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return storeError(errOut, err)
	}

	if err := st.Delete(ctx, task.ID); err != nil {
		return storeError(errOut, err)
	}

	// Archived tasks drop out of the listing, so the id is the only
	// handle left for restore.
	if !cfg.Quiet {
		fmt.Fprintf(out, "archived %s\n", task.ID)
	}
	return exitcode.Success
}
