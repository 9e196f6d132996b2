package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/store"
)

func init() {
	Register(&RestoreCmd{})
}

// RestoreCmd implements the restore command.
// It takes a task id rather than a number: archived tasks are not listed,
// so they have no position to refer to.
type RestoreCmd struct{}

func (c *RestoreCmd) Name() string      { return "restore" }
func (c *RestoreCmd) Aliases() []string { return nil }
func (c *RestoreCmd) Synopsis() string  { return "Unarchive a task by id" }
func (c *RestoreCmd) Usage() string     { return "tasksync restore <task-id>" }
func (c *RestoreCmd) NeedsStore() bool  { return true }

func (c *RestoreCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RestoreCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	if err := st.Restore(ctx, args[0]); err != nil {
		return storeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
