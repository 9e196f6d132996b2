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
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
//
// Without --status it deletes every task including archived ones; with
// --status it deletes only the non-archived tasks in that state. Neither
// is restorable, hence the --force guard.
type ClearCmd struct {
	status string
	force  bool
}

// SetStatus sets the status filter (for testing).
func (c *ClearCmd) SetStatus(status string) {
	c.status = status
}

// SetForce sets the force flag (for testing).
func (c *ClearCmd) SetForce(force bool) {
	c.force = force
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete tasks permanently" }
func (c *ClearCmd) Usage() string     { return "tasksync clear [--status <status>] --force" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if !c.force {
		fmt.Fprintln(errOut, "error: this removes tasks permanently (use --force)")
		return exitcode.UserError
	}

	var (
		count int
		err   error
	)
	if c.status != "" {
		var status store.Status
		status, err = store.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		count, err = st.ClearByStatus(ctx, status)
	} else {
		count, err = st.ClearAll(ctx)
	}

	if err != nil {
		// A partial clear still removed tasks; report the count before
		// the failure.
		var clearErr *store.ClearError
		if errors.As(err, &clearErr) && count > 0 && !cfg.Quiet {
			fmt.Fprintf(out, "cleared %d task(s)\n", count)
		}
		return storeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "cleared %d task(s)\n", count)
	}
	return exitcode.Success
}
