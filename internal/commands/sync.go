package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/store"
	"tasksync/internal/sync"
)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command: a one-shot copy of the Notion tasks
// into the local SQLite store, replacing whatever is there.
//
// It opens both backends itself through the store factory, so it reports
// NeedsStore false and ignores the --backend selection.
type SyncCmd struct {
	force   bool
	factory StoreFactory
}

// SetForce sets the force flag (for testing).
func (c *SyncCmd) SetForce(force bool) {
	c.force = force
}

// SetStoreFactory sets the factory used to open both stores.
// The dispatcher calls this before Run.
func (c *SyncCmd) SetStoreFactory(f StoreFactory) {
	c.factory = f
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return nil }
func (c *SyncCmd) Synopsis() string  { return "Replace local tasks with the Notion tasks" }
func (c *SyncCmd) Usage() string     { return "tasksync sync --force" }
func (c *SyncCmd) NeedsStore() bool  { return false }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected arguments: %s\n", strings.Join(args, " "))
		return exitcode.UserError
	}
	if !c.force {
		fmt.Fprintln(errOut, "error: sync replaces all local tasks (use --force)")
		return exitcode.UserError
	}

	remote, err := c.factory(ctx, cfg, config.BackendNotion)
	if err != nil {
		return storeError(errOut, err)
	}
	defer remote.Close()

	local, err := c.factory(ctx, cfg, config.BackendSQLite)
	if err != nil {
		return storeError(errOut, err)
	}
	defer local.Close()

	res, err := sync.Run(ctx, remote, local)
	if err != nil {
		if res.Copied > 0 && !cfg.Quiet {
			fmt.Fprintf(out, "synced %d of %d tasks from notion\n", res.Copied, res.Fetched)
		}
		fmt.Fprintf(errOut, "error: sync failed: %v\n", err)
		return exitcode.BackendError
	}

	if res.RemoteEmpty {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found in notion database")
		}
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "synced %d tasks from notion\n", res.Copied)
	}
	return exitcode.Success
}
