package commands

import (
	"context"
	"flag"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/output"
	"tasksync/internal/store"
)

func init() {
	Register(&BackendsCmd{})
}

// BackendsCmd implements the backends command.
type BackendsCmd struct{}

func (c *BackendsCmd) Name() string      { return "backends" }
func (c *BackendsCmd) Aliases() []string { return nil }
func (c *BackendsCmd) Synopsis() string  { return "Print available backends" }
func (c *BackendsCmd) Usage() string     { return "tasksync backends [common flags]" }
func (c *BackendsCmd) NeedsStore() bool  { return false }

func (c *BackendsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BackendsCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	output.FormatBackend(out, config.BackendSQLite, cfg.Backend == config.BackendSQLite, true)
	output.FormatBackend(out, config.BackendNotion, cfg.Backend == config.BackendNotion, cfg.HasNotionCredentials())
	return exitcode.Success
}
