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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasksync help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasksync                                         List tasks
  tasksync list [common flags] [--status <status>] List tasks, optionally filtered
  tasksync add [common flags] [--status <status>] <name...>
  tasksync done [common flags] <n>
  tasksync status [common flags] <n> <status>
  tasksync rename [common flags] <n> <name...>
  tasksync rm [common flags] <n>
  tasksync restore [common flags] <task-id>
  tasksync clear [common flags] [--status <status>] --force
  tasksync sync [common flags] --force
  tasksync backends [common flags]
  tasksync init [common flags]
  tasksync help
  tasksync version

Statuses: "Not started", "In progress", "Done"

Common flags:
  --backend <kind> Select the backend: sqlite or notion
  --db <path>      Override the SQLite database path
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
