package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/store"
)

// envTemplate is written to the config directory on first init.
const envTemplate = `# tasksync configuration
# NOTION_AUTH_TOKEN: secret of a Notion internal integration
# NOTION_DATABASE_ID: id of the database shared with that integration
NOTION_AUTH_TOKEN=
NOTION_DATABASE_ID=
`

func init() {
	Register(&InitCmd{})
}

// InitCmd implements the init command. It creates the config directory,
// scaffolds the .env file and walks the user through connecting Notion.
type InitCmd struct{}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Set up the config directory" }
func (c *InitCmd) Usage() string     { return "tasksync init [common flags]" }
func (c *InitCmd) NeedsStore() bool  { return false }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.ConfigError
	}

	if cfg.HasNotionCredentials() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already configured")
		}
		return exitcode.Success
	}

	// Never overwrite an existing .env; the user may have edited it.
	if !cfg.HasEnvFile() {
		if err := os.WriteFile(cfg.EnvPath(), []byte(envTemplate), 0600); err != nil {
			fmt.Fprintf(errOut, "error: failed to write %s: %v\n", cfg.EnvPath(), err)
			return exitcode.ConfigError
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "wrote %s\n", cfg.EnvPath())
		}
	}

	fmt.Fprintln(errOut, "To connect the notion backend:")
	fmt.Fprintln(errOut, "")
	fmt.Fprintln(errOut, "1. Go to https://www.notion.so/my-integrations")
	fmt.Fprintln(errOut, "2. Create an internal integration and copy its secret")
	fmt.Fprintln(errOut, "3. Open your task database in Notion and share it with the integration")
	fmt.Fprintln(errOut, "4. Copy the database id from the database URL")
	fmt.Fprintln(errOut, "5. Fill in both values in:")
	fmt.Fprintf(errOut, "   %s\n", cfg.EnvPath())
	fmt.Fprintln(errOut, "")
	fmt.Fprintln(errOut, "Then run 'tasksync sync --force' to pull your tasks.")

	return exitcode.Success
}
