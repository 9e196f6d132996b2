// Package config handles XDG configuration paths and environment settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "tasksync"

	// EnvFile is the environment file read from the config directory.
	EnvFile = ".env"

	// DefaultDBFile is the SQLite database filename inside the config
	// directory when TASKSYNC_DB is not set.
	DefaultDBFile = "tasks.db"
)

// Backend kinds selectable via TASKSYNC_BACKEND or --backend.
const (
	BackendSQLite = "sqlite"
	BackendNotion = "notion"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend is the selected backend kind, sqlite or notion.
	Backend string

	// DBPath is the SQLite database file path.
	DBPath string

	// NotionToken is the Notion integration token.
	NotionToken string

	// NotionDatabaseID is the Notion database holding the tasks.
	NotionDatabaseID string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasksync or
// $HOME/.config/tasksync.
//
// Settings come from the environment, with a .env in the working directory
// and one in the config directory loaded first. Neither file overrides
// variables already set.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	// Missing files are fine; only the environment is required.
	_ = godotenv.Load()
	_ = godotenv.Load(filepath.Join(dir, EnvFile))

	return &Config{
		Dir:              dir,
		Backend:          getEnv("TASKSYNC_BACKEND", BackendSQLite),
		DBPath:           getEnv("TASKSYNC_DB", filepath.Join(dir, DefaultDBFile)),
		NotionToken:      os.Getenv("NOTION_AUTH_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnvPath returns the path to the config directory's .env file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasEnvFile checks if the config directory's .env file exists.
func (c *Config) HasEnvFile() bool {
	_, err := os.Stat(c.EnvPath())
	return err == nil
}

// HasNotionCredentials reports whether both Notion settings are present.
func (c *Config) HasNotionCredentials() bool {
	return c.NotionToken != "" && c.NotionDatabaseID != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
