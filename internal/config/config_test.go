package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/config"
)

// clearEnv clears all tasksync-related environment variables.
func clearEnv() {
	envVars := []string{
		"TASKSYNC_BACKEND", "TASKSYNC_DB",
		"NOTION_AUTH_TOKEN", "NOTION_DATABASE_ID",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestNewDefaults(t *testing.T) {
	clearEnv()
	defer clearEnv()

	dir := t.TempDir()
	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, config.BackendSQLite, cfg.Backend)
	assert.Equal(t, filepath.Join(dir, config.DefaultDBFile), cfg.DBPath)
	assert.Empty(t, cfg.NotionToken)
	assert.Empty(t, cfg.NotionDatabaseID)
	assert.False(t, cfg.HasNotionCredentials())
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("TASKSYNC_BACKEND", config.BackendNotion)
	t.Setenv("TASKSYNC_DB", "/tmp/elsewhere.db")
	t.Setenv("NOTION_AUTH_TOKEN", "secret-token")
	t.Setenv("NOTION_DATABASE_ID", "db-1")

	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config.BackendNotion, cfg.Backend)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
	assert.Equal(t, "secret-token", cfg.NotionToken)
	assert.Equal(t, "db-1", cfg.NotionDatabaseID)
	assert.True(t, cfg.HasNotionCredentials())
}

func TestNewReadsEnvFile(t *testing.T) {
	clearEnv()
	defer clearEnv()

	dir := t.TempDir()
	env := "NOTION_AUTH_TOKEN=from-file\nNOTION_DATABASE_ID=db-from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFile), []byte(env), 0600))

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.NotionToken)
	assert.Equal(t, "db-from-file", cfg.NotionDatabaseID)
	assert.True(t, cfg.HasNotionCredentials())
}

func TestEnvFileDoesNotOverrideEnv(t *testing.T) {
	t.Setenv("NOTION_AUTH_TOKEN", "from-env")
	t.Setenv("NOTION_DATABASE_ID", "db-from-env")

	dir := t.TempDir()
	env := "NOTION_AUTH_TOKEN=from-file\nNOTION_DATABASE_ID=db-from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFile), []byte(env), 0600))

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.NotionToken)
	assert.Equal(t, "db-from-env", cfg.NotionDatabaseID)
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", config.AppName), config.DefaultConfigDir())
}

func TestEnsureDirAndEnvFile(t *testing.T) {
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "nested", config.AppName)}

	assert.False(t, cfg.HasEnvFile())
	require.NoError(t, cfg.EnsureDir())

	info, err := os.Stat(cfg.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, os.WriteFile(cfg.EnvPath(), []byte("NOTION_AUTH_TOKEN=x\n"), 0600))
	assert.True(t, cfg.HasEnvFile())
}
