package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	cfg, err := LoadConfig(newFlags(t, "--env-file", missing))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "logs/", cfg.App.LogPath)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "crm_session", cfg.Session.CookieName)
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "app.env")
	content := "APP_NAME=crm-test\nPORT=9090\nDB_NAME=crm\nDB_USER=crm_app\nSESSION_TTL_HOURS=2\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := LoadConfig(newFlags(t, "--env-file", envFile))
	require.NoError(t, err)

	assert.Equal(t, "crm-test", cfg.App.Name)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "crm", cfg.Database.Name)
	assert.Equal(t, "crm_app", cfg.Database.User)
	assert.Equal(t, 2, cfg.Session.TTLHours)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\nDEBUG=false\n"), 0o600))

	cfg, err := LoadConfig(newFlags(t, "--env-file", envFile, "--port", "7000", "--debug"))
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_HOST=from-file\n"), 0o600))
	t.Setenv("DB_HOST", "from-env")

	cfg, err := LoadConfig(newFlags(t, "--env-file", envFile))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Host)
}
