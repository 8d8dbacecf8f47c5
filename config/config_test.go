package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; unset so env-default applies.
	t.Setenv("LEARNLY_API_URL", "ignored")
	require.NoError(t, os.Unsetenv("LEARNLY_API_URL"))
	t.Setenv("LEARNLY_STATE_DIR", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.Otel.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEARNLY_API_URL", "https://api.learnly.example")
	t.Setenv("LEARNLY_GOOGLE_CLIENT_ID", "client-123")
	t.Setenv("LEARNLY_LOG_LEVEL", "debug")
	t.Setenv("LEARNLY_STATE_DIR", "/tmp/learnly-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.learnly.example", cfg.APIURL)
	assert.Equal(t, "client-123", cfg.GoogleClientID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/learnly-test", cfg.StateDir)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "learnly.yaml")
	body := "api_url: https://staging.learnly.example\nstate_dir: " + dir + "\nrequest_timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.learnly.example", cfg.APIURL)
	assert.Equal(t, dir, cfg.StateDir)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
