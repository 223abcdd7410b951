package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "http://localhost:8000", config.Server.BaseURL)
	assert.Equal(t, 30*time.Second, config.Server.GetTimeout())
	assert.Equal(t, 10, config.Server.RateLimit)
	assert.False(t, config.IsProduction())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wealthplay.toml")
	content := `
environment = "production"

[server]
base_url = "https://play.wealthplay.in"
timeout = "10s"
rate_limit = 5

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://play.wealthplay.in", config.Server.BaseURL)
	assert.Equal(t, 10*time.Second, config.Server.GetTimeout())
	assert.Equal(t, 5, config.Server.RateLimit)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.True(t, config.IsProduction())
}

func TestLoadConfigSkipsMissingFiles(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", config.Server.BaseURL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WEALTHPLAY_BASE_URL", "http://10.0.0.5:8000/")
	t.Setenv("WEALTHPLAY_LOG_LEVEL", "warn")
	t.Setenv("WEALTHPLAY_TIMEOUT", "not-a-duration")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:8000", config.Server.BaseURL, "trailing slash trimmed")
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "30s", config.Server.Timeout, "invalid duration override ignored")
}

func TestGetTimeoutFallsBackOnGarbage(t *testing.T) {
	server := ServerConfig{Timeout: "soon"}
	assert.Equal(t, 30*time.Second, server.GetTimeout())
}
