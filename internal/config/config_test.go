package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 50.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 100, cfg.Cache.Capacity)
	assert.Equal(t, 10, cfg.Enrichment.TimeoutSecs)
	assert.Equal(t, 1, cfg.Enrichment.RetryAttempts)
	assert.Equal(t, uint64(0), cfg.Enrichment.Seed)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9090
  rate_limit_per_sec: 5
log:
  level: debug
  format: console
cache:
  capacity: 25
enrichment:
  timeout_secs: 3
  seed: 42
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 25, cfg.Cache.Capacity)
	assert.Equal(t, 3, cfg.Enrichment.TimeoutSecs)
	assert.Equal(t, uint64(42), cfg.Enrichment.Seed)
	assert.Equal(t, 1, cfg.Enrichment.RetryAttempts, "unset keys keep defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BRIDGE_SERVER_PORT", "7777")
	t.Setenv("BRIDGE_CACHE_CAPACITY", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Cache.Capacity)
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}

func TestInitLogger_Valid(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	assert.NoError(t, err)
}
