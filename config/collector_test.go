package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollectorConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
enabled: true
interval: 30m
githubToken: file-token
producthunt:
  enabled: true
  url: https://www.producthunt.com/topics/artificial-intelligence
`), 0o600))
	t.Setenv(collectorConfigPathEnv, path)

	cfg, err := LoadCollectorConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30*time.Minute, time.Duration(cfg.Interval))
	assert.Equal(t, "file-token", cfg.GithubToken)
	assert.True(t, cfg.ProductHunt.Enabled)
	assert.Equal(t, "https://www.producthunt.com/topics/artificial-intelligence", cfg.ProductHunt.URL)
}

func TestLoadCollectorConfigMissingFileDisablesCollector(t *testing.T) {
	t.Setenv(collectorConfigPathEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadCollectorConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 6*time.Hour, time.Duration(cfg.Interval))
}

func TestLoadCollectorConfigGithubTokenFallsBackToEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enabled: true\n"), 0o600))
	t.Setenv(collectorConfigPathEnv, path)
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg, err := LoadCollectorConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.GithubToken)
}
