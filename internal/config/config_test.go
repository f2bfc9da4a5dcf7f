package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("NXTWATCH_API_URL", "")
	t.Setenv("NXTWATCH_THEME", "")
	t.Setenv("NXTWATCH_LOG_LEVEL", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://apis.ccbp.in", cfg.API.BaseURL)
	assert.Equal(t, 20, cfg.UI.HistorySize)
	assert.False(t, cfg.UI.DropStaleResponses)
	require.NoError(t, cfg.Validate())

	d, err := cfg.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	ttl, err := cfg.CacheTTL()
	require.NoError(t, err)
	assert.Zero(t, ttl)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API, cfg.API)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:9999"
	cfg.API.CacheTTL = "2m"
	cfg.UI.Theme = "dark"
	cfg.UI.DropStaleResponses = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", loaded.API.BaseURL)
	assert.Equal(t, "dark", loaded.UI.Theme)
	assert.True(t, loaded.UI.DropStaleResponses)
	ttl, err := loaded.CacheTTL()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, ttl)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: light\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "https://apis.ccbp.in", cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NXTWATCH_API_URL", "http://env.example")
	t.Setenv("NXTWATCH_THEME", "light")
	t.Setenv("NXTWATCH_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", cfg.API.BaseURL)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	cases := map[string]string{
		"theme":    "ui:\n  theme: purple\n",
		"timeout":  "api:\n  timeout: soon\n",
		"negative": "api:\n  cache_ttl: -5s\n",
		"level":    "logging:\n  level: loud\n",
		"yaml":     "api: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
