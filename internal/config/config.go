// Package config loads nxtwatch settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory and default files.
const AppName = "nxtwatch"

// Config holds all nxtwatch configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Auth    AuthConfig    `yaml:"auth"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Store   StoreConfig   `yaml:"store"`
}

// APIConfig configures the videos API client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each request ("0" disables).
	Timeout string `yaml:"timeout"`
	// CacheTTL keeps successful responses in memory ("0" disables).
	CacheTTL  string `yaml:"cache_ttl"`
	CacheSize int    `yaml:"cache_size"`
}

// AuthConfig locates the bearer token.
type AuthConfig struct {
	TokenFile string `yaml:"token_file"`
}

// UIConfig configures the Home view.
type UIConfig struct {
	Theme              string `yaml:"theme"` // "dark", "light" or "" (use saved preference)
	DropStaleResponses bool   `yaml:"drop_stale_responses"`
	HistorySize        int    `yaml:"history_size"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StoreConfig locates the sqlite database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Dir returns the nxtwatch configuration directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = filepath.Join(home, ".config")
		} else {
			base = "."
		}
	}
	return filepath.Join(base, AppName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		API: APIConfig{
			BaseURL:   "https://apis.ccbp.in",
			Timeout:   "30s",
			CacheTTL:  "0",
			CacheSize: 64,
		},
		Auth: AuthConfig{
			TokenFile: filepath.Join(dir, "jwt_token"),
		},
		UI: UIConfig{
			HistorySize: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, AppName+".log"),
		},
		Store: StoreConfig{
			Path: filepath.Join(dir, AppName+".db"),
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NXTWATCH_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("NXTWATCH_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("NXTWATCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	switch strings.ToLower(c.UI.Theme) {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be dark or light, got %q", c.UI.Theme)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// RequestTimeout returns the parsed api.timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	return parseDuration("api.timeout", c.API.Timeout)
}

// CacheTTL returns the parsed api.cache_ttl.
func (c *Config) CacheTTL() (time.Duration, error) {
	return parseDuration("api.cache_ttl", c.API.CacheTTL)
}

func parseDuration(name, s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}
