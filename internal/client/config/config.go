package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the hub CLI.
type Config struct {
	BackendURL           string
	SessionDB            string
	RequestTimeout       time.Duration
	SearchDebounce       time.Duration
	PageSize             int
	SessionCheckInterval time.Duration
	LogLevel             string
	LogBackend           string
	Width                int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:5000"
	c.SessionDB = "hub_session.db"
	c.RequestTimeout = 15 * time.Second
	c.SearchDebounce = 400 * time.Millisecond
	c.PageSize = 10
	c.SessionCheckInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.Width = 80
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return errors.New("backend url is empty")
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend url %q is not absolute", c.BackendURL)
	}
	if c.SessionDB == "" {
		return errors.New("session db path is empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout < 0 || c.SearchDebounce < 0 || c.SessionCheckInterval < 0 {
		return errors.New("durations must not be negative")
	}
	if c.Width < 20 {
		return fmt.Errorf("render width %d is too narrow", c.Width)
	}
	return nil
}

// Load builds a Config from defaults, then the file at path (if any), then
// HUB_* environment variables. Flags are applied afterwards by Flags.Apply.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg, getenv)
	return cfg, nil
}
