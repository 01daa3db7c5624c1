package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape shared by the JSON and YAML loaders.
// Zero values leave the current setting untouched.
type fileConfig struct {
	BackendURL           string         `json:"backend_url" yaml:"backend_url"`
	SessionDB            string         `json:"session_db" yaml:"session_db"`
	RequestTimeout       timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SearchDebounce       timex.Duration `json:"search_debounce" yaml:"search_debounce"`
	PageSize             int            `json:"page_size" yaml:"page_size"`
	SessionCheckInterval timex.Duration `json:"session_check_interval" yaml:"session_check_interval"`
	LogLevel             string         `json:"log_level" yaml:"log_level"`
	LogBackend           string         `json:"log_backend" yaml:"log_backend"`
	Width                int            `json:"width" yaml:"width"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".json", "":
		err = json.Unmarshal(data, &fc)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.BackendURL != "" {
		cfg.BackendURL = fc.BackendURL
	}
	if fc.SessionDB != "" {
		cfg.SessionDB = fc.SessionDB
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = fc.SearchDebounce.Duration
	}
	if fc.PageSize != 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.SessionCheckInterval.Duration != 0 {
		cfg.SessionCheckInterval = fc.SessionCheckInterval.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogBackend != "" {
		cfg.LogBackend = fc.LogBackend
	}
	if fc.Width != 0 {
		cfg.Width = fc.Width
	}
	return nil
}
