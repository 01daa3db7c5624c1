package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags mirrors the command-line surface. Values only reach Config when the
// user set the flag explicitly, so file and env settings are not clobbered by
// flag defaults.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string

	backendURL    string
	sessionDB     string
	timeout       time.Duration
	debounce      time.Duration
	pageSize      int
	checkInterval time.Duration
	logLevel      string
	logBackend    string
	width         int
}

// BindFlags registers the config flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	var d Config
	d.LoadDefaults()

	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to a JSON or YAML config file")
	fs.StringVarP(&f.backendURL, "backend", "a", d.BackendURL, "backend base URL")
	fs.StringVar(&f.sessionDB, "session-db", d.SessionDB, "path to the local session database")
	fs.DurationVar(&f.timeout, "timeout", d.RequestTimeout, "per-request timeout")
	fs.DurationVar(&f.debounce, "debounce", d.SearchDebounce, "search debounce interval")
	fs.IntVar(&f.pageSize, "page-size", d.PageSize, "items per page")
	fs.DurationVar(&f.checkInterval, "session-check", d.SessionCheckInterval, "session expiry check interval")
	fs.StringVar(&f.logLevel, "log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&f.logBackend, "log-backend", d.LogBackend, "log backend (slog, zap)")
	fs.IntVar(&f.width, "width", d.Width, "render width in columns")
	return f
}

// Apply copies explicitly set flags into cfg. Changed is checked on every flag
// because cobra parses persistent flags through the command's merged set.
func (f *Flags) Apply(cfg *Config) {
	f.fs.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		switch fl.Name {
		case "backend":
			cfg.BackendURL = f.backendURL
		case "session-db":
			cfg.SessionDB = f.sessionDB
		case "timeout":
			cfg.RequestTimeout = f.timeout
		case "debounce":
			cfg.SearchDebounce = f.debounce
		case "page-size":
			cfg.PageSize = f.pageSize
		case "session-check":
			cfg.SessionCheckInterval = f.checkInterval
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-backend":
			cfg.LogBackend = f.logBackend
		case "width":
			cfg.Width = f.width
		}
	})
}

// Resolve runs the full chain: defaults, file, env, flags, then Validate.
func (f *Flags) Resolve(getenv func(string) string) (*Config, error) {
	cfg, err := Load(f.ConfigPath, getenv)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
