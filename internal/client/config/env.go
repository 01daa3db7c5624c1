package config

const (
	EnvBackendURL = "HUB_BACKEND_URL"
	EnvSessionDB  = "HUB_SESSION_DB"
	EnvLogLevel   = "HUB_LOG_LEVEL"
	EnvLogBackend = "HUB_LOG_BACKEND"
)

func applyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvBackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := getenv(EnvSessionDB); v != "" {
		cfg.SessionDB = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvLogBackend); v != "" {
		cfg.LogBackend = v
	}
}
