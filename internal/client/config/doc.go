// Package config loads runtime configuration for the hub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config/-c. Files ending in .yaml
//     or .yml are decoded with yaml.v3, anything else as JSON.
//  3. Environment: HUB_BACKEND_URL, HUB_SESSION_DB, HUB_LOG_LEVEL,
//     HUB_LOG_BACKEND.
//  4. Command-line flags that were set explicitly.
//
// Durations in files use timex.Duration, so both "400ms" and integer
// nanoseconds are accepted:
//
//	backend_url: http://localhost:5000
//	search_debounce: 400ms
//	page_size: 10
package config
