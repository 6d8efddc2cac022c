package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		setSource(cfg, &cfg.LogLevel, v, "log_level", SourceEnv)
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		setSource(cfg, &cfg.LogFormat, v, "log_format", SourceEnv)
	}
	// An explicitly empty TODO_LOG_DIR disables file logging.
	if v, ok := os.LookupEnv("TODO_LOG_DIR"); ok {
		setSource(cfg, &cfg.LogDir, v, "log_dir", SourceEnv)
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		setSource(cfg, &cfg.LogFile, v, "log_file", SourceEnv)
	}
	if v := os.Getenv("TODO_ALT_SCREEN"); v != "" {
		setSource(cfg, &cfg.AltScreen, boolFromString(v), "alt_screen", SourceEnv)
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
