package config

import (
	"fmt"
	"io"
)

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by TODO_* environment variables or CLI flags

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"

# One log file per run is written here (supports ~ expansion).
# Set to "" to disable logging.
log_dir = "~/.todo/logs"

# Write to a fixed file instead of log_dir
# log_file = "/tmp/todo.log"

# Run the terminal UI in the alternate screen buffer
alt_screen = true
`
}

// Print writes the effective configuration with the source of each value.
func Print(w io.Writer, cfg *Config) {
	if cfg.ConfigFile != "" {
		fmt.Fprintf(w, "# loaded from %s\n", cfg.ConfigFile)
	}
	values := map[string]string{
		"log_level":  fmt.Sprintf("%q", cfg.LogLevel),
		"log_format": fmt.Sprintf("%q", cfg.LogFormat),
		"log_dir":    fmt.Sprintf("%q", cfg.LogDir),
		"log_file":   fmt.Sprintf("%q", cfg.LogFile),
		"alt_screen": fmt.Sprintf("%t", cfg.AltScreen),
	}
	for _, key := range configFields() {
		fmt.Fprintf(w, "%-10s = %-24s # %s\n", key, values[key], cfg.Source(key))
	}
}
