package config

import "flag"

// flagKeys maps flag names to config keys for source tracking.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"log-dir":    "log_dir",
	"log-file":   "log_file",
	"alt-screen": "alt_screen",
}

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json, logfmt")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for per-run log files (empty disables)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of log-dir")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Run the TUI in the alternate screen buffer")
	// Read before flags are parsed, see explicitConfigFile.
	var configFile string
	fs.StringVar(&configFile, "config", "", "Path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Sources[key] = SourceFlag
		}
	})
	return nil
}
