package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceFile     ConfigSource = "config file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultLogDir    = "~/.todo/logs"
	DefaultAltScreen = true
)

// Config holds the full configuration for the todo application.
type Config struct {
	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// LogDir receives one log file per run. Empty disables file logging
	// unless LogFile is set.
	LogDir string `toml:"log_dir"`
	// LogFile overrides LogDir with a fixed file.
	LogFile string `toml:"log_file"`

	// Terminal UI
	AltScreen bool `toml:"alt_screen"`

	// ConfigFile is the file that was loaded, if any.
	ConfigFile string `toml:"-"`

	// Sources maps each field's TOML key to where its value came from.
	Sources map[string]ConfigSource `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"log_level",
		"log_format",
		"log_dir",
		"log_file",
		"alt_screen",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogDir = DefaultLogDir
	cfg.LogFile = ""
	cfg.AltScreen = DefaultAltScreen

	cfg.Sources = make(map[string]ConfigSource, len(configFields()))
	for _, field := range configFields() {
		cfg.Sources[field] = SourceDefault
	}
}

// Source returns where the value for key came from.
func (c *Config) Source(key string) ConfigSource {
	if src, ok := c.Sources[key]; ok {
		return src
	}
	return SourceDefault
}

// LoggingEnabled reports whether a log file should be written.
func (c *Config) LoggingEnabled() bool {
	return c.LogFile != "" || c.LogDir != ""
}
