package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file
// 3. Project config file
// 4. Environment variables
// 5. CLI flags
//
// An explicit file (-config flag or TODO_CONFIG) replaces steps 2 and 3.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	if explicit := explicitConfigFile(args); explicit != "" {
		if err := loadConfigFile(cfg, expandPath(explicit), SourceFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	} else {
		// 2. Try to load from user config file
		if userConfigFile := findUserConfigFile(); userConfigFile != "" {
			if err := loadConfigFile(cfg, userConfigFile, SourceUserFile); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
			}
		}

		// 3. Try to load from project config file (overrides user config)
		if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
			if err := loadConfigFile(cfg, projectConfigFile, SourceProjFile); err != nil {
				return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
			}
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// explicitConfigFile returns the -config flag value from args, falling back
// to TODO_CONFIG. Flags are parsed after files, so the value is scanned here.
func explicitConfigFile(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if _, takesValue := flagKeys[name]; takesValue && name != "alt-screen" {
			i++
		}
	}
	return os.Getenv("TODO_CONFIG")
}

// loadConfigFile validates and decodes a TOML file, overriding only the keys
// it defines.
func loadConfigFile(cfg *Config, path string, source ConfigSource) error {
	raw := map[string]interface{}{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return err
	}
	if err := validateRaw(raw); err != nil {
		return err
	}

	fileCfg := &Config{}
	meta, err := toml.DecodeFile(path, fileCfg)
	if err != nil {
		return err
	}

	if meta.IsDefined("log_level") {
		setSource(cfg, &cfg.LogLevel, fileCfg.LogLevel, "log_level", source)
	}
	if meta.IsDefined("log_format") {
		setSource(cfg, &cfg.LogFormat, fileCfg.LogFormat, "log_format", source)
	}
	if meta.IsDefined("log_dir") {
		setSource(cfg, &cfg.LogDir, fileCfg.LogDir, "log_dir", source)
	}
	if meta.IsDefined("log_file") {
		setSource(cfg, &cfg.LogFile, fileCfg.LogFile, "log_file", source)
	}
	if meta.IsDefined("alt_screen") {
		setSource(cfg, &cfg.AltScreen, fileCfg.AltScreen, "alt_screen", source)
	}
	cfg.ConfigFile = path
	return nil
}

func setSource[T any](cfg *Config, field *T, value T, name string, source ConfigSource) {
	*field = value
	cfg.Sources[name] = source
}

// finalizeConfig normalizes values and expands paths.
func finalizeConfig(cfg *Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}

	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	return nil
}
