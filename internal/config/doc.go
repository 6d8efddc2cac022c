// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/todo/todo.toml, ~/.config/todo/todo.toml,
//    or the OS-specific config directory)
// 3. Project config file (todo.toml or .todo.toml in the working directory),
//    or the file named by -config / TODO_CONFIG instead of 2 and 3
// 4. Environment variables (TODO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Config files are checked against an embedded JSON Schema before they are
// decoded, so unknown keys and bad enum values are reported with their path.
//
// Seed accounts are not configuration; see package auth.
package config
