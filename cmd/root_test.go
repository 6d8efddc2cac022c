// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nibzard/todo-go/internal/config"
)

// isolate keeps real user config and logs out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_FILE", "TODO_ALT_SCREEN", "TODO_CONFIG"} {
		t.Setenv(key, "")
	}
	logDir := filepath.Join(home, "logs")
	t.Setenv("TODO_LOG_DIR", logDir)
	chdir(t, t.TempDir())
	return logDir
}

func TestRun(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"help flag", []string{"--help"}, "Usage:"},
		{"short help flag", []string{"-h"}, "Global Options:"},
		{"help command", []string{"help"}, "Commands:"},
		{"version flag", []string{"--version"}, "todo version dev"},
		{"short version flag", []string{"-v"}, "todo version"},
		{"version command", []string{"version"}, "todo version"},
		{"config command", []string{"config"}, "log_level"},
		{"config example", []string{"config", "-example"}, "# todo configuration file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), tt.args, &out); err != nil {
				t.Fatalf("run(%v) failed: %v", tt.args, err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"frobnicate"}, "unknown command"},
		{"unknown flag", []string{"-nope"}, "loading config"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log level"},
		{"tui extra args", []string{"tui", "extra"}, "unexpected arguments"},
		{"config extra args", []string{"config", "extra"}, "unexpected arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestConfigCommandShowsSources(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-log-format", "json", "config"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"json"`) || !strings.Contains(out.String(), "# flag") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "# environment") {
		t.Errorf("TODO_LOG_DIR source missing:\n%s", out.String())
	}
}

func TestTUICommandWritesLog(t *testing.T) {
	logDir := isolate(t)
	cfg, err := config.Load(nil, []string{"-log-level", "debug"})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	in := strings.NewReader("\x03") // ctrl+c
	if err := tuiCommand(ctx, cfg, nil, in, &bytes.Buffer{}); err != nil {
		t.Fatalf("tuiCommand failed: %v", err)
	}

	var out bytes.Buffer
	if err := logsCommand(cfg, nil, &out); err != nil {
		t.Fatalf("logsCommand failed: %v", err)
	}
	if !strings.Contains(out.String(), "starting") || !strings.Contains(out.String(), "exiting") {
		t.Errorf("log missing lifecycle entries:\n%s", out.String())
	}
	if !strings.Contains(out.String(), logDir) {
		t.Errorf("log header should name a file in %s:\n%s", logDir, out.String())
	}
}

func TestLogsCommand(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg := &config.Config{}
		if err := logsCommand(cfg, nil, &bytes.Buffer{}); err == nil {
			t.Error("expected error when logging is disabled")
		}
	})

	t.Run("empty dir", func(t *testing.T) {
		cfg := &config.Config{LogDir: t.TempDir()}
		err := logsCommand(cfg, nil, &bytes.Buffer{})
		if err == nil || !strings.Contains(err.Error(), "no log files") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("fixed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.log")
		if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		if err := logsCommand(&config.Config{LogFile: path}, nil, &out); err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(out.String(), "hello\n") {
			t.Errorf("unexpected output %q", out.String())
		}
	})
}

func TestOpenLoggerDisabled(t *testing.T) {
	logger, closeLog, err := openLogger(&config.Config{LogLevel: "info", LogFormat: "text"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	logger.Info("discarded")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
