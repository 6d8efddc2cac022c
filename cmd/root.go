// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/auth"
	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs, nil, nil)
	case "config":
		return configCommand(cfg, remainingArgs, stdout)
	case "logs":
		return logsCommand(cfg, remainingArgs, stdout)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand builds the session dependencies and runs the terminal UI. in and
// out replace the terminal when non-nil.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "version", Version)
	directory := auth.NewDirectory(auth.WithLogger(logger.WithPrefix("auth")))
	storeLogger := logger.WithPrefix("store")

	opts := []ui.Option{
		ui.WithLogger(logger.WithPrefix("ui")),
		ui.WithAltScreen(cfg.AltScreen),
		ui.WithStoreFactory(func() *todo.Store {
			return todo.NewStore(todo.WithLogger(storeLogger))
		}),
	}
	if in != nil || out != nil {
		opts = append(opts, ui.WithIO(in, out))
	}

	if err := ui.Run(ctx, directory, opts...); err != nil {
		logger.Error("tui exited", "err", err)
		return err
	}
	logger.Info("exiting")
	return nil
}

// openLogger returns the run's logger and a func that closes its file.
func openLogger(cfg *config.Config) (*log.Logger, func(), error) {
	opts := logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Timestamp: true,
	}
	if !cfg.LoggingEnabled() {
		return logging.New(nil, opts), func() {}, nil
	}

	var (
		runLog *logging.RunLogger
		err    error
	)
	if cfg.LogFile != "" {
		runLog, err = logging.OpenFile(cfg.LogFile)
	} else {
		runLog, err = logging.NewRunLogger(cfg.LogDir)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return logging.New(runLog.Writer(), opts), func() { _ = runLog.Close() }, nil
}

func configCommand(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todo config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	}
	config.Print(w, cfg)
	return nil
}

func logsCommand(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	path := cfg.LogFile
	if path == "" {
		if cfg.LogDir == "" {
			return fmt.Errorf("logging is disabled")
		}
		latest, err := logging.FindLatestLog(cfg.LogDir)
		if err != nil {
			return err
		}
		if latest == "" {
			return fmt.Errorf("no log files in %s", cfg.LogDir)
		}
		path = latest
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(w, "==> %s <==\n", path)
	_, err = io.Copy(w, f)
	return err
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todo version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todo - a terminal to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui           Log in and manage tasks (default command)")
	fmt.Fprintln(w, "  config        Show the effective configuration (-example for a template)")
	fmt.Fprintln(w, "  logs          Print the latest log file")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Built-in accounts: admin/admin123, test/test123")
}
