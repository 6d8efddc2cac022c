// Package ui provides the terminal interface: login, sign-up and the task
// screen for one session.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/todo"
)

// Authenticator gates entry into a session.
type Authenticator interface {
	Authenticate(username, password string) bool
	Register(username, password string) (bool, error)
}

// Option configures the TUI.
type Option func(*options)

type options struct {
	logger    *log.Logger
	altScreen bool
	newStore  func() *todo.Store
	input     io.Reader
	output    io.Writer
}

// WithLogger sets the logger passed to each session's store.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(o *options) {
		o.altScreen = enabled
	}
}

// WithStoreFactory overrides how a session's store is created.
func WithStoreFactory(fn func() *todo.Store) Option {
	return func(o *options) {
		if fn != nil {
			o.newStore = fn
		}
	}
}

// WithIO sets the program's input and output, skipping the TTY check.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(o *options) {
		o.input = in
		o.output = out
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.newStore == nil {
		logger := o.logger
		o.newStore = func() *todo.Store {
			return todo.NewStore(todo.WithLogger(logger))
		}
	}
	return o
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, auth Authenticator, opts ...Option) error {
	o := newOptions(opts)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.input != nil || o.output != nil {
		programOpts = append(programOpts, tea.WithInput(o.input), tea.WithOutput(o.output))
	} else if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	if o.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m := newModel(auth, o)
	program := tea.NewProgram(m, programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	m.endSession()
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
