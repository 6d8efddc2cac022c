// Package auth keeps the process-wide set of registered accounts.
package auth

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrInvalidArgument is matched by errors returned for empty credentials.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned by Register when the username or password
// is empty or whitespace-only.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Account is a registered user. Passwords are stored verbatim.
type Account struct {
	Username string
	Password string
}

// SeedAccounts returns the accounts every new directory starts with.
func SeedAccounts() []Account {
	return []Account{
		{Username: "admin", Password: "admin123"},
		{Username: "test", Password: "test123"},
	}
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger for registration traces and swallowed errors.
func WithLogger(logger *log.Logger) Option {
	return func(d *Directory) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Directory maps usernames to accounts. Build one per process with
// NewDirectory and pass it to whatever needs it.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]Account
	logger   *log.Logger
}

// NewDirectory returns a directory seeded with SeedAccounts.
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		accounts: make(map[string]Account),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, acct := range SeedAccounts() {
		d.accounts[acct.Username] = acct
	}
	return d
}

// Authenticate reports whether username exists and password matches it
// exactly. Unknown users and wrong passwords are indistinguishable, and any
// internal failure is logged and reported as false.
func (d *Directory) Authenticate(username, password string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if d.logger != nil {
				d.logger.Error("authentication error", "err", fmt.Sprint(r))
			}
		}
	}()

	d.mu.RLock()
	acct, found := d.accounts[username]
	d.mu.RUnlock()

	ok = found && acct.Password == password
	d.logger.Debug("authenticate", "user", username, "ok", ok)
	return ok
}

// Register adds a new account. It returns false without error when the
// username is taken, and an *InvalidArgumentError when either credential is
// blank.
func (d *Directory) Register(username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return false, &InvalidArgumentError{Message: "Username and password cannot be empty"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.accounts[username]; exists {
		d.logger.Debug("register rejected, username taken", "user", username)
		return false, nil
	}
	d.accounts[username] = Account{Username: username, Password: password}
	d.logger.Info("account registered", "user", username)
	return true, nil
}

// Has reports whether username is registered.
func (d *Directory) Has(username string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.accounts[username]
	return ok
}

// Len returns the number of registered accounts.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}
