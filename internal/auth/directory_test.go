package auth

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSeededAccounts(t *testing.T) {
	d := NewDirectory()
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if !d.Has("admin") || !d.Has("test") {
		t.Error("seed accounts missing")
	}
}

func TestAuthenticate(t *testing.T) {
	d := NewDirectory()
	tests := []struct {
		name     string
		user     string
		password string
		want     bool
	}{
		{"admin ok", "admin", "admin123", true},
		{"test ok", "test", "test123", true},
		{"wrong password", "admin", "wrong", false},
		{"case sensitive password", "admin", "ADMIN123", false},
		{"case sensitive username", "Admin", "admin123", false},
		{"unknown user", "nobody", "admin123", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Authenticate(tt.user, tt.password); got != tt.want {
				t.Errorf("Authenticate(%q, %q) = %v, want %v", tt.user, tt.password, got, tt.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	d := NewDirectory()

	ok, err := d.Register("alice", "secret")
	if err != nil || !ok {
		t.Fatalf("Register(alice) = %v, %v; want true, nil", ok, err)
	}
	if !d.Authenticate("alice", "secret") {
		t.Error("new account cannot authenticate")
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}

func TestRegisterExistingDoesNotOverwrite(t *testing.T) {
	d := NewDirectory()

	ok, err := d.Register("admin", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Register(admin) = true, want false")
	}
	if !d.Authenticate("admin", "admin123") {
		t.Error("seeded password was overwritten")
	}
	if d.Authenticate("admin", "x") {
		t.Error("new password accepted")
	}
}

func TestRegisterInvalidArgument(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
	}{
		{"empty username", "", "pw"},
		{"empty password", "bob", ""},
		{"whitespace username", "  \t", "pw"},
		{"whitespace password", "bob", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirectory()
			ok, err := d.Register(tt.user, tt.password)
			if ok {
				t.Error("Register returned true")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
			if err.Error() != "Username and password cannot be empty" {
				t.Errorf("message = %q", err.Error())
			}
			if d.Len() != 2 {
				t.Error("directory changed after invalid register")
			}
		})
	}
}

func TestRegisterKeepsUsernameVerbatim(t *testing.T) {
	d := NewDirectory()
	if ok, _ := d.Register(" carol ", "pw"); !ok {
		t.Fatal("register failed")
	}
	if d.Authenticate("carol", "pw") {
		t.Error("username was trimmed")
	}
	if !d.Authenticate(" carol ", "pw") {
		t.Error("registered username not found")
	}
}

func TestAuthenticateFailsClosed(t *testing.T) {
	var buf bytes.Buffer
	d := NewDirectory(WithLogger(log.New(&buf)))
	d.accounts = nil // lookups still work on a nil map
	if d.Authenticate("admin", "admin123") {
		t.Error("authenticated against empty directory")
	}

	// A nil logger makes the debug trace panic after the lookup succeeded.
	broken := &Directory{accounts: map[string]Account{"admin": {Username: "admin", Password: "admin123"}}}
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic escaped Authenticate: %v", r)
			}
		}()
		if broken.Authenticate("admin", "admin123") {
			t.Error("Authenticate returned true after internal failure")
		}
	}()
}

func TestRegisterLogs(t *testing.T) {
	var buf bytes.Buffer
	d := NewDirectory(WithLogger(log.New(&buf)))
	if _, err := d.Register("dave", "pw"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "account registered") {
		t.Errorf("log output missing registration: %q", buf.String())
	}
}

func TestConcurrentRegister(t *testing.T) {
	d := NewDirectory()
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := d.Register("race", "pw"); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if wins != 1 {
		t.Errorf("%d registrations succeeded, want 1", wins)
	}
}
