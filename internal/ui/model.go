package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenTasks
)

// model is the root bubbletea model. It owns the credential forms and, once
// a user has logged in, the session's task screen.
type model struct {
	auth   Authenticator
	opts   *options
	logger *log.Logger

	screen   screen
	login    credentialForm
	register credentialForm
	// message is the login screen's status line.
	message   string
	messageOK bool

	user    string
	session *taskScreen
}

// credentialForm is a username/password pair with one focused input.
type credentialForm struct {
	inputs [2]textinput.Model
	focus  int
}

func newCredentialForm() credentialForm {
	user := textinput.New()
	user.Placeholder = "Username"
	user.Prompt = ""
	user.CharLimit = 64
	user.Width = 32

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.Prompt = ""
	pass.CharLimit = 64
	pass.Width = 32
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	f := credentialForm{inputs: [2]textinput.Model{user, pass}}
	f.inputs[0].Focus()
	return f
}

func (f *credentialForm) values() (string, string) {
	return f.inputs[0].Value(), f.inputs[1].Value()
}

func (f *credentialForm) setFocus(i int) tea.Cmd {
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *credentialForm) reset() {
	for j := range f.inputs {
		f.inputs[j].Reset()
	}
	f.setFocus(0)
}

func (f *credentialForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *credentialForm) view(b *strings.Builder) {
	b.WriteString(label("Username:", f.focus == 0) + "\n")
	b.WriteString(panelStyle.Render(f.inputs[0].View()) + "\n")
	b.WriteString(label("Password:", f.focus == 1) + "\n")
	b.WriteString(panelStyle.Render(f.inputs[1].View()) + "\n")
}

func newModel(auth Authenticator, o *options) *model {
	return &model{
		auth:     auth,
		opts:     o,
		logger:   o.logger,
		screen:   screenLogin,
		login:    newCredentialForm(),
		register: newCredentialForm(),
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m, m.updateLogin(msg)
	case screenRegister:
		return m, m.updateRegister(msg)
	case screenTasks:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+l" {
			m.logout()
			return m, textinput.Blink
		}
		return m, m.session.update(msg)
	}
	return m, nil
}

func (m *model) updateLogin(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.login.setFocus(m.login.focus + 1)
		case "shift+tab", "up":
			return m.login.setFocus(m.login.focus - 1)
		case "enter":
			m.handleLogin()
			return nil
		case "ctrl+n":
			m.screen = screenRegister
			m.register.reset()
			return textinput.Blink
		}
	}
	return m.login.update(msg)
}

func (m *model) updateRegister(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.register.setFocus(m.register.focus + 1)
		case "shift+tab", "up":
			return m.register.setFocus(m.register.focus - 1)
		case "enter":
			m.handleRegister()
			return nil
		case "esc":
			m.screen = screenLogin
			return nil
		}
	}
	return m.register.update(msg)
}

func (m *model) handleLogin() {
	username, password := m.login.values()
	if username == "" || password == "" {
		m.setMessage("Please fill in all fields", false)
		return
	}
	if !m.auth.Authenticate(username, password) {
		m.logger.Info("login failed", "user", username)
		m.setMessage("Invalid username or password", false)
		return
	}

	m.logger.Info("login", "user", username)
	m.user = username
	m.session = newTaskScreen(m.opts.newStore(), username)
	m.screen = screenTasks
	m.login.reset()
	m.setMessage("", false)
}

func (m *model) handleRegister() {
	username, password := m.register.values()
	ok, err := m.auth.Register(username, password)
	switch {
	case err != nil:
		m.setMessage(err.Error(), false)
	case ok:
		m.setMessage("Account created successfully!", true)
	default:
		m.setMessage("Username already exists", false)
	}
	m.screen = screenLogin
}

func (m *model) logout() {
	m.logger.Info("logout", "user", m.user)
	m.endSession()
	m.user = ""
	m.screen = screenLogin
}

// endSession drops the session's store. The next login starts empty.
func (m *model) endSession() {
	if m.session != nil {
		m.session.close()
		m.session = nil
	}
}

func (m *model) setMessage(text string, ok bool) {
	m.message = text
	m.messageOK = ok
}

func (m *model) View() string {
	var b strings.Builder
	switch m.screen {
	case screenTasks:
		return m.session.render()
	case screenRegister:
		b.WriteString(titleStyle.Render("Sign Up") + "\n")
		b.WriteString("Create new account\n\n")
		m.register.view(&b)
		b.WriteString("\n" + helpStyle.Render("enter create · tab next field · esc cancel · ctrl+c quit") + "\n")
	default:
		b.WriteString(titleStyle.Render("Todo List Login") + "\n\n")
		m.login.view(&b)
		b.WriteString("\n" + helpStyle.Render("enter login · ctrl+n sign up · tab next field · ctrl+c quit") + "\n")
		if m.message != "" {
			style := errorStyle
			if m.messageOK {
				style = okStyle
			}
			b.WriteString("\n" + style.Render(m.message) + "\n")
		}
	}
	return b.String()
}
