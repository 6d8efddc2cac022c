package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todo-go/internal/todo"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusList
	focusTitle
	focusDescription
	focusPriority
	focusCount
)

// taskScreen renders one session's store and edits it through a form.
type taskScreen struct {
	store       *todo.Store
	user        string
	unsubscribe func()

	search      textinput.Model
	title       textinput.Model
	description textinput.Model
	priority    todo.Priority

	focus focusArea
	// view mirrors the store's filtered view, refreshed by the subscription.
	view   []todo.Task
	cursor int
	// selectedID is the task whose fields were copied into the form.
	selectedID string

	status   string
	statusOK bool
}

func newTaskScreen(store *todo.Store, user string) *taskScreen {
	newInput := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = width
		return in
	}

	s := &taskScreen{
		store:       store,
		user:        user,
		search:      newInput("Search tasks...", 40),
		title:       newInput("Task Title", 40),
		description: newInput("Task Description", 40),
		view:        store.View(),
	}
	s.unsubscribe = store.Subscribe(s.onChange)
	s.setFocus(focusTitle)
	return s
}

func (s *taskScreen) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *taskScreen) onChange(e todo.Event) {
	s.view = e.View
	if s.cursor >= len(s.view) {
		s.cursor = len(s.view) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.selectedID != "" && !s.inView(s.selectedID) {
		s.selectedID = ""
	}
}

func (s *taskScreen) inView(id string) bool {
	for _, t := range s.view {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (s *taskScreen) setFocus(f focusArea) tea.Cmd {
	s.focus = (f + focusCount) % focusCount
	s.search.Blur()
	s.title.Blur()
	s.description.Blur()
	switch s.focus {
	case focusSearch:
		return s.search.Focus()
	case focusTitle:
		return s.title.Focus()
	case focusDescription:
		return s.description.Focus()
	}
	return nil
}

func (s *taskScreen) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateInputs(msg)
	}

	switch key.String() {
	case "tab":
		return s.setFocus(s.focus + 1)
	case "shift+tab":
		return s.setFocus(s.focus - 1)
	case "ctrl+a":
		s.handleAdd()
		return nil
	case "ctrl+u":
		s.handleUpdate()
		return nil
	case "ctrl+d":
		s.handleDelete()
		return nil
	case "ctrl+p":
		s.priority = s.priority.Next()
		return nil
	case "esc":
		s.clearForm()
		s.setStatus("", false)
		return nil
	}

	switch s.focus {
	case focusList:
		switch key.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter", " ":
			s.selectCursor()
		}
		return nil
	case focusPriority:
		switch key.String() {
		case "right", "l", " ", "enter":
			s.priority = s.priority.Next()
		case "left", "h":
			s.priority = previousPriority(s.priority)
		}
		return nil
	}
	return s.updateInputs(msg)
}

func (s *taskScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusSearch:
		before := s.search.Value()
		s.search, cmd = s.search.Update(msg)
		if s.search.Value() != before {
			s.store.SetSearchTerm(s.search.Value())
		}
	case focusTitle:
		s.title, cmd = s.title.Update(msg)
	case focusDescription:
		s.description, cmd = s.description.Update(msg)
	}
	return cmd
}

func previousPriority(p todo.Priority) todo.Priority {
	if p <= todo.PriorityLow {
		return todo.PriorityHigh
	}
	return p - 1
}

func (s *taskScreen) moveCursor(delta int) {
	if len(s.view) == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.view) {
		s.cursor = len(s.view) - 1
	}
	s.selectCursor()
}

// selectCursor copies the task under the cursor into the form.
func (s *taskScreen) selectCursor() {
	if s.cursor < 0 || s.cursor >= len(s.view) {
		return
	}
	t := s.view[s.cursor]
	s.selectedID = t.ID
	s.title.SetValue(t.Title)
	s.description.SetValue(t.Description)
	s.priority = t.Priority
}

func (s *taskScreen) handleAdd() {
	_, err := s.store.Add(s.title.Value(), s.description.Value(), s.priority)
	if err != nil {
		s.setStatus(todo.Message(err), false)
		return
	}
	s.clearForm()
	s.setStatus("Task added", true)
}

func (s *taskScreen) handleUpdate() {
	_, err := s.store.Update(s.selectedID, s.title.Value(), s.description.Value(), s.priority)
	if err != nil {
		s.setStatus(todo.Message(err), false)
		return
	}
	s.clearForm()
	s.setStatus("Task updated", true)
}

func (s *taskScreen) handleDelete() {
	if err := s.store.Remove(s.selectedID); err != nil {
		s.setStatus(todo.Message(err), false)
		return
	}
	s.clearForm()
	s.setStatus("Task deleted", true)
}

func (s *taskScreen) clearForm() {
	s.title.Reset()
	s.description.Reset()
	s.priority = todo.PriorityUnset
	s.selectedID = ""
}

func (s *taskScreen) setStatus(text string, ok bool) {
	s.status = text
	s.statusOK = ok
}

func (s *taskScreen) render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo List - "+s.user) + "\n\n")

	b.WriteString(label("Search:", s.focus == focusSearch) + " " + s.search.View() + "\n\n")

	heading := fmt.Sprintf("Tasks (%d of %d)", len(s.view), s.store.Len())
	b.WriteString(label(heading, s.focus == focusList) + "\n")
	var list strings.Builder
	if len(s.view) == 0 {
		list.WriteString(helpStyle.Render("No tasks."))
	}
	for i, t := range s.view {
		if i > 0 {
			list.WriteString("\n")
		}
		marker := "  "
		if i == s.cursor && s.focus == focusList {
			marker = "> "
		}
		line := marker + t.Label()
		if t.ID == s.selectedID {
			line = selectedStyle.Render(line)
		}
		list.WriteString(line)
	}
	b.WriteString(panelStyle.Render(list.String()) + "\n\n")

	b.WriteString(headingStyle.Render("Task") + "\n")
	b.WriteString(label("Title:", s.focus == focusTitle) + " " + s.title.View() + "\n")
	b.WriteString(label("Description:", s.focus == focusDescription) + " " + s.description.View() + "\n")
	priority := "Select Priority"
	if s.priority.Valid() {
		priority = s.priority.String()
	}
	b.WriteString(label("Priority:", s.focus == focusPriority) + " < " + priority + " >\n\n")

	b.WriteString(helpStyle.Render("ctrl+a add · ctrl+u update · ctrl+d delete · ctrl+p priority · esc clear"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab focus · ↑/↓ select · ctrl+l logout · ctrl+c quit"))
	b.WriteString("\n")

	if s.status != "" {
		if s.statusOK {
			b.WriteString("\n" + okStyle.Render(s.status) + "\n")
		} else {
			b.WriteString("\n" + errorStyle.Render("Error: "+s.status) + "\n")
		}
	}
	return b.String()
}
