package todo

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	EventAdded         EventKind = "added"
	EventUpdated       EventKind = "updated"
	EventRemoved       EventKind = "removed"
	EventSearchChanged EventKind = "search_changed"
)

// Event is delivered to subscribers after every mutating call, once the
// view has been recomputed.
type Event struct {
	Kind EventKind
	// Task is the affected task. It is zero for EventSearchChanged.
	Task Task
	// View is a snapshot of the filtered view after the change.
	View []Task
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the function that assigns task IDs.
func WithIDGenerator(next func() string) StoreOption {
	return func(s *Store) {
		if next != nil {
			s.newID = next
		}
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

// Store owns one session's tasks and the view derived from the search term.
// It is not safe for concurrent use.
type Store struct {
	tasks  []Task
	term   string
	view   []Task
	subs   []subscriber
	nextID int

	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		view:   []Task{},
		logger: log.New(io.Discard),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates and appends a new task. Title and description are trimmed.
func (s *Store) Add(title, description string, priority Priority) (Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateFields(title, priority); err != nil {
		s.logger.Debug("add rejected", "err", err)
		return Task{}, err
	}

	now := s.now()
	task := Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, task)
	s.refresh()
	s.logger.Debug("task added", "id", task.ID, "title", task.Title, "priority", task.Priority)
	s.emit(EventAdded, task)
	return task, nil
}

// Update replaces the title, description and priority of the task with the
// given ID. ID, Completed and CreatedAt are preserved.
func (s *Store) Update(id, title, description string, priority Priority) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, &SelectionError{Op: "update", ID: id}
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateFields(title, priority); err != nil {
		s.logger.Debug("update rejected", "id", id, "err", err)
		return Task{}, err
	}

	t := &s.tasks[i]
	t.Title = title
	t.Description = description
	t.Priority = priority
	t.UpdatedAt = s.now()
	updated := *t

	s.refresh()
	s.logger.Debug("task updated", "id", id, "title", title, "priority", priority)
	s.emit(EventUpdated, updated)
	return updated, nil
}

// Remove deletes the task with the given ID. An unknown ID yields a
// *SelectionError and leaves the store unchanged.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return &SelectionError{Op: "delete", ID: id}
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.refresh()
	s.logger.Debug("task removed", "id", id)
	s.emit(EventRemoved, removed)
	return nil
}

// SetSearchTerm changes the search term and recomputes the view.
func (s *Store) SetSearchTerm(term string) {
	s.term = term
	s.refresh()
	s.logger.Debug("search changed", "term", term, "matches", len(s.view))
	s.emit(EventSearchChanged, Task{})
}

// SearchTerm returns the current search term.
func (s *Store) SearchTerm() string {
	return s.term
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// View returns a copy of the filtered view.
func (s *Store) View() []Task {
	out := make([]Task, len(s.view))
	copy(out, s.view)
	return out
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Len returns the number of tasks, ignoring the search term.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Subscribe registers fn to be called after every mutating call. Listeners
// run synchronously in subscription order. The returned function removes
// the listener.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) refresh() {
	s.view = Filter(s.tasks, s.term)
}

func (s *Store) emit(kind EventKind, task Task) {
	if len(s.subs) == 0 {
		return
	}
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(Event{Kind: kind, Task: task, View: s.View()})
	}
}
