package todo

import (
	"fmt"
	"strings"
	"time"
)

// Priority ranks a task. The zero value means no priority was selected.
type Priority int

const (
	PriorityUnset Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var priorityLabels = map[Priority]string{
	PriorityLow:    "Low Priority",
	PriorityMedium: "Medium Priority",
	PriorityHigh:   "High Priority",
}

// Priorities returns the selectable priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Valid reports whether p is one of the selectable priorities.
func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// String returns the human-readable label, e.g. "High Priority".
func (p Priority) String() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	if p == PriorityUnset {
		return "No Priority"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Next returns the priority after p, wrapping from High back to Low.
// An unset priority advances to Low.
func (p Priority) Next() Priority {
	if p >= PriorityHigh || p < PriorityLow {
		return PriorityLow
	}
	return p + 1
}

// ParsePriority parses "low", "medium", "high" or a full label such as
// "Medium Priority". Matching is case-insensitive.
func ParsePriority(s string) (Priority, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Priorities() {
		label := strings.ToLower(p.String())
		if normalized == label || normalized == strings.TrimSuffix(label, " priority") {
			return p, nil
		}
	}
	return PriorityUnset, fmt.Errorf("invalid priority %q, must be one of: low, medium, high", s)
}

// Task represents a single task in the store.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	// Completed is false for every task created by Add; no store operation
	// changes it.
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsZero returns true if the task is empty (has no ID).
func (t Task) IsZero() bool {
	return t.ID == ""
}

// Label renders the task as shown in a list: "<title> (<priority label>)".
func (t Task) Label() string {
	return fmt.Sprintf("%s (%s)", t.Title, t.Priority)
}
