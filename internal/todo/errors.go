package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleRequired is returned when a trimmed title is empty.
	ErrTitleRequired = errors.New("Title is required")
	// ErrPriorityRequired is returned when no valid priority was selected.
	ErrPriorityRequired = errors.New("Please select a priority")
	// ErrNotFound is returned when an ID does not name a task in the store.
	ErrNotFound = errors.New("task not found")
)

// ValidationError represents a rejected field value.
type ValidationError struct {
	Field string // Name of the offending field
	Err   error  // Underlying error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SelectionError reports that an operation needed a selected task and the
// given ID did not identify one. It is advisory: the store is unchanged.
type SelectionError struct {
	Op string // "update" or "delete"
	ID string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("Please select a task to %s", e.Op)
}

// Unwrap returns ErrNotFound.
func (e *SelectionError) Unwrap() error {
	return ErrNotFound
}

// Message returns the text to display for err. Validation and selection
// errors yield their bare message; anything else is prefixed so it is not
// mistaken for user input feedback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var se *SelectionError
	if errors.As(err, &se) {
		return se.Error()
	}
	return "Unexpected error: " + err.Error()
}

func validateFields(title string, priority Priority) error {
	if title == "" {
		return &ValidationError{Field: "title", Err: ErrTitleRequired}
	}
	if !priority.Valid() {
		return &ValidationError{Field: "priority", Err: ErrPriorityRequired}
	}
	return nil
}
