package todo

import "strings"

// Matches reports whether the task's title or description contains term,
// ignoring case. Every task matches an empty term.
func Matches(t Task, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// Filter returns the tasks matching term in their original order.
// The result never aliases tasks.
func Filter(tasks []Task, term string) []Task {
	view := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, term) {
			view = append(view, t)
		}
	}
	return view
}
