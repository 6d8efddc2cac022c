// Package todo owns a session's tasks and their live search view.
//
// A Store keeps tasks in insertion order and derives a filtered view from
// the current search term after every mutation:
//
//	store := todo.NewStore()
//	task, err := store.Add("Buy milk", "2 litres", todo.PriorityHigh)
//	store.SetSearchTerm("MILK") // view: [task]
//
// # Identity
//
// Every task carries an opaque ID assigned by Add. Update and Remove look tasks
// up by ID, so two tasks with identical fields remain distinct.
//
// # Validation
//
// Add and Update trim the title and description. They fail with a
// *ValidationError when the trimmed title is empty ("Title is required") or
// when no priority is selected ("Please select a priority"). Update and Remove
// fail with a *SelectionError when the ID does not name a task in the store.
// Both are meant to be shown to the user, see Message.
//
// # Search
//
// The view contains the tasks whose title or description contains the search
// term, compared case-insensitively. An empty term matches every task.
//
// # Priority Values
//
//   - PriorityLow: "Low Priority"
//   - PriorityMedium: "Medium Priority"
//   - PriorityHigh: "High Priority"
//
// The zero value, PriorityUnset, means no priority was selected.
package todo
