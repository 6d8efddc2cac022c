package todo

import "testing"

func TestMatches(t *testing.T) {
	task := Task{Title: "Buy Milk", Description: "from the corner shop"}
	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"milk", true},
		{"MILK", true},
		{"Corner", true},
		{"bread", false},
		{"milk shop", false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := Matches(task, tt.term); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	tasks := []Task{
		{ID: "1", Title: "alpha"},
		{ID: "2", Title: "beta", Description: "has alpha inside"},
		{ID: "3", Title: "gamma"},
	}

	got := Filter(tasks, "ALPHA")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("Filter() = %+v, want tasks 1 and 2 in order", got)
	}

	all := Filter(tasks, "")
	if len(all) != len(tasks) {
		t.Fatalf("empty term returned %d tasks, want %d", len(all), len(tasks))
	}
	all[0].Title = "mutated"
	if tasks[0].Title != "alpha" {
		t.Error("Filter result aliases the input slice")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, "x")
	if got == nil || len(got) != 0 {
		t.Errorf("Filter(nil) = %#v, want empty non-nil slice", got)
	}
}
