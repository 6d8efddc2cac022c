package todo

import "testing"

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityLow, "Low Priority"},
		{PriorityMedium, "Medium Priority"},
		{PriorityHigh, "High Priority"},
		{PriorityUnset, "No Priority"},
		{Priority(9), "Priority(9)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh) {
		t.Fatal("expected Low < Medium < High")
	}
	if PriorityUnset.Valid() {
		t.Error("unset priority must not be valid")
	}
	for _, p := range Priorities() {
		if !p.Valid() {
			t.Errorf("%v should be valid", p)
		}
	}
}

func TestPriorityNext(t *testing.T) {
	tests := []struct {
		from Priority
		want Priority
	}{
		{PriorityUnset, PriorityLow},
		{PriorityLow, PriorityMedium},
		{PriorityMedium, PriorityHigh},
		{PriorityHigh, PriorityLow},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.from, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"MEDIUM", PriorityMedium, false},
		{" High ", PriorityHigh, false},
		{"Medium Priority", PriorityMedium, false},
		{"urgent", PriorityUnset, true},
		{"", PriorityUnset, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTaskLabel(t *testing.T) {
	task := Task{ID: "x", Title: "Buy Milk", Priority: PriorityHigh}
	if got, want := task.Label(), "Buy Milk (High Priority)"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
	if task.IsZero() {
		t.Error("task with ID should not be zero")
	}
	if !(Task{}).IsZero() {
		t.Error("empty task should be zero")
	}
}
