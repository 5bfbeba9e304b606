package actionitem_test

import (
	"reflect"
	"testing"

	"action-item-extractor/pkg/actionitem"
)

func salvage(t *testing.T, raw string) ([]actionitem.ActionItem, bool) {
	t.Helper()
	res, ok := actionitem.NewRecoverer().Recover(raw)
	if !ok {
		return nil, false
	}
	if res.Stage != actionitem.StageSalvage {
		t.Fatalf("expected salvage stage, got %v", res.Stage)
	}
	if res.Candidate.Kind != actionitem.KindSalvage {
		t.Fatalf("expected salvage kind, got %v", res.Candidate.Kind)
	}
	return actionitem.Enforce(res.Candidate), true
}

func TestSalvage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []actionitem.ActionItem
	}{
		{
			name: "No enclosing brackets",
			raw:  `"task": "A", "owner": "B", "due_date": "C", "task": "D", "owner": "E", "due_date": "F"`,
			want: []actionitem.ActionItem{
				{Task: "A", Owner: "B", DueDate: "C"},
				{Task: "D", Owner: "E", DueDate: "F"},
			},
		},
		{
			name: "Partial trailing group dropped",
			raw:  `["task": "A", "owner": "B", "due_date": "C", "task": "D", "owner": "E"]`,
			want: []actionitem.ActionItem{{Task: "A", Owner: "B", DueDate: "C"}},
		},
		{
			name: "Any key order",
			raw:  `["due_date": "Friday", "owner": "Chloe", "task": "Draft slides"]`,
			want: []actionitem.ActionItem{{Task: "Draft slides", Owner: "Chloe", DueDate: "Friday"}},
		},
		{
			name: "Values are trimmed",
			raw:  `"task" :  "  Call vendor ", "owner":" Ann ", "due_date":"  "`,
			want: []actionitem.ActionItem{{Task: "Call vendor", Owner: "Ann", DueDate: ""}},
		},
		{
			name: "Broken objects inside array",
			raw:  `[{"task": "A", "owner": "B", "due_date": "C" {"task": "D", "owner": "", "due_date": "today"}]`,
			want: []actionitem.ActionItem{
				{Task: "A", Owner: "B", DueDate: "C"},
				{Task: "D", Owner: "", DueDate: "today"},
			},
		},
		{
			name: "Empty task group survives salvage but not enforcement",
			raw:  `["task": "", "owner": "Ann", "due_date": "today", "task": "Ship", "owner": "", "due_date": ""]`,
			want: []actionitem.ActionItem{{Task: "Ship", Owner: "", DueDate: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := salvage(t, tt.raw)
			if !ok {
				t.Fatal("expected salvage to produce records")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSalvage_NoResult(t *testing.T) {
	for _, raw := range []string{
		`no pairs at all`,
		`["task": "A", "owner": "B"]`,
		`["title": "A", "assignee": "B", "deadline": "C"]`,
	} {
		if _, ok := actionitem.Recover(raw); ok {
			t.Errorf("expected no result for %q", raw)
		}
	}
}

// Keys repeated before a group completes overwrite earlier values without
// warning. This pins the grouping behavior rather than endorsing it.
func TestSalvage_OverlappingKeysOverwrite(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []actionitem.ActionItem
	}{
		{
			name: "Duplicate task",
			raw:  `["task": "A", "task": "B", "owner": "o", "due_date": "d"]`,
			want: []actionitem.ActionItem{{Task: "B", Owner: "o", DueDate: "d"}},
		},
		{
			name: "Interleaved groups merge",
			raw:  `["task": "A", "owner": "o1", "task": "B", "due_date": "d2", "owner": "o3"]`,
			want: []actionitem.ActionItem{{Task: "B", Owner: "o1", DueDate: "d2"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := salvage(t, tt.raw)
			if !ok {
				t.Fatal("expected salvage to produce records")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
