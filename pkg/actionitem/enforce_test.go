package actionitem_test

import (
	"reflect"
	"testing"

	"action-item-extractor/pkg/actionitem"
)

func mustRecover(t *testing.T, raw string) actionitem.Candidate {
	t.Helper()
	c, ok := actionitem.Recover(raw)
	if !ok {
		t.Fatalf("fixture %q did not recover", raw)
	}
	return c
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		c       actionitem.Candidate
		wantLen int
		wantOK  bool
	}{
		{"Object", actionitem.Candidate{Kind: actionitem.KindObject, Object: map[string]any{"task": "x"}}, 1, true},
		{"Array", actionitem.Candidate{Kind: actionitem.KindArray, Array: []any{1, "two"}}, 2, true},
		{"Salvage", actionitem.Candidate{Kind: actionitem.KindSalvage, Salvaged: []map[string]string{{"task": "x"}}}, 1, true},
		{"Scalar", actionitem.Candidate{Kind: actionitem.KindScalar, Scalar: "text"}, 0, false},
		{"None", actionitem.Candidate{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := actionitem.Coerce(tt.c)
			if ok != tt.wantOK || len(got) != tt.wantLen {
				t.Errorf("Coerce() = (%d elems, %v), want (%d, %v)", len(got), ok, tt.wantLen, tt.wantOK)
			}
		})
	}
}

func TestEnforce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []actionitem.ActionItem
	}{
		{
			name: "Blank task dropped even with owner and date",
			raw:  `[{"task":"   ","owner":"Ben","due_date":"Friday"},{"task":"Send notes","owner":"","due_date":""}]`,
			want: []actionitem.ActionItem{{Task: "Send notes", Owner: "", DueDate: ""}},
		},
		{
			name: "Missing keys default to empty",
			raw:  `[{"task":"Call Dana"}]`,
			want: []actionitem.ActionItem{{Task: "Call Dana", Owner: "", DueDate: ""}},
		},
		{
			name: "Non-object elements skipped",
			raw:  `["just text", 7, null, [1], {"task":"Keep me","owner":"Kai","due_date":"today"}]`,
			want: []actionitem.ActionItem{{Task: "Keep me", Owner: "Kai", DueDate: "today"}},
		},
		{
			name: "Values coerced to text and trimmed",
			raw:  `[{"task":" Order 3 laptops ","owner":null,"due_date":20250915},{"task":true,"owner":{"name":"Ann"},"due_date":["Mon","Tue"]}]`,
			want: []actionitem.ActionItem{
				{Task: "Order 3 laptops", Owner: "", DueDate: "20250915"},
				{Task: "true", Owner: `{"name":"Ann"}`, DueDate: `["Mon","Tue"]`},
			},
		},
		{
			name: "Extra keys ignored",
			raw:  `{"task":"Book flights","owner":"Mo","due_date":"next week","priority":"high"}`,
			want: []actionitem.ActionItem{{Task: "Book flights", Owner: "Mo", DueDate: "next week"}},
		},
		{
			name: "Order preserved without dedup",
			raw:  `[{"task":"B"},{"task":"A"},{"task":"B"}]`,
			want: []actionitem.ActionItem{{Task: "B"}, {Task: "A"}, {Task: "B"}},
		},
		{
			name: "Scalar yields empty",
			raw:  `"nothing to do"`,
			want: []actionitem.ActionItem{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := actionitem.Enforce(mustRecover(t, tt.raw))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Enforce() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEnforce_NeverNil(t *testing.T) {
	if got := actionitem.Enforce(actionitem.Candidate{}); got == nil {
		t.Error("expected empty, non-nil slice")
	}
	if got := actionitem.Extract("nothing here"); got == nil {
		t.Error("expected empty, non-nil slice")
	}
}
