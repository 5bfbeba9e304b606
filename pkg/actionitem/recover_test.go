package actionitem_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"

	"action-item-extractor/pkg/actionitem"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"No fence", `  [1, 2] `, `[1, 2]`},
		{"Language tag", "```json\n[1]\n```", `[1]`},
		{"Bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Missing closing fence", "```json\n[1]", `[1]`},
		{"Single line fence", "```[1]```", `[1]`},
		{"Only fence", "```", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionitem.StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got := actionitem.StripFences(tt.want); got != tt.want {
				t.Errorf("StripFences not idempotent on %q: %q", tt.want, got)
			}
		})
	}
}

func TestExtractSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Array with prose", `Sure! [{"a":1}] hope that helps`, `[{"a":1}]`},
		{"Object fallback", `Result: {"task":"x"} done`, `{"task":"x"}`},
		{"Array preferred over object", `{"x": [1]}`, `[1]`},
		{"Reversed brackets fall back to object", `] {"a":1} [`, `{"a":1}`},
		{"Nothing", `no json here`, `no json here`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionitem.ExtractSegment(tt.in); got != tt.want {
				t.Errorf("ExtractSegment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeQuotes(t *testing.T) {
	got := actionitem.NormalizeQuotes("“task”: ‘it’s’")
	if got != `"task": 'it's'` {
		t.Errorf("unexpected normalization: %q", got)
	}
}

func TestRemoveTrailingCommas(t *testing.T) {
	got := actionitem.RemoveTrailingCommas("[{\"a\": 1,\n }, {\"b\": [2,]},\t]")
	want := "[{\"a\": 1}, {\"b\": [2]}]"
	if got != want {
		t.Errorf("RemoveTrailingCommas = %q, want %q", got, want)
	}
}

func TestRemoveTrailingCommas_UnicodeWhitespace(t *testing.T) {
	got := actionitem.RemoveTrailingCommas("[{\"a\": 1,\u00a0}, {\"b\": [2,\u2003\u3000]},\u2028]")
	want := "[{\"a\": 1}, {\"b\": [2]}]"
	if got != want {
		t.Errorf("RemoveTrailingCommas = %q, want %q", got, want)
	}
}

func TestExtract_NonBreakingSpace(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []actionitem.ActionItem
	}{
		{
			name: "trailing comma before nbsp",
			raw:  "[{\"task\":\"a\",\u00a0}]",
			want: []actionitem.ActionItem{{Task: "a"}},
		},
		{
			name: "salvage with nbsp around colon",
			raw:  "\"task\"\u00a0:\u00a0\"A\", \"owner\":\u202f\"B\", \"due_date\" : \"C\"",
			want: []actionitem.ActionItem{{Task: "A", Owner: "B", DueDate: "C"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionitem.Extract(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func decodeArray(t *testing.T, s string) []any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v []any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func TestRecover(t *testing.T) {
	const valid = `[{"task":"Review the report","owner":"Ben","due_date":"EOD tomorrow"},{"task":"Ship it","owner":"","due_date":""}]`

	t.Run("Valid array round-trips", func(t *testing.T) {
		res, ok := actionitem.NewRecoverer().Recover(valid)
		if !ok {
			t.Fatal("expected recovery")
		}
		if res.Stage != actionitem.StageParse || res.Candidate.Kind != actionitem.KindArray {
			t.Fatalf("unexpected stage/kind: %v/%v", res.Stage, res.Candidate.Kind)
		}
		if !reflect.DeepEqual(res.Candidate.Array, decodeArray(t, valid)) {
			t.Errorf("round-trip mismatch: %v", res.Candidate.Array)
		}
	})

	t.Run("Fenced equals unfenced", func(t *testing.T) {
		want, _ := actionitem.Recover(valid)
		for _, raw := range []string{"```json\n" + valid + "\n```", "```\n" + valid + "\n```"} {
			got, ok := actionitem.Recover(raw)
			if !ok || !reflect.DeepEqual(got, want) {
				t.Errorf("fenced input %q recovered as %+v", raw, got)
			}
		}
	})

	t.Run("Smart quotes", func(t *testing.T) {
		res, ok := actionitem.NewRecoverer().Recover(`[{“task”: “Draft agenda”, “owner”: “Ann”, “due_date”: “Monday”}]`)
		if !ok || res.Stage != actionitem.StageParse {
			t.Fatalf("expected strict parse after normalization, got ok=%v stage=%v", ok, res.Stage)
		}
		items := actionitem.Enforce(res.Candidate)
		want := []actionitem.ActionItem{{Task: "Draft agenda", Owner: "Ann", DueDate: "Monday"}}
		if !reflect.DeepEqual(items, want) {
			t.Errorf("got %+v, want %+v", items, want)
		}
	})

	t.Run("Trailing commas", func(t *testing.T) {
		for _, raw := range []string{
			`[{"task":"a","owner":"b","due_date":"c"},]`,
			`{"task":"a","owner":"b","due_date":"c",}`,
		} {
			res, ok := actionitem.NewRecoverer().Recover(raw)
			if !ok || res.Stage != actionitem.StageTrailingComma {
				t.Errorf("%q: ok=%v stage=%v", raw, ok, res.Stage)
			}
		}
	})

	t.Run("Scalar is returned as scalar", func(t *testing.T) {
		c, ok := actionitem.Recover(`42`)
		if !ok || c.Kind != actionitem.KindScalar {
			t.Fatalf("expected scalar candidate, got ok=%v kind=%v", ok, c.Kind)
		}
	})

	t.Run("Trailing garbage is not strict JSON", func(t *testing.T) {
		res, ok := actionitem.NewRecoverer().Recover(`{"task":"a","owner":"b","due_date":"c"} {"x":1}`)
		if !ok || res.Stage != actionitem.StageSalvage {
			t.Errorf("expected salvage, got ok=%v stage=%v", ok, res.Stage)
		}
	})

	t.Run("Unrecoverable", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "Sorry, I cannot help with that.", `[not json at all]`} {
			if _, ok := actionitem.Recover(raw); ok {
				t.Errorf("expected no result for %q", raw)
			}
		}
	})
}

func TestRecover_WithRepair(t *testing.T) {
	raw := `{task: 'Ship the release', owner: 'Kim', due_date: 'Friday'}`

	if _, ok := actionitem.NewRecoverer().Recover(raw); ok {
		t.Fatal("default chain should not recover unquoted keys")
	}

	res, ok := actionitem.NewRecoverer(actionitem.WithRepair()).Recover(raw)
	if !ok {
		t.Fatal("repair stage should recover unquoted keys")
	}
	if res.Stage != actionitem.StageRepair {
		t.Errorf("expected repair stage, got %v", res.Stage)
	}
	want := []actionitem.ActionItem{{Task: "Ship the release", Owner: "Kim", DueDate: "Friday"}}
	if got := actionitem.Enforce(res.Candidate); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecover_WithRepairKeepsSalvageFirst(t *testing.T) {
	raw := `["task": "Fix bug", "owner": "Dev1", "due_date": "today"]`
	res, ok := actionitem.NewRecoverer(actionitem.WithRepair()).Recover(raw)
	if !ok || res.Stage != actionitem.StageSalvage {
		t.Errorf("expected salvage to win over repair, got ok=%v stage=%v", ok, res.Stage)
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []actionitem.ActionItem
	}{
		{
			name: "Prose and fenced array",
			raw:  "Here you go:\n```json\n[{\"task\":\"Review the report\",\"owner\":\"Ben\",\"due_date\":\"EOD tomorrow\"}]\n```",
			want: []actionitem.ActionItem{{Task: "Review the report", Owner: "Ben", DueDate: "EOD tomorrow"}},
		},
		{
			name: "Flat key value array",
			raw:  `["task": "Fix bug", "owner": "Dev1", "due_date": "today", "task": "Write tests", "owner": "Dev2", "due_date": ""]`,
			want: []actionitem.ActionItem{
				{Task: "Fix bug", Owner: "Dev1", DueDate: "today"},
				{Task: "Write tests", Owner: "Dev2", DueDate: ""},
			},
		},
		{
			name: "Refusal",
			raw:  "Sorry, I cannot help with that.",
			want: []actionitem.ActionItem{},
		},
		{
			name: "Empty array",
			raw:  "[]",
			want: []actionitem.ActionItem{},
		},
		{
			name: "Single object",
			raw:  `{"task": "Book the room", "owner": "Lee"}`,
			want: []actionitem.ActionItem{{Task: "Book the room", Owner: "Lee", DueDate: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := actionitem.Extract(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtract_Concurrent(t *testing.T) {
	raw := `["task": "Fix bug", "owner": "Dev1", "due_date": "today"]`
	want := actionitem.Extract(raw)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := actionitem.Extract(raw); !reflect.DeepEqual(got, want) {
				errs <- "concurrent result differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
