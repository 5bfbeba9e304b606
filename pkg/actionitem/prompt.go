package actionitem

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SchemaInstructions is the fixed instruction block that opens every prompt.
// It doubles as the record contract enforced by Enforce.
const SchemaInstructions = `You are an information extraction model.
Given a multi-speaker chat transcript, extract action items as a JSON array.
Each item MUST be an object with exactly these keys: "task", "owner", "due_date".

Strict rules:
- Output MUST be valid JSON. No comments, no extra text, no markdown fences.
- If no clear action items, output [].
- "owner": a person name if present, else "".
- "due_date": a natural-language date if present (e.g., "Friday", "EOD tomorrow", "2025-09-15"), else "".
- "task": a short imperative phrase.
- Do NOT repeat keys at top-level. The output must look like:
  [
    {"task":"...", "owner":"...", "due_date":"..."},
    {"task":"...", "owner":"...", "due_date":"..."}
  ]
`

const (
	examplesHeader = "Examples:"
	chatMarker     = "Chat:"
	jsonMarker     = "JSON:"
)

// FewShotExamples are rendered, in order, between the instructions and the dialogue.
var FewShotExamples = []Example{
	{
		Chat: `Alex: Hey team, quick sync for the project.
Ben: Go ahead.
Alex: I've finished the draft of the report. Ben, can you review it by EOD tomorrow?
Chloe: What about slides?
Alex: Chloe, you're on slides. First draft by Friday. I'll handle data viz.
Ben: Got it, I'll review the report.
Chloe: Okay, slides by Friday.`,
		Items: []ActionItem{
			{Task: "Review the report", Owner: "Ben", DueDate: "EOD tomorrow"},
			{Task: "Create first draft of presentation slides", Owner: "Chloe", DueDate: "Friday"},
			{Task: "Handle data visualization", Owner: "Alex", DueDate: ""},
		},
	},
	{
		Chat: `PM: Standup. Updates?
Dev1: I'll push the login bug fix today.
Dev2: Need to schedule meeting with design to finalize dashboard mockups.
PM: Great. Dev1, ping when live. Dev2, set up that meeting this week.`,
		Items: []ActionItem{
			{Task: "Push fix for the login bug", Owner: "Dev1", DueDate: "today"},
			{Task: "Schedule meeting with design to finalize dashboard mockups", Owner: "Dev2", DueDate: "this week"},
		},
	},
}

// BuildPrompt returns the full generation prompt for dialogue. The result
// ends with a bare "JSON:" line so the model continues with a JSON value.
func BuildPrompt(dialogue string) string {
	parts := make([]string, 0, 2+4*len(FewShotExamples)+3)
	parts = append(parts, SchemaInstructions, examplesHeader)
	for _, ex := range FewShotExamples {
		parts = append(parts,
			chatMarker,
			strings.TrimSpace(ex.Chat),
			jsonMarker,
			renderItems(ex.Items),
		)
	}
	parts = append(parts, chatMarker, strings.TrimSpace(dialogue), jsonMarker)
	return strings.Join(parts, "\n")
}

// renderItems writes items as `[{"task": "...", "owner": "...", "due_date": "..."}, ...]`.
func renderItems(items []ActionItem) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		values := [...]string{it.Task, it.Owner, it.DueDate}
		sb.WriteByte('{')
		for k, key := range SchemaKeys {
			if k > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(quote(key))
			sb.WriteString(": ")
			sb.WriteString(quote(values[k]))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
	return sb.String()
}

// quote JSON-encodes s without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
