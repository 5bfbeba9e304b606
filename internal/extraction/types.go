package extraction

import "action-item-extractor/pkg/actionitem"

// ExtractInput is the input for Extract.
type ExtractInput struct {
	Dialogue string
}

// ExtractOutput is the result of Extract. Stage is empty when nothing could be
// recovered from the model output; Items is empty (never nil) in that case.
type ExtractOutput struct {
	ID       string
	Items    []actionitem.ActionItem
	Stage    string
	Provider string
	Model    string
	Cached   bool
}

// RecoverInput is the input for Recover.
type RecoverInput struct {
	RawOutput string
}

// RecoverOutput is the result of Recover.
type RecoverOutput struct {
	Items []actionitem.ActionItem
	Stage string
	Kind  string
}

// PromptInput is the input for Prompt.
type PromptInput struct {
	Dialogue string
}

// PromptOutput carries the built prompt.
type PromptOutput struct {
	Prompt string
}

// Example is a sample transcript.
type Example struct {
	Title    string
	Dialogue string
}
