package http

import (
	"action-item-extractor/internal/extraction"
	"action-item-extractor/pkg/actionitem"
)

// --- Request DTOs ---

type extractReq struct {
	Dialogue string `json:"dialogue" binding:"required"`
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{Dialogue: r.Dialogue}
}

type recoverReq struct {
	RawOutput string `json:"raw_output"`
}

func (r recoverReq) toInput() extraction.RecoverInput {
	return extraction.RecoverInput{RawOutput: r.RawOutput}
}

type promptReq struct {
	Dialogue string `json:"dialogue"`
}

func (r promptReq) toInput() extraction.PromptInput {
	return extraction.PromptInput{Dialogue: r.Dialogue}
}

// --- Response DTOs ---

type actionItemResp struct {
	Task    string `json:"task"`
	Owner   string `json:"owner"`
	DueDate string `json:"due_date"`
}

func newActionItemResps(items []actionitem.ActionItem) []actionItemResp {
	out := make([]actionItemResp, len(items))
	for i, it := range items {
		out[i] = actionItemResp{Task: it.Task, Owner: it.Owner, DueDate: it.DueDate}
	}
	return out
}

type extractResp struct {
	ID       string           `json:"id"`
	Items    []actionItemResp `json:"items"`
	Stage    string           `json:"stage"`
	Provider string           `json:"provider"`
	Model    string           `json:"model"`
	Cached   bool             `json:"cached"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	return extractResp{
		ID:       out.ID,
		Items:    newActionItemResps(out.Items),
		Stage:    out.Stage,
		Provider: out.Provider,
		Model:    out.Model,
		Cached:   out.Cached,
	}
}

type recoverResp struct {
	Items []actionItemResp `json:"items"`
	Stage string           `json:"stage"`
	Kind  string           `json:"kind"`
}

func (h *handler) newRecoverResp(out extraction.RecoverOutput) recoverResp {
	return recoverResp{
		Items: newActionItemResps(out.Items),
		Stage: out.Stage,
		Kind:  out.Kind,
	}
}

type promptResp struct {
	Prompt string `json:"prompt"`
}

type exampleResp struct {
	Title    string `json:"title"`
	Dialogue string `json:"dialogue"`
}

type examplesResp struct {
	Examples []exampleResp `json:"examples"`
}

func (h *handler) newExamplesResp(examples []extraction.Example) examplesResp {
	out := make([]exampleResp, len(examples))
	for i, e := range examples {
		out[i] = exampleResp{Title: e.Title, Dialogue: e.Dialogue}
	}
	return examplesResp{Examples: out}
}
