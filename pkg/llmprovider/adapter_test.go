package llmprovider

import (
	"context"
	"testing"

	"action-item-extractor/pkg/anthropic"
	"action-item-extractor/pkg/gemini"
)

type fakeGemini struct {
	got *gemini.Request
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "[]"}}},
		Usage:   &gemini.Usage{InputTokens: 1, OutputTokens: 1, TotalTokens: 2},
	}, nil
}

func (f *fakeGemini) Model() string { return "gemini-fake" }

type fakeCompleter struct {
	system      string
	temperature *float64
}

func (f *fakeCompleter) Complete(ctx context.Context, system string, messages []anthropic.Message, maxTokens int, temperature *float64) (*anthropic.Completion, error) {
	f.system = system
	f.temperature = temperature
	return &anthropic.Completion{Text: "[]", InputTokens: 4, OutputTokens: 1}, nil
}

func (f *fakeCompleter) Model() string { return "claude-fake" }

func TestGeminiAdapter_MapsRolesAndJSONMode(t *testing.T) {
	fake := &fakeGemini{}
	adapter := NewGeminiAdapter(fake)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: []Message{UserText("q"), {Role: RoleAssistant, Parts: []Part{{Text: "a"}}}},
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.got.Messages[1].Role != "model" {
		t.Errorf("assistant role should map to model, got %q", fake.got.Messages[1].Role)
	}
	if fake.got.ResponseMIMEType != gemini.MIMETypeJSON {
		t.Errorf("expected JSON mime type, got %q", fake.got.ResponseMIMEType)
	}
	if resp.Text() != "[]" || resp.ModelName != "gemini-fake" || resp.Content.Role != RoleAssistant {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAnthropicAdapter_SystemAndUsage(t *testing.T) {
	fake := &fakeCompleter{}
	adapter := NewAnthropicAdapter(fake)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "line1"}, {Text: "line2"}}},
		Messages:          []Message{UserText("q")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.system != "line1\nline2" {
		t.Errorf("system = %q", fake.system)
	}
	if fake.temperature == nil || *fake.temperature != 0 {
		t.Errorf("expected explicit zero temperature")
	}
	if resp.Usage.TotalTokens != 5 || resp.ProviderName != "anthropic" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
