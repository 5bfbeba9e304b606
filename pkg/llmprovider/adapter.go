package llmprovider

import (
	"context"

	"action-item-extractor/pkg/anthropic"
	"action-item-extractor/pkg/deepseek"
	"action-item-extractor/pkg/gemini"
	"action-item-extractor/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, *convertToGeminiContent(&req.Messages[i]))
	}
	if req.JSONMode {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: RoleAssistant}
	for _, p := range resp.Content.Parts {
		content.Parts = append(content.Parts, Part{Text: p.Text})
	}

	return &Response{
		Content:      content,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini names the assistant role "model".
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	role := msg.Role
	if role == RoleAssistant {
		role = "model"
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	if req.SystemInstruction != nil {
		qwenReq.SystemInstruction = &qwen.Content{Role: RoleSystem, Parts: toQwenParts(req.SystemInstruction.Parts)}
	}
	for _, m := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, qwen.Content{Role: m.Role, Parts: toQwenParts(m.Parts)})
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: RoleAssistant}
	for _, p := range resp.Content.Parts {
		content.Parts = append(content.Parts, Part{Text: p.Text})
	}

	return &Response{
		Content:      content,
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func toQwenParts(parts []Part) []qwen.Part {
	out := make([]qwen.Part, len(parts))
	for i, p := range parts {
		out[i] = qwen.Part{Text: p.Text}
	}
	return out
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: RoleSystem, Content: joinText(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: m.Role, Content: joinText(m.Parts)})
	}
	if req.JSONMode {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	content := Message{Role: RoleAssistant}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		content.Parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}

	return &Response{
		Content:      content,
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Completer is the subset of the Anthropic client used by the adapter.
type Completer interface {
	Complete(ctx context.Context, system string, messages []anthropic.Message, maxTokens int, temperature *float64) (*anthropic.Completion, error)
	Model() string
}

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client Completer
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client Completer) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface. JSONMode has no
// Messages API equivalent and is ignored.
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var system string
	if req.SystemInstruction != nil {
		system = joinText(req.SystemInstruction.Parts)
	}
	msgs := make([]anthropic.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, anthropic.Message{Role: m.Role, Content: joinText(m.Parts)})
	}
	temperature := req.Temperature

	completion, err := a.client.Complete(ctx, system, msgs, req.MaxTokens, &temperature)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: completion.Text}}},
		ProviderName: "anthropic",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  completion.InputTokens,
			OutputTokens: completion.OutputTokens,
			TotalTokens:  completion.InputTokens + completion.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

func joinText(parts []Part) string {
	var out string
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
