package qwen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"action-item-extractor/pkg/qwen"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"bad key"}`))
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "[{\"task\": \"x\"}]"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "sk-test", BaseURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != qwen.DefaultModel {
		t.Errorf("expected default model, got %q", client.Model())
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		SystemInstruction: &qwen.Content{Parts: []qwen.Part{{Text: "Return json."}}},
		Messages:          []qwen.Content{{Role: "user", Parts: []qwen.Part{{Text: "Chat:\nhi\nJSON:"}}}},
		JSONMode:          true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != `[{"task": "x"}]` {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 || resp.FinishReason != "stop" {
		t.Errorf("unexpected usage/finish: %+v %q", resp.Usage, resp.FinishReason)
	}

	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["role"] != "system" {
		t.Errorf("expected system + user messages, got %v", got["messages"])
	}
	if rf, _ := got["response_format"].(map[string]any); rf["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", got["response_format"])
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"throttled"}`))
	}))
	defer ts.Close()

	client, _ := qwen.New(qwen.Config{APIKey: "sk-test", BaseURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &qwen.Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := qwen.New(qwen.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
