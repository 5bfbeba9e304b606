package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_QWEN_KEY", "sk-from-env")
	path := writeConfig(t, `
environment:
  name: production
http_server:
  port: 9090
extraction:
  temperature: 0.2
  max_dialogue_chars: 500
  deep_repair: true
  cache_ttl: 30s
nats:
  subject_in: custom.in
llm:
  retry_attempts: 2
  providers:
    - name: qwen
      enabled: true
      priority: 1
      api_key: ${TEST_QWEN_KEY}
      model: qwen-plus
      timeout: 20s
    - name: gemini
      enabled: false
      priority: 2
      api_key: literal
      model: gemini-2.5-flash
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Environment.Name != "production" || cfg.HTTPServer.Port != 9090 {
		t.Errorf("unexpected server config: %+v %+v", cfg.Environment, cfg.HTTPServer)
	}
	if cfg.Extraction.Temperature != 0.2 || cfg.Extraction.MaxDialogueChars != 500 || !cfg.Extraction.DeepRepair {
		t.Errorf("unexpected extraction config: %+v", cfg.Extraction)
	}
	if cfg.Extraction.CacheTTL != 30*time.Second || cfg.Extraction.CacheSize != 256 {
		t.Errorf("unexpected cache config: %+v", cfg.Extraction)
	}
	if cfg.NATS.SubjectIn != "custom.in" || cfg.NATS.SubjectOut != "action_items.extract.completed" {
		t.Errorf("unexpected nats config: %+v", cfg.NATS)
	}
	if cfg.LLM.RetryAttempts != 2 || cfg.LLM.RetryDelay != "1s" {
		t.Errorf("unexpected llm config: %+v", cfg.LLM)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if p := cfg.LLM.Providers[0]; p.APIKey != "sk-from-env" || p.Priority != 1 || p.Timeout != "20s" {
		t.Errorf("unexpected provider: %+v", p)
	}
	if cfg.LLM.Providers[1].APIKey != "literal" {
		t.Errorf("literal key should be kept, got %q", cfg.LLM.Providers[1].APIKey)
	}
}

func TestLoadFile_DialogueLengthUnlimitedByDefault(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
llm:
  providers:
    - {name: qwen, enabled: true, priority: 1, api_key: k, model: m}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Extraction.MaxDialogueChars != 0 {
		t.Errorf("max_dialogue_chars default = %d, want 0", cfg.Extraction.MaxDialogueChars)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no providers",
			body: "environment:\n  name: dev\n",
			want: "no LLM providers",
		},
		{
			name: "temperature out of range",
			body: `
extraction:
  temperature: 3
llm:
  providers:
    - {name: qwen, enabled: true, priority: 1, api_key: k, model: m}
`,
			want: "temperature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1, Model: "m"}}},
		},
		{
			name:    "missing name",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1, Model: "m"}}},
			wantErr: true,
		},
		{
			name:    "missing model",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name:    "non-positive priority",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true, Model: "m"}}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "m"},
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "disabled duplicate priority is fine",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "m"},
				{Name: "gemini", Enabled: false, Priority: 1, Model: "m"},
			}},
		},
		{
			name:    "none enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Priority: 1, Model: "m"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateLLMConfig(&tt.cfg); (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
