package classify

import (
	"strings"
	"testing"
)

func TestNew_SelectsProvider(t *testing.T) {
	tests := []struct {
		config   Config
		wantName string
		wantErr  string
	}{
		{Config{Provider: "service"}, "service", ""},
		{Config{Provider: ""}, "service", ""},
		{Config{Provider: "OpenAI", APIKey: "k"}, "openai", ""},
		{Config{Provider: "openai"}, "", "API key is required"},
		{Config{Provider: "claude", APIKey: "k"}, "anthropic", ""},
		{Config{Provider: "anthropic"}, "", "API key is required"},
		{Config{Provider: "ollama", Model: "llama3.1"}, "ollama", ""},
		{Config{Provider: "ollama"}, "", "model must be specified"},
		{Config{Provider: "huggingface"}, "", "unknown classifier provider"},
	}

	for _, tt := range tests {
		t.Run(tt.config.Provider, func(t *testing.T) {
			c, err := New(tt.config)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Name() != tt.wantName {
				t.Errorf("expected %s, got %s", tt.wantName, c.Name())
			}
		})
	}
}

func TestAPIKeyEnv(t *testing.T) {
	if APIKeyEnv("openai") != "OPENAI_API_KEY" {
		t.Error("expected OPENAI_API_KEY")
	}
	if APIKeyEnv("Claude") != "ANTHROPIC_API_KEY" {
		t.Error("expected ANTHROPIC_API_KEY")
	}
	if APIKeyEnv("service") != "" || APIKeyEnv("ollama") != "" {
		t.Error("expected no key for keyless providers")
	}
}
