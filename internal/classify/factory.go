package classify

import (
	"fmt"
	"strings"
)

// New creates a classifier based on configuration
func New(config Config) (Classifier, error) {
	switch strings.ToLower(config.Provider) {
	case "service", "":
		return NewServiceClassifier(config)

	case "openai":
		return NewOpenAIClassifier(config)

	case "anthropic", "claude":
		return NewAnthropicClassifier(config)

	case "ollama":
		return NewOllamaClassifier(config)

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: service, openai, anthropic, ollama)", config.Provider)
	}
}

// APIKeyEnv names the environment variable that holds the provider's API key.
// Providers that need no key return "".
func APIKeyEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return "OPENAI_API_KEY"
	case "anthropic", "claude":
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}
