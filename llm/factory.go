package llm

import (
	"fmt"
	"os"
	"strings"
)

// NewClientFromEnv creates a provider client for the configured provider name.
// API keys are read from the environment: OPENAI_API_KEY for openai,
// ANTHROPIC_API_KEY for claude. model may be empty to use the provider default.
func NewClientFromEnv(provider, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return NewOpenAI(apiKey, model), nil

	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		return NewClaude(apiKey, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: openai, claude)", provider)
	}
}
