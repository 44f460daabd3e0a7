// Package ai bridges the bot to an external text-generation backend.
// Providers are opaque network calls; Client normalizes their failures
// and enforces the timeout so a slow backend never stalls dispatch.
package ai

import (
	"context"
	"fmt"

	"barkeep/internal/config"
)

// Provider generates a completion for a system prompt and a user prompt.
type Provider interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// FromConfig builds a Client from the configured provider. A missing
// credential yields a client without a provider: /ask stays registered
// but answers that it is not configured.
func FromConfig(ctx context.Context, cfg *config.Config) (*Client, error) {
	var provider Provider

	switch cfg.AIProvider {
	case "gemini", "":
		if cfg.GeminiAPIKey != "" {
			p, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return nil, fmt.Errorf("gemini provider: %w", err)
			}
			provider = p
		}
	case "openai":
		if cfg.OpenAIAPIKey != "" {
			provider = NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
		}
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER: %s", cfg.AIProvider)
	}

	return New(provider, cfg.AITimeout(), cfg.AISystemPrompt), nil
}
