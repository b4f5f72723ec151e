// Package llm abstracts the generative-AI backends used for metric
// importance scoring. Providers are plain transports: they take a prompt and
// return text, and every failure is an error the caller can fall back from.
package llm

import "context"

// Provider is the interface for all LLM backends.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}
