// Package generation talks to the LLM providers that produce blueprint JSON
// from natural language and best-effort AI conversions. The engine treats
// provider output as opaque text; only JSON well-formedness is checked.
package generation

import "context"

// GenerateRequest is one prompt sent to a language model.
type GenerateRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// LanguageModel is the minimal surface the engine needs from an LLM provider.
type LanguageModel interface {
	// Generate returns the raw completion text for a prompt.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// ID identifies the provider and model, e.g. "openai:gpt-4".
	ID() string
}
