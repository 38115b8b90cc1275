package interfaces

import "context"

// Message represents a single turn in a generation conversation
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// GenerateOptions carries the per-call generation parameters. An empty
// model and a zero MaxTokens fall back to the configured provider defaults.
// Temperature uses a negative value as "unset": 0 is a real temperature and
// is passed through to the provider.
type GenerateOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// LLMService is the opaque text-generation capability consumed by the
// summary pipeline: prompt in, generated text out. Implementations are
// synchronous and perform no retries.
type LLMService interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	Close() error
}
