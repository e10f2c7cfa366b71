package llm

import "context"

// Provider is the tutor backend port: one blocking completion call per
// request, no streaming. Adapters exist for Anthropic, OpenAI, Gemini,
// OpenRouter, and a deterministic mock.
type Provider interface {
	// Complete sends a single-turn prompt to the model and returns its
	// response. When the request carries a Schema, the response text is
	// JSON validated against it.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one tutoring prompt. The assistant is stateless:
// every call carries the full persona and user content.
type Request struct {
	// System is the tutor persona instruction.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, instructs the provider to return JSON conforming
	// to it. When nil, the response is raw text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "word-pair".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the generated output. With a Schema set this is the
	// validated JSON document; otherwise raw text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
