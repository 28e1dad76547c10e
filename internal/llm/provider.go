package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a generative text service. BioGen depends only on
// this contract: given a prompt and a response schema, the service returns
// structured JSON or an error. No vendor specifics leak past this package.
type Provider interface {
	// Generate sends a single-turn request and returns the structured
	// response. When req.Schema is set the provider uses its native
	// structured-output mechanism and the returned Content is JSON that
	// has been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes what to send to the service.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message. Exam generation is single-turn, so a
	// plain string is enough.
	Prompt string

	// Schema constrains the shape of the returned JSON. When nil the
	// response Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0.
	Temperature float64
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema to providers that require one
	// (OpenAI response_format). Kebab-case.
	Name string

	// Description guides the model. Optional.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response holds the service output.
type Response struct {
	// Content is the generated JSON (validated when a Schema was set).
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
