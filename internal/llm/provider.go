package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts an LLM backend. The enhancement agents are the
// only consumers; each call is a single-turn request for structured
// JSON (or free text for the summary agent).
type Provider interface {
	// Generate sends the request and returns the response. When
	// req.Schema is set the Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the agent's role and constraints.
	System string

	// Messages holds the conversation. The agents are single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against it. When
	// nil the Content is the raw text body.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness in [0, 1]; zero means
	// deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema to the provider and keys the
	// compiled-schema cache. Kebab-case, e.g. "triage-diagnosis".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text body.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
