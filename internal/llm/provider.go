package llm

import (
	"bytes"
	"context"
	"encoding/json"
)

// Provider is the generation boundary: it turns a prompt plus an optional
// response shape into structured text content.
type Provider interface {
	// Generate sends the request and returns the model output. When
	// req.Schema is set, non-empty Content has already been checked against
	// it. An empty Content means the model produced no text; callers decide
	// what that means for them.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System is the optional system instruction.
	System string

	// Messages is the conversation. Every InterviewSprint call is
	// single-turn: one user message carrying the prompt.
	Messages []Message

	// Schema is the JSON shape the response must have. Nil asks for
	// free-form text.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves it to the provider.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero leaves the
	// provider default in place.
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

// UserMessage is shorthand for a single user turn.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema defines the JSON structure expected back from the model.
type Schema struct {
	// Name identifies the schema (OpenAI schema name, validation cache key).
	// Kebab-case, e.g. "study-roadmap".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document. The root may be an object or
	// an array.
	Definition map[string]any
}

// IsArrayRoot reports whether the schema's root type is an array.
func (s *Schema) IsArrayRoot() bool {
	if s == nil {
		return false
	}
	t, _ := s.Definition["type"].(string)
	return t == "array"
}

// Response holds the model output.
type Response struct {
	// Content is the raw response text. For schema requests it is JSON
	// matching the schema, or empty.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Empty reports whether the response carried no text.
func (r *Response) Empty() bool {
	return r == nil || len(bytes.TrimSpace(r.Content)) == 0
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
