package llm

import (
	"encoding/json"
	"fmt"
)

// envelopeKey names the single property used to carry an array-rooted
// response through providers whose structured output needs an object root.
const envelopeKey = "items"

// objectRootDefinition returns a schema definition with an object root.
// Array-rooted definitions are wrapped as {"items": <def>}; the second
// return value reports whether wrapping happened.
func objectRootDefinition(s *Schema) (map[string]any, bool) {
	if !s.IsArrayRoot() {
		return s.Definition, false
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			envelopeKey: s.Definition,
		},
		"required":             []any{envelopeKey},
		"additionalProperties": false,
	}, true
}

// unwrapEnvelope extracts the array carried under envelopeKey. Empty
// content passes through untouched.
func unwrapEnvelope(content json.RawMessage) (json.RawMessage, error) {
	if len(content) == 0 {
		return content, nil
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(content, &env); err != nil {
		return nil, &ErrInvalidResponse{
			Content: content,
			Err:     fmt.Errorf("decode response envelope: %w", err),
		}
	}
	inner, ok := env[envelopeKey]
	if !ok {
		return nil, &ErrInvalidResponse{
			Content: content,
			Err:     fmt.Errorf("response envelope has no %q property", envelopeKey),
		}
	}
	return inner, nil
}
