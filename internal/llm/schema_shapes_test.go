package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/interviewsprint/internal/llm"
	"github.com/abhisek/interviewsprint/internal/prep"
)

// generate runs raw through a MockProvider, which validates content against
// the request schema exactly as the real adapters do.
func generate(schema *llm.Schema, raw string) error {
	mock := llm.NewMockProvider(llm.JSONResponse(raw))
	_, err := mock.Generate(context.Background(), llm.Request{
		Messages: llm.UserMessage("generate"),
		Schema:   schema,
	})
	return err
}

func TestGeneratorSchemas(t *testing.T) {
	tests := []struct {
		name    string
		schema  *llm.Schema
		raw     string
		wantErr bool
	}{
		{
			name:   "roadmap item",
			schema: prep.RoadmapSchema,
			raw:    `[{"day":1,"timeRange":"09:00 - 11:00","activity":"Joins","focusArea":"SQL","details":"Inner vs left"}]`,
		},
		{
			name:    "roadmap item missing details",
			schema:  prep.RoadmapSchema,
			raw:     `[{"day":1,"timeRange":"09:00 - 11:00","activity":"Joins","focusArea":"SQL"}]`,
			wantErr: true,
		},
		{
			name:   "question",
			schema: prep.QuestionsSchema,
			raw:    `[{"question":"Reverse a linked list","answer":"Three pointers: prev, curr, next.","difficulty":"Medium"}]`,
		},
		{
			name:    "question with unknown difficulty",
			schema:  prep.QuestionsSchema,
			raw:     `[{"question":"Reverse a linked list","answer":"Three pointers.","difficulty":"Expert"}]`,
			wantErr: true,
		},
		{
			name:    "question list sent as a single object",
			schema:  prep.QuestionsSchema,
			raw:     `{"question":"Q","answer":"A","difficulty":"Easy"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := generate(tt.schema, tt.raw)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *llm.ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %v", err)
			}
		})
	}
}
