// Package prep produces interview study content: the 48-hour roadmap and
// per-topic question sets, by prompting a language model for structured
// JSON and decoding it into typed records.
package prep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/interviewsprint/internal/llm"
)

// Generator turns fixed prompts into roadmap items and questions. It is
// safe for concurrent use; each call is a single model request.
type Generator struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a Generator. A nil logger discards output.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 5
	}
	if cfg.BatchCount <= 0 {
		cfg.BatchCount = cfg.DefaultCount
	}
	return &Generator{provider: provider, config: cfg, logger: logger}
}

// GenerateRoadmap asks for a 48-hour SQL and DSA study plan. Items are
// returned verbatim in model order. An empty response yields an empty
// slice and no error.
func (g *Generator) GenerateRoadmap(ctx context.Context) ([]RoadmapItem, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRoadmap)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      roadmapSystem,
		Messages:    llm.UserMessage(roadmapPrompt),
		Schema:      RoadmapSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		err = classify("roadmap", err)
		g.logger.Error("failed to generate roadmap", zap.Error(err))
		return nil, err
	}
	if resp.Empty() {
		return []RoadmapItem{}, nil
	}

	var items []RoadmapItem
	if err := decode(resp.Content, &items); err != nil {
		err = &MalformedResponseError{Op: "roadmap", Content: resp.Content, Err: err}
		g.logger.Error("failed to generate roadmap", zap.Error(err))
		return nil, err
	}
	if g.config.StrictValidation {
		if err := checkRoadmap(items); err != nil {
			err = &MalformedResponseError{Op: "roadmap", Content: resp.Content, Err: err}
			g.logger.Error("failed to generate roadmap", zap.Error(err))
			return nil, err
		}
	}
	if items == nil {
		items = []RoadmapItem{}
	}

	g.logger.Debug("generated roadmap", zap.Int("items", len(items)))
	return items, nil
}

// GenerateQuestions asks for count questions on one topic. A non-positive
// count means Config.DefaultCount. Every question gets a fresh ID and the
// caller's category, topic and level; only question, answer and difficulty
// come from the model. An empty response yields an empty slice.
func (g *Generator) GenerateQuestions(ctx context.Context, category Category, topic string, level Level, count int) ([]Question, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, category)
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidRequest, level)
	}
	if count <= 0 {
		count = g.config.DefaultCount
	}

	log := g.logger.With(
		zap.String("category", string(category)),
		zap.String("topic", topic),
		zap.String("level", string(level)),
	)

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:    llm.UserMessage(buildQuestionPrompt(category, topic, level, count)),
		Schema:      QuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		err = classify("questions", err)
		log.Error("failed to generate questions", zap.Error(err))
		return nil, err
	}
	if resp.Empty() {
		return []Question{}, nil
	}

	var raw []rawQuestion
	if err := decode(resp.Content, &raw); err != nil {
		err = &MalformedResponseError{Op: "questions", Content: resp.Content, Err: err}
		log.Error("failed to generate questions", zap.Error(err))
		return nil, err
	}
	if g.config.StrictValidation {
		if err := checkQuestions(raw); err != nil {
			err = &MalformedResponseError{Op: "questions", Content: resp.Content, Err: err}
			log.Error("failed to generate questions", zap.Error(err))
			return nil, err
		}
	}

	questions := make([]Question, len(raw))
	for i, r := range raw {
		questions[i] = Question{
			ID:         NewID(),
			Category:   category,
			Topic:      topic,
			Question:   r.Question,
			Answer:     r.Answer,
			Difficulty: Difficulty(r.Difficulty),
			Level:      level,
		}
	}

	log.Debug("generated questions", zap.Int("count", len(questions)))
	return questions, nil
}

// decode parses a JSON array, rejecting trailing data after it.
func decode(content []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

// classify converts a boundary rejection of the response text into a
// MalformedResponseError and wraps every other failure with the operation.
func classify(op string, err error) error {
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return &MalformedResponseError{Op: op, Content: inv.Content, Err: err}
	}
	return fmt.Errorf("generate %s: %w", op, err)
}
