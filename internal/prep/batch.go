package prep

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// GenerateQuestionBatch runs GenerateQuestions for each topic in order,
// one call at a time, and concatenates the results. If any topic fails the
// whole batch fails with a *BatchError and no questions are returned. An
// empty topic list returns an empty slice without calling the model.
func (g *Generator) GenerateQuestionBatch(ctx context.Context, category Category, topics []string, level Level) ([]Question, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, category)
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidRequest, level)
	}

	all := make([]Question, 0, len(topics)*g.config.BatchCount)

	for i, topic := range topics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		qs, err := g.GenerateQuestions(ctx, category, topic, level, g.config.BatchCount)
		if err != nil {
			g.logger.Error("question batch aborted",
				zap.String("category", string(category)),
				zap.String("level", string(level)),
				zap.Int("topic_index", i),
				zap.Int("discarded", len(all)),
				zap.Error(err))
			return nil, &BatchError{Category: category, Topic: topic, Index: i, Err: err}
		}
		all = append(all, qs...)
	}

	return all, nil
}
