package prep

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var records = validator.New(validator.WithRequiredStructEnabled())

// rawQuestion is one decoded element of a questions response.
type rawQuestion struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty string `json:"difficulty" validate:"oneof=Easy Medium Hard"`
}

// roadmapRecord mirrors RoadmapItem with the checks applied to it.
type roadmapRecord struct {
	Day       int    `validate:"oneof=1 2"`
	TimeRange string `validate:"required"`
	Activity  string `validate:"required"`
	FocusArea string `validate:"required"`
	Details   string `validate:"required"`
}

func checkQuestions(raw []rawQuestion) error {
	for i := range raw {
		if err := records.Struct(raw[i]); err != nil {
			return fmt.Errorf("question %d: %w", i+1, describe(err))
		}
	}
	return nil
}

func checkRoadmap(items []RoadmapItem) error {
	for i, it := range items {
		rec := roadmapRecord(it)
		if err := records.Struct(rec); err != nil {
			return fmt.Errorf("roadmap item %d: %w", i+1, describe(err))
		}
	}
	return nil
}

// describe flattens validator output into one readable line.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			parts[i] = fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		} else {
			parts[i] = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return errors.New(strings.Join(parts, "; "))
}
