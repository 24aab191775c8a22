package prep

import (
	"fmt"
	"strings"
)

// Category is the subject area of a question.
type Category string

const (
	CategorySQL Category = "SQL"
	CategoryDSA Category = "DSA"
)

// Categories lists every category in display order.
var Categories = []Category{CategorySQL, CategoryDSA}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategorySQL || c == CategoryDSA
}

// ParseCategory accepts a category name in any case ("sql", "DSA").
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q (want sql or dsa)", ErrInvalidRequest, s)
}

// Level is the interview bar a question targets. It is independent of
// Difficulty: a Basic-level set may still contain a Hard question.
type Level string

const (
	LevelBasic    Level = "Basic"
	LevelAdvanced Level = "Advanced"
	LevelMAANG    Level = "MAANG"
)

// Levels lists every level from easiest bar to hardest.
var Levels = []Level{LevelBasic, LevelAdvanced, LevelMAANG}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelBasic, LevelAdvanced, LevelMAANG:
		return true
	}
	return false
}

// ParseLevel accepts a level name in any case ("basic", "maang").
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown level %q (want basic, advanced or maang)", ErrInvalidRequest, s)
}

// Difficulty is the per-question difficulty reported by the model.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Question is one interview question with its model answer.
type Question struct {
	// ID is unique within a session. Generated questions get a fresh UUID.
	ID       string   `json:"id" yaml:"id"`
	Category Category `json:"category" yaml:"category"`
	Topic    string   `json:"topic" yaml:"topic"`
	Question string   `json:"question" yaml:"question"`

	// Answer may contain Markdown and code (SQL queries, pseudo-code).
	Answer     string     `json:"answer" yaml:"answer"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Level      Level      `json:"level,omitempty" yaml:"level,omitempty"`
}

// RoadmapItem is one time block of the 48-hour study plan.
type RoadmapItem struct {
	// Day is 1 or 2.
	Day       int    `json:"day" yaml:"day"`
	TimeRange string `json:"timeRange" yaml:"timeRange"` // e.g. "08:00 - 10:00"
	Activity  string `json:"activity" yaml:"activity"`
	FocusArea string `json:"focusArea" yaml:"focusArea"`
	Details   string `json:"details" yaml:"details"`
}
