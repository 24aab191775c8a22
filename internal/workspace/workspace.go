// Package workspace holds the study material of one session: the roadmap
// and the SQL and DSA question collections, plus the per-action loading
// state the UI renders.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/interviewsprint/internal/prep"
)

// ErrBusy is returned when an action is triggered while the same action is
// still running.
var ErrBusy = errors.New("action already in progress")

// Generator is the content source. *prep.Generator satisfies it.
type Generator interface {
	GenerateRoadmap(ctx context.Context) ([]prep.RoadmapItem, error)
	GenerateQuestionBatch(ctx context.Context, category prep.Category, topics []string, level prep.Level) ([]prep.Question, error)
}

// Action identifies one of the three independently guarded operations.
type Action string

const (
	ActionRoadmap Action = "roadmap"
	ActionSQL     Action = "sql"
	ActionDSA     Action = "dsa"
)

// ActionFor maps a question category to its batch action.
func ActionFor(c prep.Category) Action {
	if c == prep.CategoryDSA {
		return ActionDSA
	}
	return ActionSQL
}

// Status is the lifecycle of an action.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ActionState is a point-in-time view of one action.
type ActionState struct {
	Status Status
	Err    error
	// Level is the level of the most recent batch request; empty for the
	// roadmap action.
	Level prep.Level
}

// Busy reports whether the action is running.
func (s ActionState) Busy() bool {
	return s.Status == StatusLoading
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// WithTopics overrides the topic list used for a category's batches.
func WithTopics(c prep.Category, topics []string) Option {
	return func(w *Workspace) { w.topics[c] = append([]string(nil), topics...) }
}

// Workspace is safe for concurrent use. Different actions may run at the
// same time; each touches only its own collection.
type Workspace struct {
	gen    Generator
	logger *zap.Logger
	topics map[prep.Category][]string

	mu      sync.Mutex
	roadmap []prep.RoadmapItem
	sql     []prep.Question
	dsa     []prep.Question
	states  map[Action]*ActionState
}

// New creates an empty Workspace with every action idle.
func New(gen Generator, opts ...Option) *Workspace {
	w := &Workspace{
		gen:    gen,
		logger: zap.NewNop(),
		topics: map[prep.Category][]string{
			prep.CategorySQL: prep.Topics(prep.CategorySQL),
			prep.CategoryDSA: prep.Topics(prep.CategoryDSA),
		},
		states: map[Action]*ActionState{
			ActionRoadmap: {Status: StatusIdle},
			ActionSQL:     {Status: StatusIdle},
			ActionDSA:     {Status: StatusIdle},
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// LoadStarterKit replaces all three collections with the bundled starter
// content. The roadmap is marked successful; the question actions stay idle.
func (w *Workspace) LoadStarterKit() {
	kit := prep.StarterKit()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.roadmap = kit.Roadmap
	w.sql = kit.SQL
	w.dsa = kit.DSA
	w.states[ActionRoadmap].Status = StatusSuccess
}

// RefreshRoadmap regenerates the roadmap and replaces the current one on
// success. On failure the previous roadmap is kept.
func (w *Workspace) RefreshRoadmap(ctx context.Context) error {
	if err := w.begin(ActionRoadmap, ""); err != nil {
		return err
	}

	items, err := w.gen.GenerateRoadmap(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err == nil {
		w.roadmap = items
	}
	w.finish(ActionRoadmap, err)
	return err
}

// GenerateBatch generates a batch for every topic of category at level and
// puts the new questions in front of the existing ones. It returns the
// number of questions added.
func (w *Workspace) GenerateBatch(ctx context.Context, category prep.Category, level prep.Level) (int, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("%w: unknown category %q", prep.ErrInvalidRequest, category)
	}
	action := ActionFor(category)
	if err := w.begin(action, level); err != nil {
		return 0, err
	}

	qs, err := w.gen.GenerateQuestionBatch(ctx, category, w.topics[category], level)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err == nil {
		coll := w.collection(category)
		*coll = append(qs, *coll...)
	}
	w.finish(action, err)
	return len(qs), err
}

func (w *Workspace) begin(a Action, level prep.Level) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := w.states[a]
	if st.Status == StatusLoading {
		return fmt.Errorf("%s: %w", a, ErrBusy)
	}
	*st = ActionState{Status: StatusLoading, Level: level}
	return nil
}

// finish records the outcome. Caller holds w.mu.
func (w *Workspace) finish(a Action, err error) {
	st := w.states[a]
	if err != nil {
		st.Status = StatusError
		st.Err = err
		w.logger.Error("workspace action failed", zap.String("action", string(a)), zap.Error(err))
		return
	}
	st.Status = StatusSuccess
	st.Err = nil
}

// collection returns the slot for category. Caller holds w.mu.
func (w *Workspace) collection(c prep.Category) *[]prep.Question {
	if c == prep.CategoryDSA {
		return &w.dsa
	}
	return &w.sql
}

// State returns the current state of an action.
func (w *Workspace) State(a Action) ActionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	if st, ok := w.states[a]; ok {
		return *st
	}
	return ActionState{Status: StatusIdle}
}

// Roadmap returns a copy of the current roadmap.
func (w *Workspace) Roadmap() []prep.RoadmapItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]prep.RoadmapItem(nil), w.roadmap...)
}

// Questions returns a copy of a category's questions, newest batch first.
func (w *Workspace) Questions(c prep.Category) []prep.Question {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]prep.Question(nil), *w.collection(c)...)
}

// Clear discards every question of a category.
func (w *Workspace) Clear(c prep.Category) {
	w.mu.Lock()
	defer w.mu.Unlock()
	*w.collection(c) = nil
}

// Filter returns the questions of a category whose level matches (empty
// level matches any) and whose topic or question text contains query,
// ignoring case.
func (w *Workspace) Filter(c prep.Category, level prep.Level, query string) []prep.Question {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []prep.Question
	for _, q := range w.Questions(c) {
		if level != "" && q.Level != level {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(q.Topic), query) &&
			!strings.Contains(strings.ToLower(q.Question), query) {
			continue
		}
		out = append(out, q)
	}
	return out
}
