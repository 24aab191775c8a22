// Package questions implements the SQL and DSA question screens.
package questions

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/router"
	"github.com/abhisek/interviewsprint/internal/screen"
	"github.com/abhisek/interviewsprint/internal/ui/components"
	"github.com/abhisek/interviewsprint/internal/ui/layout"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// levelKeys maps the number keys to the level they generate.
var levelKeys = map[string]prep.Level{
	"1": prep.LevelBasic,
	"2": prep.LevelAdvanced,
	"3": prep.LevelMAANG,
}

// viewLevels is the cycle order of the "l" key; empty means all levels.
var viewLevels = []prep.Level{"", prep.LevelBasic, prep.LevelAdvanced, prep.LevelMAANG}

// Screen lists one category's questions and generates new batches.
type Screen struct {
	ctx      context.Context
	ws       *workspace.Workspace
	category prep.Category

	selected  int
	expanded  map[string]bool
	viewLevel int
	filter    components.TextInput
	filtering bool
	spinner   components.Spinner
	pending   prep.Level
	notice    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the question screen for a category.
func New(ctx context.Context, ws *workspace.Workspace, category prep.Category) *Screen {
	filter := components.NewTextInput("/", "topic or keyword", 40)
	filter.Blur()
	return &Screen{
		ctx:      ctx,
		ws:       ws,
		category: category,
		expanded: make(map[string]bool),
		filter:   filter,
		spinner:  components.NewSpinner(),
	}
}

func (s *Screen) Init() tea.Cmd {
	if s.state().Busy() {
		return s.spinner.Tick()
	}
	return nil
}

func (s *Screen) Title() string {
	return fmt.Sprintf("%s Questions", s.category)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "1/2/3", Description: "Basic/Advanced/MAANG"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "c", Description: "Copy"},
		{Key: "/", Description: "Filter"},
		{Key: "l", Description: "Level"},
		{Key: "x", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

// CapturingInput keeps Esc inside the screen while the filter is open.
func (s *Screen) CapturingInput() bool {
	return s.filtering
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if sp, ok := s.spinner.Update(msg); ok {
		s.spinner = sp
		if s.busy() {
			return s, s.spinner.Tick()
		}
		return s, nil
	}

	switch msg := msg.(type) {
	case batchDoneMsg:
		if msg.Category != s.category {
			return s, nil
		}
		s.pending = ""
		if errors.Is(msg.Err, workspace.ErrBusy) {
			s.notice = "Still generating, hang on"
			return s, nil
		}
		if msg.Err != nil {
			s.notice = ""
			return s, nil
		}
		s.selected = 0
		s.notice = fmt.Sprintf("Added %d %s questions", msg.Added, msg.Level)
		return s, nil

	case copiedMsg:
		if msg.Err != nil {
			s.notice = "Copy failed: " + msg.Err.Error()
		} else {
			s.notice = "Answer copied to clipboard"
		}
		return s, nil

	case tea.KeyMsg:
		if s.filtering {
			return s.handleFilterKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleFilterKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.filter.SetValue("")
		s.filter.Blur()
		s.filtering = false
		s.selected = 0
		return s, nil
	case "enter":
		s.filter.Blur()
		s.filtering = false
		return s, nil
	}
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.selected = 0
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if level, ok := levelKeys[key]; ok {
		return s, s.generate(level)
	}

	visible := s.visible()
	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(visible)-1 {
			s.selected++
		}
	case "enter":
		if q, ok := s.current(visible); ok {
			s.expanded[q.ID] = !s.expanded[q.ID]
		}
	case "c":
		if q, ok := s.current(visible); ok {
			answer := q.Answer
			return s, func() tea.Msg {
				return copiedMsg{Err: writeClipboard(answer)}
			}
		}
	case "x":
		s.ws.Clear(s.category)
		s.selected = 0
		s.expanded = make(map[string]bool)
		s.notice = "Cleared"
	case "/":
		s.filtering = true
		s.notice = ""
		return s, s.filter.Focus()
	case "l":
		s.viewLevel = (s.viewLevel + 1) % len(viewLevels)
		s.selected = 0
	}
	return s, nil
}

// generate starts a batch in the background. A second request for the
// same category while one is running is refused.
func (s *Screen) generate(level prep.Level) tea.Cmd {
	if s.busy() {
		s.notice = "Still generating, hang on"
		return nil
	}
	s.notice = ""
	s.pending = level
	return tea.Batch(s.runBatch(level), s.spinner.Tick())
}

func (s *Screen) runBatch(level prep.Level) tea.Cmd {
	ctx, ws, category := s.ctx, s.ws, s.category
	return func() tea.Msg {
		n, err := ws.GenerateBatch(ctx, category, level)
		return batchDoneMsg{Category: category, Level: level, Added: n, Err: err}
	}
}

// busy covers the gap between the key press and the workspace marking the
// action as loading.
func (s *Screen) busy() bool {
	return s.pending != "" || s.state().Busy()
}

func (s *Screen) state() workspace.ActionState {
	return s.ws.State(workspace.ActionFor(s.category))
}

func (s *Screen) visible() []prep.Question {
	return s.ws.Filter(s.category, viewLevels[s.viewLevel], s.filter.Value())
}

func (s *Screen) current(visible []prep.Question) (prep.Question, bool) {
	if s.selected < 0 || s.selected >= len(visible) {
		return prep.Question{}, false
	}
	return visible[s.selected], true
}
