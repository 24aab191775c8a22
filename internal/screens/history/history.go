package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewsprint/internal/router"
	"github.com/abhisek/interviewsprint/internal/screen"
	"github.com/abhisek/interviewsprint/internal/store"
	"github.com/abhisek/interviewsprint/internal/ui/layout"
	"github.com/abhisek/interviewsprint/internal/ui/theme"
)

// Limit is how many recent calls the screen loads.
const Limit = 50

type historyLoadedMsg struct {
	Events []store.LLMRequestEventRecord
	Err    error
}

// HistoryScreen lists recent generation calls, newest first.
type HistoryScreen struct {
	ctx      context.Context
	repo     store.EventRepo
	events   []store.LLMRequestEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen reading from repo.
func New(ctx context.Context, repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		ctx:      ctx,
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load
}

func (s *HistoryScreen) load() tea.Msg {
	events, err := s.repo.QueryLLMEvents(s.ctx, store.QueryOpts{Limit: Limit})
	return historyLoadedMsg{Events: events, Err: err}
}

func (s *HistoryScreen) Title() string {
	return "Generation Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.events = msg.Events
			s.expanded = make(map[int]bool)
			if s.selected >= len(s.events) {
				s.selected = max(len(s.events)-1, 0)
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "r":
			return s, s.load
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading generation log...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No generation calls yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := theme.Done.Render("✓")
		if !ev.Success {
			mark = theme.Failed.Render("✗")
		}

		line := fmt.Sprintf("%s%s  %-12s  %-24s  %5d→%-5d  %6dms",
			prefix, ev.Timestamp.Local().Format("Jan 02 15:04"),
			ev.Purpose, ev.Model, ev.InputTokens, ev.OutputTokens, ev.LatencyMs)

		style := theme.Body
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(mark + " " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderDetail(ev, width))
		}
	}

	return b.String()
}

func renderDetail(ev store.LLMRequestEventRecord, width int) string {
	var lines []string
	lines = append(lines, "Provider: "+ev.Provider)
	if !ev.Success {
		lines = append(lines, theme.Failed.Render(fmt.Sprintf("Error (%s): %s", ev.ErrorKind, ev.ErrorMessage)))
	}

	detail := theme.Hint.Width(max(width-6, 20)).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().PaddingLeft(4).Render(detail) + "\n"
}
