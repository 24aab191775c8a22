// Package roadmap implements the 48-hour study plan screen.
package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/router"
	"github.com/abhisek/interviewsprint/internal/screen"
	"github.com/abhisek/interviewsprint/internal/ui/components"
	"github.com/abhisek/interviewsprint/internal/ui/layout"
	"github.com/abhisek/interviewsprint/internal/ui/theme"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

// refreshDoneMsg is sent when a roadmap regeneration finishes.
type refreshDoneMsg struct {
	Err error
}

// Screen shows the roadmap grouped by day.
type Screen struct {
	ctx     context.Context
	ws      *workspace.Workspace
	spinner components.Spinner
	pending bool
	offset  int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the roadmap screen.
func New(ctx context.Context, ws *workspace.Workspace) *Screen {
	return &Screen{ctx: ctx, ws: ws, spinner: components.NewSpinner()}
}

func (s *Screen) Init() tea.Cmd {
	if s.busy() {
		return s.spinner.Tick()
	}
	return nil
}

func (s *Screen) Title() string {
	return "48-Hour Roadmap"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Regenerate"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
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
	case refreshDoneMsg:
		s.pending = false
		s.offset = 0
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			return s, s.refresh()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *Screen) refresh() tea.Cmd {
	if s.busy() {
		return nil
	}
	s.pending = true
	ctx, ws := s.ctx, s.ws
	run := func() tea.Msg {
		return refreshDoneMsg{Err: ws.RefreshRoadmap(ctx)}
	}
	return tea.Batch(run, s.spinner.Tick())
}

func (s *Screen) busy() bool {
	return s.pending || s.ws.State(workspace.ActionRoadmap).Busy()
}

func (s *Screen) View(width, height int) string {
	status := s.renderStatus()
	lines := strings.Split(renderDays(s.ws.Roadmap(), width-4), "\n")

	avail := height - lipgloss.Height(status) - 2
	if avail < 1 {
		avail = 1
	}
	maxOffset := len(lines) - avail
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := s.offset + avail
	if end > len(lines) {
		end = len(lines)
	}

	body := strings.Join(lines[s.offset:end], "\n")
	return lipgloss.NewStyle().Padding(0, 2).Render(status + "\n\n" + body)
}

func (s *Screen) renderStatus() string {
	st := s.ws.State(workspace.ActionRoadmap)
	switch {
	case s.busy():
		return theme.Loading.Render(s.spinner.View() + " Building a fresh roadmap...")
	case st.Status == workspace.StatusError && st.Err != nil:
		return theme.Failed.Render("✗ Roadmap generation failed: ") +
			lipgloss.NewStyle().Foreground(theme.Error).Render(st.Err.Error())
	}
	return theme.Subtitle.Render("Two days, three blocks each. Press r for a new plan.")
}

// renderDays groups items under one heading per day.
func renderDays(items []prep.RoadmapItem, width int) string {
	if len(items) == 0 {
		return theme.Hint.Render("No roadmap yet. Press r to generate one.")
	}

	var b strings.Builder
	for i, plan := range prep.GroupByDay(items) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Title.Render(fmt.Sprintf("Day %d", plan.Day)))
		b.WriteString("\n")
		for _, it := range plan.Items {
			head := lipgloss.NewStyle().Foreground(theme.Accent).Render(it.TimeRange) + "  " +
				theme.Selected.Render(it.Activity) + "  " +
				theme.BadgeLevel.Render(it.FocusArea)
			b.WriteString(head + "\n")
			b.WriteString(lipgloss.NewStyle().PaddingLeft(15).Width(width).Foreground(theme.Text).Render(it.Details))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
