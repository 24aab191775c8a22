package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/router"
	"github.com/abhisek/interviewsprint/internal/screen"
	"github.com/abhisek/interviewsprint/internal/screens/exporter"
	"github.com/abhisek/interviewsprint/internal/screens/history"
	"github.com/abhisek/interviewsprint/internal/screens/questions"
	"github.com/abhisek/interviewsprint/internal/screens/roadmap"
	"github.com/abhisek/interviewsprint/internal/screens/welcome"
	"github.com/abhisek/interviewsprint/internal/store"
	"github.com/abhisek/interviewsprint/internal/ui/components"
	"github.com/abhisek/interviewsprint/internal/ui/theme"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	ws   *workspace.Workspace
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Every sub-screen shares ws. The generation
// log entry is shown only when events is non-nil.
func New(ctx context.Context, ws *workspace.Workspace, events store.EventRepo) *HomeScreen {
	push := func(s func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s()} }
		}
	}

	items := []components.MenuItem{
		{Label: "Roadmap", Detail: "48-hour plan", Action: push(func() screen.Screen {
			return roadmap.New(ctx, ws)
		})},
		{Label: "SQL Questions", Action: push(func() screen.Screen {
			return questions.New(ctx, ws, prep.CategorySQL)
		})},
		{Label: "DSA Questions", Action: push(func() screen.Screen {
			return questions.New(ctx, ws, prep.CategoryDSA)
		})},
		{Label: "Export", Detail: "markdown, json, yaml", Action: push(func() screen.Screen {
			return exporter.New(ws)
		})},
	}
	if events != nil {
		items = append(items, components.MenuItem{Label: "Generation Log", Detail: "recent LLM calls", Action: push(func() screen.Screen {
			return history.New(ctx, events)
		})})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})

	return &HomeScreen{ws: ws, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		welcome.RenderBanner(width),
		theme.Subtitle.Render("48-hour SQL and DSA interview prep"),
		h.renderProgress(),
		h.menu.View(),
	}
	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(content))
}

func (h *HomeScreen) renderProgress() string {
	line := func(label string, a workspace.Action, count int) string {
		st := h.ws.State(a)
		mark := theme.Hint.Render("·")
		switch st.Status {
		case workspace.StatusLoading:
			mark = theme.Loading.Render("…")
		case workspace.StatusSuccess:
			mark = theme.Done.Render("✓")
		case workspace.StatusError:
			mark = theme.Failed.Render("✗")
		}
		return fmt.Sprintf("%s %-8s %s", mark, label, theme.Body.Render(fmt.Sprint(count)))
	}
	return strings.Join([]string{
		line("Roadmap", workspace.ActionRoadmap, len(h.ws.Roadmap())),
		line("SQL", workspace.ActionSQL, len(h.ws.Questions(prep.CategorySQL))),
		line("DSA", workspace.ActionDSA, len(h.ws.Questions(prep.CategoryDSA))),
	}, "\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
