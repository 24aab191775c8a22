// Package exporter implements the screen that writes the current study
// material to a file.
package exporter

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewsprint/internal/export"
	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/screen"
	"github.com/abhisek/interviewsprint/internal/ui/components"
	"github.com/abhisek/interviewsprint/internal/ui/layout"
	"github.com/abhisek/interviewsprint/internal/ui/theme"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

// DefaultFile is the suggested output path.
const DefaultFile = "interview-kit.md"

type exportDoneMsg struct {
	Path string
	Err  error
}

// Screen asks for a path and writes the workspace to it. The format
// follows the file extension; unknown extensions get markdown.
type Screen struct {
	ws     *workspace.Workspace
	input  components.TextInput
	result string
	err    error
	now    func() time.Time
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the export screen.
func New(ws *workspace.Workspace) *Screen {
	input := components.NewTextInput("File:", DefaultFile, 255)
	input.SetValue(DefaultFile)
	return &Screen{ws: ws, input: input, now: time.Now}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *Screen) Title() string {
	return "Export"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Write file"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.err = msg.Err
		s.result = msg.Path
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.write(strings.TrimSpace(s.input.Value()))
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) write(path string) tea.Cmd {
	if path == "" {
		path = DefaultFile
	}
	doc := export.Document{
		GeneratedAt: s.now(),
		Roadmap:     s.ws.Roadmap(),
		SQL:         s.ws.Questions(prep.CategorySQL),
		DSA:         s.ws.Questions(prep.CategoryDSA),
	}
	return func() tea.Msg {
		return exportDoneMsg{Path: path, Err: export.WriteFile(path, export.FormatForPath(path), doc)}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Export the survival kit"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Roadmap: %d blocks   SQL: %d questions   DSA: %d questions",
		len(s.ws.Roadmap()), len(s.ws.Questions(prep.CategorySQL)), len(s.ws.Questions(prep.CategoryDSA)))))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(".md for print, .json or .yaml for tools"))
	b.WriteString("\n\n")

	switch {
	case s.err != nil:
		b.WriteString(theme.Failed.Render("✗ " + s.err.Error()))
	case s.result != "":
		b.WriteString(theme.Done.Render("✓ Wrote " + s.result))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
