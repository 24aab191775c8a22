package questions

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/ui/theme"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

func (s *Screen) View(width, height int) string {
	cw := width - 4
	if cw < 20 {
		cw = 20
	}

	var top []string
	top = append(top, s.renderStatus())
	top = append(top, s.renderFilterBar())
	header := strings.Join(top, "\n") + "\n"

	avail := height - lipgloss.Height(header) - 1
	visible := s.visible()
	var body string
	if len(visible) == 0 {
		body = theme.Hint.Render(s.emptyMessage())
	} else {
		body = s.renderList(visible, cw, avail)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(header + "\n" + body)
}

func (s *Screen) renderStatus() string {
	st := s.state()
	switch {
	case s.busy():
		level := s.pending
		if level == "" {
			level = st.Level
		}
		return theme.Loading.Render(fmt.Sprintf("%s Generating %s %s questions...",
			s.spinner.View(), level, s.category))
	case st.Status == workspace.StatusError && st.Err != nil:
		return theme.Failed.Render("✗ Generation failed: ") +
			lipgloss.NewStyle().Foreground(theme.Error).Render(st.Err.Error())
	case s.notice != "":
		return theme.Done.Render("✓ " + s.notice)
	}
	return theme.Subtitle.Render("Press 1, 2 or 3 to generate a Basic, Advanced or MAANG batch.")
}

func (s *Screen) renderFilterBar() string {
	level := "All levels"
	if l := viewLevels[s.viewLevel]; l != "" {
		level = string(l)
	}
	parts := []string{theme.BadgeLevel.Render("[" + level + "]")}
	if s.filtering || s.filter.Value() != "" {
		parts = append(parts, s.filter.View())
	}
	return strings.Join(parts, "  ")
}

func (s *Screen) emptyMessage() string {
	if s.filter.Value() != "" || viewLevels[s.viewLevel] != "" {
		return "No questions match the current filter."
	}
	return fmt.Sprintf("No %s questions yet. Generate a batch to get started.", s.category)
}

// renderList renders the items from the first one that keeps the selected
// item on screen.
func (s *Screen) renderList(visible []prep.Question, width, avail int) string {
	blocks := make([]string, len(visible))
	for i, q := range visible {
		blocks[i] = s.renderItem(i, q, width)
	}

	start := 0
	for start < s.selected && blockHeight(blocks[start:s.selected+1]) > avail {
		start++
	}

	var out []string
	used := 0
	for _, b := range blocks[start:] {
		h := lipgloss.Height(b)
		if used+h > avail && len(out) > 0 {
			break
		}
		out = append(out, b)
		used += h
	}
	return strings.Join(out, "\n")
}

func blockHeight(blocks []string) int {
	n := 0
	for _, b := range blocks {
		n += lipgloss.Height(b)
	}
	return n
}

func (s *Screen) renderItem(i int, q prep.Question, width int) string {
	prefix := "  "
	style := theme.Unselected
	if i == s.selected {
		prefix = "▸ "
		style = theme.Selected
	}

	badges := difficultyStyle(q.Difficulty).Render(string(q.Difficulty))
	if q.Level != "" {
		badges += " " + theme.BadgeLevel.Render(string(q.Level))
	}
	head := prefix + badges + " " + theme.Hint.Render(q.Topic)
	text := style.Width(width - 2).Render(q.Question)
	item := head + "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(text)

	if s.expanded[q.ID] {
		answer := theme.Code.Width(width - 4).Render(strings.TrimSpace(q.Answer))
		item += "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(answer)
	}
	return item + "\n"
}

func difficultyStyle(d prep.Difficulty) lipgloss.Style {
	switch d {
	case prep.DifficultyEasy:
		return theme.BadgeEasy
	case prep.DifficultyHard:
		return theme.BadgeHard
	}
	return theme.BadgeMedium
}
