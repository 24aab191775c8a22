package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: muted slate with a blue accent for long study sessions.
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Code renders query and pseudo-code answers.
	Code = lipgloss.NewStyle().
		Foreground(Secondary).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Border).
		PaddingLeft(1)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Loading = lipgloss.NewStyle().
		Foreground(Accent)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success)
)

// Badges
var (
	BadgeEasy = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BadgeMedium = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	BadgeHard = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	BadgeLevel = lipgloss.NewStyle().
			Foreground(Secondary)
)
