package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewsprint/internal/ui/theme"
)

const bannerArt = `╦┌┐┌┌┬┐┌─┐┬─┐┬  ┬┬┌─┐┬ ┬  ╔═╗┌─┐┬─┐┬┌┐┌┌┬┐
║│││ │ ├┤ ├┬┘└┐┌┘│├┤ │││  ╚═╗├─┘├┬┘││││ │
╩┘└┘ ┴ └─┘┴└─ └┘ ┴└─┘└┴┘  ╚═╝┴  ┴└─┴┘└┘ ┴ `

const bannerCompact = "I N T E R V I E W   S P R I N T"

// RenderBanner returns the product banner in the primary color, or a
// compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
