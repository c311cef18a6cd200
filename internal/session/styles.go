package session

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}).
			Italic(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})
)

// renderResponse styles a response for the transcript. Failed commands are
// shown in the error color; hints go on their own dim line.
func renderResponse(text, hint string, failed bool) string {
	out := text
	if failed {
		out = errorStyle.Render(text)
	}
	if hint != "" {
		out += "\n" + hintStyle.Render(hint)
	}
	return out
}
