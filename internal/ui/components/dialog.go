package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2).
			Width(40)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#436b77"))
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	body := dialogBodyStyle.Render(SanitizeText(message))
	hint := dialogBodyStyle.Render("\ny: confirm | n: cancel")
	return dialogStyle.Render(header + "\n\n" + body + hint)
}

// InputDialog renders a text input prompt.
func InputDialog(title, input string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	field := dialogFieldStyle.Render("> " + SanitizeOneLine(input) + "█")
	hint := dialogBodyStyle.Render("\nenter: submit | esc: cancel")
	return dialogStyle.Render(header + "\n\n" + field + hint)
}
