package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("12")
	colorError  = lipgloss.Color("9")
	colorOK     = lipgloss.Color("10")
	colorMuted  = lipgloss.Color("8")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	okStyle       = lipgloss.NewStyle().Foreground(colorOK)
	helpStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	focusedLabel  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	blurredLabel  = lipgloss.NewStyle()
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

func label(text string, focused bool) string {
	if focused {
		return focusedLabel.Render(text)
	}
	return blurredLabel.Render(text)
}
