package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Selected  lipgloss.Style
	Label     lipgloss.Style
	Metric    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Label:     lipgloss.NewStyle().Faint(true),
		Metric:    lipgloss.NewStyle().Bold(true),
		TabActive: lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
		TabIdle:   lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
