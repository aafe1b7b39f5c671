package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/pagescout/internal/config"
)

const matchForeground = lipgloss.Color("0")

// styles holds the lipgloss styles derived from the configured theme.
type styles struct {
	header    lipgloss.Style
	content   lipgloss.Style
	highlight lipgloss.Style
	current   lipgloss.Style
	status    lipgloss.Style
	position  lipgloss.Style
	help      help.Styles
}

func newStyles(theme config.Theme) styles {
	footer := lipgloss.Color(theme.Footer)
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Header)),
		content:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Content)),
		highlight: lipgloss.NewStyle().Foreground(matchForeground).Background(lipgloss.Color(theme.Highlight)),
		current:   lipgloss.NewStyle().Bold(true).Foreground(matchForeground).Background(lipgloss.Color(theme.Current)),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Status)),
		position:  lipgloss.NewStyle().Faint(true),
		help: help.Styles{
			ShortKey:       lipgloss.NewStyle().Bold(true).Foreground(footer),
			ShortDesc:      lipgloss.NewStyle().Foreground(footer),
			ShortSeparator: lipgloss.NewStyle().Foreground(footer).Faint(true),
			Ellipsis:       lipgloss.NewStyle().Foreground(footer).Faint(true),
		},
	}
}
