package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	readOnlyStyle = lipgloss.NewStyle().Faint(true)

	bannerStyle        = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff"))
	bannerSuccessStyle = bannerStyle.Background(lipgloss.Color("#4caf50"))
	bannerErrorStyle   = bannerStyle.Background(lipgloss.Color("#f44336"))
)
