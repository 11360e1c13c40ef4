package ui

import (
	"github.com/charmbracelet/lipgloss"

	"todopad/internal/controller"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236"))
	doneStyle     = lipgloss.NewStyle().Faint(true)
	confirmStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	helpStyle     = lipgloss.NewStyle().Faint(true)

	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// renderStatus colors the status line by level.
func renderStatus(s controller.Status) string {
	switch s.Level {
	case controller.Info:
		return infoStyle.Render(s.Text)
	case controller.Warning:
		return warningStyle.Render(s.Text)
	case controller.Error:
		return errorStyle.Render(s.Text)
	default:
		return s.Text
	}
}
