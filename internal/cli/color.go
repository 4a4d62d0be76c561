package cli

import "github.com/charmbracelet/lipgloss"

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB020"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EC8F2"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A8CA3"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6EDF5"))
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Accent(text string) string  { return accentStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }
