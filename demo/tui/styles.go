package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorVeryHot   = "#FF2D55"
	colorHot       = "#FF9500"
	colorWarm      = "#FFCC00"
	colorWatch     = "#626262"
	colorError     = "#FF0000"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
)

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginTop(1).
		MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	GemStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colorWarm))

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)

	heatStyles = map[string]lipgloss.Style{
		"very_hot": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorVeryHot)),
		"hot":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHot)),
		"warm":     lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarm)),
		"watch":    lipgloss.NewStyle().Foreground(lipgloss.Color(colorWatch)),
	}
)

// heatBadge renders the heat bucket with its color.
func heatBadge(heat string) string {
	style, ok := heatStyles[heat]
	if !ok {
		style = InfoStyle
	}
	return style.Render(heat)
}
