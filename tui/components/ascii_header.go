package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"github.com/listkit/listkit/tui/styles"
)

// RenderASCIIHeader renders an application banner as colored ASCII art.
func RenderASCIIHeader(name string, width int) string {
	logo := figure.NewFigure(name, "standard", true)
	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Align(lipgloss.Left).
		Width(width)
	return headerStyle.Render(logo.String())
}
