package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/tui/styles"
)

const graphLabelWidth = 18

// BarGraph renders rows as a horizontal bar chart, one bar per row, scaled
// to the largest value on the page.
type BarGraph[T any] struct {
	Width int
	Value func(T) float64
	Label func(T) string
}

// View renders the chart with the cursor row highlighted.
func (g BarGraph[T]) View(rows []T, cursor int) string {
	if len(rows) == 0 || g.Value == nil {
		return ""
	}
	maxValue := 0.0
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = g.Value(row)
		if values[i] > maxValue {
			maxValue = values[i]
		}
	}
	barSpace := g.Width - graphLabelWidth - 12
	if barSpace < 10 {
		barSpace = 10
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = g.renderBar(row, values[i], maxValue, barSpace, i == cursor)
	}
	return strings.Join(lines, "\n")
}

func (g BarGraph[T]) renderBar(row T, value, maxValue float64, barSpace int, active bool) string {
	label := ""
	if g.Label != nil {
		label = g.Label(row)
	}
	if lipgloss.Width(label) > graphLabelWidth {
		label = label[:graphLabelWidth-1] + "…"
	}
	labelCell := fmt.Sprintf("%-*s", graphLabelWidth, label)

	length := 0
	if maxValue > 0 {
		length = int(value / maxValue * float64(barSpace))
	}
	bar := strings.Repeat("█", length)
	if length == 0 && value > 0 {
		bar = "▏"
	}

	labelStyle := styles.GraphLabelStyle
	if active {
		labelStyle = styles.FilterActiveStyle
	}
	return labelStyle.Render(labelCell) + " " +
		styles.GraphBarStyle.Render(bar) + " " +
		styles.HelpStyle.Render(fmt.Sprintf("%.4g", value))
}
