package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/listview"
	"github.com/listkit/listkit/tui/styles"
)

const (
	cardMinWidth = 28
	cardGap      = 1
)

// CardGrid renders rows as bordered cards flowed into as many columns as the
// viewport fits. Without a custom renderer, each card lists the field values.
type CardGrid[T any] struct {
	Width    int
	Render   func(T) string
	Fields   []listview.FieldSpec[T]
	Selected func(T) bool
}

// View renders the grid with the cursor row highlighted.
func (g CardGrid[T]) View(rows []T, cursor int) string {
	if len(rows) == 0 {
		return ""
	}
	columns := g.columnCount()
	cardWidth := g.cardWidth(columns)

	cards := make([]string, len(rows))
	for i, row := range rows {
		cards[i] = g.renderCard(row, cardWidth, i == cursor)
	}

	var lines []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (g CardGrid[T]) columnCount() int {
	if g.Width <= 0 {
		return 1
	}
	return max(1, g.Width/(cardMinWidth+cardGap*2))
}

func (g CardGrid[T]) cardWidth(columns int) int {
	if g.Width <= 0 {
		return cardMinWidth
	}
	return max(cardMinWidth, g.Width/columns-cardGap*2-2)
}

func (g CardGrid[T]) renderCard(row T, width int, active bool) string {
	body := g.renderBody(row)
	if g.Selected != nil && g.Selected(row) {
		body = styles.FilterActiveStyle.Render("✓ selected") + "\n" + body
	}
	style := styles.CardStyle
	if active {
		style = styles.CardSelectedStyle
	}
	return style.Width(width).Margin(0, cardGap).Render(body)
}

func (g CardGrid[T]) renderBody(row T) string {
	if g.Render != nil {
		return g.Render(row)
	}
	var lines []string
	for _, field := range g.Fields {
		value := ""
		if field.Value != nil {
			value = fmt.Sprintf("%v", field.Value(row))
		}
		label := styles.HelpStyle.Render(field.Title() + ":")
		lines = append(lines, label+" "+value)
	}
	return strings.Join(lines, "\n")
}
