package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/tui/styles"
)

// StatusBar is the single-line footer showing the active view mode,
// selection count, and state indicators.
type StatusBar struct {
	Width int

	Mode      string
	Selected  int
	Filters   int
	Searching bool
	Loading   bool
	Message   string
}

// NewStatusBar creates a status bar for the given width.
func NewStatusBar(width int) StatusBar {
	return StatusBar{Width: width}
}

// SetSize sets the bar width.
func (s StatusBar) SetSize(width int) StatusBar {
	s.Width = width
	return s
}

// Update handles window resizes.
func (s StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width = windowMsg.Width
	}
	return s, nil
}

// View renders the bar.
func (s StatusBar) View() string {
	if s.Width <= 0 {
		return ""
	}
	left := strings.Join(s.leftSegments(), " • ")
	right := styles.HelpStyle.Render("? help")
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return styles.StatusBarStyle.Width(s.Width).Render(line)
}

func (s StatusBar) leftSegments() []string {
	var segments []string
	if s.Mode != "" {
		segments = append(segments, styles.InfoStyle.Render(strings.ToUpper(s.Mode)))
	}
	if s.Loading {
		segments = append(segments, styles.WarningStyle.Render("loading"))
	}
	if s.Selected > 0 {
		segments = append(segments, fmt.Sprintf("%d selected", s.Selected))
	}
	if s.Filters > 0 {
		segments = append(segments, styles.FilterActiveStyle.Render(fmt.Sprintf("%d filters", s.Filters)))
	}
	if s.Searching {
		segments = append(segments, styles.FilterActiveStyle.Render("search"))
	}
	if s.Message != "" {
		segments = append(segments, s.Message)
	}
	return segments
}
