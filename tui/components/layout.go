package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/tui/styles"
)

// Layout frames a page: title and breadcrumb on top, content in the middle,
// status bar at the bottom, with an optional error banner between them.
type Layout struct {
	Width  int
	Height int
	Title  string

	Header  string
	Content string

	ShowHeader bool
	ShowFooter bool

	Breadcrumb Breadcrumb
	StatusBar  StatusBar

	err error
}

// NewLayout creates a layout frame with the given title.
func NewLayout(title string) Layout {
	return Layout{
		Title:      title,
		ShowHeader: true,
		ShowFooter: true,
		Breadcrumb: NewBreadcrumb(),
		StatusBar:  NewStatusBar(0),
	}
}

// SetSize sets the layout size.
func (l *Layout) SetSize(width, height int) *Layout {
	l.Width = width
	l.Height = height
	l.StatusBar = l.StatusBar.SetSize(width)
	l.Breadcrumb.SetWidth(width)
	return l
}

// SetContent sets the main content.
func (l *Layout) SetContent(content string) *Layout {
	l.Content = content
	return l
}

// SetHeader overrides the default title header.
func (l *Layout) SetHeader(header string) *Layout {
	l.Header = header
	return l
}

// SetError sets the error banner; nil clears it.
func (l *Layout) SetError(err error) *Layout {
	l.err = err
	return l
}

// Update handles layout-level messages.
func (l *Layout) Update(msg tea.Msg) (*Layout, tea.Cmd) {
	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		l = l.SetSize(windowMsg.Width, windowMsg.Height)
	}
	var cmd tea.Cmd
	l.StatusBar, cmd = l.StatusBar.Update(msg)
	return l, cmd
}

// View renders the frame.
func (l *Layout) View() string {
	if l.Width <= 0 || l.Height <= 0 {
		return ""
	}
	sections := make([]string, 0, 4)
	if l.ShowHeader {
		sections = append(sections, l.renderHeader())
	}
	if l.err != nil {
		sections = append(sections, styles.ErrorStyle.Render("Error: "+l.err.Error()))
	}
	sections = append(sections, l.renderContent())
	if l.ShowFooter {
		sections = append(sections, l.StatusBar.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (l *Layout) renderHeader() string {
	if l.Header != "" {
		return l.Header
	}
	header := styles.RenderTitle(l.Title)
	if crumb := l.Breadcrumb.View(); crumb != "" {
		header += "  " + crumb
	}
	return header + "\n"
}

func (l *Layout) renderContent() string {
	_, height := l.ContentSize()
	return lipgloss.NewStyle().
		Width(l.Width).
		Height(height).
		Padding(0, 1).
		Render(l.Content)
}

// ContentSize returns the area left for content after the frame chrome.
func (l *Layout) ContentSize() (width, height int) {
	width = l.Width - 2
	height = l.Height
	if l.ShowHeader {
		height -= 2
	}
	if l.ShowFooter {
		height--
	}
	if l.err != nil {
		height--
	}
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return width, height
}
