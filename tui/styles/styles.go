// Package styles centralizes the lipgloss color tokens and text styles
// shared by every TUI component.
package styles

import "github.com/charmbracelet/lipgloss"

// Color tokens.
var (
	Primary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	Secondary = lipgloss.AdaptiveColor{Light: "#02A9EA", Dark: "#02BFF1"}
	Surface   = lipgloss.AdaptiveColor{Light: "#EEEEF1", Dark: "#2B2B40"}
	Border    = lipgloss.AdaptiveColor{Light: "#D0D0D8", Dark: "#44445A"}
	Highlight = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	Success   = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	Warning   = lipgloss.AdaptiveColor{Light: "#F2B155", Dark: "#F2C261"}
	Danger    = lipgloss.AdaptiveColor{Light: "#D94F4F", Dark: "#FF6B6B"}
	Muted     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#6C6C80"}
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	PaginationStyle = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingTop(1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(Highlight).
				Background(Surface).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Background(Surface).
			Padding(0, 1)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(Muted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Highlight).
				Padding(0, 1)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(Highlight).
				Bold(true)

	GraphBarStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	GraphLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// RenderTitle renders a section title with the shared title style.
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}
