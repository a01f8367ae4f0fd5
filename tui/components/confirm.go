package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/listview"
	"github.com/listkit/listkit/tui/styles"
)

// ConfirmDialog is a modal yes/no prompt shown before guarded actions run.
// Danger-variant dialogs default focus to the cancel button.
type ConfirmDialog struct {
	Title       string
	Description string
	Variant     listview.ConfirmVariant
	ActionKey   string

	Width  int
	Height int

	confirmFocused bool
}

// NewConfirmDialog creates a dialog for the given action.
func NewConfirmDialog(actionKey, title, description string, variant listview.ConfirmVariant) ConfirmDialog {
	if title == "" {
		title = "Are you sure?"
	}
	return ConfirmDialog{
		Title:          title,
		Description:    description,
		Variant:        variant,
		ActionKey:      actionKey,
		confirmFocused: variant != listview.VariantDanger,
	}
}

// ConfirmResultMsg reports the user's choice for a pending action.
type ConfirmResultMsg struct {
	ActionKey string
	Confirmed bool
}

// SetSize sets the overlay dimensions.
func (d *ConfirmDialog) SetSize(width, height int) {
	d.Width = width
	d.Height = height
}

// Update handles dialog input.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "right", "tab", "shift+tab":
		d.confirmFocused = !d.confirmFocused
	case "y":
		return d.resolve(true)
	case "n", "esc":
		return d.resolve(false)
	case "enter":
		return d.resolve(d.confirmFocused)
	}
	return nil
}

func (d *ConfirmDialog) resolve(confirmed bool) tea.Cmd {
	key := d.ActionKey
	return func() tea.Msg {
		return ConfirmResultMsg{ActionKey: key, Confirmed: confirmed}
	}
}

// View renders the dialog centered in the overlay area.
func (d *ConfirmDialog) View() string {
	titleStyle := styles.TitleStyle
	if d.Variant == listview.VariantDanger {
		titleStyle = styles.ErrorStyle
	}
	content := titleStyle.Render(d.Title)
	if d.Description != "" {
		content += "\n\n" + d.Description
	}
	content += "\n\n" + d.renderButtons()
	content += "\n" + styles.HelpStyle.Render("y/n quick answer • esc cancel")
	dialog := styles.DialogStyle.Render(content)
	if d.Width <= 0 || d.Height <= 0 {
		return dialog
	}
	return lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, dialog)
}

func (d *ConfirmDialog) renderButtons() string {
	confirmLabel := "  Confirm  "
	cancelLabel := "  Cancel  "
	confirm := styles.HelpStyle.Render(confirmLabel)
	cancel := styles.HelpStyle.Render(cancelLabel)
	if d.confirmFocused {
		confirm = styles.SelectedRowStyle.Render(confirmLabel)
	} else {
		cancel = styles.SelectedRowStyle.Render(cancelLabel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel)
}
