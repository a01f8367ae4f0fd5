package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/tui/styles"
)

// ActionPalette provides fuzzy access to page commands and row actions via
// Ctrl+K. Commands are injected by the owning page; the palette only filters
// and dispatches them.
type ActionPalette struct {
	Width    int
	Height   int
	Visible  bool
	Input    textinput.Model
	Commands []Command
	Filtered []Command
	Selected int
}

// Command is one palette entry.
type Command struct {
	ID          string
	Name        string
	Description string
	Category    string
	Shortcut    string
}

// ExecuteCommandMsg reports the chosen command to the owning page.
type ExecuteCommandMsg struct {
	Command Command
}

// NewActionPalette creates an empty palette.
func NewActionPalette() ActionPalette {
	input := textinput.New()
	input.Placeholder = "Type to search actions..."
	input.Focus()
	return ActionPalette{
		Input:   input,
		Visible: false,
	}
}

// SetSize sets the palette size.
func (p *ActionPalette) SetSize(width, height int) {
	p.Width = width
	p.Height = height
	p.Input.Width = width - 6
}

// SetCommands replaces the command list.
func (p *ActionPalette) SetCommands(commands []Command) {
	p.Commands = commands
	p.filterCommands(p.Input.Value())
}

// Show opens the palette with a cleared query.
func (p *ActionPalette) Show() {
	p.Visible = true
	p.Input.Focus()
	p.Input.SetValue("")
	p.Selected = 0
	p.filterCommands("")
}

// Hide closes the palette.
func (p *ActionPalette) Hide() {
	p.Visible = false
	p.Input.Blur()
}

// Update handles palette input.
func (p *ActionPalette) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !p.Visible {
			return nil
		}
		return p.handleKeyMsg(msg)
	}
	return nil
}

func (p *ActionPalette) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.Hide()
		return nil
	case "enter":
		return p.handleEnterKey()
	case "up", "ctrl+p":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "ctrl+n":
		if p.Selected < len(p.Filtered)-1 {
			p.Selected++
		}
	default:
		return p.handleInputUpdate(msg)
	}
	return nil
}

func (p *ActionPalette) handleEnterKey() tea.Cmd {
	if len(p.Filtered) == 0 || p.Selected >= len(p.Filtered) {
		return nil
	}
	chosen := p.Filtered[p.Selected]
	p.Hide()
	return func() tea.Msg {
		return ExecuteCommandMsg{Command: chosen}
	}
}

func (p *ActionPalette) handleInputUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	p.filterCommands(p.Input.Value())
	if p.Selected >= len(p.Filtered) {
		p.Selected = 0
	}
	return cmd
}

func (p *ActionPalette) filterCommands(query string) {
	if query == "" {
		p.Filtered = p.Commands
		return
	}
	query = strings.ToLower(query)
	p.Filtered = nil
	for _, cmd := range p.Commands {
		if strings.Contains(strings.ToLower(cmd.Name), query) ||
			strings.Contains(strings.ToLower(cmd.Description), query) ||
			strings.Contains(strings.ToLower(cmd.Category), query) {
			p.Filtered = append(p.Filtered, cmd)
		}
	}
}

// View renders the palette as a centered dialog.
func (p *ActionPalette) View() string {
	if !p.Visible {
		return ""
	}
	var content strings.Builder
	content.WriteString(styles.RenderTitle("Actions"))
	content.WriteString("\n\n")
	content.WriteString(p.Input.View())
	content.WriteString("\n\n")
	p.renderCommands(&content)
	content.WriteString("\n\n")
	content.WriteString(styles.HelpStyle.Render("↑/↓ navigate • enter run • esc close"))
	dialog := styles.DialogStyle.Width(p.Width - 4).Render(content.String())
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, dialog)
}

func (p *ActionPalette) renderCommands(content *strings.Builder) {
	if len(p.Filtered) == 0 {
		content.WriteString(styles.HelpStyle.Render("No matching actions"))
		return
	}
	maxItems := 8
	start, end := p.calculateVisibleRange(maxItems)
	currentCategory := ""
	for i := start; i < end; i++ {
		cmd := p.Filtered[i]
		if cmd.Category != currentCategory {
			if currentCategory != "" {
				content.WriteString("\n")
			}
			content.WriteString(styles.HelpDescStyle.Render(cmd.Category))
			content.WriteString("\n")
			currentCategory = cmd.Category
		}
		p.renderCommandItem(content, &cmd, i)
	}
	if len(p.Filtered) > maxItems {
		hint := styles.HelpStyle.Render(fmt.Sprintf("Showing %d/%d", end-start, len(p.Filtered)))
		content.WriteString("\n")
		content.WriteString(hint)
	}
}

func (p *ActionPalette) calculateVisibleRange(maxItems int) (start, end int) {
	start = 0
	end = len(p.Filtered)
	if end > maxItems {
		if p.Selected >= maxItems/2 {
			start = p.Selected - maxItems/2
			end = start + maxItems
			if end > len(p.Filtered) {
				end = len(p.Filtered)
				start = end - maxItems
			}
		} else {
			end = maxItems
		}
	}
	return start, end
}

func (p *ActionPalette) renderCommandItem(content *strings.Builder, cmd *Command, index int) {
	prefix := "  "
	if index == p.Selected {
		prefix = "▶ "
	}
	name := cmd.Name
	if cmd.Shortcut != "" {
		name += " (" + cmd.Shortcut + ")"
	}
	if index == p.Selected {
		content.WriteString(styles.SelectedRowStyle.Render(prefix + name))
		content.WriteString("\n")
		if cmd.Description != "" {
			content.WriteString(styles.HelpStyle.Render("    " + cmd.Description))
		}
	} else {
		content.WriteString(prefix + name)
	}
	content.WriteString("\n")
}
