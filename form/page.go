package form

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/listkit/listkit/tui/models"
)

// Page wraps a huh form as a standalone bubbletea model with cancel and
// completion tracking.
type Page struct {
	models.BaseModel
	form      *huh.Form
	canceled  bool
	completed bool
}

// NewPage creates a page around an already built form.
func NewPage(ctx context.Context, form *huh.Form) *Page {
	return &Page{
		BaseModel: models.NewBaseModel(ctx, models.ModeTUI),
		form:      form,
	}
}

// Init initializes the form.
func (p *Page) Init() tea.Cmd {
	return p.form.Init()
}

// Update handles form updates.
func (p *Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			p.canceled = true
			return p, tea.Quit
		}
	}

	p.BaseModel.Update(msg)

	form, cmd := p.form.Update(msg)
	if frm, ok := form.(*huh.Form); ok {
		p.form = frm
		if p.form.State == huh.StateCompleted {
			p.completed = true
			return p, tea.Quit
		}
		if p.form.State == huh.StateAborted {
			p.canceled = true
			return p, tea.Quit
		}
	}

	return p, cmd
}

// View renders the form.
func (p *Page) View() string {
	return p.form.View()
}

// IsCanceled returns whether the form was canceled.
func (p *Page) IsCanceled() bool {
	return p.canceled
}

// IsCompleted returns whether the form was completed.
func (p *Page) IsCompleted() bool {
	return p.completed
}

// Form returns the underlying huh form for reading values.
func (p *Page) Form() *huh.Form {
	return p.form
}
