// Package wizard chains declarative forms into a multi-step flow with a
// progress header and scrollable body.
package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/listkit/listkit/form"
	"github.com/listkit/listkit/tui/models"
	"github.com/listkit/listkit/tui/styles"
)

// Step is one wizard page: a name and its form fields.
type Step struct {
	Name   string
	Fields []form.Field
}

// Wizard runs steps in order; each step must complete before the next
// starts. Aborting any step cancels the whole flow.
type Wizard struct {
	models.BaseModel
	title    string
	steps    []Step
	forms    []*huh.Form
	index    int
	viewport viewport.Model
	done     bool
	canceled bool
}

// New builds every step's form upfront so configuration errors surface
// before the flow starts.
func New(ctx context.Context, title string, steps []Step) (*Wizard, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("wizard %q has no steps", title)
	}
	forms := make([]*huh.Form, len(steps))
	for i, step := range steps {
		built, err := form.Definition{Title: step.Name, Fields: step.Fields}.Build()
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		forms[i] = built
	}
	return &Wizard{
		BaseModel: models.NewBaseModel(ctx, models.ModeTUI),
		title:     title,
		steps:     steps,
		forms:     forms,
		viewport:  viewport.New(0, 0),
	}, nil
}

// Index returns the zero-based current step.
func (w *Wizard) Index() int {
	return w.index
}

// Progress returns the human-readable step position.
func (w *Wizard) Progress() string {
	return fmt.Sprintf("Step %d of %d: %s", w.index+1, len(w.steps), w.steps[w.index].Name)
}

// IsDone reports whether every step completed.
func (w *Wizard) IsDone() bool {
	return w.done
}

// IsCanceled reports whether the flow was aborted.
func (w *Wizard) IsCanceled() bool {
	return w.canceled
}

// Form returns the form of step i for reading values after completion.
func (w *Wizard) Form(i int) *huh.Form {
	return w.forms[i]
}

// Init starts the first step.
func (w *Wizard) Init() tea.Cmd {
	return w.forms[0].Init()
}

// Update advances the flow.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.BaseModel.Update(msg)
		w.viewport.Width = msg.Width
		w.viewport.Height = max(1, msg.Height-3)
		return w, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.canceled = true
			return w, tea.Quit
		}
	}

	current, cmd := w.forms[w.index].Update(msg)
	if frm, ok := current.(*huh.Form); ok {
		w.forms[w.index] = frm
		switch frm.State {
		case huh.StateAborted:
			w.canceled = true
			return w, tea.Quit
		case huh.StateCompleted:
			if w.index == len(w.steps)-1 {
				w.done = true
				return w, tea.Quit
			}
			w.index++
			return w, w.forms[w.index].Init()
		}
	}
	return w, cmd
}

// View renders the progress header and the current step.
func (w *Wizard) View() string {
	if w.done || w.canceled {
		return ""
	}
	header := styles.RenderTitle(w.title) + "\n" +
		styles.InfoStyle.Render(w.Progress()) + "\n"
	w.viewport.SetContent(w.forms[w.index].View())
	if !w.IsReady() {
		return header + w.forms[w.index].View()
	}
	return header + w.viewport.View()
}
