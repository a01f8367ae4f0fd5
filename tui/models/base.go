// Package models holds the shared bubbletea model scaffolding.
package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects the command output surface.
type Mode string

const (
	// ModeTUI runs the interactive terminal UI.
	ModeTUI Mode = "tui"
	// ModeJSON prints machine-readable output and never enters the UI.
	ModeJSON Mode = "json"
)

// BaseModel carries the state every interactive model needs: context, the
// measured viewport, and the quit flag. Embed it and delegate window and
// quit handling to its Update.
type BaseModel struct {
	ctx      context.Context
	mode     Mode
	width    int
	height   int
	ready    bool
	quitting bool
	err      error
}

// NewBaseModel creates a base model bound to ctx.
func NewBaseModel(ctx context.Context, mode Mode) BaseModel {
	return BaseModel{
		ctx:  ctx,
		mode: mode,
	}
}

// Context returns the bound context.
func (m BaseModel) Context() context.Context {
	return m.ctx
}

// Mode returns the output mode.
func (m BaseModel) Mode() Mode {
	return m.mode
}

// Size returns the last measured viewport size.
func (m BaseModel) Size() (width, height int) {
	return m.width, m.height
}

// IsReady reports whether a viewport size has been measured. View-mode
// resolution needs a real width, so models should render a placeholder
// until this is true.
func (m BaseModel) IsReady() bool {
	return m.ready
}

// IsQuitting reports whether the model is shutting down.
func (m BaseModel) IsQuitting() bool {
	return m.quitting
}

// Error returns the recorded error, if any.
func (m BaseModel) Error() error {
	return m.err
}

// SetSize records the viewport size and marks the model ready.
func (m *BaseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true
}

// SetError records an error for the view to surface.
func (m *BaseModel) SetError(err error) {
	m.err = err
}

// Quit marks the model as quitting.
func (m *BaseModel) Quit() {
	m.quitting = true
}

// Update handles the messages common to all models: viewport resizes and
// the quit keys.
func (m *BaseModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Quit()
			return tea.Quit
		}
	}
	return nil
}
