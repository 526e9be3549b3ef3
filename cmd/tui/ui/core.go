package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel constructs the Bubble Tea TUI model used by cmd/tui. It accepts
// any implementation of Model (usually the framework-agnostic internal
// session) so tests can provide fakes.
func NewModel(ui Model) *TuiModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.SetValue(ui.Rule().Match)
	ti.Focus()

	vp := viewport.New(0, 0)

	return &TuiModel{uiModel: ui, input: ti, vp: vp, stage: stageMatch, pending: ui.Rule()}
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(ui Model) *tea.Program {
	m := NewModel(ui)
	p := tea.NewProgram(m, tea.WithAltScreen())
	return p
}

// Init starts the cursor blink for the first pattern prompt.
func (m *TuiModel) Init() tea.Cmd {
	return textinput.Blink
}
