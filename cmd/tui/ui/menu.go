package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuItems builds the preview menu. The apply and toggle labels track the
// current session state.
func (m *TuiModel) menuItems() []string {
	toggle := "Hide unchanged files"
	if !m.uiModel.ShowUnchanged() {
		toggle = "Show unchanged files"
	}
	return []string{
		"Change patterns",
		fmt.Sprintf("Apply changes to %d files", m.uiModel.ChangedCount()),
		toggle,
		"View history",
		"Quit without making changes",
	}
}

// handleMenuKey processes KeyMsg events while the preview menu is active.
func (m *TuiModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		} else {
			m.menuIndex = len(items) - 1
		}
	case "down", "j":
		m.menuIndex = (m.menuIndex + 1) % len(items)
	case "pgup":
		m.vp.HalfPageUp()
	case "pgdown":
		m.vp.HalfPageDown()
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		return m.activateMenuItem()
	}
	return m, nil
}

func (m *TuiModel) activateMenuItem() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0: // change patterns
		m.pending = m.uiModel.Rule()
		m.stage = stageMatch
		m.input.SetValue(m.pending.Match)
		m.input.CursorEnd()
		m.input.Focus()
		return m, nil
	case 1: // apply
		return m, m.applyCmd()
	case 2: // toggle unchanged
		m.uiModel.ToggleUnchanged()
		m.refreshPreview()
		return m, nil
	case 3: // history
		return m, m.historyCmd()
	case 4: // quit
		return m, tea.Quit
	}
	return m, nil
}

// renderMenu produces the menu below the preview table.
func (m *TuiModel) renderMenu() string {
	sel := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	var b strings.Builder
	for i, it := range m.menuItems() {
		if i == m.menuIndex {
			b.WriteString(sel.Render("> "+it) + "\n")
		} else {
			b.WriteString("  " + it + "\n")
		}
	}
	return b.String()
}
