package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/renamr/internal/tui/adapters"
)

// stage identifies which screen the TUI is showing.
type stage int

const (
	stageMatch stage = iota
	stageRename
	stageReplace
	stagePreview
	stageResult
	stageHistory
	stageDetail
)

// TuiModel is the Bubble Tea model used by cmd/tui.
type TuiModel struct {
	uiModel Model
	input   textinput.Model
	vp      viewport.Model

	width  int
	height int

	stage   stage
	pending adapters.Rule // rule being edited across the three input stages

	menuIndex int

	errMsg  string
	result  adapters.ApplyResult
	history []adapters.BatchSummary

	historyIndex int
	note         string // transient history status, e.g. after a rollback
	detailBatch  adapters.BatchSummary
	detailRows   []adapters.PreviewRow

	// accessibility / theme
	themeHighContrast bool
}

// Messages
type previewDoneMsg struct {
	rows []adapters.PreviewRow
	err  error
}
type applyDoneMsg struct {
	result adapters.ApplyResult
	err    error
}
type historyDoneMsg struct {
	batches []adapters.BatchSummary
	err     error
}
type detailDoneMsg struct {
	batch adapters.BatchSummary
	rows  []adapters.PreviewRow
	err   error
}
type rollbackDoneMsg struct {
	id       int64
	restored int
	skipped  int
	err      error
}

func (m *TuiModel) previewCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.uiModel.Preview(context.Background())
		return previewDoneMsg{rows: rows, err: err}
	}
}

func (m *TuiModel) applyCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.uiModel.Apply(context.Background())
		return applyDoneMsg{result: res, err: err}
	}
}

func (m *TuiModel) historyCmd() tea.Cmd {
	return func() tea.Msg {
		batches, err := m.uiModel.History(context.Background())
		return historyDoneMsg{batches: batches, err: err}
	}
}

func (m *TuiModel) describeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		batch, rows, err := m.uiModel.Describe(context.Background(), id)
		return detailDoneMsg{batch: batch, rows: rows, err: err}
	}
}

func (m *TuiModel) rollbackCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		restored, skipped, err := m.uiModel.Rollback(context.Background(), id)
		return rollbackDoneMsg{id: id, restored: restored, skipped: skipped, err: err}
	}
}

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyCtrlT {
			m.themeHighContrast = !m.themeHighContrast
			return m, nil
		}
		switch m.stage {
		case stageMatch, stageRename, stageReplace:
			return m.handleInputKey(msg)
		case stagePreview:
			return m.handleMenuKey(msg)
		case stageResult:
			return m.handleResultKey(msg)
		case stageHistory:
			return m.handleHistoryKey(msg)
		case stageDetail:
			return m.handleDetailKey(msg)
		}

	case previewDoneMsg:
		if msg.err != nil {
			// bad pattern: report and send the user back to the first input
			m.errMsg = msg.err.Error()
			m.stage = stageMatch
			m.input.SetValue(m.pending.Match)
			m.input.Focus()
			return m, textinput.Blink
		}
		m.errMsg = ""
		m.stage = stagePreview
		m.menuIndex = 0
		m.refreshPreview()
		return m, nil

	case applyDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.stage = stagePreview
			return m, nil
		}
		m.errMsg = ""
		m.result = msg.result
		m.stage = stageResult
		return m, nil

	case historyDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.stage = stagePreview
			return m, nil
		}
		m.errMsg = ""
		m.history = msg.batches
		if m.historyIndex >= len(m.history) {
			m.historyIndex = 0
		}
		m.stage = stageHistory
		m.vp.SetContent(renderHistory(m.history, m.historyIndex))
		m.vp.GotoTop()
		return m, nil

	case detailDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.detailBatch = msg.batch
		m.detailRows = msg.rows
		m.stage = stageDetail
		m.vp.SetContent(renderBatchDetail(m.detailBatch, m.detailRows, m.vp.Width))
		m.vp.GotoTop()
		return m, nil

	case rollbackDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.note = fmt.Sprintf("batch #%d rolled back: %d restored, %d skipped", msg.id, msg.restored, msg.skipped)
		// reload the list so the rolled-back marker shows up
		return m, m.historyCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headH := 3
		footerH := 2
		bodyH := m.height - headH - footerH
		if bodyH < 3 {
			bodyH = 3
		}
		innerW := m.width - 4
		if innerW < 20 {
			innerW = 20
		}
		m.vp = viewport.New(innerW, bodyH)
		switch m.stage {
		case stagePreview:
			m.refreshPreview()
		case stageHistory:
			m.vp.SetContent(renderHistory(m.history, m.historyIndex))
		case stageDetail:
			m.vp.SetContent(renderBatchDetail(m.detailBatch, m.detailRows, m.vp.Width))
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleInputKey advances through the three pattern prompts.
func (m *TuiModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		val := strings.TrimSpace(m.input.Value())
		switch m.stage {
		case stageMatch:
			if val != "" {
				m.pending.Match = val
			}
			m.stage = stageRename
			m.input.SetValue(m.pending.Rename)
			m.input.CursorEnd()
			return m, nil
		case stageRename:
			if val != "" {
				m.pending.Rename = val
			}
			m.stage = stageReplace
			m.input.SetValue(m.pending.Replace)
			m.input.CursorEnd()
			return m, nil
		case stageReplace:
			m.pending.Replace = val
			m.uiModel.SetRule(m.pending)
			return m, m.previewCmd()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TuiModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		// rescan and continue the session, as before the apply
		return m, m.previewCmd()
	case "h":
		return m, m.historyCmd()
	}
	return m, nil
}

func (m *TuiModel) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "b":
		m.note = ""
		m.stage = stagePreview
		m.refreshPreview()
		return m, nil
	case "up", "k":
		if m.historyIndex > 0 {
			m.historyIndex--
			m.vp.SetContent(renderHistory(m.history, m.historyIndex))
		}
		return m, nil
	case "down", "j":
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
			m.vp.SetContent(renderHistory(m.history, m.historyIndex))
		}
		return m, nil
	case "enter":
		if len(m.history) > 0 {
			return m, m.describeCmd(m.history[m.historyIndex].ID)
		}
		return m, nil
	case "r":
		if len(m.history) > 0 {
			return m, m.rollbackCmd(m.history[m.historyIndex].ID)
		}
		return m, nil
	case "pgup":
		m.vp.HalfPageUp()
		return m, nil
	case "pgdown":
		m.vp.HalfPageDown()
		return m, nil
	}
	return m, nil
}

func (m *TuiModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "b":
		m.stage = stageHistory
		m.vp.SetContent(renderHistory(m.history, m.historyIndex))
		m.vp.GotoTop()
		return m, nil
	case "r":
		return m, m.rollbackCmd(m.detailBatch.ID)
	case "up", "k":
		m.vp.ScrollUp(1)
		return m, nil
	case "down", "j":
		m.vp.ScrollDown(1)
		return m, nil
	}
	return m, nil
}

// refreshPreview re-renders the preview table into the viewport.
func (m *TuiModel) refreshPreview() {
	rows, hidden := m.uiModel.VisibleRows()
	w := m.vp.Width
	if w <= 0 {
		w = 76
	}
	m.vp.SetContent(renderPreviewTable(rows, hidden, w))
	m.vp.GotoTop()
}

func (m *TuiModel) View() string {
	var titleFg, titleBg string
	if m.themeHighContrast {
		titleFg, titleBg = "#000000", "#ffff00"
	} else {
		titleFg, titleBg = "#ffffff", "#0f766e"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleFg)).Background(lipgloss.Color(titleBg)).Padding(0, 1)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	footStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#94a3b8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" renamr — %s ", m.uiModel.Base())) + "\n\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render("error: "+m.errMsg) + "\n\n")
	}

	switch m.stage {
	case stageMatch:
		b.WriteString("Regex to match files (anchored at the end):\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString("\n" + footStyle.Render("Enter to accept • Esc to quit"))
	case stageRename:
		b.WriteString("Regex with one capture group to rename:\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString("\n" + footStyle.Render("Enter to accept • Esc to quit"))
	case stageReplace:
		b.WriteString("Replacement for the captured group:\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString("\n" + footStyle.Render("Enter to accept • Esc to quit"))
	case stagePreview:
		b.WriteString(m.vp.View() + "\n\n")
		b.WriteString(m.renderMenu())
		b.WriteString("\n" + footStyle.Render("↑/↓ select • Enter activate • Ctrl+T theme • Ctrl+C quit"))
	case stageResult:
		b.WriteString(renderResult(m.result))
		b.WriteString("\n" + footStyle.Render("Enter continue • (h) history • (q) quit"))
	case stageHistory:
		if m.note != "" {
			b.WriteString(footStyle.Render(m.note) + "\n\n")
		}
		b.WriteString(m.vp.View() + "\n")
		b.WriteString("\n" + footStyle.Render("↑/↓ select • Enter details • (r) roll back • (b) back • Ctrl+C quit"))
	case stageDetail:
		b.WriteString(m.vp.View() + "\n")
		b.WriteString("\n" + footStyle.Render("(r) roll back • (b) back • Ctrl+C quit"))
	}
	return b.String()
}
