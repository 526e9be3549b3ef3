package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/renamr/internal/tui/adapters"
)

func pressEnter(t *testing.T, m *TuiModel) tea.Cmd {
	t.Helper()
	m1, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m1.(*TuiModel) != m {
		t.Fatalf("model identity changed")
	}
	return cmd
}

// drive the three input prompts through to the preview stage
func toPreview(t *testing.T, m *TuiModel) {
	t.Helper()
	pressEnter(t, m) // accept match
	pressEnter(t, m) // accept rename
	cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatalf("expected preview command after replace prompt")
	}
	msg := cmd()
	m1, _ := m.Update(msg)
	if m1.(*TuiModel).stage != stagePreview {
		t.Fatalf("expected preview stage, got %d", m1.(*TuiModel).stage)
	}
}

func TestInputStagesAdvance(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	if m.stage != stageMatch {
		t.Fatalf("expected match stage first")
	}
	pressEnter(t, m)
	if m.stage != stageRename {
		t.Fatalf("expected rename stage, got %d", m.stage)
	}
	if m.input.Value() != `(jpeg)` {
		t.Fatalf("rename input not prefilled: %q", m.input.Value())
	}
	pressEnter(t, m)
	if m.stage != stageReplace || m.input.Value() != "jpg" {
		t.Fatalf("replace stage not reached: %d %q", m.stage, m.input.Value())
	}
}

func TestPreviewShowsTableAndMenu(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)

	view := m.View()
	if !strings.Contains(view, "a.jpeg") || !strings.Contains(view, "a.jpg") {
		t.Fatalf("preview table missing rows:\n%s", view)
	}
	if !strings.Contains(view, "Apply changes to 2 files") {
		t.Fatalf("menu missing apply item:\n%s", view)
	}
	if !strings.Contains(view, "Change patterns") || !strings.Contains(view, "Quit without making changes") {
		t.Fatalf("menu items missing:\n%s", view)
	}
}

func TestEditedPatternReachesSession(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	// type over the match input
	m.input.SetValue(`.*\.png$`)
	pressEnter(t, m)
	pressEnter(t, m)
	cmd := pressEnter(t, m)
	m.Update(cmd())
	if f.Rule().Match != `.*\.png$` {
		t.Fatalf("edited match not stored: %q", f.Rule().Match)
	}
}

func TestMenuApplyFlow(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)

	// menu index 1 is apply
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.menuIndex != 1 {
		t.Fatalf("menuIndex = %d", m.menuIndex)
	}
	cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatalf("expected apply command")
	}
	m1, _ := m.Update(cmd())
	m = m1.(*TuiModel)
	if m.stage != stageResult {
		t.Fatalf("expected result stage, got %d", m.stage)
	}
	if f.applied != 1 {
		t.Fatalf("apply not invoked")
	}
	view := m.View()
	if !strings.Contains(view, "Batch #7 applied") || !strings.Contains(view, "renamed:   2") {
		t.Fatalf("result view missing summary:\n%s", view)
	}
}

func TestResultEnterContinuesSession(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)

	m.menuIndex = 1
	cmd := pressEnter(t, m)
	m1, _ := m.Update(cmd())
	m = m1.(*TuiModel)
	if m.stage != stageResult {
		t.Fatalf("expected result stage, got %d", m.stage)
	}

	// enter rescans and returns to the preview
	cmd = pressEnter(t, m)
	if cmd == nil {
		t.Fatalf("expected preview command from result screen")
	}
	m1, _ = m.Update(cmd())
	m = m1.(*TuiModel)
	if m.stage != stagePreview {
		t.Fatalf("expected preview after continue, got %d", m.stage)
	}
}

func TestMenuToggleUnchanged(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)

	if !strings.Contains(m.View(), "c.png") {
		t.Fatalf("unchanged row should start visible")
	}
	m.menuIndex = 2
	pressEnter(t, m)
	if f.ShowUnchanged() {
		t.Fatalf("toggle did not reach session")
	}
	if strings.Contains(m.vp.View(), "c.png") {
		t.Fatalf("unchanged row still visible after toggle")
	}
	if !strings.Contains(m.View(), "Show unchanged files") {
		t.Fatalf("toggle label should flip")
	}
}

func TestMenuChangePatternsReturnsToInput(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)

	m.menuIndex = 0
	pressEnter(t, m)
	if m.stage != stageMatch {
		t.Fatalf("expected match stage, got %d", m.stage)
	}
	if m.input.Value() != `.*\.jpeg$` {
		t.Fatalf("match input not prefilled with current rule: %q", m.input.Value())
	}
}

func TestPreviewErrorReturnsToInput(t *testing.T) {
	f := defaultFake()
	f.previewErr = errors.New("renamer needs a capture group")
	m := NewModel(f)
	cmd := func() tea.Cmd {
		pressEnter(t, m)
		pressEnter(t, m)
		return pressEnter(t, m)
	}()
	m1, _ := m.Update(cmd())
	m = m1.(*TuiModel)
	if m.stage != stageMatch {
		t.Fatalf("expected to return to match input, got stage %d", m.stage)
	}
	if m.errMsg == "" || !strings.Contains(m.View(), "error:") {
		t.Fatalf("error not surfaced:\n%s", m.View())
	}
}

func historyFake() *fakeSession {
	f := defaultFake()
	f.batches = []adapters.BatchSummary{
		{ID: 2, BasePath: "/photos", Matcher: `.*\.jpeg$`, Renamer: `(jpeg)`, Replacement: "jpg", CreatedAt: "2026-01-02 10:00:00"},
		{ID: 1, BasePath: "/music", Renamer: `(flac)`, Replacement: "wav", CreatedAt: "2026-01-01 09:00:00", RolledBack: true},
	}
	f.entries = map[int64][]adapters.PreviewRow{
		2: {{Src: "a.jpeg", Dst: "a.jpg", Changed: true}, {Src: "b.jpeg", Dst: "b.jpg", Changed: true}},
		1: {{Src: "t.flac", Dst: "t.wav", Changed: true}},
	}
	return f
}

// drive an initialized model from the preview menu into the history screen
func toHistory(t *testing.T, m *TuiModel) {
	t.Helper()
	m.menuIndex = 3
	cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatalf("expected history command")
	}
	m1, _ := m.Update(cmd())
	if m1.(*TuiModel).stage != stageHistory {
		t.Fatalf("expected history stage, got %d", m1.(*TuiModel).stage)
	}
}

func TestHistoryScreen(t *testing.T) {
	f := historyFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)
	toHistory(t, m)

	view := m.View()
	if !strings.Contains(view, "#2") || !strings.Contains(view, "(rolled back)") {
		t.Fatalf("history rows missing:\n%s", view)
	}

	// back to preview
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if m.stage != stagePreview {
		t.Fatalf("expected preview after back, got %d", m.stage)
	}
}

func TestHistorySelectionMoves(t *testing.T) {
	f := historyFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)
	toHistory(t, m)

	if !strings.Contains(m.vp.View(), "> #2") {
		t.Fatalf("cursor should start on the newest batch:\n%s", m.vp.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.historyIndex != 1 || !strings.Contains(m.vp.View(), "> #1") {
		t.Fatalf("cursor did not move down:\n%s", m.vp.View())
	}
	// does not run past the last batch
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.historyIndex != 1 {
		t.Fatalf("cursor ran past the end: %d", m.historyIndex)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.historyIndex != 0 {
		t.Fatalf("cursor did not move up: %d", m.historyIndex)
	}
}

func TestHistoryDetailScreen(t *testing.T) {
	f := historyFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)
	toHistory(t, m)

	cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatalf("expected describe command")
	}
	m1, _ := m.Update(cmd())
	m = m1.(*TuiModel)
	if m.stage != stageDetail {
		t.Fatalf("expected detail stage, got %d", m.stage)
	}
	view := m.View()
	if !strings.Contains(view, "Batch #2") || !strings.Contains(view, "/photos") {
		t.Fatalf("detail header missing:\n%s", view)
	}
	if !strings.Contains(view, "a.jpeg") || !strings.Contains(view, "b.jpg") {
		t.Fatalf("detail entries missing:\n%s", view)
	}

	// back to the list
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if m.stage != stageHistory {
		t.Fatalf("expected history after back, got %d", m.stage)
	}
}

func TestHistoryRollbackRefreshesList(t *testing.T) {
	f := historyFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)
	toHistory(t, m)

	// roll back the selected (newest) batch
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatalf("expected rollback command")
	}
	m1, cmd := m.Update(cmd())
	m = m1.(*TuiModel)
	if cmd == nil {
		t.Fatalf("expected history refresh after rollback")
	}
	m1, _ = m.Update(cmd())
	m = m1.(*TuiModel)

	if m.stage != stageHistory {
		t.Fatalf("expected history stage, got %d", m.stage)
	}
	view := m.View()
	if !strings.Contains(view, "batch #2 rolled back: 1 restored, 0 skipped") {
		t.Fatalf("rollback note missing:\n%s", view)
	}
	if strings.Count(view, "(rolled back)") != 2 {
		t.Fatalf("rolled-back marker not refreshed:\n%s", view)
	}
}

func TestQuitFromMenu(t *testing.T) {
	f := defaultFake()
	m := NewModel(f)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	toPreview(t, m)

	m.menuIndex = 4
	cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
