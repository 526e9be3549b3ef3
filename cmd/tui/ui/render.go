package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/renamr/internal/tui/adapters"
)

// padRight pads s with spaces to width (by rune count).
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// renderPreviewTable renders the Original/Replacement table shown before an
// apply. Changed rows get an arrow marker, conflicting rows an exclamation.
func renderPreviewTable(rows []adapters.PreviewRow, hidden int, width int) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))

	if len(rows) == 0 {
		return dim.Render("no files match")
	}

	colW := (width - 4) / 2
	if colW < 10 {
		colW = 10
	}

	var b strings.Builder
	b.WriteString(h.Render(padRight("Original", colW)+"    "+padRight("Replacement", colW)) + "\n")
	for _, r := range rows {
		left := truncate(r.Src, colW)
		switch {
		case r.Conflict != "":
			right := truncate(r.Dst+" ("+r.Conflict+")", colW)
			b.WriteString(warn.Render(padRight(left, colW)+" !  "+right) + "\n")
		case r.Changed:
			right := truncate(r.Dst, colW)
			b.WriteString(padRight(left, colW) + " -> " + right + "\n")
		default:
			b.WriteString(dim.Render(left) + "\n")
		}
	}
	if hidden > 0 {
		b.WriteString(dim.Render(fmt.Sprintf("… and %d more", hidden)) + "\n")
	}
	return b.String()
}

// renderResult renders the post-apply summary screen.
func renderResult(res adapters.ApplyResult) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	var b strings.Builder
	b.WriteString(h.Render(fmt.Sprintf("Batch #%d applied", res.BatchID)) + "\n\n")
	b.WriteString(fmt.Sprintf("  renamed:   %d\n", res.Renamed))
	b.WriteString(fmt.Sprintf("  skipped:   %d\n", res.Skipped))
	b.WriteString(fmt.Sprintf("  failed:    %d\n", res.Failed))
	b.WriteString(fmt.Sprintf("  unchanged: %d\n", res.Unchanged))
	return b.String()
}

// renderHistory renders the journaled batch list, newest first, with a
// cursor on the selected row.
func renderHistory(batches []adapters.BatchSummary, selected int) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))

	if len(batches) == 0 {
		return dim.Render("no batches recorded")
	}
	var b strings.Builder
	b.WriteString(h.Render("History") + "\n\n")
	for i, batch := range batches {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s#%d  %s  %s  %s -> %s", cursor, batch.ID, batch.CreatedAt, batch.BasePath, batch.Renamer, batch.Replacement)
		if batch.AuthorName != "" {
			line += "  by " + batch.AuthorName
		}
		if batch.RolledBack {
			b.WriteString(dim.Render(line+"  (rolled back)") + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// renderBatchDetail renders one journaled batch with its entries.
func renderBatchDetail(batch adapters.BatchSummary, rows []adapters.PreviewRow, width int) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))

	var b strings.Builder
	title := fmt.Sprintf("Batch #%d — %s", batch.ID, batch.BasePath)
	if batch.RolledBack {
		title += "  (rolled back)"
	}
	b.WriteString(h.Render(title) + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("created %s", batch.CreatedAt)))
	if batch.AuthorName != "" {
		b.WriteString(dim.Render("  by " + batch.AuthorName))
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("match %s  rename %s -> %s", batch.Matcher, batch.Renamer, batch.Replacement)) + "\n\n")
	b.WriteString(renderPreviewTable(rows, 0, width))
	return b.String()
}
