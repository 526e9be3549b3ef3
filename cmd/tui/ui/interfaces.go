package ui

import (
	"context"

	"github.com/VoxDroid/renamr/internal/tui/adapters"
)

// Model defines the small subset of methods from the framework-agnostic
// internal session model that the TUI depends on. This decouples presentation
// code from the concrete implementation and makes unit testing easier.
type Model interface {
	Base() string
	Rule() adapters.Rule
	SetRule(rule adapters.Rule)
	Preview(ctx context.Context) ([]adapters.PreviewRow, error)
	Rows() []adapters.PreviewRow
	VisibleRows() ([]adapters.PreviewRow, int)
	ChangedCount() int
	ShowUnchanged() bool
	ToggleUnchanged() bool
	Apply(ctx context.Context) (adapters.ApplyResult, error)
	History(ctx context.Context) ([]adapters.BatchSummary, error)
	Describe(ctx context.Context, id int64) (adapters.BatchSummary, []adapters.PreviewRow, error)
	Rollback(ctx context.Context, id int64) (restored, skipped int, err error)
}
