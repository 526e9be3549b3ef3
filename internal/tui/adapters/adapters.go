// Package adapters provides adapter interfaces and lightweight types used by
// the TUI to decouple it from the internal domain packages.
package adapters

import (
	"context"
	"errors"
)

// ErrNotFound is used when a requested item cannot be found in the journal.
var ErrNotFound = errors.New("not found")

// Rule carries the three patterns a rename session is built from.
type Rule struct {
	Match   string
	Rename  string
	Replace string
}

// PreviewRow is one line of the preview table.
type PreviewRow struct {
	Src      string
	Dst      string
	Changed  bool
	Conflict string
}

// BatchSummary is a lightweight view of a journaled batch for history screens.
type BatchSummary struct {
	ID          int64
	BasePath    string
	Matcher     string
	Renamer     string
	Replacement string
	AuthorName  string
	CreatedAt   string
	RolledBack  bool
}

// ApplyResult reports what an apply did.
type ApplyResult struct {
	BatchID   int64
	Renamed   int
	Skipped   int
	Failed    int
	Unchanged int
}

// PlannerAdapter previews and applies rename rules against a base directory.
type PlannerAdapter interface {
	Preview(ctx context.Context, base string, rule Rule) ([]PreviewRow, error)
	Apply(ctx context.Context, base string, rule Rule) (ApplyResult, error)
}

// JournalAdapter describes the minimal subset of journal operations used by
// the UI. Keep methods small and easy to mock for tests.
type JournalAdapter interface {
	ListBatches(ctx context.Context) ([]BatchSummary, error)
	GetBatch(ctx context.Context, id int64) (BatchSummary, []PreviewRow, error)
	Rollback(ctx context.Context, id int64) (restored, skipped int, err error)
}
