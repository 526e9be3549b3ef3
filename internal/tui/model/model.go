// Package model provides a framework-agnostic UI model built on top of
// adapter interfaces so the TUI code can remain presentation-focused.
package model

import (
	"context"
	"errors"
	"sync"

	"github.com/VoxDroid/renamr/internal/tui/adapters"
)

// ErrNotFound is returned when a requested batch cannot be found.
var ErrNotFound = errors.New("not found")

// Session is a framework-agnostic model for one interactive rename session.
// It depends only on adapter interfaces.
type Session struct {
	planner adapters.PlannerAdapter
	journal adapters.JournalAdapter

	base          string
	rule          adapters.Rule
	showUnchanged bool
	previewLimit  int

	// serialize Preview/Apply so a preview cache never mixes two rules
	mu   sync.Mutex
	rows []adapters.PreviewRow
}

// New constructs a Session backed by the provided adapters. previewLimit caps
// how many rows VisibleRows returns; zero or negative means no cap.
func New(planner adapters.PlannerAdapter, journal adapters.JournalAdapter, base string, rule adapters.Rule, showUnchanged bool, previewLimit int) *Session {
	return &Session{
		planner:       planner,
		journal:       journal,
		base:          base,
		rule:          rule,
		showUnchanged: showUnchanged,
		previewLimit:  previewLimit,
	}
}

// Base returns the directory the session renames under.
func (s *Session) Base() string { return s.base }

// Rule returns the current rename rule.
func (s *Session) Rule() adapters.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rule
}

// SetRule replaces the rule and invalidates the cached preview.
func (s *Session) SetRule(rule adapters.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rule = rule
	s.rows = nil
}

// Preview recomputes the preview rows for the current rule and caches them.
func (s *Session) Preview(ctx context.Context) ([]adapters.PreviewRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.planner.Preview(ctx, s.base, s.rule)
	if err != nil {
		return nil, err
	}
	s.rows = rows
	return rows, nil
}

// Rows returns the cached preview rows, nil until Preview has run.
func (s *Session) Rows() []adapters.PreviewRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// VisibleRows filters the cached rows by the show-unchanged toggle and caps
// them at the preview limit. The second return is how many rows were hidden
// by the cap.
func (s *Session) VisibleRows() ([]adapters.PreviewRow, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]adapters.PreviewRow, 0, len(s.rows))
	for _, r := range s.rows {
		if !r.Changed && !s.showUnchanged {
			continue
		}
		out = append(out, r)
	}
	if s.previewLimit > 0 && len(out) > s.previewLimit {
		hidden := len(out) - s.previewLimit
		return out[:s.previewLimit], hidden
	}
	return out, 0
}

// ChangedCount reports how many cached rows would actually be renamed.
func (s *Session) ChangedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.rows {
		if r.Changed {
			n++
		}
	}
	return n
}

// ShowUnchanged reports the current toggle state.
func (s *Session) ShowUnchanged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showUnchanged
}

// ToggleUnchanged flips whether unchanged files appear in the preview and
// returns the new state.
func (s *Session) ToggleUnchanged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showUnchanged = !s.showUnchanged
	return s.showUnchanged
}

// Apply executes the current rule against the base directory. The cached
// preview is invalidated because the directory contents changed.
func (s *Session) Apply(ctx context.Context) (adapters.ApplyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.planner.Apply(ctx, s.base, s.rule)
	if err != nil {
		return adapters.ApplyResult{}, err
	}
	s.rows = nil
	return res, nil
}

// History lists journaled batches, newest first.
func (s *Session) History(ctx context.Context) ([]adapters.BatchSummary, error) {
	return s.journal.ListBatches(ctx)
}

// Describe fetches one batch with its entries.
func (s *Session) Describe(ctx context.Context, id int64) (adapters.BatchSummary, []adapters.PreviewRow, error) {
	sum, rows, err := s.journal.GetBatch(ctx, id)
	if err == adapters.ErrNotFound {
		return adapters.BatchSummary{}, nil, ErrNotFound
	}
	return sum, rows, err
}

// Rollback restores a journaled batch.
func (s *Session) Rollback(ctx context.Context, id int64) (restored, skipped int, err error) {
	return s.journal.Rollback(ctx, id)
}
