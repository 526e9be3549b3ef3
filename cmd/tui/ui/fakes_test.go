package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/VoxDroid/renamr/internal/tui/adapters"
)

// fakeSession implements Model for presentation tests without touching the
// filesystem or the journal.
type fakeSession struct {
	mu            sync.Mutex
	base          string
	rule          adapters.Rule
	rows          []adapters.PreviewRow
	cached        []adapters.PreviewRow
	showUnchanged bool
	limit         int
	previewErr    error
	applyRes      adapters.ApplyResult
	applyErr      error
	applied       int
	batches       []adapters.BatchSummary
	entries       map[int64][]adapters.PreviewRow
}

func (f *fakeSession) Base() string { return f.base }

func (f *fakeSession) Rule() adapters.Rule {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rule
}

func (f *fakeSession) SetRule(rule adapters.Rule) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rule = rule
	f.cached = nil
}

func (f *fakeSession) Preview(_ context.Context) ([]adapters.PreviewRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.previewErr != nil {
		return nil, f.previewErr
	}
	f.cached = f.rows
	return f.rows, nil
}

func (f *fakeSession) Rows() []adapters.PreviewRow {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached
}

func (f *fakeSession) VisibleRows() ([]adapters.PreviewRow, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []adapters.PreviewRow{}
	for _, r := range f.cached {
		if !r.Changed && !f.showUnchanged {
			continue
		}
		out = append(out, r)
	}
	if f.limit > 0 && len(out) > f.limit {
		return out[:f.limit], len(out) - f.limit
	}
	return out, 0
}

func (f *fakeSession) ChangedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.cached {
		if r.Changed {
			n++
		}
	}
	return n
}

func (f *fakeSession) ShowUnchanged() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showUnchanged
}

func (f *fakeSession) ToggleUnchanged() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showUnchanged = !f.showUnchanged
	return f.showUnchanged
}

func (f *fakeSession) Apply(_ context.Context) (adapters.ApplyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return adapters.ApplyResult{}, f.applyErr
	}
	f.applied++
	return f.applyRes, nil
}

func (f *fakeSession) History(_ context.Context) ([]adapters.BatchSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]adapters.BatchSummary(nil), f.batches...), nil
}

func (f *fakeSession) Describe(_ context.Context, id int64) (adapters.BatchSummary, []adapters.PreviewRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.batches {
		if b.ID == id {
			return b, f.entries[id], nil
		}
	}
	return adapters.BatchSummary{}, nil, errors.New("not found")
}

func (f *fakeSession) Rollback(_ context.Context, id int64) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.batches {
		if b.ID == id {
			f.batches[i].RolledBack = true
			return 1, 0, nil
		}
	}
	return 0, 0, errors.New("not found")
}

func defaultFake() *fakeSession {
	return &fakeSession{
		base: "/photos",
		rule: adapters.Rule{Match: `.*\.jpeg$`, Rename: `(jpeg)`, Replace: "jpg"},
		rows: []adapters.PreviewRow{
			{Src: "a.jpeg", Dst: "a.jpg", Changed: true},
			{Src: "b.jpeg", Dst: "b.jpg", Changed: true},
			{Src: "c.png", Dst: "c.png", Changed: false},
		},
		showUnchanged: true,
		applyRes:      adapters.ApplyResult{BatchID: 7, Renamed: 2, Unchanged: 1},
	}
}
