package adapters

import (
	"context"
	"fmt"

	"github.com/VoxDroid/renamr/internal/journal"
)

// JournalAdapterImpl adapts internal/journal.Repository to the UI
// JournalAdapter interface.
type JournalAdapterImpl struct {
	repo *journal.Repository
	mv   journal.Mover
}

// NewJournalAdapter returns an adapter that wraps a journal.Repository.
// Rollbacks use mv to move files.
func NewJournalAdapter(repo *journal.Repository, mv journal.Mover) *JournalAdapterImpl {
	return &JournalAdapterImpl{repo: repo, mv: mv}
}

func summarize(b journal.Batch) BatchSummary {
	return BatchSummary{
		ID:          b.ID,
		BasePath:    b.BasePath,
		Matcher:     b.Matcher,
		Renamer:     b.Renamer,
		Replacement: b.Replacement,
		AuthorName:  b.AuthorName.String,
		CreatedAt:   b.CreatedAt,
		RolledBack:  b.RolledBackAt.Valid,
	}
}

// ListBatches returns batch summaries, newest first.
func (j *JournalAdapterImpl) ListBatches(_ context.Context) ([]BatchSummary, error) {
	batches, err := j.repo.ListBatches()
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	out := make([]BatchSummary, 0, len(batches))
	for _, b := range batches {
		out = append(out, summarize(b))
	}
	return out, nil
}

// GetBatch returns a batch summary and its entries rendered as preview rows.
func (j *JournalAdapterImpl) GetBatch(_ context.Context, id int64) (BatchSummary, []PreviewRow, error) {
	b, err := j.repo.GetBatch(id)
	if err != nil {
		return BatchSummary{}, nil, fmt.Errorf("get batch: %w", err)
	}
	if b == nil {
		return BatchSummary{}, nil, ErrNotFound
	}
	rows := make([]PreviewRow, 0, len(b.Entries))
	for _, e := range b.Entries {
		conflict := ""
		if e.Status != journal.StatusRenamed {
			conflict = e.Status
		}
		rows = append(rows, PreviewRow{Src: e.Src, Dst: e.Dst, Changed: e.Src != e.Dst, Conflict: conflict})
	}
	return summarize(*b), rows, nil
}

// Rollback restores a batch's renames in reverse order.
func (j *JournalAdapterImpl) Rollback(_ context.Context, id int64) (int, int, error) {
	res, err := j.repo.Rollback(id, j.mv)
	if err != nil {
		return res.Restored, res.Skipped, err
	}
	return res.Restored, res.Skipped, nil
}
