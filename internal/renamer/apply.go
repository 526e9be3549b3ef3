package renamer

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VoxDroid/renamr/internal/journal"
)

// Mover abstracts the rename primitive so applies can go through the plain
// filesystem or a git worktree.
type Mover interface {
	Move(src, dst string) error
}

// OSMover renames through the filesystem.
type OSMover struct{}

// Move renames src to dst, creating the destination directory when the
// replacement introduced new path components.
func (OSMover) Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.Rename(src, dst)
}

// Options controls an apply run.
type Options struct {
	Mover       Mover
	Hook        string // optional command run once after the batch
	AuthorName  string
	AuthorEmail string
}

// Summary reports what an apply did.
type Summary struct {
	BatchID   int64
	Renamed   int
	Skipped   int
	Failed    int
	Unchanged int
}

// Apply renames every changed, conflict-free entry of the plan and records a
// batch in the journal. A conflicting or failed entry never aborts the run;
// its outcome is journaled per entry. The batch is recorded even when every
// entry failed, so the attempt is visible in history.
func Apply(ctx context.Context, repo *journal.Repository, plan *Plan, opts Options) (Summary, error) {
	mover := opts.Mover
	if mover == nil {
		mover = OSMover{}
	}

	var sum Summary
	var entries []journal.Entry
	for _, c := range plan.Changes {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if !c.Changed {
			sum.Unchanged++
			continue
		}
		srcAbs := filepath.Join(plan.Base, filepath.FromSlash(c.Src))
		dstAbs := filepath.Join(plan.Base, filepath.FromSlash(c.Dst))

		e := journal.Entry{Src: c.Src, Dst: c.Dst}
		// Re-check the destination at apply time; the plan may be stale.
		if c.Conflict != "" || pathExists(dstAbs) {
			e.Status = journal.StatusSkippedExists
			sum.Skipped++
		} else if err := mover.Move(srcAbs, dstAbs); err != nil {
			e.Status = journal.StatusFailed
			sum.Failed++
		} else {
			e.Status = journal.StatusRenamed
			sum.Renamed++
		}
		entries = append(entries, e)
	}

	batch := &journal.Batch{
		BasePath:    plan.Base,
		Matcher:     plan.Rule.Match,
		Renamer:     plan.Rule.Rename,
		Replacement: plan.Rule.Replace,
		Entries:     entries,
	}
	if opts.AuthorName != "" {
		batch.AuthorName = sql.NullString{String: opts.AuthorName, Valid: true}
	}
	if opts.AuthorEmail != "" {
		batch.AuthorEmail = sql.NullString{String: opts.AuthorEmail, Valid: true}
	}
	id, err := repo.RecordBatch(batch)
	if err != nil {
		return sum, fmt.Errorf("journal batch: %w", err)
	}
	sum.BatchID = id

	if opts.Hook != "" {
		if err := RunHook(ctx, plan.Base, opts.Hook, id, sum.Renamed); err != nil {
			return sum, fmt.Errorf("post-apply hook: %w", err)
		}
	}
	return sum, nil
}
