package adapters

import (
	"context"
	"fmt"

	"github.com/VoxDroid/renamr/internal/journal"
	"github.com/VoxDroid/renamr/internal/renamer"
)

// PlannerAdapterImpl adapts internal/renamer to the UI PlannerAdapter interface.
type PlannerAdapterImpl struct {
	repo *journal.Repository
	opts renamer.Options
}

// NewPlannerAdapter returns an adapter that previews and applies rename plans,
// journaling applies into repo with the given options.
func NewPlannerAdapter(repo *journal.Repository, opts renamer.Options) *PlannerAdapterImpl {
	return &PlannerAdapterImpl{repo: repo, opts: opts}
}

// Preview builds the plan for base and converts it into preview rows.
func (p *PlannerAdapterImpl) Preview(_ context.Context, base string, rule Rule) ([]PreviewRow, error) {
	plan, err := renamer.Preview(base, renamer.Rule{Match: rule.Match, Rename: rule.Rename, Replace: rule.Replace})
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	rows := make([]PreviewRow, 0, len(plan.Changes))
	for _, c := range plan.Changes {
		rows = append(rows, PreviewRow{Src: c.Src, Dst: c.Dst, Changed: c.Changed, Conflict: c.Conflict})
	}
	return rows, nil
}

// Apply re-plans against the current directory state and executes the renames.
func (p *PlannerAdapterImpl) Apply(ctx context.Context, base string, rule Rule) (ApplyResult, error) {
	plan, err := renamer.Preview(base, renamer.Rule{Match: rule.Match, Rename: rule.Rename, Replace: rule.Replace})
	if err != nil {
		return ApplyResult{}, fmt.Errorf("plan: %w", err)
	}
	sum, err := renamer.Apply(ctx, p.repo, plan, p.opts)
	if err != nil {
		return ApplyResult{}, err
	}
	return ApplyResult{
		BatchID:   sum.BatchID,
		Renamed:   sum.Renamed,
		Skipped:   sum.Skipped,
		Failed:    sum.Failed,
		Unchanged: sum.Unchanged,
	}, nil
}
