package renamer

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// GitMover renames through a git worktree so moves inside a repository stay
// staged, the way `git mv` would leave them.
type GitMover struct {
	wt   *gogit.Worktree
	root string
}

// NewGitMover opens the repository containing base (searching parent
// directories for .git).
func NewGitMover(base string) (*GitMover, error) {
	repo, err := gogit.PlainOpenWithOptions(base, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	return &GitMover{wt: wt, root: wt.Filesystem.Root()}, nil
}

// Move renames src to dst relative to the worktree root and stages the move.
func (g *GitMover) Move(src, dst string) error {
	from, err := filepath.Rel(g.root, src)
	if err != nil {
		return err
	}
	to, err := filepath.Rel(g.root, dst)
	if err != nil {
		return err
	}
	if _, err := g.wt.Move(filepath.ToSlash(from), filepath.ToSlash(to)); err != nil {
		return fmt.Errorf("git move %s -> %s: %w", from, to, err)
	}
	return nil
}
