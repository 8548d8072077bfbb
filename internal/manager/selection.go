package manager

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/log"
)

// selectable returns the worktrees other than the one the user is in.
func (m *Manager) selectable(ctx context.Context) ([]git.Worktree, error) {
	top, err := m.git.TopLevel(ctx)
	if err != nil {
		return nil, err
	}
	all, err := m.git.ListWorktrees(ctx)
	if err != nil {
		return nil, err
	}
	return git.Selectable(all, top), nil
}

// pickWorktree resolves target (a path or branch name) against candidates,
// or asks the user when target is empty.
func (m *Manager) pickWorktree(ctx context.Context, title, target string, candidates []git.Worktree) (git.Worktree, error) {
	if target != "" {
		return findWorktree(candidates, target)
	}

	labels := make([]string, len(candidates))
	for i, wt := range candidates {
		labels[i] = wt.Label()
	}

	res, err := m.prompt.FuzzySelect(title, labels)
	if err != nil {
		return git.Worktree{}, err
	}
	if res.Cancelled {
		return git.Worktree{}, ErrCancelled
	}
	if res.Index < 0 || res.Index >= len(candidates) {
		return git.Worktree{}, fmt.Errorf("%w: selection %d of %d", ErrNotFound, res.Index, len(candidates))
	}

	wt := candidates[res.Index]
	log.FromContext(ctx).Debug("selected worktree", "path", wt.Path, "branch", wt.Branch.String())
	return wt, nil
}

// findWorktree matches target against worktree paths first, then branch
// names.
func findWorktree(candidates []git.Worktree, target string) (git.Worktree, error) {
	if abs, err := filepath.Abs(target); err == nil {
		for _, wt := range candidates {
			if filepath.Clean(wt.Path) == abs {
				return wt, nil
			}
		}
	}
	for _, wt := range candidates {
		if name, ok := wt.Branch.Name(); ok && name == target {
			return wt, nil
		}
	}
	return git.Worktree{}, fmt.Errorf("%w: %s", ErrNotFound, target)
}
