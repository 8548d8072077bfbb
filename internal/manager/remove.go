package manager

import (
	"context"
	"fmt"

	"github.com/wtree/wt/internal/log"
)

// RemoveOptions control Remove.
type RemoveOptions struct {
	// Target selects the worktree by path or branch instead of prompting.
	Target string
	// Force removes the worktree even with uncommitted changes.
	Force bool
	// Yes skips the confirmation prompt.
	Yes bool
}

// Remove deletes a worktree other than the current one.
func (m *Manager) Remove(ctx context.Context, opts RemoveOptions) error {
	l := log.FromContext(ctx)

	candidates, err := m.selectable(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		l.Println("No other worktrees to remove")
		return nil
	}

	wt, err := m.pickWorktree(ctx, "Remove worktree", opts.Target, candidates)
	if err != nil {
		return err
	}

	if !opts.Yes {
		res, err := m.prompt.Confirm(fmt.Sprintf("Remove worktree %s?", wt.Label()), false)
		if err != nil {
			return err
		}
		if res.Cancelled || !res.Confirmed {
			return ErrCancelled
		}
	}

	err = m.withLock(ctx, func() error {
		err := m.git.RemoveWorktree(ctx, wt.Path, opts.Force)
		if err == nil {
			return nil
		}
		// git refuses to remove a worktree whose directory was deleted
		// by hand; pruning drops the stale registration instead.
		if m.exists(wt.Path) {
			return err
		}
		l.Debug("worktree directory missing, pruning", "path", wt.Path, "err", err)
		return m.git.PruneWorktrees(ctx)
	})
	if err != nil {
		return err
	}

	l.Printf("Removed worktree %s\n", wt.Path)
	return nil
}
