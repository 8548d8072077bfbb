package manager

import (
	"context"

	"github.com/wtree/wt/internal/log"
)

// Open launches the editor on a worktree other than the current one.
// target selects it by path or branch; empty means prompt.
func (m *Manager) Open(ctx context.Context, target string) error {
	candidates, err := m.selectable(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		log.FromContext(ctx).Println("No other worktrees to open")
		return nil
	}

	wt, err := m.pickWorktree(ctx, "Open worktree", target, candidates)
	if err != nil {
		return err
	}
	return m.editor.Open(ctx, wt.Path)
}
