package manager

import (
	"context"

	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/output"
	"github.com/wtree/wt/internal/ui/static"
)

// List writes every registered worktree, including bare and current ones,
// to the context's output printer in the named format.
func (m *Manager) List(ctx context.Context, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	worktrees, err := m.git.ListWorktrees(ctx)
	if err != nil {
		return err
	}
	if worktrees == nil {
		worktrees = []git.Worktree{}
	}

	return output.FromContext(ctx).Data(f, worktrees, func() string {
		return static.RenderWorktrees(worktrees)
	})
}
