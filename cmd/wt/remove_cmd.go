package main

import (
	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/manager"
)

func newRemoveCmd() *cobra.Command {
	var (
		force bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:     "remove [path|branch]",
		Short:   "Remove a worktree",
		Aliases: []string{"rm", "delete"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove a worktree of the current repository.

The worktree you are in is never offered. If its directory was already
deleted by hand, the stale registration is pruned instead.`,
		Example: `  wt remove                  # Pick interactively, confirm
  wt rm feature/login -y     # Remove by branch without confirmation
  wt rm ../myapp-worktree/myapp-x-worktree --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			opts := manager.RemoveOptions{Force: force, Yes: yes}
			if len(args) == 1 {
				opts.Target = args[0]
			}
			return m.Remove(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
