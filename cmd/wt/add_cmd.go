package main

import (
	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/manager"
)

func newAddCmd() *cobra.Command {
	var (
		newBranch bool
		base      string
		noOpen    bool
	)

	cmd := &cobra.Command{
		Use:     "add [branch]",
		Short:   "Create a worktree",
		Aliases: []string{"create"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a worktree for a new or existing branch.

Without arguments wt asks whether to create a new branch or check out an
existing one, then lets you pick from local and remote branches.

The worktree is placed at
  <parent>/<project>-worktree/<project>-<branch>-worktree
where <parent> is the directory containing the current checkout.
The new path is printed on stdout.`,
		Example: `  wt add                        # Choose interactively
  wt add feature/login          # Check out an existing branch
  wt add -b feature/x           # New branch, pick the base interactively
  wt add -b feature/x --base main --no-open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}

			opts := manager.CreateOptions{
				New:    newBranch || base != "",
				Base:   base,
				NoOpen: noOpen,
			}
			if len(args) == 1 {
				opts.Branch = args[0]
			}

			_, err = m.Create(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().BoolVarP(&newBranch, "new", "b", false, "Create a new branch")
	cmd.Flags().StringVar(&base, "base", "", "Start point for the new branch (implies --new)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not offer to open the worktree in the editor")

	return cmd
}
