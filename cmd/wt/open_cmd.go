package main

import (
	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [path|branch]",
		Short:   "Open a worktree in the editor",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open another worktree of the current repository in the editor.

The editor comes from the "editor" config setting (default "code") and
can be overridden with WT_EDITOR.`,
		Example: `  wt open              # Pick interactively
  wt open feature/x    # Open by branch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}
			var target string
			if len(args) == 1 {
				target = args[0]
			}
			return m.Open(cmd.Context(), target)
		},
	}

	return cmd
}
