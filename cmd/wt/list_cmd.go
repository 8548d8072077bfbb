package main

import (
	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/output"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List every worktree registered with the current repository,
including the one you are in.`,
		Example: `  wt list               # Table
  wt list -o json       # JSON for scripts
  wt ls --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}
			return m.List(cmd.Context(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", string(output.FormatTable), "Output format: table, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(output.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
