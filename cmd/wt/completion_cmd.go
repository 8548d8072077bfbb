package main

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:         "completion <shell>",
		Short:       "Generate completion script",
		GroupID:     GroupConfig,
		Annotations: map[string]string{annotationNoRepo: ""},
		Long:        `Generate shell completion script.`,
		ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
		Args:        cobra.ExactArgs(1),
		Example: `  # Fish
  wt completion fish > ~/.config/fish/completions/wt.fish

  # Bash
  wt completion bash > ~/.local/share/bash-completion/completions/wt

  # Zsh
  wt completion zsh > ~/.zfunc/_wt
  # Then add ~/.zfunc to fpath in .zshrc`,
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			switch args[0] {
			case "bash":
				return c.Root().GenBashCompletion(out)
			case "zsh":
				return c.Root().GenZshCompletion(out)
			case "fish":
				return c.Root().GenFishCompletion(out, true)
			case "powershell":
				return c.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return c
}
