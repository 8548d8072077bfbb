package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/cmd"
	"github.com/wtree/wt/internal/config"
	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/log"
	"github.com/wtree/wt/internal/output"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Aliases:     []string{"cfg"},
		GroupID:     GroupConfig,
		Annotations: map[string]string{annotationNoRepo: ""},
		Long: `Manage wt configuration.

Global config: ~/.config/wt/config.toml (or $WT_CONFIG)
Local config:  .wt.toml (in the repository root)`,
		Example: `  wt config init          # Create default global config
  wt config init --local  # Create local repo config
  wt config show          # Show effective config`,
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigShowCmd())

	return c
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	c := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .wt.toml in the current repository root.`,
		Example: `  wt config init           # Create global config
  wt config init --local   # Create local repo config
  wt config init -f        # Overwrite existing config
  wt config init -s        # Print config to stdout`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if local {
				if stdout {
					out.Print(config.DefaultLocalConfig())
					return nil
				}
				top, err := git.NewClient(cmd.ExecRunner{}, workDir, "").TopLevel(ctx)
				if err != nil {
					return err
				}
				path, err := config.InitLocal(top, force)
				if err != nil {
					return err
				}
				l.Printf("Created %s\n", path)
				return nil
			}

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			l.Printf("Created %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	c.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	c.Flags().BoolVar(&local, "local", false, "Create per-repo .wt.toml instead of global config")

	return c
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective config",
		Args:  cobra.NoArgs,
		Long: `Show the configuration wt would use in the current directory:
global settings, then .wt.toml overrides, then environment variables.`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			effective := cfg
			client := git.NewClient(cmd.ExecRunner{}, workDir, "")
			if client.CheckRepository(ctx) == nil {
				top, err := client.TopLevel(ctx)
				if err != nil {
					return err
				}
				if effective, err = config.ForRepo(cfg, top); err != nil {
					return err
				}
			}

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			out := output.FromContext(ctx)
			out.Printf("# %s\n", path)
			if err := toml.NewEncoder(out.Writer()).Encode(effective); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
