package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/config"
	"github.com/wtree/wt/internal/log"
	"github.com/wtree/wt/internal/manager"
	"github.com/wtree/wt/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// annotationNoRepo marks commands that run outside a git repository.
const annotationNoRepo = "wt/no-repo"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wt",
		Short: "Interactive git worktree manager",
		Long: `wt manages the worktrees of the repository you are in.

New worktrees are placed next to the current checkout, in
<parent>/<project>-worktree/<project>-<branch>-worktree, so every
branch gets a predictable directory.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
			if cfg.Log.File != "" {
				closeTrace, err := logger.AttachFile(log.FileConfig{
					Path:       cfg.Log.File,
					MaxSizeMB:  cfg.Log.MaxSizeMB,
					MaxBackups: cfg.Log.MaxBackups,
					MaxAgeDays: cfg.Log.MaxAgeDays,
				})
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: trace log disabled: %v\n", err)
				} else {
					cobra.OnFinalize(func() { _ = closeTrace() })
				}
			}
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))

			if skipsRepoCheck(cmd) {
				return nil
			}
			return openRepo(cmd)
		},
		// Run is not set - shows help when no subcommand provided
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newOpenCmd())
	root.AddCommand(newListCmd())

	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// skipsRepoCheck reports whether cmd or one of its parents runs without a
// repository.
func skipsRepoCheck(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoRepo]; ok {
			return true
		}
	}
	return false
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx = log.WithLogger(ctx, log.New(stderr, false, false))
	ctx = output.WithPrinter(ctx, stdout)

	err := root.ExecuteContext(ctx)
	if err == nil || errors.Is(err, manager.ErrCancelled) {
		return 0
	}

	fmt.Fprintln(stderr, err)
	fmt.Fprintln(stderr)
	fmt.Fprintln(stderr, "Run 'wt -h' for help")
	return 1
}

// Execute loads the configuration and runs the root command.
func Execute() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loaded

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wt: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
