package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/cmd"
	"github.com/wtree/wt/internal/config"
	"github.com/wtree/wt/internal/editor"
	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/log"
	"github.com/wtree/wt/internal/manager"
	"github.com/wtree/wt/internal/ui/prompt"
)

// repoEnv is the repository the command runs against, with its effective
// configuration.
type repoEnv struct {
	client *git.Client
	cfg    config.Config
}

type repoKey struct{}

// openRepo checks for git and a repository at workDir, resolves the
// per-repo configuration and stores the result in cmd's context.
func openRepo(c *cobra.Command) error {
	ctx := c.Context()

	if err := git.CheckGit(); err != nil {
		return err
	}

	runner := cmd.ExecRunner{}
	probe := git.NewClient(runner, workDir, cfg.Remote)
	if err := probe.CheckRepository(ctx); err != nil {
		return err
	}
	top, err := probe.TopLevel(ctx)
	if err != nil {
		return err
	}

	effective, err := config.ForRepo(cfg, top)
	if err != nil {
		return err
	}
	log.FromContext(ctx).Debug("repository", "top", top, "remote", effective.Remote, "editor", effective.Editor)

	env := &repoEnv{
		client: git.NewClient(runner, workDir, effective.Remote),
		cfg:    effective,
	}
	c.SetContext(context.WithValue(ctx, repoKey{}, env))
	return nil
}

// newManager builds the workflow manager for the command's repository.
func newManager(c *cobra.Command) (*manager.Manager, error) {
	env, ok := c.Context().Value(repoKey{}).(*repoEnv)
	if !ok {
		return nil, errors.New("internal error: repository not initialized")
	}
	ed := editor.New(cmd.ExecRunner{}, env.cfg.Editor)
	return manager.New(env.client, ed, prompt.Terminal{}, manager.Options{
		CopyPath:    env.cfg.CopyPath,
		LockTimeout: env.cfg.LockTimeout,
	}), nil
}
