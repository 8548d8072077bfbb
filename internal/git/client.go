package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wtree/wt/internal/cmd"
	"github.com/wtree/wt/internal/validate"
)

// Client runs git commands against the repository containing dir.
type Client struct {
	runner cmd.Runner
	dir    string
	remote string
}

// NewClient returns a Client that runs git in dir through runner. remote
// names the remote whose branches are offered alongside local ones; it
// defaults to DefaultRemote.
func NewClient(runner cmd.Runner, dir, remote string) *Client {
	if remote == "" {
		remote = DefaultRemote
	}
	return &Client{runner: runner, dir: dir, remote: remote}
}

// Remote returns the remote name the client lists branches for.
func (c *Client) Remote() string { return c.remote }

// CheckRepository returns ErrNotRepository unless dir is inside a work tree.
func (c *Client) CheckRepository(ctx context.Context) error {
	out, err := c.runTrimmed(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		var failure *cmd.Failure
		if errors.As(err, &failure) {
			return ErrNotRepository
		}
		return err
	}
	if out != "true" {
		return ErrNotRepository
	}
	return nil
}

// TopLevel returns the root directory of the current worktree.
func (c *Client) TopLevel(ctx context.Context) (string, error) {
	out, err := c.runTrimmed(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("resolve worktree root: %w", err)
	}
	return filepath.Clean(out), nil
}

// CommonDir returns the absolute git directory shared by all worktrees.
func (c *Client) CommonDir(ctx context.Context) (string, error) {
	out, err := c.runTrimmed(ctx, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("resolve git common dir: %w", err)
	}
	return filepath.Clean(out), nil
}

// ProjectName returns the repository name taken from the remote URL, or
// the directory name of the worktree root when no remote is configured.
func (c *Client) ProjectName(ctx context.Context) (string, error) {
	url, err := c.runTrimmed(ctx, "config", "--get", "remote."+c.remote+".url")
	if err == nil {
		if name := RepoNameFromURL(url); name != "" {
			return name, nil
		}
	} else {
		var failure *cmd.Failure
		if !errors.As(err, &failure) {
			return "", err
		}
	}

	top, err := c.TopLevel(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Base(top), nil
}

// RepoNameFromURL extracts the repository name from a git remote URL. It
// handles https, scp-like ssh (git@host:owner/repo.git), ssh:// and local
// paths. Returns "" when no name can be found.
func RepoNameFromURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}
	return url
}

// ListWorktrees returns every worktree registered with the repository.
func (c *Client) ListWorktrees(ctx context.Context) ([]Worktree, error) {
	out, err := c.run(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("list worktrees: %w", err)
	}
	return ParsePorcelain(out), nil
}

// LocalBranches lists refs/heads with their upstream tracking branch.
func (c *Client) LocalBranches(ctx context.Context) ([]LocalRef, error) {
	out, err := c.run(ctx, "for-each-ref", "--format=%(refname:short)%09%(upstream:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("list local branches: %w", err)
	}

	var refs []LocalRef
	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		name, upstream, _ := strings.Cut(line, "\t")
		refs = append(refs, LocalRef{Name: name, Upstream: upstream})
	}
	return refs, nil
}

// RemoteBranches lists remote-tracking refs as "<remote>/<branch>".
func (c *Client) RemoteBranches(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "for-each-ref", "--format=%(refname)", "refs/remotes")
	if err != nil {
		return nil, fmt.Errorf("list remote branches: %w", err)
	}

	var refs []string
	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		refs = append(refs, strings.TrimPrefix(line, "refs/remotes/"))
	}
	return refs, nil
}

// Branches builds the branch catalog from local and remote refs, listing
// both concurrently.
func (c *Client) Branches(ctx context.Context) (Catalog, error) {
	var (
		local  []LocalRef
		remote []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		local, err = c.LocalBranches(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		remote, err = c.RemoteBranches(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}

	return NewCatalog(local, remote, c.remote), nil
}

// AddWorktree checks out an existing branch (local, or a remote ref such as
// "origin/feature") into a new worktree at path.
func (c *Client) AddWorktree(ctx context.Context, path, branch string) error {
	if err := validate.Path(path); err != nil {
		return err
	}
	if err := validate.BranchName(branch); err != nil {
		return err
	}
	if _, err := c.run(ctx, "worktree", "add", path, branch); err != nil {
		return TranslateFailure(err)
	}
	return nil
}

// AddWorktreeNewBranch creates branch from base and checks it out into a
// new worktree at path.
func (c *Client) AddWorktreeNewBranch(ctx context.Context, path, branch, base string) error {
	if err := validate.Path(path); err != nil {
		return err
	}
	if err := validate.BranchName(branch); err != nil {
		return err
	}
	if err := validate.BranchName(base); err != nil {
		return fmt.Errorf("base: %w", err)
	}
	if _, err := c.run(ctx, "worktree", "add", "-b", branch, path, base); err != nil {
		return TranslateFailure(err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path. With force, git discards
// uncommitted changes.
func (c *Client) RemoveWorktree(ctx context.Context, path string, force bool) error {
	if err := validate.Path(path); err != nil {
		return err
	}
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	if _, err := c.run(ctx, args...); err != nil {
		return TranslateFailure(err)
	}
	return nil
}

// PruneWorktrees drops administrative entries for worktrees whose
// directories no longer exist.
func (c *Client) PruneWorktrees(ctx context.Context) error {
	if _, err := c.run(ctx, "worktree", "prune"); err != nil {
		return fmt.Errorf("prune worktrees: %w", err)
	}
	return nil
}

// Lock takes the repository lock, see Lock.
func (c *Client) Lock(ctx context.Context, timeout time.Duration) (func() error, error) {
	dir, err := c.CommonDir(ctx)
	if err != nil {
		return nil, err
	}
	return Lock(ctx, dir, timeout)
}
