package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/log"
	"github.com/wtree/wt/internal/output"
	"github.com/wtree/wt/internal/validate"
	"github.com/wtree/wt/internal/worktree"
)

// CreateOptions preselect answers to the create prompts. Zero values mean
// "ask".
type CreateOptions struct {
	// Branch to check out, or to create when New is set.
	Branch string
	// New creates Branch instead of checking out an existing one.
	New bool
	// Base is the ref a new branch starts from.
	Base string
	// NoOpen skips the offer to open the new worktree in the editor.
	NoOpen bool
}

const (
	modeNew      = "Create a new branch"
	modeExisting = "Use an existing branch"
)

// Create adds a worktree next to the current checkout and returns its path.
func (m *Manager) Create(ctx context.Context, opts CreateOptions) (string, error) {
	l := log.FromContext(ctx)

	project, err := m.git.ProjectName(ctx)
	if err != nil {
		return "", err
	}
	top, err := m.git.TopLevel(ctx)
	if err != nil {
		return "", err
	}

	plan, err := m.planBranch(ctx, opts)
	if err != nil {
		return "", err
	}
	if err := validate.BranchName(plan.branch); err != nil {
		return "", err
	}

	path, err := worktree.GeneratePath(project, plan.branch, top)
	if err != nil {
		return "", err
	}
	if err := validate.Path(path); err != nil {
		return "", err
	}

	listing, err := m.git.ListWorktrees(ctx)
	if err != nil {
		return "", err
	}
	if err := worktree.CheckCollision(path, registered(listing), m.exists); err != nil {
		return "", err
	}

	l.Debug("creating worktree", "path", path, "branch", plan.branch, "base", plan.base, "new", plan.isNew)
	err = m.withLock(ctx, func() error {
		if err := m.mkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if plan.isNew {
			return m.git.AddWorktreeNewBranch(ctx, path, plan.branch, plan.base)
		}
		return m.git.AddWorktree(ctx, path, plan.checkout)
	})
	if err != nil {
		return "", err
	}

	if plan.detached {
		l.Printf("Created worktree for %s at %s (detached HEAD: a local branch %q already exists)\n",
			plan.branch, path, plan.localName)
	} else {
		l.Printf("Created worktree for %s at %s\n", plan.branch, path)
	}
	output.FromContext(ctx).Println(path)

	if m.opts.CopyPath {
		if err := m.copyToClp(path); err != nil {
			l.Printf("Warning: could not copy path to clipboard: %v\n", err)
		} else {
			l.Println("Path copied to clipboard")
		}
	}

	if !opts.NoOpen {
		m.offerEditor(ctx, path)
	}
	return path, nil
}

// offerEditor asks to open path and launches the editor. The worktree
// already exists at this point, so every failure is only reported.
func (m *Manager) offerEditor(ctx context.Context, path string) {
	l := log.FromContext(ctx)

	res, err := m.prompt.Confirm(fmt.Sprintf("Open in %s?", m.editor.Binary()), true)
	if err != nil {
		l.Debug("editor prompt skipped", "err", err)
		return
	}
	if res.Cancelled || !res.Confirmed {
		return
	}
	if err := m.editor.Open(ctx, path); err != nil {
		l.Printf("Warning: worktree created but %s failed to open it: %v\n", m.editor.Binary(), err)
	}
}

// branchPlan is what Create will ask git to do.
type branchPlan struct {
	branch   string // name the path is derived from
	checkout string // argument to "worktree add" for existing branches
	base     string // start point for new branches
	isNew    bool

	// detached is set when a branch of another remote is checked out
	// without a local branch because localName is already taken.
	detached  bool
	localName string
}

func (m *Manager) planBranch(ctx context.Context, opts CreateOptions) (branchPlan, error) {
	if opts.Branch != "" && !opts.New {
		return branchPlan{branch: opts.Branch, checkout: opts.Branch}, nil
	}

	isNew := opts.New
	if opts.Branch == "" && !opts.New {
		res, err := m.prompt.Select("Create worktree from", []string{modeNew, modeExisting})
		if err != nil {
			return branchPlan{}, err
		}
		if res.Cancelled {
			return branchPlan{}, ErrCancelled
		}
		isNew = res.Index == 0
	}

	if !isNew {
		entry, catalog, err := m.pickBranch(ctx, "Branch to check out")
		if err != nil {
			return branchPlan{}, err
		}
		return checkoutPlan(entry, catalog), nil
	}

	name := opts.Branch
	if name == "" {
		res, err := m.prompt.TextInput("New branch name", "feature/my-change", validate.BranchName)
		if err != nil {
			return branchPlan{}, err
		}
		if res.Cancelled {
			return branchPlan{}, ErrCancelled
		}
		name = res.Value
	}

	base := opts.Base
	if base == "" {
		entry, _, err := m.pickBranch(ctx, "Base branch for "+name)
		if err != nil {
			return branchPlan{}, err
		}
		base = entry.Ref()
	}
	if err := validate.BranchName(base); err != nil {
		return branchPlan{}, fmt.Errorf("base branch: %w", err)
	}

	return branchPlan{branch: name, base: base, isNew: true}, nil
}

// pickBranch asks for one entry of the repository's branch catalog.
func (m *Manager) pickBranch(ctx context.Context, title string) (git.BranchEntry, git.Catalog, error) {
	catalog, err := m.git.Branches(ctx)
	if err != nil {
		return git.BranchEntry{}, git.Catalog{}, err
	}
	entries := catalog.All()
	if len(entries) == 0 {
		return git.BranchEntry{}, catalog, fmt.Errorf("%w: repository has no branches", ErrNotFound)
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label()
	}

	res, err := m.prompt.FuzzySelect(title, labels)
	if err != nil {
		return git.BranchEntry{}, catalog, err
	}
	if res.Cancelled {
		return git.BranchEntry{}, catalog, ErrCancelled
	}
	if res.Index < 0 || res.Index >= len(entries) {
		return git.BranchEntry{}, catalog, fmt.Errorf("%w: selection %d of %d", ErrNotFound, res.Index, len(entries))
	}

	entry := entries[res.Index]
	log.FromContext(ctx).Debug("selected branch", "name", entry.Name, "remote", entry.Remote)
	return entry, catalog, nil
}

// checkoutPlan decides how an existing branch is checked out.
//
// Local branches and branches of the default remote go by name; for the
// latter git creates the local tracking branch itself. A branch of another
// remote ("upstream/main") becomes a new local branch "main" started from
// the remote ref, which git sets up to track it. If that local name is
// taken the remote ref is checked out detached.
func checkoutPlan(entry git.BranchEntry, catalog git.Catalog) branchPlan {
	ref := entry.Ref()
	if !entry.Remote || ref != entry.Name {
		return branchPlan{branch: entry.Name, checkout: entry.Name}
	}

	_, short, _ := strings.Cut(ref, "/")
	for _, local := range catalog.Local() {
		if local.Name == short {
			return branchPlan{branch: entry.Name, checkout: ref, detached: true, localName: short}
		}
	}
	return branchPlan{branch: short, base: ref, isNew: true}
}

func registered(listing []git.Worktree) []worktree.Registered {
	out := make([]worktree.Registered, 0, len(listing))
	for _, wt := range listing {
		out = append(out, worktree.Registered{Path: wt.Path, Branch: wt.Branch.String()})
	}
	return out
}
