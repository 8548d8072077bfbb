// Package manager implements the wt workflows: create, remove, open and
// list worktrees of the current repository.
//
// A Manager decides what to ask and what to run; git access, the editor
// and the terminal prompts are injected so each flow can be tested
// without a repository or a TTY.
package manager

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/ui/prompt"
)

//go:generate go run go.uber.org/mock/mockgen -source=manager.go -destination=mock_deps.gen.go -package=manager

var (
	// ErrCancelled is returned when the user backs out of a prompt.
	// Callers treat it as a successful no-op.
	ErrCancelled = errors.New("cancelled")

	// ErrNotFound is returned when a selection does not match any worktree.
	ErrNotFound = errors.New("worktree not found")
)

// Git is the subset of *git.Client the flows need.
type Git interface {
	ProjectName(ctx context.Context) (string, error)
	TopLevel(ctx context.Context) (string, error)
	ListWorktrees(ctx context.Context) ([]git.Worktree, error)
	Branches(ctx context.Context) (git.Catalog, error)
	AddWorktree(ctx context.Context, path, branch string) error
	AddWorktreeNewBranch(ctx context.Context, path, branch, base string) error
	RemoveWorktree(ctx context.Context, path string, force bool) error
	PruneWorktrees(ctx context.Context) error
	Lock(ctx context.Context, timeout time.Duration) (func() error, error)
}

// Editor opens a directory in the user's editor.
type Editor interface {
	Binary() string
	Open(ctx context.Context, path string) error
}

// Prompter asks the user questions. prompt.Terminal is the real one.
type Prompter interface {
	Confirm(msg string, defaultYes bool) (prompt.ConfirmResult, error)
	TextInput(msg, placeholder string, validate func(string) error) (prompt.TextInputResult, error)
	Select(title string, options []string) (prompt.SelectResult, error)
	FuzzySelect(title string, options []string) (prompt.SelectResult, error)
}

// Options tune the flows.
type Options struct {
	// CopyPath copies a newly created worktree's path to the clipboard.
	CopyPath bool
	// LockTimeout bounds the wait for the repository lock.
	LockTimeout time.Duration
}

// Manager runs the worktree workflows for one repository.
type Manager struct {
	git    Git
	editor Editor
	prompt Prompter
	opts   Options

	// filesystem and clipboard access, replaced in tests
	exists    func(string) bool
	mkdirAll  func(string, os.FileMode) error
	copyToClp func(string) error
}

// New returns a Manager wired to the real filesystem and clipboard.
func New(g Git, e Editor, p Prompter, opts Options) *Manager {
	return &Manager{
		git:       g,
		editor:    e,
		prompt:    p,
		opts:      opts,
		exists:    pathExists,
		mkdirAll:  os.MkdirAll,
		copyToClp: clipboard.WriteAll,
	}
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// withLock runs fn while holding the repository lock.
func (m *Manager) withLock(ctx context.Context, fn func() error) (err error) {
	unlock, err := m.git.Lock(ctx, m.opts.LockTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()
	return fn()
}
