// Package editor opens worktrees in the user's editor.
package editor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/wtree/wt/internal/cmd"
	"github.com/wtree/wt/internal/log"
	"github.com/wtree/wt/internal/validate"
)

// Launcher runs "<binary> <path>" through a cmd.Runner.
type Launcher struct {
	runner cmd.Runner
	binary string
}

// New returns a Launcher for binary. The config layer resolves binary
// from the config file and WT_EDITOR.
func New(runner cmd.Runner, binary string) *Launcher {
	return &Launcher{runner: runner, binary: binary}
}

// Binary returns the editor command.
func (l *Launcher) Binary() string { return l.binary }

// Available reports whether the editor binary can be found in PATH.
func (l *Launcher) Available() bool {
	_, err := exec.LookPath(l.binary)
	return err == nil
}

// Open launches the editor on path. A non-zero exit is returned as a
// *cmd.Failure; the editor's own output is only logged.
func (l *Launcher) Open(ctx context.Context, path string) error {
	if err := validate.Path(path); err != nil {
		return err
	}
	if !l.Available() {
		return fmt.Errorf("editor %q not found in PATH (set editor in config or WT_EDITOR)", l.binary)
	}

	res, err := l.runner.Run(ctx, "", l.binary, path)
	if err != nil {
		return fmt.Errorf("launch %s: %w", l.binary, err)
	}
	log.FromContext(ctx).Debug("editor exited", "editor", l.binary, "code", res.ExitCode)
	return res.Err(l.binary, path)
}
