package git

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/wtree/wt/internal/cmd"
)

// ErrNotRepository is returned when the working directory is not inside a
// git repository.
var ErrNotRepository = errors.New("not in a git repository")

// ErrLocked is returned when another wt process holds the repository lock.
var ErrLocked = errors.New("another wt command is modifying this repository")

// BranchInUseError reports that git refused to check out a branch because
// another worktree already has it.
type BranchInUseError struct {
	Branch string
	Path   string
	Err    error
}

func (e *BranchInUseError) Error() string {
	return fmt.Sprintf("branch %q is already checked out at %s\n"+
		"Use 'wt open' to open that worktree, or create a new branch based on %q instead",
		e.Branch, e.Path, e.Branch)
}

func (e *BranchInUseError) Unwrap() error { return e.Err }

// git < 2.42 says "is already checked out at", newer versions say
// "is already used by worktree at".
var inUsePattern = regexp.MustCompile(`'([^']+)' is already (?:checked out|used by worktree) at '([^']+)'`)

// TranslateFailure rewrites git failures that have a known, actionable
// meaning. It is the only place that inspects git's stderr wording; errors
// it does not recognize are returned unchanged.
func TranslateFailure(err error) error {
	var failure *cmd.Failure
	if !errors.As(err, &failure) {
		return err
	}
	if m := inUsePattern.FindStringSubmatch(failure.Stderr); m != nil {
		return &BranchInUseError{Branch: m[1], Path: m[2], Err: err}
	}
	return err
}
