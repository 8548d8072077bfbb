package git

import (
	"errors"
	"os/exec"
)

// ErrGitNotFound is returned by CheckGit when no git binary is on PATH.
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CheckGit reports ErrGitNotFound unless a git binary is on PATH.
// It runs before any repository command so the user sees one clear error
// instead of a failed exec.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}
