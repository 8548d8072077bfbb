// Package worktree derives where new worktrees live on disk.
//
// Paths follow a fixed sibling layout next to the current checkout:
//
//	<parent>/<project>-worktree/<project>-<branch>-worktree
//
// The layout is deterministic but not collision-free: two branch names that
// sanitize to the same string map to the same directory. [CheckCollision]
// reports that case instead of letting git fail half-way.
package worktree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wtree/wt/internal/validate"
)

// ErrNoParent is returned when the current directory has no parent to place
// worktrees next to (e.g. the filesystem root).
var ErrNoParent = errors.New("cannot determine parent directory")

var branchReplacer = strings.NewReplacer(
	" ", "-",
	"/", "-",
	`\`, "-",
	":", "-",
	"?", "",
	"*", "",
	"<", "",
	">", "",
	"|", "",
	`"`, "",
)

// SanitizeBranch maps a branch name to a string usable as one path segment.
// Separators and spaces become "-", shell/glob metacharacters are dropped.
func SanitizeBranch(branch string) string {
	return branchReplacer.Replace(branch)
}

// spacesToDash rewrites inner spaces only, so leading or trailing
// whitespace is still rejected by validation.
func spacesToDash(branch string) string {
	trimmed := strings.TrimSpace(branch)
	if trimmed != branch {
		return branch
	}
	return strings.ReplaceAll(branch, " ", "-")
}

// ContainerDir returns the directory that holds all worktrees of project.
func ContainerDir(parentDir, project string) string {
	return filepath.Join(parentDir, project+"-worktree")
}

// GeneratePath computes the target directory for a new worktree of branch.
// currentDir is the checkout the user is working from.
//
// The raw branch name must be valid; inner spaces are tolerated since the
// sanitizer turns them into "-".
func GeneratePath(project, branch, currentDir string) (string, error) {
	if err := validate.BranchName(spacesToDash(branch)); err != nil {
		return "", err
	}
	segment := SanitizeBranch(branch)
	if segment == "" {
		return "", &validate.Error{Reason: fmt.Sprintf("branch name %q leaves no usable path segment", branch)}
	}

	cur := filepath.Clean(currentDir)
	parent := filepath.Dir(cur)
	if parent == cur {
		return "", fmt.Errorf("%w of %s", ErrNoParent, cur)
	}

	name := fmt.Sprintf("%s-%s-worktree", project, segment)
	return filepath.Join(ContainerDir(parent, project), name), nil
}
