package worktree

import (
	"fmt"
	"path/filepath"
)

// CollisionError reports that a generated path is already taken.
type CollisionError struct {
	Path string
	// Branch is the branch checked out at Path, if it is a known worktree.
	Branch string
}

func (e *CollisionError) Error() string {
	if e.Branch != "" {
		return fmt.Sprintf("path %s is already used by the worktree for branch %q", e.Path, e.Branch)
	}
	return fmt.Sprintf("path %s already exists", e.Path)
}

// Registered is a path already known to git together with its branch label.
type Registered struct {
	Path   string
	Branch string
}

// CheckCollision returns a *CollisionError when path is one of the
// registered worktree paths or when exists reports it present on disk.
// exists may be nil.
func CheckCollision(path string, registered []Registered, exists func(string) bool) error {
	want := filepath.Clean(path)
	for _, r := range registered {
		if filepath.Clean(r.Path) == want {
			return &CollisionError{Path: want, Branch: r.Branch}
		}
	}
	if exists != nil && exists(want) {
		return &CollisionError{Path: want}
	}
	return nil
}
