package git

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Branch is the branch checked out in a worktree.
// The zero value is a detached HEAD; a checked-out branch always carries
// its name, so "no branch" and "branch named empty string" never collide.
type Branch struct {
	name     string
	attached bool
}

// Detached returns the detached-HEAD branch state.
func Detached() Branch { return Branch{} }

// OnBranch returns the state of a worktree checked out at name.
func OnBranch(name string) Branch { return Branch{name: name, attached: true} }

// Name returns the branch name and whether a branch is checked out at all.
func (b Branch) Name() (string, bool) { return b.name, b.attached }

// IsDetached reports whether no branch is checked out.
func (b Branch) IsDetached() bool { return !b.attached }

// String returns the branch name, or "(detached)".
func (b Branch) String() string {
	if !b.attached {
		return "(detached)"
	}
	return b.name
}

// MarshalJSON encodes a detached HEAD as null.
func (b Branch) MarshalJSON() ([]byte, error) {
	if !b.attached {
		return []byte("null"), nil
	}
	return json.Marshal(b.name)
}

// MarshalYAML encodes a detached HEAD as null.
func (b Branch) MarshalYAML() (any, error) {
	if !b.attached {
		return nil, nil
	}
	return b.name, nil
}

// Worktree is one block of `git worktree list --porcelain` output.
type Worktree struct {
	Path   string `json:"path" yaml:"path"`
	Branch Branch `json:"branch" yaml:"branch"`
	Head   string `json:"head" yaml:"head"`
	Bare   bool   `json:"bare" yaml:"bare"`
}

// Label is how a worktree is shown in selection lists.
func (w Worktree) Label() string {
	return w.Branch.String() + " (" + w.Path + ")"
}

const headsPrefix = "refs/heads/"

// ParsePorcelain parses `git worktree list --porcelain` output.
//
// A block starts at each "worktree <path>" line. Recognized fields are
// HEAD, branch, detached and bare; anything else is skipped so newer git
// attributes (locked, prunable, ...) do not break parsing. A block whose
// path was already seen is dropped, keeping paths unique.
func ParsePorcelain(text string) []Worktree {
	var (
		records []Worktree
		cur     *Worktree
		seen    = make(map[string]bool)
	)

	flush := func() {
		if cur != nil && !seen[cur.Path] {
			seen[cur.Path] = true
			records = append(records, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if path, ok := strings.CutPrefix(line, "worktree "); ok {
			flush()
			cur = &Worktree{Path: path}
			continue
		}
		if cur == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "HEAD "):
			cur.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			ref := strings.TrimPrefix(line, "branch ")
			cur.Branch = OnBranch(strings.TrimPrefix(ref, headsPrefix))
		case line == "detached":
			cur.Branch = Detached()
		case line == "bare":
			cur.Bare = true
		}
	}
	flush()

	return records
}

// Selectable filters a listing down to the worktrees a user may act on:
// bare entries, the repository metadata directory, and the worktree at
// currentDir are dropped.
func Selectable(records []Worktree, currentDir string) []Worktree {
	self := ""
	if currentDir != "" {
		self = filepath.Clean(currentDir)
	}

	var out []Worktree
	for _, wt := range records {
		if wt.Bare || isMetadataDir(wt.Path) {
			continue
		}
		if self != "" && filepath.Clean(wt.Path) == self {
			continue
		}
		out = append(out, wt)
	}
	return out
}

func isMetadataDir(path string) bool {
	return filepath.Base(filepath.Clean(path)) == ".git"
}
