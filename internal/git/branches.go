package git

import "strings"

// BranchEntry is a branch a worktree can be created from or based on.
// It refers to a ref by name only; the ref may be gone by the time it is used.
type BranchEntry struct {
	Name     string `json:"name" yaml:"name"`
	Remote   bool   `json:"remote" yaml:"remote"`
	Upstream string `json:"upstream,omitempty" yaml:"upstream,omitempty"`

	ref string // full remote ref, e.g. "origin/main"
}

// Ref returns the name to pass to git: the remote-qualified ref for remote
// entries, the plain name for local ones.
func (b BranchEntry) Ref() string {
	if b.ref != "" {
		return b.ref
	}
	return b.Name
}

// Label is how a branch is shown in selection lists.
func (b BranchEntry) Label() string {
	if b.Remote {
		return b.Name + " (remote)"
	}
	return b.Name
}

// LocalRef is a local branch and its upstream, if one is configured.
type LocalRef struct {
	Name     string
	Upstream string
}

// DefaultRemote is the remote whose prefix is stripped from remote branches.
const DefaultRemote = "origin"

// Catalog is the deduplicated set of branches known to a repository.
type Catalog struct {
	local []BranchEntry
	all   []BranchEntry
}

// NewCatalog merges local branches with remote-tracking branches.
//
// remote holds short remote ref names such as "origin/main". The
// "<remoteName>/" prefix is stripped; refs of other remotes keep their full
// name. HEAD pseudo-refs are skipped. When a name exists both locally and
// remotely only the local entry is kept. Order is first-seen, local before
// remote, so building twice from the same input gives the same sequence.
func NewCatalog(local []LocalRef, remote []string, remoteName string) Catalog {
	if remoteName == "" {
		remoteName = DefaultRemote
	}
	var c Catalog
	seen := make(map[string]bool)

	for _, ref := range local {
		if ref.Name == "" || ref.Name == "HEAD" || seen[ref.Name] {
			continue
		}
		seen[ref.Name] = true
		c.local = append(c.local, BranchEntry{Name: ref.Name, Upstream: ref.Upstream})
	}

	c.all = append(c.all, c.local...)

	prefix := remoteName + "/"
	for _, ref := range remote {
		if ref == "" || isRemoteHead(ref) {
			continue
		}
		name := strings.TrimPrefix(ref, prefix)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		c.all = append(c.all, BranchEntry{Name: name, Remote: true, ref: ref})
	}

	return c
}

// isRemoteHead reports whether ref is a remote's HEAD pointer such as
// "origin/HEAD". Branches that merely end in "/HEAD" are kept.
func isRemoteHead(ref string) bool {
	_, branch, found := strings.Cut(ref, "/")
	return ref == "HEAD" || (found && branch == "HEAD")
}

// Local returns local branches only.
func (c Catalog) Local() []BranchEntry {
	return c.local
}

// All returns local branches followed by remote-only branches.
func (c Catalog) All() []BranchEntry {
	return c.all
}
