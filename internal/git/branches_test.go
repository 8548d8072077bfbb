package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(entries []BranchEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	local := []LocalRef{{Name: "main", Upstream: "origin/main"}, {Name: "dev"}}
	remote := []string{"origin/HEAD", "origin/main", "origin/feature-a"}

	c := NewCatalog(local, remote, "origin")

	assert.Equal(t, []string{"main", "dev"}, names(c.Local()))
	assert.Equal(t, []string{"main", "dev", "feature-a"}, names(c.All()))

	all := c.All()
	assert.False(t, all[0].Remote)
	assert.Equal(t, "origin/main", all[0].Upstream)
	assert.True(t, all[2].Remote)
	assert.Equal(t, "origin/feature-a", all[2].Ref())
	assert.Equal(t, "feature-a (remote)", all[2].Label())
	assert.Equal(t, "main", all[0].Ref())
}

func TestNewCatalog_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		local      []LocalRef
		remote     []string
		remoteName string
		wantAll    []string
		wantLocal  []string
	}{
		{
			name:    "empty",
			wantAll: nil,
		},
		{
			name:      "HEAD local ref skipped",
			local:     []LocalRef{{Name: "HEAD"}, {Name: "main"}},
			wantAll:   []string{"main"},
			wantLocal: []string{"main"},
		},
		{
			name:    "remote only",
			remote:  []string{"origin/a", "origin/b"},
			wantAll: []string{"a", "b"},
		},
		{
			name:      "case sensitive names",
			local:     []LocalRef{{Name: "Feature"}},
			remote:    []string{"origin/feature"},
			wantAll:   []string{"Feature", "feature"},
			wantLocal: []string{"Feature"},
		},
		{
			name:    "other remote keeps full name",
			remote:  []string{"origin/a", "upstream/a", "upstream/HEAD"},
			wantAll: []string{"a", "upstream/a"},
		},
		{
			name:    "branch ending in HEAD is not a remote head",
			remote:  []string{"origin/release/HEAD", "upstream/HEAD", "upstream/main"},
			wantAll: []string{"release/HEAD", "upstream/main"},
		},
		{
			name:       "custom remote name",
			remote:     []string{"origin/a", "fork/b"},
			remoteName: "fork",
			wantAll:    []string{"origin/a", "b"},
		},
		{
			name:      "duplicate local names collapse",
			local:     []LocalRef{{Name: "main"}, {Name: "main"}},
			wantAll:   []string{"main"},
			wantLocal: []string{"main"},
		},
		{
			name:      "nested branch names",
			local:     []LocalRef{{Name: "feature/x"}},
			remote:    []string{"origin/feature/x", "origin/feature/y"},
			wantAll:   []string{"feature/x", "feature/y"},
			wantLocal: []string{"feature/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCatalog(tt.local, tt.remote, tt.remoteName)
			assert.Equal(t, tt.wantAll, names(c.All()))
			assert.Equal(t, tt.wantLocal, names(c.Local()))
		})
	}
}

// TestNewCatalog_Idempotent verifies that building twice gives the same result.
//
// Scenario: the same local and remote inputs are merged twice
// Expected: identical sequences, no entry name repeated
func TestNewCatalog_Idempotent(t *testing.T) {
	t.Parallel()

	local := []LocalRef{{Name: "main"}, {Name: "b"}, {Name: "a"}}
	remote := []string{"origin/z", "origin/main", "origin/a", "origin/y"}

	first := NewCatalog(local, remote, "")
	second := NewCatalog(local, remote, "")
	assert.Equal(t, first.All(), second.All())

	seen := make(map[string]bool)
	for _, e := range first.All() {
		assert.False(t, seen[e.Name], "duplicate entry %q", e.Name)
		seen[e.Name] = true
	}
}
