package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple", input: "main"},
		{name: "hierarchical", input: "feature/login"},
		{name: "dots inside", input: "release/v1.2.3"},
		{name: "dash and underscore", input: "fix-bug_42"},
		{name: "empty", input: "", wantErr: "cannot be empty"},
		{name: "whitespace only", input: "   ", wantErr: "cannot be empty"},
		{name: "leading space", input: " leading", wantErr: "whitespace"},
		{name: "trailing newline", input: "main\n", wantErr: "whitespace"},
		{name: "inner space", input: "my branch", wantErr: "spaces"},
		{name: "leading slash", input: "/feature", wantErr: "'/'"},
		{name: "trailing slash", input: "feature/", wantErr: "'/'"},
		{name: "double slash", input: "a//b", wantErr: "'//'"},
		{name: "leading dot", input: ".hidden", wantErr: "'.'"},
		{name: "trailing dot", input: "feature.", wantErr: "'.'"},
		{name: "lock suffix", input: "x.lock", wantErr: ".lock"},
		{name: "tilde", input: "a~1", wantErr: "'~'"},
		{name: "caret", input: "a^1", wantErr: "'^'"},
		{name: "colon", input: "a:b", wantErr: "':'"},
		{name: "question mark", input: "what?", wantErr: "'?'"},
		{name: "asterisk", input: "wip*", wantErr: "'*'"},
		{name: "open bracket", input: "a[1]", wantErr: "'['"},
		{name: "backslash", input: `a\b`, wantErr: `'\'`},
		{name: "tab", input: "a\tb", wantErr: "tabs"},
		{name: "newline", input: "a\nb", wantErr: "newlines"},
		{name: "control character", input: "a\x07b", wantErr: "control"},
		{name: "delete character", input: "a\x7fb", wantErr: "control"},
		{name: "HEAD", input: "HEAD", wantErr: "'HEAD'"},
		{name: "refs prefix", input: "refs/heads/main", wantErr: "'refs/'"},
		{name: "head lowercase is fine", input: "head"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := BranchName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr), "BranchName(%q) = %v, want *Error", tt.input, err)
			assert.Contains(t, verr.Reason, tt.wantErr)
		})
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "absolute", input: "/work/myapp-worktree/myapp-main-worktree"},
		{name: "relative", input: "a/b/c"},
		{name: "tab allowed", input: "a\tb"},
		{name: "reserved name as substring", input: "/work/console/app"},
		{name: "empty", input: "", wantErr: "cannot be empty"},
		{name: "blank", input: " \t ", wantErr: "cannot be empty"},
		{name: "trailing space", input: "/work/app ", wantErr: "whitespace"},
		{name: "null byte", input: "/work/a\x00b", wantErr: "null"},
		{name: "less than", input: "/work/<a>", wantErr: "'<'"},
		{name: "colon", input: "C:/work", wantErr: "':'"},
		{name: "quote", input: `/work/"a"`, wantErr: `'"'`},
		{name: "pipe", input: "/work/a|b", wantErr: "'|'"},
		{name: "control character", input: "/work/a\x01b", wantErr: "control"},
		{name: "reserved name", input: "a/b/CON/c", wantErr: "reserved"},
		{name: "reserved name lowercase", input: "a/nul", wantErr: "reserved"},
		{name: "reserved name backslash", input: `a\LPT9\b`, wantErr: "reserved"},
		{name: "component ends with dot", input: "/work/app./b", wantErr: "cannot end with '.'"},
		{name: "parent segment", input: "a/../b", wantErr: "'..'"},
		{name: "too long", input: "/" + strings.Repeat("a", 4999), wantErr: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Path(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr), "Path(%q) = %v, want *Error", tt.input, err)
			assert.Contains(t, verr.Reason, tt.wantErr)
		})
	}
}

func TestPath_LengthBoundary(t *testing.T) {
	t.Parallel()

	exact := "/" + strings.Repeat("a", MaxPathLength-1)
	assert.NoError(t, Path(exact))
	assert.Error(t, Path(exact+"a"))
}
