// Package validate decides whether branch names and filesystem paths are
// safe to hand to git or to create on disk.
//
// Both checks are pure functions. A failed check returns an [*Error]
// carrying a human-readable reason suitable for showing next to a prompt.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPathLength is the longest path, in characters, that [Path] accepts.
const MaxPathLength = 4096

// Error reports why a name or path was rejected.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func fail(reason string) error {
	return &Error{Reason: reason}
}

// branchForbidden are characters git refuses anywhere in a ref name.
const branchForbidden = "~^:?*[\\\t\n"

// pathForbidden are characters that are invalid in a path on at least one
// supported filesystem.
const pathForbidden = "<>:\"|?*"

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// BranchName checks name against the branch naming rules.
func BranchName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fail("branch name cannot be empty")
	}
	if strings.TrimSpace(name) != name {
		return fail("branch name cannot start or end with whitespace")
	}
	if strings.Contains(name, " ") {
		return fail("branch name cannot contain spaces")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fail("branch name cannot start or end with '/'")
	}
	if strings.Contains(name, "//") {
		return fail("branch name cannot contain '//'")
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fail("branch name cannot start or end with '.'")
	}
	if strings.HasSuffix(name, ".lock") {
		return fail("branch name cannot end with '.lock'")
	}
	if i := strings.IndexAny(name, branchForbidden); i >= 0 {
		r, _ := utf8.DecodeRuneInString(name[i:])
		return fail("branch name cannot contain " + describe(r))
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fail("branch name cannot contain control characters")
		}
	}
	if name == "HEAD" {
		return fail("branch name cannot be 'HEAD'")
	}
	if strings.HasPrefix(name, "refs/") {
		return fail("branch name cannot start with 'refs/'")
	}
	return nil
}

// Path checks path against the path rules. It does not touch the filesystem.
func Path(path string) error {
	if strings.TrimSpace(path) == "" {
		return fail("path cannot be empty")
	}
	if strings.TrimSpace(path) != path {
		return fail("path cannot start or end with whitespace")
	}
	if strings.ContainsRune(path, 0) {
		return fail("path cannot contain null bytes")
	}
	if i := strings.IndexAny(path, pathForbidden); i >= 0 {
		return fail("path cannot contain " + describe(rune(path[i])))
	}
	for _, r := range path {
		if r != '\t' && unicode.IsControl(r) {
			return fail("path cannot contain control characters")
		}
	}
	if utf8.RuneCountInString(path) > MaxPathLength {
		return fail("path is too long (maximum 4096 characters)")
	}
	if strings.Contains(path, "..") {
		return fail("path cannot contain '..'")
	}
	for _, part := range components(path) {
		if reservedNames[strings.ToUpper(part)] {
			return fail("path cannot contain reserved name '" + part + "'")
		}
		if strings.HasSuffix(part, ".") {
			return fail("path component '" + part + "' cannot end with '.'")
		}
	}
	return nil
}

// components splits on both separator styles and drops empty components so
// Windows-style input is checked the same way everywhere.
func components(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

func describe(r rune) string {
	switch r {
	case '\t':
		return "tabs"
	case '\n':
		return "newlines"
	default:
		return "'" + string(r) + "'"
	}
}
