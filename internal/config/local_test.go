package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wtree/wt/internal/storage"
)

func writeLocal(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestLoadLocal_NoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil {
		t.Fatalf("expected nil, got %+v", local)
	}
}

func TestLoadLocal_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocal(t, dir, "")

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local == nil {
		t.Fatal("expected non-nil local config for empty file")
	}
	if local.CopyPath != nil {
		t.Errorf("CopyPath = %v, want nil", *local.CopyPath)
	}
}

func TestLoadLocal_AllFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocal(t, dir, `
editor = "nvim"
remote = "upstream"
copy_path = false
`)

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Editor != "nvim" {
		t.Errorf("Editor = %q, want %q", local.Editor, "nvim")
	}
	if local.Remote != "upstream" {
		t.Errorf("Remote = %q, want %q", local.Remote, "upstream")
	}
	if local.CopyPath == nil || *local.CopyPath {
		t.Errorf("CopyPath = %v, want explicit false", local.CopyPath)
	}
}

func TestLoadLocal_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "editor = "},
		{"unknown key", `worktree_format = "{branch}"`},
		{"bad remote", `remote = "a..b:c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeLocal(t, dir, tt.content)
			if _, err := LoadLocal(dir); err == nil {
				t.Error("LoadLocal() error = nil, want error")
			}
		})
	}
}

func TestDefaultLocalConfigIsValidTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocal(t, dir, DefaultLocalConfig())
	if _, err := LoadLocal(dir); err != nil {
		t.Errorf("DefaultLocalConfig() is invalid: %v", err)
	}
}

func TestInitLocal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := InitLocal(dir, false)
	if err != nil {
		t.Fatalf("InitLocal() error = %v", err)
	}
	if want := filepath.Join(dir, LocalConfigFileName); path != want {
		t.Errorf("InitLocal() path = %q, want %q", path, want)
	}
	if _, err := LoadLocal(dir); err != nil {
		t.Errorf("LoadLocal() after InitLocal error = %v", err)
	}
	if _, err := InitLocal(dir, false); !errors.Is(err, storage.ErrExists) {
		t.Errorf("second InitLocal() error = %v, want ErrExists", err)
	}
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	yes := true
	global := Default()

	if got := MergeLocal(global, nil); got != global {
		t.Errorf("MergeLocal(nil) = %+v, want global unchanged", got)
	}

	merged := MergeLocal(global, &LocalConfig{Remote: "upstream", CopyPath: &yes})
	if merged.Remote != "upstream" {
		t.Errorf("Remote = %q, want %q", merged.Remote, "upstream")
	}
	if !merged.CopyPath {
		t.Error("CopyPath = false, want true")
	}
	if merged.Editor != global.Editor {
		t.Errorf("Editor = %q, want inherited %q", merged.Editor, global.Editor)
	}
	if global.Remote != DefaultRemote {
		t.Error("MergeLocal mutated the global config")
	}
}

func TestForRepo_EnvWins(t *testing.T) {
	dir := t.TempDir()
	writeLocal(t, dir, `editor = "nvim"`)
	t.Setenv(EnvEditor, "")

	cfg, err := ForRepo(Default(), dir)
	if err != nil {
		t.Fatalf("ForRepo() error = %v", err)
	}
	if cfg.Editor != "nvim" {
		t.Errorf("Editor = %q, want %q from .wt.toml", cfg.Editor, "nvim")
	}

	t.Setenv(EnvEditor, "zed")
	cfg, err = ForRepo(Default(), dir)
	if err != nil {
		t.Fatalf("ForRepo() error = %v", err)
	}
	if cfg.Editor != "zed" {
		t.Errorf("Editor = %q, want %q from WT_EDITOR", cfg.Editor, "zed")
	}
}
