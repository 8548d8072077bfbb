package main

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/wtree/wt/internal/config"
)

func TestSkipsRepoCheck(t *testing.T) {
	root := newRootCmd()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"add"}, false},
		{[]string{"remove"}, false},
		{[]string{"list"}, false},
		{[]string{"open"}, false},
		{[]string{"config"}, true},
		{[]string{"config", "init"}, true},
		{[]string{"config", "show"}, true},
		{[]string{"completion"}, true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			c, _, err := root.Find(tt.args)
			if err != nil {
				t.Fatalf("Find(%v) error = %v", tt.args, err)
			}
			if got := skipsRepoCheck(c); got != tt.want {
				t.Errorf("skipsRepoCheck(%s) = %v, want %v", c.CommandPath(), got, tt.want)
			}
		})
	}
}

func TestSkipsRepoCheck_Help(t *testing.T) {
	c := &cobra.Command{Use: "help"}
	if !skipsRepoCheck(c) {
		t.Error("help command should skip the repository check")
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--version"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "wt ") {
		t.Errorf("version output = %q, want prefix %q", stdout.String(), "wt ")
	}
}

func TestRun_VerboseQuietConflict(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"list", "-v", "-q"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Run 'wt -h' for help") {
		t.Errorf("stderr = %q, want help hint", stderr.String())
	}
}

func TestRun_OutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	cfg = config.Default()
	workDir = t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "not in a git repository") {
		t.Errorf("stderr = %q, want not-a-repository error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRun_ConfigInitStdout(t *testing.T) {
	cfg = config.Default()
	workDir = t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"config", "init", "--stdout"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if stdout.String() != config.DefaultConfig() {
		t.Errorf("config init --stdout printed %q, want the default config", stdout.String())
	}
}

func TestRun_ConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv(config.EnvConfig, path)
	cfg = config.Default()
	workDir = t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"config", "show"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "# "+path+"\n") {
		t.Errorf("config show output = %q, want it to start with the config path", stdout.String())
	}
	if !strings.Contains(stdout.String(), `editor = "code"`) {
		t.Errorf("config show output = %q, want the editor setting", stdout.String())
	}
}

func TestRun_ConfigShowWithoutHome(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv("HOME", "")
	cfg = config.Default()
	workDir = t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"config", "show"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "resolve config path") {
		t.Errorf("stderr = %q, want config path error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing printed", stdout.String())
	}
}

func TestRun_Completion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"completion", "bash"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "bash completion") {
		t.Errorf("completion output does not look like a bash script")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
