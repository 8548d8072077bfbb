// Package cmd runs external binaries (git, the editor) and reports their
// outcome as plain data.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/wtree/wt/internal/log"
)

// Result is the captured outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Err returns a *Failure if the command exited non-zero, nil otherwise.
func (r Result) Err(name string, args ...string) error {
	if r.ExitCode == 0 {
		return nil
	}
	return &Failure{Name: name, Args: args, ExitCode: r.ExitCode, Stderr: r.Stderr}
}

// Failure is a command that ran and exited non-zero.
// Stderr is kept verbatim; Error() shows it trimmed.
type Failure struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (f *Failure) Error() string {
	if msg := strings.TrimSpace(f.Stderr); msg != "" {
		return msg
	}
	return fmt.Sprintf("%s %s: exit status %d", f.Name, strings.Join(f.Args, " "), f.ExitCode)
}

//go:generate go run go.uber.org/mock/mockgen -source=exec.go -destination=mock_runner.gen.go -package=cmd

// Runner executes a binary with args in dir and captures its output.
// The error is non-nil only when the command could not be run to
// completion (not found, context cancelled); a non-zero exit is reported
// through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExecRunner is the Runner backed by os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{ExitCode: -1}, ctxErr
	}

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{ExitCode: -1}, err
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}
