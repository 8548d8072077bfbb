// Package log provides context-aware logging for wt.
//
// Diagnostics go to stderr. Verbose mode echoes every external command with
// its duration; quiet mode silences everything. When a trace file is
// attached (see [Logger.AttachFile]) debug entries and commands are also
// written there as structured JSON, independent of the verbose switch.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Logger provides output and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	trace   *zap.Logger
}

// New creates a new logger. quiet takes precedence over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet, trace: zap.NewNop()}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, false)
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug writes msg followed by key=value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.trace.Debug(msg, fields(keyvals)...)
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Command logs an external command execution. The returned func must be
// called with the elapsed time once the command finishes.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	line := "$ " + name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		l.trace.Debug("exec",
			zap.String("dir", dir),
			zap.String("cmd", name),
			zap.Strings("args", args),
			zap.Duration("took", d),
		)
		if l.IsVerbose() {
			fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
		}
	}
}

// IsVerbose returns true if verbose output is enabled and not silenced.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func fields(keyvals []any) []zap.Field {
	fs := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fs = append(fs, zap.Any(fmt.Sprint(keyvals[i]), keyvals[i+1]))
	}
	return fs
}
