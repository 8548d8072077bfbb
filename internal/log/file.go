package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures the structured trace file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// AttachFile mirrors debug entries and command executions into a rotating
// JSON log at cfg.Path. The returned func flushes and closes the file.
func (l *Logger) AttachFile(cfg FileConfig) (func() error, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("trace file path is required")
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), zapcore.DebugLevel)

	l.trace = zap.New(core).With(zap.Int("pid", os.Getpid()))

	return func() error {
		_ = l.trace.Sync()
		l.trace = zap.NewNop()
		return writer.Close()
	}, nil
}
