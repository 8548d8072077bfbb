package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/wtree/wt/internal/storage"
)

// LogConfig configures the optional trace log file.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Config holds the wt configuration
type Config struct {
	Editor      string        `toml:"editor"`
	Remote      string        `toml:"remote"`
	CopyPath    bool          `toml:"copy_path"`
	LockTimeout time.Duration `toml:"lock_timeout"`
	Log         LogConfig     `toml:"log"`
}

// Defaults for unset fields.
const (
	DefaultEditor      = "code"
	DefaultRemote      = "origin"
	DefaultLockTimeout = 10 * time.Second
)

// Environment variables read by Load.
const (
	EnvConfig = "WT_CONFIG"
	EnvEditor = "WT_EDITOR"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Editor:      DefaultEditor,
		Remote:      DefaultRemote,
		LockTimeout: DefaultLockTimeout,
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the config file location: $WT_CONFIG if set, otherwise
// ~/.config/wt/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wt", "config.toml"), nil
}

// Load reads the config file at Path and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return withEnv(Default()), nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), err
	}
	return withEnv(cfg), nil
}

// LoadFile reads and validates a single config file without consulting
// the environment. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML config content over the defaults and validates it.
func Parse(content string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	// Shell doesn't expand ~ in config files
	expanded, err := expandPath(cfg.Log.File)
	if err != nil {
		return Default(), fmt.Errorf("expand log.file: %w", err)
	}
	cfg.Log.File = expanded

	return cfg, nil
}

func withEnv(cfg Config) Config {
	if editor := os.Getenv(EnvEditor); editor != "" {
		cfg.Editor = editor
	}
	return cfg
}

const defaultConfig = `# wt configuration

# Editor used by "wt open" and offered after "wt add".
# The WT_EDITOR environment variable takes precedence.
editor = "code"

# Remote whose branches are offered next to local ones.
remote = "origin"

# Copy the path of a newly created worktree to the clipboard.
copy_path = false

# How long to wait for another wt process working on the same repository.
lock_timeout = "10s"

# Optional JSON trace of every git command, rotated by size.
# Must be an absolute path or start with ~
[log]
# file = "~/.local/state/wt/trace.log"
max_size_mb = 10
max_backups = 3
max_age_days = 7
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if err := storage.Create(path, []byte(defaultConfig), 0o644, force); err != nil {
		return "", err
	}
	return path, nil
}
