package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wtree/wt/internal/storage"
)

// LocalConfigFileName is the per-repo override file at the worktree root.
const LocalConfigFileName = ".wt.toml"

// LocalConfig holds per-repo configuration overrides from .wt.toml.
// Nil pointers and empty strings mean "not set" (inherit from global).
type LocalConfig struct {
	Editor   string `toml:"editor"`
	Remote   string `toml:"remote"`
	CopyPath *bool  `toml:"copy_path"`
}

// LoadLocal reads a per-repo .wt.toml config from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), configFile)
	}

	if local.Remote != "" {
		if err := validateRemote(local.Remote); err != nil {
			return nil, fmt.Errorf("%w in %s", err, configFile)
		}
	}

	return &local, nil
}

// MergeLocal applies per-repo overrides to a global config. The global
// config is returned unchanged if local is nil. Environment overrides
// still win, since they are applied to the merged result by the caller.
func MergeLocal(global Config, local *LocalConfig) Config {
	if local == nil {
		return global
	}
	merged := global
	if local.Editor != "" {
		merged.Editor = local.Editor
	}
	if local.Remote != "" {
		merged.Remote = local.Remote
	}
	if local.CopyPath != nil {
		merged.CopyPath = *local.CopyPath
	}
	return merged
}

// ForRepo returns the effective config for the repository rooted at
// repoPath: global settings, then .wt.toml overrides, then environment.
func ForRepo(global Config, repoPath string) (Config, error) {
	local, err := LoadLocal(repoPath)
	if err != nil {
		return global, err
	}
	return withEnv(MergeLocal(global, local)), nil
}

const defaultLocalConfig = `# wt local config (per-repo overrides)
# Place this file at the root of the repository.
# Settings here override the global config for this repo only.

# editor = "nvim"
# remote = "upstream"
# copy_path = true
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}

// InitLocal writes the default local config to repoPath and returns its path.
func InitLocal(repoPath string, force bool) (string, error) {
	path := filepath.Join(repoPath, LocalConfigFileName)
	if err := storage.Create(path, []byte(defaultLocalConfig), 0o644, force); err != nil {
		return "", err
	}
	return path, nil
}
