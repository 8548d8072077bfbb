// Package config handles loading and validation of wt configuration.
//
// Configuration is read from ~/.config/wt/config.toml (or $WT_CONFIG),
// then a per-repo .wt.toml at the worktree root, then the environment.
//
// # Configuration Sources (highest priority first)
//
//   - WT_EDITOR env var: editor binary
//   - .wt.toml in the repository (editor, remote, copy_path)
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - editor: binary invoked as "<editor> <path>" (default "code")
//   - remote: remote whose branches are listed (default "origin")
//   - copy_path: copy a new worktree's path to the clipboard
//   - lock_timeout: wait for the repository lock (default "10s")
//   - [log]: optional rotating JSON trace file
//
// Unknown keys are rejected so typos surface instead of being ignored.
package config
