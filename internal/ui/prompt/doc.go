// Package prompt provides the interactive prompts used by wt.
//
// Every prompt is a small bubbletea program rendered on stderr, so stdout
// stays clean for data. Prompts refuse to start with [ErrNotInteractive]
// when stdin is not a terminal.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation with a default answer
//   - [TextInput]: Single-line text input with inline validation
//   - [Select]: Single selection from a short fixed menu
//   - [FuzzySelect]: Single selection from a long, filterable list
//
// [Terminal] bundles them behind one value for callers that accept an
// interface.
package prompt
