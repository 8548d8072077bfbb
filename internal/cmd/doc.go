// Package cmd runs external binaries and captures their output.
//
// # Usage
//
//	res, err := cmd.ExecRunner{}.Run(ctx, repoDir, "git", "worktree", "list", "--porcelain")
//	if err != nil {
//	    // git could not be started, or ctx was cancelled
//	}
//	if err := res.Err("git", args...); err != nil {
//	    // *cmd.Failure carrying git's stderr verbatim
//	}
//
// # Design Notes
//
// wt shells out to git and the editor rather than using Go libraries. This
// keeps behaviour identical to the user's own git (config, credential
// helpers, hooks). Callers decide what a non-zero exit means; [Runner]
// only reports it.
package cmd
