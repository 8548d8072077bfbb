// Package git talks to the git CLI for one repository.
//
// Commands run through a [cmd.Runner] rather than a Go git library, so user
// configuration (SSH keys, credential helpers, includes) applies unchanged.
//
// # Parsing
//
//   - [ParsePorcelain]: records from `git worktree list --porcelain`
//   - [Selectable]: the records a user may open or remove
//   - [NewCatalog]: local and remote branches merged without duplicates
//
// # Client
//
// [Client] wraps the read-only queries ([Client.ListWorktrees],
// [Client.Branches], [Client.ProjectName]) and the mutating worktree
// commands ([Client.AddWorktree], [Client.AddWorktreeNewBranch],
// [Client.RemoveWorktree], [Client.PruneWorktrees]). Mutations should be
// made while holding [Lock].
//
// Known git failures are rewritten by [TranslateFailure]; everything else
// surfaces as a *cmd.Failure carrying git's stderr.
package git
