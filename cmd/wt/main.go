// Command wt creates, lists, opens and removes the git worktrees of the
// repository it is run in.
package main

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString is printed by `wt --version`.
func versionString() string {
	short := commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("wt %s (%s, built %s, %s)", version, short, date, runtime.Version())
}
