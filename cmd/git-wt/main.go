// Package main is the entry point for the git-wt CLI.
//
// Run inside a git repository, git-wt opens an interactive menu to create,
// list and remove worktrees. All functionality lives in internal/cli.
//
// Build-time variables (version, commit, date) are injected via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse HEAD)" ./cmd/git-wt
package main

import (
	"github.com/shinji-kodama/git-wt/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
