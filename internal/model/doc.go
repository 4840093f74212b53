// Package model defines the domain types and value objects for the
// git-wt CLI.
//
// This package contains pure data structures with no external dependencies.
// Worktree values are snapshots of `git worktree list` output taken at
// query time; they are never cached or constructed speculatively.
//
// The package also defines the error kinds shared by the core packages
// (GitError, FilesystemError, ErrNotARepository), the Reporter sink used
// for incremental progress output, and exit codes (ExitCode) with the
// CLIError type that carries them to the process boundary.
package model
