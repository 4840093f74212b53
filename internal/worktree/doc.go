// Package worktree provides the worktree lifecycle core of git-wt.
//
// All repository state changes are delegated to the git binary through the
// Git interface. Manager is the os/exec implementation; tests substitute a
// fake. On top of Git this package provides:
//   - branch resolution (ListBranches, DefaultBranch)
//   - deterministic worktree path derivation (SanitizeBranchName, DerivePath)
//   - the Orchestrator, which creates a worktree and synchronizes the
//     configured files into it
//   - listing helpers (StatusOf, Removable)
//
// Design decisions:
//   - We shell out to `git` rather than using a Go Git library (e.g., go-git)
//     because worktree operations require full Git CLI compatibility, and
//     go-git's worktree support is limited.
//   - Failed git invocations surface as *model.GitError carrying git's
//     stderr. Branch listing and default-branch probing are advisory and
//     degrade instead of failing.
package worktree
