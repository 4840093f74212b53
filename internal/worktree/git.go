package worktree

import "github.com/shinji-kodama/git-wt/internal/model"

// Git is the set of git operations git-wt depends on. Every method takes
// the directory to run in so implementations stay stateless.
type Git interface {
	// MainWorktree returns the absolute path of the main worktree of the
	// repository containing path. Returns an error wrapping
	// model.ErrNotARepository if path is not inside a repository.
	MainWorktree(path string) (string, error)

	// ListBranches returns the short names of all local branches.
	ListBranches(repoPath string) ([]string, error)

	// RemoteHead returns the branch the remote's symbolic HEAD points to
	// (e.g., "main" for refs/remotes/origin/HEAD -> refs/remotes/origin/main).
	RemoteHead(repoPath, remote string) (string, error)

	// BranchExists reports whether refs/heads/<branch> exists.
	// It never mutates repository state.
	BranchExists(repoPath, branch string) bool

	// List returns all worktrees of the repository in git's order;
	// the main worktree comes first.
	List(repoPath string) ([]model.Worktree, error)

	// AddWorktree checks out an existing branch into a new worktree.
	AddWorktree(repoPath, worktreePath, branch string) error

	// AddWorktreeNewBranch creates branch from base and checks it out into
	// a new worktree.
	AddWorktreeNewBranch(repoPath, worktreePath, branch, base string) error

	// Remove deletes a worktree. force is required when the worktree has
	// uncommitted changes.
	Remove(repoPath, worktreePath string, force bool) error

	// IsDirty reports whether the worktree has uncommitted changes.
	IsDirty(worktreePath string) (bool, error)
}
