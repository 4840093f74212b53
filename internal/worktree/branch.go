package worktree

// defaultRemote is the remote whose symbolic HEAD names the default branch.
const defaultRemote = "origin"

// fallbackBranch is returned by DefaultBranch when no other signal exists.
const fallbackBranch = "main"

// ListBranches returns local branch names for interactive completion.
// A git failure yields an empty list rather than an error.
func ListBranches(g Git, repoRoot string) []string {
	branches, err := g.ListBranches(repoRoot)
	if err != nil {
		return []string{}
	}
	return branches
}

// DefaultBranch resolves the repository's default branch.
//
// Resolution order:
//  1. the branch origin/HEAD points to
//  2. a local branch named "main"
//  3. a local branch named "master"
//  4. the literal "main"
//
// Every probe failure falls through to the next step.
func DefaultBranch(g Git, repoRoot string) string {
	if head, err := g.RemoteHead(repoRoot, defaultRemote); err == nil && head != "" {
		return head
	}

	for _, candidate := range []string{"main", "master"} {
		if g.BranchExists(repoRoot, candidate) {
			return candidate
		}
	}

	return fallbackBranch
}
