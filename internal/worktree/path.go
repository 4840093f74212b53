package worktree

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeChars matches everything that may not appear in a worktree
// directory suffix.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeBranchName converts a branch name into a directory-name suffix.
// "/" and " " become "-", then every character outside [A-Za-z0-9_-] is
// dropped. "feature/add login" becomes "feature-add-login".
func SanitizeBranchName(branch string) string {
	name := strings.NewReplacer("/", "-", " ", "-").Replace(branch)
	return unsafeChars.ReplaceAllString(name, "")
}

// DerivePath suggests where the worktree for branch should live: a sibling
// of the main worktree named "<repo>-<sanitized branch>".
//
// Worktrees are never nested inside the main worktree, which would make
// git see them as untracked content and confuse the relative paths used
// by file sync.
func DerivePath(repoRoot, branch string) string {
	repoRoot = filepath.Clean(repoRoot)
	repoName := filepath.Base(repoRoot)
	return filepath.Join(filepath.Dir(repoRoot), repoName+"-"+SanitizeBranchName(branch))
}
