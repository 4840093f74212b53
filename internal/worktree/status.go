package worktree

import (
	"os"
	"path/filepath"

	"github.com/shinji-kodama/git-wt/internal/model"
)

// IsDirty reports whether the worktree at path has uncommitted changes.
// The check is advisory: if git fails, the worktree is treated as clean.
func IsDirty(g Git, path string) bool {
	dirty, err := g.IsDirty(path)
	if err != nil {
		return false
	}
	return dirty
}

// StatusOf classifies a listed worktree. Bare entries are never probed;
// a missing directory is reported without running git.
func StatusOf(g Git, wt model.Worktree) model.WorktreeStatus {
	if wt.IsBare {
		return model.StatusBare
	}
	if _, err := os.Stat(wt.Path); err != nil {
		return model.StatusMissing
	}
	if IsDirty(g, wt.Path) {
		return model.StatusDirty
	}
	return model.StatusClean
}

// Removable returns the linked worktrees of a listing, in order. The main
// worktree at repoRoot and bare entries cannot be removed.
func Removable(worktrees []model.Worktree, repoRoot string) []model.Worktree {
	root := filepath.Clean(repoRoot)

	out := make([]model.Worktree, 0, len(worktrees))
	for _, wt := range worktrees {
		if wt.IsBare || filepath.Clean(wt.Path) == root {
			continue
		}
		out = append(out, wt)
	}
	return out
}
