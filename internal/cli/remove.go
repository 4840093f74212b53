package cli

import (
	"fmt"

	"github.com/shinji-kodama/git-wt/internal/worktree"
)

// removeWorktree runs the "Remove worktree" flow.
//
// A worktree with uncommitted changes is only removed after an explicit
// confirmation, and then with --force. Declining makes no git call.
func (a *App) removeWorktree() error {
	worktrees, err := a.git.List(a.root)
	if err != nil {
		return err
	}

	removable := worktree.Removable(worktrees, a.root)
	if len(removable) == 0 {
		a.console.Warning("No worktrees to remove")
		return nil
	}

	labels := make([]string, 0, len(removable))
	for _, wt := range removable {
		labels = append(labels, fmt.Sprintf("%s (%s)", wt.DisplayBranch(), wt.Path))
	}

	index, err := a.prompter.Select("Select worktree to remove", labels)
	if err != nil {
		return err
	}
	selected := removable[index]

	dirty := worktree.IsDirty(a.git, selected.Path)
	if dirty {
		a.console.Blank()
		a.console.Warning("Worktree has uncommitted changes!")

		confirmed, err := a.prompter.Confirm("Remove anyway", false)
		if err != nil {
			return err
		}
		if !confirmed {
			a.console.Muted("Cancelled")
			return nil
		}
	}

	a.logger.Debug("removing worktree", "path", selected.Path, "force", dirty)
	if err := a.git.Remove(a.root, selected.Path, dirty); err != nil {
		return err
	}

	a.console.Success("Removed: %s", selected.Path)
	return nil
}
