package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/git-wt/internal/hooks"
	"github.com/shinji-kodama/git-wt/internal/model"
	"github.com/shinji-kodama/git-wt/internal/worktree"
)

// newWorktree runs the "New worktree" flow.
//
// Every prompt is answered before anything touches the repository or the
// filesystem, so cancelling at any point leaves no trace.
func (a *App) newWorktree(ctx context.Context) error {
	branches := worktree.ListBranches(a.git, a.root)

	branch, err := a.prompter.SelectOrAdd("Branch", branches, "New branch")
	if err != nil {
		return err
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return model.ErrEmptyBranch
	}

	base := ""
	if a.opts.ChooseBase && !a.git.BranchExists(a.root, branch) {
		defaultBase := worktree.DefaultBranch(a.git, a.root)
		base, err = a.prompter.Input("Create from branch", defaultBase)
		if err != nil {
			return err
		}
		base = strings.TrimSpace(base)
		if base == "" {
			base = defaultBase
		}
	}

	suggested := worktree.DerivePath(a.root, branch)
	pathInput, err := a.prompter.Input("Path", suggested)
	if err != nil {
		return err
	}
	path, err := resolvePath(pathInput, suggested)
	if err != nil {
		return err
	}

	if _, err := os.Lstat(path); err == nil {
		a.console.Failure("Path already exists: %s", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	a.console.Blank()

	orchestrator := worktree.NewOrchestrator(a.git).
		WithReporter(a.console).
		WithLogger(a.logger)

	outcome, err := orchestrator.Create(worktree.CreateRequest{
		RepoRoot: a.root,
		Branch:   branch,
		Path:     path,
		Base:     base,
	}, a.cfg)
	if outcome == nil {
		return err
	}

	if outcome.WasNewBranch {
		a.console.Success("Worktree created on new branch %s (from %s)", branch, outcome.BaseBranch)
	} else {
		a.console.Success("Worktree created")
	}

	// The worktree is usable even if the sync failed; the files can be
	// copied by hand.
	if err != nil {
		a.console.Failure("File sync failed: %v", err)
	}
	a.reportSync(outcome.Sync)

	if len(a.cfg.Hooks.PostCreate) > 0 {
		a.runHooks(ctx, outcome.WorktreePath)
	}

	if a.opts.Clipboard != nil && a.opts.Clipboard.Copy(outcome.WorktreePath) {
		a.console.Success("Path copied to clipboard")
	}

	return nil
}

// reportSync prints the synced and skipped paths.
func (a *App) reportSync(result model.SyncResult) {
	if len(result.Synced) > 0 {
		a.console.Success("%s: %s", a.cfg.Files.Mode.Verb(), strings.Join(result.Synced, ", "))
	}
	if len(result.Skipped) > 0 {
		a.console.Warning("Not found: %s", strings.Join(result.Skipped, ", "))
	}
}

// runHooks executes the post-create hooks and prints a summary.
func (a *App) runHooks(ctx context.Context, worktreePath string) {
	a.console.Blank()
	a.console.Info("Running post-create hooks...")

	results := hooks.Run(ctx, worktreePath, a.cfg.Hooks.PostCreate, a.console)

	passed, failed := hooks.Summary(results)
	if failed == 0 {
		a.console.Success("Hooks: %d passed", passed)
	} else {
		a.console.Warning("Hooks: %d passed, %d failed", passed, failed)
	}
}

// resolvePath turns the path typed by the user into an absolute path.
// An empty answer selects fallback; a leading "~" is the home directory.
func resolvePath(input, fallback string) (string, error) {
	path := strings.TrimSpace(input)
	if path == "" {
		path = fallback
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
