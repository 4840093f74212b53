package worktree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/shinji-kodama/git-wt/internal/config"
	"github.com/shinji-kodama/git-wt/internal/filesync"
	"github.com/shinji-kodama/git-wt/internal/model"
)

// CreateRequest describes a worktree to create.
type CreateRequest struct {
	// RepoRoot is the main worktree. Files are synced from here and git
	// runs here.
	RepoRoot string

	// Branch is checked out in the new worktree, created first if missing.
	Branch string

	// Path is where the worktree will be created. It must not exist.
	Path string

	// Base overrides the branch a new branch starts from. Empty means
	// DefaultBranch. Ignored when Branch already exists.
	Base string
}

// Orchestrator creates worktrees: it picks the git strategy for the branch,
// runs git, then synchronizes configured files into the new directory.
type Orchestrator struct {
	git      Git
	reporter model.Reporter
	logger   *log.Logger
}

// NewOrchestrator returns an Orchestrator backed by g that reports nothing.
func NewOrchestrator(g Git) *Orchestrator {
	return &Orchestrator{
		git:      g,
		reporter: model.NopReporter{},
		logger:   log.New(io.Discard),
	}
}

// WithReporter sets the sink for file-sync progress.
func (o *Orchestrator) WithReporter(r model.Reporter) *Orchestrator {
	if r != nil {
		o.reporter = r
	}
	return o
}

// WithLogger sets the debug logger.
func (o *Orchestrator) WithLogger(logger *log.Logger) *Orchestrator {
	if logger != nil {
		o.logger = logger
	}
	return o
}

// Create creates the worktree described by req and syncs cfg's files into it.
//
// Steps:
//  1. Reject a blank branch or an existing target path before touching anything.
//  2. New branch: create it from the base (req.Base or DefaultBranch).
//     Existing branch: check it out.
//  3. Sync cfg.Files from req.RepoRoot into the new worktree.
//
// A git failure returns a *model.GitError and no outcome. A sync failure
// returns the outcome together with a *model.FilesystemError: the worktree
// exists and is usable, only the file sync needs retrying.
func (o *Orchestrator) Create(req CreateRequest, cfg *config.Config) (*model.CreationOutcome, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	branch := strings.TrimSpace(req.Branch)
	if branch == "" {
		return nil, model.ErrEmptyBranch
	}

	if _, err := os.Lstat(req.Path); err == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrPathExists, req.Path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to check target path %s: %w", req.Path, err)
	}

	outcome := &model.CreationOutcome{
		WorktreePath: req.Path,
		WasNewBranch: !o.git.BranchExists(req.RepoRoot, branch),
	}

	if outcome.WasNewBranch {
		base := strings.TrimSpace(req.Base)
		if base == "" {
			base = DefaultBranch(o.git, req.RepoRoot)
		}
		outcome.BaseBranch = base

		o.logger.Debug("creating worktree on new branch", "branch", branch, "base", base, "path", req.Path)
		if err := o.git.AddWorktreeNewBranch(req.RepoRoot, req.Path, branch, base); err != nil {
			return nil, err
		}
	} else {
		o.logger.Debug("creating worktree on existing branch", "branch", branch, "path", req.Path)
		if err := o.git.AddWorktree(req.RepoRoot, req.Path, branch); err != nil {
			return nil, err
		}
	}

	result, err := filesync.Sync(req.RepoRoot, req.Path, cfg.Files.Paths, cfg.Files.Mode, o.reporter)
	outcome.Sync = result
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}
