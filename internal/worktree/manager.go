package worktree

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/shinji-kodama/git-wt/internal/model"
)

// Manager implements Git by invoking the git CLI.
//
// It holds no repository state; every method receives the directory to
// operate in. The only configuration is the git binary and a logger that
// records each invocation at debug level.
type Manager struct {
	gitPath string
	logger  *log.Logger
}

// NewManager creates a Manager that runs the "git" found on PATH and
// discards its debug log.
func NewManager() *Manager {
	return &Manager{
		gitPath: "git",
		logger:  log.New(io.Discard),
	}
}

// WithLogger sets the logger used for per-invocation debug output.
func (m *Manager) WithLogger(logger *log.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithGitPath overrides the git executable.
func (m *Manager) WithGitPath(path string) *Manager {
	if path != "" {
		m.gitPath = path
	}
	return m
}

// MainWorktree returns the main worktree of the repository containing path.
//
// `git worktree list --porcelain` always lists the main worktree first,
// which lets git-wt be launched from inside a linked worktree and still
// sync files from the main checkout.
func (m *Manager) MainWorktree(path string) (string, error) {
	worktrees, err := m.List(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrNotARepository, err)
	}
	if len(worktrees) == 0 {
		return "", model.ErrNotARepository
	}
	return worktrees[0].Path, nil
}

// ListBranches returns the short names of local branches, in git's order.
func (m *Manager) ListBranches(repoPath string) ([]string, error) {
	output, err := m.runGit(repoPath, "branch", "--list", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}

	var branches []string
	for _, line := range strings.Split(output, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

// RemoteHead resolves refs/remotes/<remote>/HEAD to the short branch name
// it points at. It fails when the remote has no symbolic HEAD, which is
// the normal state for repositories that were not cloned.
func (m *Manager) RemoteHead(repoPath, remote string) (string, error) {
	output, err := m.runGit(repoPath, "symbolic-ref", "refs/remotes/"+remote+"/HEAD")
	if err != nil {
		return "", err
	}
	ref := strings.TrimSpace(output)
	return strings.TrimPrefix(ref, "refs/remotes/"+remote+"/"), nil
}

// BranchExists checks whether a local branch with the given name exists.
//
// The fully qualified refs/heads/ form keeps tags and remote-tracking refs
// with the same name from being mistaken for a local branch.
func (m *Manager) BranchExists(repoPath, branch string) bool {
	_, err := m.runGit(repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// List returns information about all worktrees associated with the given repository.
//
// It runs `git worktree list --porcelain` which produces machine-parseable output.
// Each worktree block is separated by a blank line.
func (m *Manager) List(repoPath string) ([]model.Worktree, error) {
	output, err := m.runGit(repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelainOutput(output), nil
}

// AddWorktree runs `git worktree add <worktreePath> <branch>`.
func (m *Manager) AddWorktree(repoPath, worktreePath, branch string) error {
	_, err := m.runGit(repoPath, "worktree", "add", worktreePath, branch)
	return err
}

// AddWorktreeNewBranch runs `git worktree add -b <branch> <worktreePath> [base]`.
// When base is empty git starts the branch at HEAD.
func (m *Manager) AddWorktreeNewBranch(repoPath, worktreePath, branch, base string) error {
	args := []string{"worktree", "add", "-b", branch, worktreePath}
	if base != "" {
		args = append(args, base)
	}
	_, err := m.runGit(repoPath, args...)
	return err
}

// Remove deletes a Git worktree at the specified path.
//
// If force is true, the --force flag is added to allow removal of
// worktrees with uncommitted changes.
func (m *Manager) Remove(repoPath, worktreePath string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, worktreePath)

	_, err := m.runGit(repoPath, args...)
	return err
}

// IsDirty reports whether `git status --porcelain` prints anything for
// the worktree.
func (m *Manager) IsDirty(worktreePath string) (bool, error) {
	output, err := m.runGit(worktreePath, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// runGit executes a git command with the given arguments in the specified directory.
//
// It captures both stdout and stderr. On success it returns stdout. On
// failure it returns a *model.GitError holding git's stderr.
//
// The directory is passed to git via the -C flag so the process's working
// directory is never changed.
func (m *Manager) runGit(dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	// #nosec G204 -- arguments are passed as an argv, never through a shell
	cmd := exec.Command(m.gitPath, fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	m.logger.Debug("git", "dir", dir, "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		gitErr := &model.GitError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
		m.logger.Debug("git failed", "args", strings.Join(args, " "), "err", gitErr.Stderr)
		return "", gitErr
	}

	return stdout.String(), nil
}

// parsePorcelainOutput parses the output of `git worktree list --porcelain`.
//
// Example input:
//
//	worktree /path/to/main
//	HEAD abc123
//	branch refs/heads/main
//
//	worktree /path/to/detached
//	HEAD def456
//	detached
//	locked reason text
//	prunable gitdir file points to non-existent location
//
// "locked" and "prunable" may appear with or without a reason.
func parsePorcelainOutput(output string) []model.Worktree {
	var worktrees []model.Worktree

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	var current *model.Worktree
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")

		// A blank line signals the end of a worktree block.
		if line == "" {
			if current != nil {
				worktrees = append(worktrees, *current)
				current = nil
			}
			continue
		}

		key, value, _ := strings.Cut(line, " ")

		if key == "worktree" {
			if current != nil {
				worktrees = append(worktrees, *current)
			}
			current = &model.Worktree{Path: value}
			continue
		}
		if current == nil {
			continue
		}

		switch key {
		case "HEAD":
			current.HEAD = value
		case "branch":
			current.Branch = strings.TrimPrefix(value, "refs/heads/")
		case "bare":
			current.IsBare = true
		case "detached":
			current.IsDetached = true
		case "locked":
			current.IsLocked = true
		case "prunable":
			current.IsPrunable = true
		}
	}

	// Handle the last block if the output doesn't end with a blank line.
	if current != nil {
		worktrees = append(worktrees, *current)
	}

	return worktrees
}
