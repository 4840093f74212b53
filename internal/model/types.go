package model

import (
	"fmt"
	"strings"
)

// FileMode selects how configured files are materialized into a new worktree.
type FileMode string

const (
	// ModeCopy copies files and directories into the worktree. Each worktree
	// then owns an independent copy that can diverge from the main checkout.
	ModeCopy FileMode = "copy"

	// ModeSymlink links each path back to the resolved source in the main
	// worktree, so edits are shared by every worktree.
	ModeSymlink FileMode = "symlink"
)

// String returns the string representation of FileMode.
func (m FileMode) String() string {
	return string(m)
}

// IsValid checks whether the FileMode value is one of the predefined modes.
func (m FileMode) IsValid() bool {
	switch m {
	case ModeCopy, ModeSymlink:
		return true
	default:
		return false
	}
}

// ParseFileMode converts a string to a FileMode.
// Returns an error if the string does not match any valid mode.
func ParseFileMode(s string) (FileMode, error) {
	mode := FileMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid file mode: %q (valid: copy, symlink)", s)
	}
	return mode, nil
}

// MarshalText implements encoding.TextMarshaler so the mode round-trips
// through TOML, JSON and YAML as a plain string.
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decoding rejects
// unknown modes instead of silently falling back to copy.
func (m *FileMode) UnmarshalText(text []byte) error {
	parsed, err := ParseFileMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Verb returns the past-tense verb used when reporting synced paths.
func (m FileMode) Verb() string {
	if m == ModeSymlink {
		return "Linked"
	}
	return "Copied"
}

// WorktreeStatus is the working-tree state shown when listing worktrees.
type WorktreeStatus string

const (
	// StatusBare marks the bare repository entry, which has no working tree.
	StatusBare WorktreeStatus = "bare"

	// StatusMissing indicates the worktree directory no longer exists, for
	// example after it was deleted without `git worktree remove`.
	StatusMissing WorktreeStatus = "missing"

	// StatusDirty indicates uncommitted or untracked changes.
	StatusDirty WorktreeStatus = "dirty"

	// StatusClean indicates nothing to commit.
	StatusClean WorktreeStatus = "clean"
)

// String returns the string representation of WorktreeStatus.
func (s WorktreeStatus) String() string {
	return string(s)
}

// Worktree represents one entry of `git worktree list --porcelain`.
//
// Example porcelain output for a single worktree block:
//
//	worktree /path/to/repo-feature-x
//	HEAD abc123def456
//	branch refs/heads/feature/x
type Worktree struct {
	// Path is the absolute filesystem path to the worktree directory.
	Path string `json:"path" yaml:"path"`

	// HEAD is the commit SHA that the worktree currently points to.
	HEAD string `json:"head" yaml:"head"`

	// Branch is the short branch name (e.g., "feature/x").
	// Empty when the worktree is detached or bare.
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`

	IsBare     bool `json:"bare" yaml:"bare"`
	IsDetached bool `json:"detached" yaml:"detached"`
	IsLocked   bool `json:"locked" yaml:"locked"`
	IsPrunable bool `json:"prunable" yaml:"prunable"`
}

// DisplayBranch returns the branch name, or "(detached)" when there is none.
func (w Worktree) DisplayBranch() string {
	if w.Branch == "" {
		return "(detached)"
	}
	return w.Branch
}

// SyncResult is the outcome of one file synchronization pass.
//
// Every configured path appears in exactly one of the two lists, in
// configured order.
type SyncResult struct {
	// Synced lists the paths that were copied or linked.
	Synced []string `json:"synced" yaml:"synced"`

	// Skipped lists the paths whose source did not exist in the main worktree.
	Skipped []string `json:"skipped" yaml:"skipped"`
}

// HookResult records the execution of a single post-create hook.
type HookResult struct {
	// Identifier is the hook as configured (script path or command line).
	Identifier string

	// Succeeded is true when the hook ran and exited with status 0.
	Succeeded bool

	// ExitCode is the process exit status, or -1 if the hook never started.
	ExitCode int

	// Stderr holds everything the hook wrote to standard error.
	Stderr string

	// Err is set when the hook could not be resolved or started, or exited
	// nonzero.
	Err error
}

// StderrHead returns at most n non-empty leading lines of the captured stderr.
func (r HookResult) StderrHead(n int) []string {
	trimmed := strings.TrimSpace(r.Stderr)
	if trimmed == "" || n <= 0 {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// CreationOutcome is the aggregate result of creating a worktree.
type CreationOutcome struct {
	// WorktreePath is the directory the worktree was created at.
	WorktreePath string

	// WasNewBranch is true when the branch did not exist and was created
	// from the base branch.
	WasNewBranch bool

	// BaseBranch is the branch a new branch was created from. Empty when
	// an existing branch was checked out.
	BaseBranch string

	// Sync is the result of materializing configured files.
	Sync SyncResult
}
