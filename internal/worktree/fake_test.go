package worktree

import (
	"os"
	"strings"

	"github.com/shinji-kodama/git-wt/internal/model"
)

// fakeGit is an in-memory Git. It records mutating calls and, on a
// successful add, creates the worktree directory like git would.
type fakeGit struct {
	branches   map[string]bool
	remoteHead string
	remoteErr  error
	listErr    error
	addErr     error
	dirty      map[string]bool
	dirtyErr   error

	// afterAdd runs once the worktree directory exists.
	afterAdd func(worktreePath string) error

	calls []string
}

var _ Git = (*fakeGit)(nil)

func newFakeGit(branches ...string) *fakeGit {
	f := &fakeGit{branches: map[string]bool{}}
	for _, b := range branches {
		f.branches[b] = true
	}
	return f
}

func (f *fakeGit) record(parts ...string) {
	f.calls = append(f.calls, strings.Join(parts, " "))
}

func (f *fakeGit) MainWorktree(path string) (string, error) {
	return path, nil
}

func (f *fakeGit) ListBranches(string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []string
	for b := range f.branches {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeGit) RemoteHead(string, string) (string, error) {
	if f.remoteErr != nil {
		return "", f.remoteErr
	}
	if f.remoteHead == "" {
		return "", &model.GitError{Args: []string{"symbolic-ref"}, Stderr: "not a symbolic ref"}
	}
	return f.remoteHead, nil
}

func (f *fakeGit) BranchExists(_, branch string) bool {
	return f.branches[branch]
}

func (f *fakeGit) List(string) ([]model.Worktree, error) {
	return nil, nil
}

func (f *fakeGit) AddWorktree(_, worktreePath, branch string) error {
	f.record("add", worktreePath, branch)
	if f.addErr != nil {
		return f.addErr
	}
	return f.create(worktreePath)
}

func (f *fakeGit) AddWorktreeNewBranch(_, worktreePath, branch, base string) error {
	f.record("add -b", branch, worktreePath, base)
	if f.addErr != nil {
		return f.addErr
	}
	f.branches[branch] = true
	return f.create(worktreePath)
}

func (f *fakeGit) create(worktreePath string) error {
	if err := os.MkdirAll(worktreePath, 0o755); err != nil {
		return err
	}
	if f.afterAdd != nil {
		return f.afterAdd(worktreePath)
	}
	return nil
}

func (f *fakeGit) Remove(_, worktreePath string, force bool) error {
	if force {
		f.record("remove --force", worktreePath)
	} else {
		f.record("remove", worktreePath)
	}
	return nil
}

func (f *fakeGit) IsDirty(path string) (bool, error) {
	if f.dirtyErr != nil {
		return false, f.dirtyErr
	}
	return f.dirty[path], nil
}
