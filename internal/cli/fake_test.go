package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/git-wt/internal/model"
	"github.com/shinji-kodama/git-wt/internal/ui"
	"github.com/shinji-kodama/git-wt/internal/worktree"
)

// fakeGit is an in-memory worktree.Git bound to a single repository.
type fakeGit struct {
	root      string
	rootErr   error
	branches  []string
	worktrees []model.Worktree
	dirty     map[string]bool
	listErr   error
	addErr    error
	removeErr error

	calls []string
}

var _ worktree.Git = (*fakeGit)(nil)

func newFakeGit(root string, branches ...string) *fakeGit {
	return &fakeGit{
		root:      root,
		branches:  branches,
		worktrees: []model.Worktree{{Path: root, HEAD: "aaa", Branch: "main"}},
		dirty:     map[string]bool{},
	}
}

func (f *fakeGit) record(parts ...string) {
	f.calls = append(f.calls, strings.Join(parts, " "))
}

func (f *fakeGit) MainWorktree(string) (string, error) {
	if f.rootErr != nil {
		return "", f.rootErr
	}
	return f.root, nil
}

func (f *fakeGit) ListBranches(string) ([]string, error) {
	return f.branches, nil
}

func (f *fakeGit) RemoteHead(string, string) (string, error) {
	return "", &model.GitError{Args: []string{"symbolic-ref"}, Stderr: "not a symbolic ref"}
}

func (f *fakeGit) BranchExists(_, branch string) bool {
	for _, b := range f.branches {
		if b == branch {
			return true
		}
	}
	return false
}

func (f *fakeGit) List(string) ([]model.Worktree, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.worktrees, nil
}

func (f *fakeGit) AddWorktree(_, worktreePath, branch string) error {
	f.record("add", worktreePath, branch)
	if f.addErr != nil {
		return f.addErr
	}
	return os.MkdirAll(worktreePath, 0o755)
}

func (f *fakeGit) AddWorktreeNewBranch(_, worktreePath, branch, base string) error {
	f.record("add -b", branch, worktreePath, base)
	if f.addErr != nil {
		return f.addErr
	}
	f.branches = append(f.branches, branch)
	return os.MkdirAll(worktreePath, 0o755)
}

func (f *fakeGit) Remove(_, worktreePath string, force bool) error {
	if force {
		f.record("remove --force", worktreePath)
	} else {
		f.record("remove", worktreePath)
	}
	return f.removeErr
}

func (f *fakeGit) IsDirty(path string) (bool, error) {
	return f.dirty[path], nil
}

// answer is one scripted reply to a prompt.
type answer struct {
	kind  string // "select", "add", "input" or "confirm"
	index int
	text  string
	yes   bool
	err   error
}

func selectAnswer(index int) answer { return answer{kind: "select", index: index} }
func addAnswer(text string) answer { return answer{kind: "add", text: text} }
func inputAnswer(text string) answer { return answer{kind: "input", text: text} }
func confirmAnswer(yes bool) answer { return answer{kind: "confirm", yes: yes} }
func cancelAnswer(kind string) answer { return answer{kind: kind, err: ui.ErrCancelled} }
func menuAnswer(action string) answer { return selectAnswer(menuIndex(action)) }
func defaultInput() answer { return inputAnswer("") }
func menuCancel() answer { return cancelAnswer("select") }

func menuIndex(action string) int {
	for i, item := range menuItems {
		if item == action {
			return i
		}
	}
	panic("unknown menu action " + action)
}

// scriptedPrompter replays answers in order and records every label and
// default it was asked with. Running out of answers fails the test.
type scriptedPrompter struct {
	t        *testing.T
	answers  []answer
	labels   []string
	defaults []string
	items    [][]string
}

var _ ui.Prompter = (*scriptedPrompter)(nil)

func newPrompter(t *testing.T, answers ...answer) *scriptedPrompter {
	return &scriptedPrompter{t: t, answers: answers}
}

func (p *scriptedPrompter) next(kind, label string) answer {
	p.t.Helper()
	require.NotEmpty(p.t, p.answers, "unexpected %s prompt %q", kind, label)

	a := p.answers[0]
	p.answers = p.answers[1:]
	require.Equal(p.t, a.kind, kind, "prompt %q", label)

	p.labels = append(p.labels, label)
	return a
}

func (p *scriptedPrompter) Select(label string, items []string) (int, error) {
	a := p.next("select", label)
	p.items = append(p.items, items)
	if a.err != nil {
		return -1, a.err
	}
	require.Less(p.t, a.index, len(items), "prompt %q", label)
	return a.index, nil
}

func (p *scriptedPrompter) SelectOrAdd(label string, items []string, _ string) (string, error) {
	a := p.next("add", label)
	p.items = append(p.items, items)
	return a.text, a.err
}

func (p *scriptedPrompter) Input(label, def string) (string, error) {
	a := p.next("input", label)
	p.defaults = append(p.defaults, def)
	if a.err != nil {
		return "", a.err
	}
	if a.text == "" {
		return def, nil
	}
	return a.text, nil
}

func (p *scriptedPrompter) Confirm(label string, _ bool) (bool, error) {
	a := p.next("confirm", label)
	return a.yes, a.err
}

// done asserts that every scripted answer was consumed.
func (p *scriptedPrompter) done() {
	p.t.Helper()
	require.Empty(p.t, p.answers, "unused answers")
}

// recordingClipboard remembers copied text.
type recordingClipboard struct {
	copied []string
}

func (c *recordingClipboard) Copy(text string) bool {
	c.copied = append(c.copied, text)
	return true
}
