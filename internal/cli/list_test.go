package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/git-wt/internal/model"
	"github.com/shinji-kodama/git-wt/internal/ui"
)

// listFixture returns a fake repository with a main, a dirty linked and a
// missing worktree.
func listFixture(t *testing.T) *fakeGit {
	t.Helper()

	root := t.TempDir()
	linked := t.TempDir()

	g := newFakeGit(root, "main")
	g.worktrees = []model.Worktree{
		{Path: root, HEAD: "aaa", Branch: "main"},
		{Path: linked, HEAD: "bbb", Branch: "feature/x", IsLocked: true},
		{Path: root + "-gone", HEAD: "ccc", IsDetached: true, IsPrunable: true},
	}
	g.dirty[linked] = true
	return g
}

func TestRunList_JSON(t *testing.T) {
	g := listFixture(t)
	var out bytes.Buffer

	require.NoError(t, runList(g, ui.NewConsole(&out), g.root, "json"))

	var result struct {
		Worktrees []listEntry `json:"worktrees"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.Worktrees, 3)

	assert.Equal(t, listEntry{
		Branch: "main", Path: g.root, Status: model.StatusClean, HEAD: "aaa", Main: true,
	}, result.Worktrees[0])
	assert.Equal(t, model.StatusDirty, result.Worktrees[1].Status)
	assert.True(t, result.Worktrees[1].Locked)
	assert.Equal(t, "(detached)", result.Worktrees[2].Branch)
	assert.Equal(t, model.StatusMissing, result.Worktrees[2].Status)
	assert.True(t, result.Worktrees[2].Prunable)
}

func TestRunList_YAML(t *testing.T) {
	g := listFixture(t)
	var out bytes.Buffer

	require.NoError(t, runList(g, ui.NewConsole(&out), g.root, "YAML"))

	var result struct {
		Worktrees []listEntry `yaml:"worktrees"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.Worktrees, 3)
	assert.Equal(t, "feature/x", result.Worktrees[1].Branch)
	assert.Equal(t, model.StatusDirty, result.Worktrees[1].Status)
	assert.Contains(t, out.String(), "status: missing")
}

func TestRunList_Table(t *testing.T) {
	g := listFixture(t)
	var out bytes.Buffer

	require.NoError(t, runList(g, ui.NewConsole(&out), g.root, "table"))

	assert.Contains(t, out.String(), "Branch")
	assert.Contains(t, out.String(), "feature/x")
	assert.Contains(t, out.String(), "dirty")
	assert.Contains(t, out.String(), "missing")
}

func TestRunList_Errors(t *testing.T) {
	g := listFixture(t)
	g.rootErr = errors.New("fatal: not a git repository")

	err := runList(g, ui.NewConsole(&bytes.Buffer{}), "/tmp", "table")
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)

	g = listFixture(t)
	g.listErr = &model.GitError{Args: []string{"worktree", "list"}, Stderr: "boom"}

	err = runList(g, ui.NewConsole(&bytes.Buffer{}), g.root, "json")
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGitError, cliErr.Code)
}

func TestPrintTable_Empty(t *testing.T) {
	var out bytes.Buffer
	printTable(ui.NewConsole(&out), nil)
	assert.Equal(t, "⚠ No worktrees found\n", out.String())
}
