package worktree

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinji-kodama/git-wt/internal/model"
)

func TestStatusOf(t *testing.T) {
	clean := t.TempDir()
	dirty := t.TempDir()

	g := newFakeGit()
	g.dirty = map[string]bool{dirty: true}

	tests := []struct {
		name string
		wt   model.Worktree
		want model.WorktreeStatus
	}{
		{"bare", model.Worktree{Path: filepath.Join(clean, "nope"), IsBare: true}, model.StatusBare},
		{"missing", model.Worktree{Path: filepath.Join(clean, "gone")}, model.StatusMissing},
		{"dirty", model.Worktree{Path: dirty}, model.StatusDirty},
		{"clean", model.Worktree{Path: clean}, model.StatusClean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(g, tt.wt))
		})
	}
}

// TestIsDirty_ErrorIsClean verifies that a failing status check is advisory.
func TestIsDirty_ErrorIsClean(t *testing.T) {
	g := newFakeGit()
	g.dirtyErr = errors.New("git status failed")

	assert.False(t, IsDirty(g, t.TempDir()))
	assert.Equal(t, model.StatusClean, StatusOf(g, model.Worktree{Path: t.TempDir()}))
}

func TestRemovable(t *testing.T) {
	worktrees := []model.Worktree{
		{Path: "/src/app", Branch: "main"},
		{Path: "/src/app.git", IsBare: true},
		{Path: "/src/app-feature-x", Branch: "feature/x"},
		{Path: "/src/app-detached", IsDetached: true},
	}

	got := Removable(worktrees, "/src/app/")
	assert.Equal(t, []model.Worktree{worktrees[2], worktrees[3]}, got)

	assert.Empty(t, Removable(worktrees[:1], "/src/app"))
}
