package ui

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConsole_PlainWriter verifies that a non-terminal writer gets icons
// and text without ANSI escapes.
func TestConsole_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Progress("Syncing %s", ".env")
	c.Success("Worktree created")
	c.Warning("Not found: %s", ".envrc")
	c.Failure("setup.sh (exit %d)", 2)
	c.Detail("npm ERR! missing script")
	c.Info("Setup")
	c.Muted("Cancelled")
	c.Blank()

	assert.Equal(t, strings.Join([]string{
		"→ Syncing .env",
		"✓ Worktree created",
		"⚠ Not found: .envrc",
		"✗ setup.sh (exit 2)",
		"    npm ERR! missing script",
		"Setup",
		"Cancelled",
		"",
		"",
	}, "\n"), buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	tbl := NewTable(c, "Branch", "Path", "Status")
	tbl.AddRow("main", "/src/app", "clean")
	tbl.AddRow("feature/long-name", "/src/app-feature-long-name", "dirty")
	tbl.Print()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Branch"))
	assert.Contains(t, lines[1], "/src/app")
	assert.Contains(t, lines[2], "feature/long-name")

	// Columns are aligned: the path column starts at the same offset.
	assert.Equal(t, strings.Index(lines[0], "Path"), strings.Index(lines[1], "/src/app"))
	assert.Equal(t, strings.Index(lines[0], "Path"), strings.Index(lines[2], "/src/app-feature"))
}

func TestClipboard_FallsBack(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out := filepath.Join(t.TempDir(), "clip.txt")

	c := &Clipboard{commands: [][]string{
		{"git-wt-no-such-clipboard"},
		{"sh", "-c", "exit 1"},
		{"sh", "-c", `cat > "$0"`, out},
	}}

	require.True(t, c.Copy("/src/app-feature-x"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "/src/app-feature-x", string(data))
}

func TestClipboard_NoneAvailable(t *testing.T) {
	c := &Clipboard{commands: [][]string{{"git-wt-no-such-clipboard"}, {}}}
	assert.False(t, c.Copy("text"))
}

func TestBellFilterWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &bellFilterWriter{w: &buf}

	n, err := w.Write([]byte("a\ab\a"))
	require.NoError(t, err)
	assert.Equal(t, 5, n, "reports the full input length")

	_, err = w.Write([]byte("c"))
	require.NoError(t, err)

	assert.Equal(t, "abc", buf.String())
	assert.NoError(t, w.Close())
}

// TestAddChoices verifies the add entry comes first and the caller's slice
// is left alone, so index 0 always means "type a new value".
func TestAddChoices(t *testing.T) {
	items := make([]string, 2, 4)
	copy(items, []string{"main", "feature/x"})

	choices := addChoices("New branch", items)
	assert.Equal(t, []string{"New branch", "main", "feature/x"}, choices)
	assert.Equal(t, []string{"main", "feature/x"}, items)

	choices[1] = "changed"
	assert.Equal(t, "main", items[0])

	assert.Equal(t, []string{"New branch"}, addChoices("New branch", nil))
}

// TestTerminal_StreamsShared verifies every prompt of a Terminal built by
// NewTerminal writes through the bell filter.
func TestTerminal_StreamsShared(t *testing.T) {
	term := NewTerminal()
	_, ok := term.Stdout.(*bellFilterWriter)
	assert.True(t, ok)
	assert.Equal(t, os.Stdin, term.Stdin)
}

func TestMapPromptError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"interrupt", promptui.ErrInterrupt, ErrCancelled},
		{"eof", promptui.ErrEOF, ErrCancelled},
		{"abort", promptui.ErrAbort, ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapPromptError(tt.err), tt.want)
		})
	}

	other := errors.New("terminal gone")
	assert.Equal(t, other, mapPromptError(other))
}
