package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/git-wt/internal/model"
	"github.com/shinji-kodama/git-wt/internal/ui"
	"github.com/shinji-kodama/git-wt/internal/worktree"
)

// listEntry is one row of the worktree listing, also used as the JSON and
// YAML output structure.
type listEntry struct {
	Branch   string               `json:"branch" yaml:"branch"`
	Path     string               `json:"path" yaml:"path"`
	Status   model.WorktreeStatus `json:"status" yaml:"status"`
	HEAD     string               `json:"head,omitempty" yaml:"head,omitempty"`
	Main     bool                 `json:"main" yaml:"main"`
	Locked   bool                 `json:"locked" yaml:"locked"`
	Prunable bool                 `json:"prunable" yaml:"prunable"`
}

// collectEntries lists the worktrees of root and computes their status.
// Worktrees are re-queried on every call.
func collectEntries(g worktree.Git, root string) ([]listEntry, error) {
	worktrees, err := g.List(root)
	if err != nil {
		return nil, err
	}

	entries := make([]listEntry, 0, len(worktrees))
	for i, wt := range worktrees {
		entries = append(entries, listEntry{
			Branch:   wt.DisplayBranch(),
			Path:     wt.Path,
			Status:   worktree.StatusOf(g, wt),
			HEAD:     wt.HEAD,
			Main:     i == 0,
			Locked:   wt.IsLocked,
			Prunable: wt.IsPrunable,
		})
	}
	return entries, nil
}

// listWorktrees runs the "List worktrees" menu action.
func (a *App) listWorktrees() error {
	entries, err := collectEntries(a.git, a.root)
	if err != nil {
		return err
	}

	a.console.Blank()
	printTable(a.console, entries)
	a.console.Blank()
	return nil
}

// runList implements --list: it prints the worktrees of the repository
// containing startDir and returns.
func runList(g worktree.Git, console *ui.Console, startDir, format string) error {
	root, err := g.MainWorktree(startDir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "not a git repository", err)
	}
	VerboseLog("main worktree: %s", root)

	entries, err := collectEntries(g, root)
	if err != nil {
		return model.WrapCLIError(model.ExitGitError, "failed to list worktrees", err)
	}

	switch strings.ToLower(format) {
	case formatJSON:
		return writeJSON(console.Writer(), entries)
	case formatYAML:
		return writeYAML(console.Writer(), entries)
	default:
		printTable(console, entries)
		return nil
	}
}

// printTable renders entries as a Branch/Path/Status table.
//
//	Branch     Path                Status
//	main       /src/app            clean
//	feature/x  /src/app-feature-x  dirty
func printTable(console *ui.Console, entries []listEntry) {
	if len(entries) == 0 {
		console.Warning("No worktrees found")
		return
	}

	styles := console.Styles()
	tbl := ui.NewTable(console, "Branch", "Path", "Status")
	for _, e := range entries {
		status := e.Status.String()
		switch e.Status {
		case model.StatusMissing:
			status = styles.Error.Render(status)
		case model.StatusDirty:
			status = styles.Warning.Render(status)
		case model.StatusClean:
			status = styles.Success.Render(status)
		}
		tbl.AddRow(e.Branch, e.Path, status)
	}
	tbl.Print()
}

// writeJSON prints entries as {"worktrees": [...]}.
func writeJSON(w io.Writer, entries []listEntry) error {
	result := struct {
		Worktrees []listEntry `json:"worktrees"`
	}{Worktrees: entries}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode worktrees: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeYAML prints entries under a top-level "worktrees" key.
func writeYAML(w io.Writer, entries []listEntry) error {
	result := struct {
		Worktrees []listEntry `yaml:"worktrees"`
	}{Worktrees: entries}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode worktrees: %w", err)
	}
	return enc.Close()
}
