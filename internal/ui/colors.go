// Package ui provides styled console output, tables, prompts and clipboard
// access for the interactive session.
package ui

import "github.com/charmbracelet/lipgloss"

const (
	// SuccessIcon prefixes completed steps.
	SuccessIcon = "✓"

	// ErrorIcon prefixes failures.
	ErrorIcon = "✗"

	// WarningIcon prefixes non-fatal conditions.
	WarningIcon = "⚠"

	// ProgressIcon prefixes steps that are about to run.
	ProgressIcon = "→"
)

// Styles is the palette used by Console and the worktree table. Styles are
// bound to a renderer so color is only emitted when the destination writer
// is a terminal.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
	Branch  lipgloss.Style
}

// NewStyles builds the palette for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#0099FF")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("#888888")),
		Bold:    r.NewStyle().Bold(true),
		Branch:  r.NewStyle().Foreground(lipgloss.Color("#00D7D7")),
	}
}
