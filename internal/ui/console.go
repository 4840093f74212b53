package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/shinji-kodama/git-wt/internal/model"
)

// Console writes user-facing messages to a single writer. It implements
// model.Reporter so sync and hook progress can be streamed to the user.
type Console struct {
	out    io.Writer
	styles Styles
}

var _ model.Reporter = (*Console)(nil)

// NewConsole returns a Console writing to out. Colors are enabled only when
// out is a terminal.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// Writer returns the destination writer.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Styles returns the palette bound to the destination writer.
func (c *Console) Styles() Styles {
	return c.styles
}

func (c *Console) line(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintf(c.out, "%s\n", style.Render(icon+" "+fmt.Sprintf(format, args...)))
}

// Progress prints a step that is about to run.
func (c *Console) Progress(format string, args ...any) {
	c.line(ProgressIcon, c.styles.Dim, format, args...)
}

// Success prints a completed step.
func (c *Console) Success(format string, args ...any) {
	c.line(SuccessIcon, c.styles.Success, format, args...)
}

// Warning prints a non-fatal condition.
func (c *Console) Warning(format string, args ...any) {
	c.line(WarningIcon, c.styles.Warning, format, args...)
}

// Failure prints a failed step.
func (c *Console) Failure(format string, args ...any) {
	c.line(ErrorIcon, c.styles.Error, format, args...)
}

// Detail prints an indented diagnostic line.
func (c *Console) Detail(format string, args ...any) {
	fmt.Fprintf(c.out, "    %s\n", c.styles.Dim.Render(fmt.Sprintf(format, args...)))
}

// Info prints a plain highlighted message without an icon.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, "%s\n", c.styles.Info.Render(fmt.Sprintf(format, args...)))
}

// Muted prints a dimmed message.
func (c *Console) Muted(format string, args ...any) {
	fmt.Fprintf(c.out, "%s\n", c.styles.Dim.Render(fmt.Sprintf(format, args...)))
}

// Blank prints an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.out)
}
