package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// NewTable creates a table that prints to the console's writer, with the
// first column highlighted.
func NewTable(c *Console, headers ...any) table.Table {
	tbl := table.New(headers...)
	tbl.WithWriter(c.Writer())

	// Header formatting breaks column alignment, so only the first column
	// is styled.
	tbl.WithFirstColumnFormatter(func(format string, vals ...any) string {
		return c.Styles().Branch.Render(fmt.Sprintf(format, vals...))
	})

	tbl.WithPadding(2)

	// Cells may already contain ANSI styling.
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}
