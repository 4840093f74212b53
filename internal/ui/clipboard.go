package ui

import (
	"io"
	"os/exec"
	"strings"
)

// defaultClipboardCommands are tried in order until one succeeds.
var defaultClipboardCommands = [][]string{
	{"pbcopy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
}

// Clipboard copies text to the system clipboard through the first helper
// program that works.
type Clipboard struct {
	commands [][]string
}

// NewClipboard returns a Clipboard using pbcopy, xclip or xsel.
func NewClipboard() *Clipboard {
	return &Clipboard{commands: defaultClipboardCommands}
}

// Copy writes text to the clipboard and reports whether any helper
// succeeded. Missing helpers are skipped silently.
func (c *Clipboard) Copy(text string) bool {
	for _, argv := range c.commands {
		if len(argv) == 0 {
			continue
		}
		// #nosec G204 -- fixed helper programs
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		if err := cmd.Run(); err == nil {
			return true
		}
	}
	return false
}
