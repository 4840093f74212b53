package ui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrCancelled is returned by a Prompter when the user interrupts a prompt
// (Ctrl-C, Ctrl-D or closed input).
var ErrCancelled = errors.New("cancelled")

// Prompter asks the user for input. Every method returns ErrCancelled when
// the prompt is aborted.
type Prompter interface {
	// Select asks the user to pick one of items and returns its index.
	Select(label string, items []string) (int, error)

	// SelectOrAdd asks the user to pick one of items or type a new value,
	// and returns the chosen or typed value.
	SelectOrAdd(label string, items []string, addLabel string) (string, error)

	// Input asks for free text, pre-filled with def.
	Input(label, def string) (string, error)

	// Confirm asks a yes/no question. def is the answer on a bare Enter.
	Confirm(label string, def bool) (bool, error)
}

// Terminal is a Prompter backed by promptui.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal returns a Terminal on the process's stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		Stdin:  os.Stdin,
		Stdout: &bellFilterWriter{w: os.Stdout},
	}
}

// Select implements Prompter.
func (t *Terminal) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label:        label,
		Items:        items,
		Size:         min(len(items), 10),
		HideSelected: true,
		Stdin:        t.Stdin,
		Stdout:       t.Stdout,
		Searcher: func(input string, index int) bool {
			query := strings.ToLower(strings.TrimSpace(input))
			return query == "" || strings.Contains(strings.ToLower(items[index]), query)
		},
	}
	index, _, err := prompt.Run()
	if err != nil {
		return -1, mapPromptError(err)
	}
	return index, nil
}

// SelectOrAdd implements Prompter. addLabel is listed first; choosing it
// asks for the new value on a follow-up prompt.
func (t *Terminal) SelectOrAdd(label string, items []string, addLabel string) (string, error) {
	choices := addChoices(addLabel, items)
	index, err := t.Select(label, choices)
	if err != nil {
		return "", err
	}
	if index > 0 {
		return choices[index], nil
	}

	prompt := promptui.Prompt{
		Label:  addLabel,
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("value required")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return "", mapPromptError(err)
	}
	return strings.TrimSpace(value), nil
}

// addChoices returns the branch chooser list: addLabel followed by items.
// items is never modified.
func addChoices(addLabel string, items []string) []string {
	choices := make([]string, 0, len(items)+1)
	choices = append(choices, addLabel)
	return append(choices, items...)
}

// Input implements Prompter.
func (t *Terminal) Input(label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	value, err := prompt.Run()
	if err != nil {
		return "", mapPromptError(err)
	}
	return value, nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(label string, def bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	if def {
		prompt.Default = "y"
	}

	_, err := prompt.Run()
	if err == nil {
		return true, nil
	}
	// promptui signals a "no" answer with ErrAbort.
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	return false, mapPromptError(err)
}

// mapPromptError turns promptui's interruption errors into ErrCancelled.
func mapPromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrCancelled
	}
	return err
}

// bellFilterWriter drops the terminal bell readline emits on every
// keystroke inside a select list.
type bellFilterWriter struct {
	w io.Writer
}

func (b *bellFilterWriter) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\a') == -1 {
		if _, err := b.w.Write(p); err != nil {
			return 0, err
		}
		return len(p), nil
	}
	filtered := bytes.ReplaceAll(p, []byte{'\a'}, nil)
	if _, err := b.w.Write(filtered); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (b *bellFilterWriter) Close() error {
	return nil
}
