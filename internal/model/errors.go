package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotARepository is returned when git cannot locate a repository root.
	ErrNotARepository = errors.New("not a git repository")

	// ErrPathExists is returned when the target worktree path is already on disk.
	ErrPathExists = errors.New("path already exists")

	// ErrEmptyBranch is returned when a branch name is blank.
	ErrEmptyBranch = errors.New("branch name required")
)

// GitError is a failed git invocation. Stderr carries git's diagnostic text
// verbatim so it can be shown to the user.
type GitError struct {
	// Args are the git arguments, without the leading "git".
	Args []string

	// Stderr is git's trimmed standard error output.
	Stderr string

	// Err is the underlying exec error (usually *exec.ExitError).
	Err error
}

func (e *GitError) Error() string {
	message := fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", message, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", message, e.Err)
	}
	return message
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// FilesystemError is an I/O failure during file synchronization.
type FilesystemError struct {
	// Op names the failed step ("copy", "symlink", "mkdir", ...).
	Op string

	// Path is the configured relative path being synchronized.
	Path string

	Err error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ExitCode defines the process exit codes of the CLI.
type ExitCode int

const (
	// ExitSuccess indicates the session ended normally, including when the
	// user quit or interrupted a prompt.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unrecoverable error, such as running
	// outside a git repository.
	ExitGeneralError ExitCode = 1

	// ExitGitError indicates a git operation failed in a non-interactive run.
	ExitGitError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
