// Package hooks runs post-create hooks inside a freshly created worktree.
//
// A hook identifier is resolved once into one of two kinds:
//   - KindExecutable: <worktree>/<identifier> is a file; it is executed directly.
//   - KindCommandLine: anything else; the identifier is split into argv with
//     POSIX shell-word rules and executed without a shell.
//
// No hook is ever passed to /bin/sh, so branch names or paths that end up in
// a hook string cannot inject shell syntax.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/shinji-kodama/git-wt/internal/model"
)

// stderrPreviewLines is how many lines of a failing hook's stderr are reported.
const stderrPreviewLines = 5

// Kind tells how a hook identifier is executed.
type Kind int

const (
	// KindExecutable runs a checked-in script by path.
	KindExecutable Kind = iota + 1

	// KindCommandLine runs a word-split command line.
	KindCommandLine
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindExecutable:
		return "executable"
	case KindCommandLine:
		return "command"
	default:
		return "unknown"
	}
}

// Hook is a resolved hook identifier.
type Hook struct {
	// Identifier is the hook string as configured.
	Identifier string

	Kind Kind

	// Argv is the program and its arguments. For KindExecutable it holds
	// only the absolute script path.
	Argv []string
}

// Resolve decides how identifier runs inside worktreeRoot.
func Resolve(worktreeRoot, identifier string) (Hook, error) {
	hook := Hook{Identifier: identifier}

	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return hook, errors.New("empty hook")
	}

	scriptPath := filepath.Join(worktreeRoot, trimmed)
	if info, err := os.Stat(scriptPath); err == nil && info.Mode().IsRegular() {
		hook.Kind = KindExecutable
		hook.Argv = []string{scriptPath}
		return hook, nil
	}

	argv, err := shlex.Split(trimmed, true)
	if err != nil {
		return hook, fmt.Errorf("failed to parse hook %q: %w", identifier, err)
	}
	if len(argv) == 0 {
		return hook, errors.New("empty hook")
	}

	hook.Kind = KindCommandLine
	hook.Argv = argv
	return hook, nil
}

// Run executes hooks in order inside worktreeRoot and returns one result
// per hook.
//
// Each hook runs to completion before the next starts. A failing hook is
// reported and recorded but never stops the remaining hooks. There is no
// timeout; cancelling ctx kills the running hook.
func Run(ctx context.Context, worktreeRoot string, identifiers []string, r model.Reporter) []model.HookResult {
	if r == nil {
		r = model.NopReporter{}
	}

	results := make([]model.HookResult, 0, len(identifiers))
	for _, identifier := range identifiers {
		r.Progress("Running: %s", identifier)

		result := runOne(ctx, worktreeRoot, identifier)
		if result.Succeeded {
			r.Success("%s", identifier)
		} else {
			reportFailure(r, result)
		}

		results = append(results, result)
	}
	return results
}

// runOne resolves and executes a single hook, capturing its stderr.
func runOne(ctx context.Context, worktreeRoot, identifier string) model.HookResult {
	result := model.HookResult{Identifier: identifier, ExitCode: -1}

	hook, err := Resolve(worktreeRoot, identifier)
	if err != nil {
		result.Err = err
		return result
	}

	// #nosec G204 -- argv comes from the user's own config and is never
	// interpreted by a shell
	cmd := exec.CommandContext(ctx, hook.Argv[0], hook.Argv[1:]...)
	cmd.Dir = worktreeRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		result.Err = err
		return result
	}

	result.ExitCode = 0
	result.Succeeded = true
	return result
}

// reportFailure prints the failed hook and the head of its stderr.
func reportFailure(r model.Reporter, result model.HookResult) {
	if result.ExitCode >= 0 {
		r.Failure("%s (exit %d)", result.Identifier, result.ExitCode)
	} else {
		r.Failure("%s: %v", result.Identifier, result.Err)
	}

	for _, line := range result.StderrHead(stderrPreviewLines) {
		r.Detail("%s", line)
	}
}

// Summary counts passed and failed results.
func Summary(results []model.HookResult) (passed, failed int) {
	for _, res := range results {
		if res.Succeeded {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
