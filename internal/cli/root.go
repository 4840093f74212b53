// Package cli implements the git-wt command line: a single cobra command
// that starts the interactive worktree session, or prints the worktree list
// with --list.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/git-wt/internal/model"
	"github.com/shinji-kodama/git-wt/internal/ui"
	"github.com/shinji-kodama/git-wt/internal/worktree"
)

// Global flag variables bound to persistent flags on the root command.
var (
	// verbose enables debug logging of every git invocation to stderr.
	verbose bool

	// logger is the diagnostics logger. It is replaced in PersistentPreRun
	// once --verbose has been parsed.
	logger = newLogger(os.Stderr, false)
)

// Build information, injected from the main package.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values of the root command.
type rootFlags struct {
	// list prints the worktrees and exits instead of starting the menu.
	list bool

	// format selects the --list output: table, json or yaml.
	format string

	// chooseBase prompts for the base branch when creating a new branch.
	chooseBase bool

	// noClipboard disables copying the new worktree path to the clipboard.
	noClipboard bool
}

// NewRootCommand creates the git-wt command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "git-wt",
		Short: "Interactive git worktree manager",
		Long: `git-wt creates, lists and removes git worktrees through an interactive menu.

New worktrees are placed next to the main checkout as <repo>-<branch>.
Untracked files such as .env are copied or symlinked from the main worktree,
and post-create hooks run inside the new worktree. Settings are stored in
.git-wt.toml at the repository root.

Examples:
  git-wt
  git-wt --choose-base
  git-wt --list --format json`,

		Args: cobra.NoArgs,

		// Errors are printed by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log git invocations to stderr")

	rootCmd.Flags().BoolVarP(&flags.list, "list", "l", false, "Print worktrees and exit")
	rootCmd.Flags().StringVar(&flags.format, "format", formatTable, "Output format for --list: table, json, yaml")
	rootCmd.Flags().BoolVar(&flags.chooseBase, "choose-base", false, "Ask which branch a new branch starts from")
	rootCmd.Flags().BoolVar(&flags.noClipboard, "no-clipboard", false, "Do not copy the new worktree path to the clipboard")

	return rootCmd
}

// runRoot dispatches to the list printer or the interactive session.
func runRoot(cmd *cobra.Command, flags *rootFlags) error {
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}

	mgr := worktree.NewManager().WithLogger(logger)
	console := ui.NewConsole(cmd.OutOrStdout())

	if flags.list {
		return runList(mgr, console, cwd, flags.format)
	}

	opts := Options{
		ChooseBase: flags.chooseBase,
		Logger:     logger,
	}
	if !flags.noClipboard {
		opts.Clipboard = ui.NewClipboard()
	}

	app := NewApp(mgr, ui.NewTerminal(), console, opts)
	return app.Run(cmd.Context(), cwd)
}

// Execute runs the root command and exits with the code carried by a
// *model.CLIError. Other errors exit with code 1.
//
// An interrupt cancels the command context: a running hook is killed and
// the session ends at the next menu.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(os.Stderr, err))
}

// exitCode prints err, if any, and returns the process exit code for it.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return int(model.ExitSuccess)
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(w, cliErr.Message, cliErr.Err)
		return int(cliErr.Code)
	}

	printError(w, err.Error(), nil)
	return int(model.ExitGeneralError)
}

// printError writes "Error: <message>[: <underlying>]" to w.
func printError(w io.Writer, message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog writes a debug message. It is visible only with --verbose.
func VerboseLog(format string, args ...any) {
	logger.Debugf(format, args...)
}

// newLogger returns the diagnostics logger: debug level when verbose,
// warnings only otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "git-wt"})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// Output formats for --list.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// validateFormat rejects unknown --format values.
func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid format %q: valid values are table, json, yaml", format))
	}
}
