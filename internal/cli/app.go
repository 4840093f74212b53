package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/shinji-kodama/git-wt/internal/config"
	"github.com/shinji-kodama/git-wt/internal/model"
	"github.com/shinji-kodama/git-wt/internal/ui"
	"github.com/shinji-kodama/git-wt/internal/worktree"
)

// Menu entries, in display order.
const (
	actionNew    = "New worktree"
	actionList   = "List worktrees"
	actionRemove = "Remove worktree"
	actionConfig = "Edit config"
	actionQuit   = "Quit"
)

var menuItems = []string{actionNew, actionList, actionRemove, actionConfig, actionQuit}

// clipboardWriter copies text to the system clipboard.
type clipboardWriter interface {
	Copy(text string) bool
}

// Options tunes an App.
type Options struct {
	// ChooseBase asks for the base branch when a new branch is created.
	ChooseBase bool

	// Clipboard receives the path of each new worktree. Nil disables it.
	Clipboard clipboardWriter

	Logger *log.Logger
}

// App is one interactive git-wt session bound to a repository.
type App struct {
	git      worktree.Git
	prompter ui.Prompter
	console  *ui.Console
	opts     Options
	logger   *log.Logger

	// root is the main worktree; cfg its settings. Both are set by Run.
	root string
	cfg  *config.Config
}

// NewApp creates a session. Nothing runs until Run is called.
func NewApp(g worktree.Git, p ui.Prompter, c *ui.Console, opts Options) *App {
	l := opts.Logger
	if l == nil {
		l = log.New(io.Discard)
	}
	return &App{
		git:      g,
		prompter: p,
		console:  c,
		opts:     opts,
		logger:   l,
	}
}

// Run locates the main worktree of startDir, loads or bootstraps its
// configuration and serves the menu until the user quits.
//
// Only a missing repository or an unreadable config file end the session
// with an error. Failures inside a menu action are reported and the menu
// is shown again; a cancelled prompt ends the session cleanly.
func (a *App) Run(ctx context.Context, startDir string) error {
	root, err := a.git.MainWorktree(startDir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "not a git repository", err)
	}
	a.root = root
	a.logger.Debug("main worktree", "path", root)

	if config.Exists(root) {
		cfg, err := config.Load(root)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to load config", err)
		}
		a.cfg = cfg
	} else {
		cfg, err := a.setupConfig()
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				return nil
			}
			return model.WrapCLIError(model.ExitGeneralError, "failed to create config", err)
		}
		a.cfg = cfg
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		index, err := a.prompter.Select("What do you want to do?", menuItems)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				return nil
			}
			return model.WrapCLIError(model.ExitGeneralError, "prompt failed", err)
		}

		action := menuItems[index]
		if action == actionQuit {
			return nil
		}

		if err := a.dispatch(ctx, action); err != nil {
			a.reportActionError(err)
		}
	}
}

// dispatch runs one menu action.
func (a *App) dispatch(ctx context.Context, action string) error {
	a.logger.Debug("menu", "action", action)

	switch action {
	case actionNew:
		return a.newWorktree(ctx)
	case actionList:
		return a.listWorktrees()
	case actionRemove:
		return a.removeWorktree()
	case actionConfig:
		return a.editConfig()
	default:
		return nil
	}
}

// reportActionError shows why an action stopped. Cancellation is not a
// failure.
func (a *App) reportActionError(err error) {
	if errors.Is(err, ui.ErrCancelled) {
		a.console.Muted("Cancelled")
		return
	}
	a.console.Failure("%v", err)
}
