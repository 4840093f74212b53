package cli

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/git-wt/internal/config"
	"github.com/shinji-kodama/git-wt/internal/model"
)

// defaultSetupPaths pre-fills the file prompt of a first-time setup.
var defaultSetupPaths = []string{".env", ".envrc"}

// modeChoices are offered by the mode prompt.
var modeChoices = []model.FileMode{model.ModeCopy, model.ModeSymlink}

// setupConfig builds the configuration of a repository without a settings
// file and optionally saves it. A cancelled prompt returns ui.ErrCancelled
// and nothing is written.
func (a *App) setupConfig() (*config.Config, error) {
	a.console.Blank()
	a.console.Warning("No config found. Let's create one.")
	a.console.Blank()

	initial := config.Default()
	initial.Files.Paths = defaultSetupPaths

	cfg, err := a.promptConfig(initial)
	if err != nil {
		return nil, err
	}

	save, err := a.prompter.Confirm("Save config", true)
	if err != nil {
		return nil, err
	}
	if save {
		if err := config.Save(a.root, cfg); err != nil {
			return nil, err
		}
		a.console.Success("Config saved to %s", config.FileName)
		a.console.Blank()
	}

	return cfg, nil
}

// editConfig runs the "Edit config" menu action: the setup prompts,
// pre-filled with the current values, then save.
func (a *App) editConfig() error {
	a.console.Blank()

	cfg, err := a.promptConfig(a.cfg)
	if err != nil {
		return err
	}
	if err := config.Save(a.root, cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.console.Success("Config saved")
	a.console.Blank()
	return nil
}

// promptConfig asks for every setting, using current as the defaults.
func (a *App) promptConfig(current *config.Config) (*config.Config, error) {
	files, err := a.prompter.Input("Files to sync (comma-separated)", strings.Join(current.Files.Paths, ", "))
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(modeChoices))
	for _, m := range modeChoices {
		labels = append(labels, m.String())
	}
	index, err := a.prompter.Select(fmt.Sprintf("Mode (current: %s)", current.Files.Mode), labels)
	if err != nil {
		return nil, err
	}

	hookInput, err := a.prompter.Input("Post-create hooks (separate with ';', optional)", strings.Join(current.Hooks.PostCreate, "; "))
	if err != nil {
		return nil, err
	}

	return &config.Config{
		Files: config.FilesConfig{
			Mode:  modeChoices[index],
			Paths: splitList(files, ","),
		},
		Hooks: config.HooksConfig{
			PostCreate: splitList(hookInput, ";"),
		},
	}, nil
}

// splitList splits s on sep, trims each element and drops empty ones.
// The result is never nil.
func splitList(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
