// Package config loads and saves the per-repository git-wt settings file.
//
// The file lives at the main worktree root as .git-wt.toml:
//
//	[files]
//	mode = "copy"
//	paths = [".env", ".envrc"]
//
//	[hooks]
//	post_create = ["scripts/setup.sh", "npm install"]
//
// A missing file is not an error; Load returns Default().
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/shinji-kodama/git-wt/internal/filesync"
	"github.com/shinji-kodama/git-wt/internal/model"
)

// FileName is the name of the settings file at the repository root.
const FileName = ".git-wt.toml"

// Config is the typed content of .git-wt.toml.
type Config struct {
	Files FilesConfig `toml:"files"`
	Hooks HooksConfig `toml:"hooks"`
}

// FilesConfig lists the untracked files synced into new worktrees.
type FilesConfig struct {
	// Mode selects copy or symlink materialization.
	Mode model.FileMode `toml:"mode"`

	// Paths are relative to the repository root. Order is preserved in
	// sync results and reports.
	Paths []string `toml:"paths"`
}

// HooksConfig lists commands run after a worktree is created.
type HooksConfig struct {
	// PostCreate holds script paths (relative to the worktree) or command
	// lines, run in order.
	PostCreate []string `toml:"post_create"`
}

// Default returns the settings used when no file exists: copy mode with
// nothing to sync and no hooks.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Mode:  model.ModeCopy,
			Paths: []string{},
		},
		Hooks: HooksConfig{
			PostCreate: []string{},
		},
	}
}

// Path returns the settings file path for repoRoot.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Exists reports whether repoRoot has a settings file.
func Exists(repoRoot string) bool {
	_, err := os.Stat(Path(repoRoot))
	return err == nil
}

// Load reads the settings file of repoRoot.
//
// Keys absent from the file keep their Default() value. An unknown mode
// is a parse error.
func Load(repoRoot string) (*Config, error) {
	path := Path(repoRoot)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the settings file of repoRoot, replacing any existing file.
func Save(repoRoot string, cfg *Config) error {
	if cfg == nil {
		cfg = Default()
	}
	out := *cfg
	out.normalize()

	if err := out.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path := Path(repoRoot)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !c.Files.Mode.IsValid() {
		return fmt.Errorf("invalid files.mode %q (valid: copy, symlink)", c.Files.Mode)
	}
	for i, p := range c.Files.Paths {
		if err := filesync.ValidatePath(p); err != nil {
			return fmt.Errorf("files.paths[%d]: %w", i, err)
		}
	}
	return nil
}

// normalize fills zero values with defaults so nil lists never leak to
// callers or get encoded as missing keys.
func (c *Config) normalize() {
	if c.Files.Mode == "" {
		c.Files.Mode = model.ModeCopy
	}
	if c.Files.Paths == nil {
		c.Files.Paths = []string{}
	}
	if c.Hooks.PostCreate == nil {
		c.Hooks.PostCreate = []string{}
	}
}
