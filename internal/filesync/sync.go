package filesync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/git-wt/internal/model"
)

// Sync materializes each relative path from sourceRoot into targetRoot,
// in order, using mode.
//
// The returned SyncResult lists every path exactly once, either as synced
// or as skipped. On error the result holds the paths processed before the
// failing one.
func Sync(sourceRoot, targetRoot string, paths []string, mode model.FileMode, r model.Reporter) (model.SyncResult, error) {
	if r == nil {
		r = model.NopReporter{}
	}
	if !mode.IsValid() {
		return model.SyncResult{}, fmt.Errorf("unsupported file mode %q", mode)
	}

	result := model.SyncResult{
		Synced:  []string{},
		Skipped: []string{},
	}

	for _, rel := range paths {
		if err := ValidatePath(rel); err != nil {
			return result, &model.FilesystemError{Op: "validate", Path: rel, Err: err}
		}

		source := filepath.Join(sourceRoot, rel)
		target := filepath.Join(targetRoot, rel)

		// os.Stat follows symlinks: a dangling link in the main worktree
		// counts as a missing source.
		info, err := os.Stat(source)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Skipped = append(result.Skipped, rel)
				continue
			}
			return result, &model.FilesystemError{Op: "stat", Path: rel, Err: err}
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return result, &model.FilesystemError{Op: "mkdir", Path: rel, Err: err}
		}

		r.Progress("Syncing %s", rel)

		switch mode {
		case model.ModeSymlink:
			err = linkPath(source, target)
		default:
			err = copyPath(source, target, info)
		}
		if err != nil {
			return result, &model.FilesystemError{Op: string(mode), Path: rel, Err: err}
		}

		result.Synced = append(result.Synced, rel)
	}

	return result, nil
}

// ValidatePath reports whether rel names an entry strictly inside a
// worktree. The root itself and anything outside it are rejected, since
// syncing them would replace the checkout or its siblings.
func ValidatePath(rel string) error {
	if strings.TrimSpace(rel) == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(rel) {
		return fmt.Errorf("path %q must be relative to the repository root", rel)
	}
	clean := filepath.Clean(rel)
	if clean == "." {
		return fmt.Errorf("path %q refers to the repository root", rel)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q is outside the repository", rel)
	}
	return nil
}

// copyPath copies source to target. A directory replaces whatever is at
// target; a file overwrites a file and replaces a symlink or directory.
func copyPath(source, target string, info fs.FileInfo) error {
	if info.IsDir() {
		// A linked directory is copied from where it points.
		root, err := filepath.EvalSymlinks(source)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", source, err)
		}
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove existing %s: %w", target, err)
		}
		return copyDir(root, target)
	}

	// Never write through a symlink left by an earlier symlink-mode sync:
	// it would truncate the very file we are copying.
	if existing, err := os.Lstat(target); err == nil {
		if existing.IsDir() || existing.Mode()&fs.ModeSymlink != 0 {
			if err := os.RemoveAll(target); err != nil {
				return fmt.Errorf("failed to remove existing %s: %w", target, err)
			}
		}
	}

	return copyFile(source, target, info)
}

// linkPath replaces target with an absolute symlink to the resolved source.
// Running it twice with the same arguments yields the same link.
func linkPath(source, target string) error {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", source, err)
	}
	resolved, err := filepath.EvalSymlinks(absSource)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", source, err)
	}

	if _, err := os.Lstat(target); err == nil {
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove existing %s: %w", target, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Symlink(resolved, target); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", target, resolved, err)
	}
	return nil
}
