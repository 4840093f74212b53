package filesync

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// copyDir recursively copies srcDir to dstDir, which must not exist.
//
// Files and directories keep their permissions and modification times.
// Symlinks inside the tree are recreated as symlinks with the same link
// text, so a dangling link is copied as-is instead of failing the whole pass.
func copyDir(srcDir, dstDir string) error {
	type dirMeta struct {
		path string
		info fs.FileInfo
	}
	var dirs []dirMeta

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error walking source directory at %s: %w", path, walkErr)
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dstDir, relPath)

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("failed to read link %s: %w", path, err)
			}
			if err := os.Symlink(link, dstPath); err != nil {
				return fmt.Errorf("failed to create link %s: %w", dstPath, err)
			}
			return nil

		case info.IsDir():
			// Owner rwx is forced so children can always be written.
			if err := os.MkdirAll(dstPath, info.Mode().Perm()|0o700); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			dirs = append(dirs, dirMeta{path: dstPath, info: info})
			return nil

		case info.Mode().IsRegular():
			return copyFile(path, dstPath, info)

		default:
			// Sockets, devices and named pipes have no meaningful copy.
			return nil
		}
	})
	if err != nil {
		return err
	}

	// Deepest first: writing children bumps a directory's mtime, and a
	// restrictive parent mode could block access to its children.
	for i := len(dirs) - 1; i >= 0; i-- {
		dir := dirs[i]
		if err := os.Chmod(dir.path, dir.info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to set permissions on %s: %w", dir.path, err)
		}
		if err := os.Chtimes(dir.path, dir.info.ModTime(), dir.info.ModTime()); err != nil {
			return fmt.Errorf("failed to set times on %s: %w", dir.path, err)
		}
	}
	return nil
}

// copyFile copies a single regular file from src to dst, overwriting dst,
// and then applies src's permission bits and modification time.
//
// The function uses io.Copy for efficient streaming, so large files are
// never loaded fully into memory.
func copyFile(src, dst string, info fs.FileInfo) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}

	// OpenFile only applies the mode on creation and is subject to umask.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set times on %s: %w", dst, err)
	}

	return nil
}
