// Package filesync materializes untracked files (environment files, local
// secrets, editor settings) from the main worktree into a new worktree.
//
// Two modes are supported:
//   - copy: files are copied with permissions and modification times;
//     directories are replaced wholesale so no stale files survive.
//   - symlink: the target becomes an absolute symlink to the resolved
//     source, so every worktree shares the same file.
//
// A source that does not exist is skipped, not an error. Any other I/O
// failure aborts the pass and is returned as *model.FilesystemError.
package filesync
