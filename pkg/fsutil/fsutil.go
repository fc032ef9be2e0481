// Package fsutil provides the filesystem primitives shared by the sync
// engine, the conflict resolver and the save location search: top-level
// listings, stat helpers and metadata-preserving copies.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// DefaultFileMode is the fallback permission set applied to copied files
// when no sibling exists to mirror (owner read/write, group/other read).
const DefaultFileMode = os.FileMode(0o644)

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	if DirExists(path) {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// ListFiles returns the names of the regular files directly inside dir,
// unsorted. A missing or unreadable directory yields an empty list; the
// comparator treats both sides as empty rather than failing the run.
func ListFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// CopyFile copies src to dst, creating destination directories as needed and
// preserving the source modification time. Permission bits are mirrored from
// a sibling file already present in the destination directory, falling back
// to DefaultFileMode; a permission failure is swallowed because cloud-synced
// filesystems commonly refuse mode changes.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("copy bytes: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("preserve modification time: %w", err)
	}

	MirrorPermissions(dst)

	return nil
}

// MirrorPermissions applies the mode of a sibling regular file in dst's
// directory to dst, or DefaultFileMode if no sibling exists. Chmod failures
// are ignored.
func MirrorPermissions(dst string) {
	mode := DefaultFileMode

	entries, err := os.ReadDir(filepath.Dir(dst))
	if err == nil {
		base := filepath.Base(dst)
		for _, entry := range entries {
			if !entry.Type().IsRegular() || entry.Name() == base {
				continue
			}
			if info, err := entry.Info(); err == nil {
				mode = info.Mode().Perm()
				break
			}
		}
	}

	_ = os.Chmod(dst, mode)
}

// Touch refreshes the modification time of path to now.
func Touch(path string) error {
	now := time.Now()
	return os.Chtimes(path, now, now)
}
