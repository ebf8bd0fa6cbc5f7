// Package fsutil holds small filesystem checks shared by the orchestrator.
package fsutil

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/errdefs"
)

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether anything (file, directory, symlink) exists at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ValidatePath checks that path is accessible. With mustExist set a
// missing path is an error; otherwise only access problems are.
func ValidatePath(path string, mustExist bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if mustExist {
			return errdefs.New(errdefs.CodeInvalidPath, "Path does not exist: %s", path)
		}
		return nil
	case errors.Is(err, fs.ErrPermission):
		return errdefs.Wrap(errdefs.CodePermissionDenied, err, "Permission denied: %s", path)
	default:
		return errdefs.Wrap(errdefs.CodeInvalidPath, err, "Invalid path: %s - %v", path, err)
	}
}

// EnsureDirectory makes sure path is a directory, creating it (and its
// parents) when create is set.
func EnsureDirectory(path string, create bool) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errdefs.New(errdefs.CodeDirectory, "Path exists but is not a directory: %s", path)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return errdefs.Wrap(errdefs.CodeDirectory, err, "Failed to stat directory %s: %v", path, err)
	}

	if !create {
		return errdefs.New(errdefs.CodeDirectory, "Directory does not exist: %s", path)
	}
	if err := os.MkdirAll(path, constants.DirPermissions); err != nil {
		return errdefs.Wrap(errdefs.CodeDirectory, err, "Failed to create directory %s: %v", path, err)
	}
	return nil
}
