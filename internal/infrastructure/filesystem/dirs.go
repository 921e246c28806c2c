// Package filesystem provides small helpers over the local filesystem.
package filesystem

import (
	"errors"
	"fmt"
	"os"
)

// DirPerm is the mode used for directories holding private launcher state.
const DirPerm os.FileMode = 0o700

// DirectoryError indicates a directory could not be created.
type DirectoryError struct {
	Cause error
	Path  string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("failed to create directory %q: %v", e.Path, e.Cause)
}

func (e *DirectoryError) Unwrap() error {
	return e.Cause
}

// EnsureDirs creates every directory in dirs, including missing parents.
// Directories that already exist are left alone. The first failure stops the walk.
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			return &DirectoryError{Path: dir, Cause: errors.New("empty path")}
		}
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return &DirectoryError{Path: dir, Cause: errors.New("path exists and is not a directory")}
			}
			continue
		}
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return &DirectoryError{Path: dir, Cause: err}
		}
	}
	return nil
}
