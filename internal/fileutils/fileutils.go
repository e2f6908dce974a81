// Package fileutils provides the file system helpers shared by stores and exporters.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists checks whether a regular file exists at filePath.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates dirPath and any missing parents.
func EnsureDirectoryExists(dirPath string, perm os.FileMode) error {
	if err := os.MkdirAll(dirPath, perm); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold filePath. Paths in
// the current directory need nothing.
func EnsureParentDir(filePath string, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if dir == "" || dir == "." {
		return nil
	}
	return EnsureDirectoryExists(dir, perm)
}

// WriteFileAtomic writes data to a temporary sibling of filePath and
// renames it into place.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("error writing file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error renaming %s: %w", tmp, err)
	}
	return nil
}
