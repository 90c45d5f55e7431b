// Package fsops provides the filesystem operations lotrename performs.
//
// Every read and mutation of the target directory goes through the FS
// interface so the engine can be exercised against fakes in tests.
//
// Key features:
//   - Non-recursive, error-tolerant directory listing
//   - Plain renames resolved by the caller against the target directory
//   - Locked writes for the plan journal
//   - Name validation for generated file names
package fsops

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/go-internal/lockedfile"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// ListNames returns the names of the immediate entries of dir.
	// An unreadable directory yields an empty slice.
	ListNames(dir string) []string

	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// Rename renames oldpath to newpath.
	Rename(oldpath, newpath string) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteLocked writes data to path while holding an exclusive file lock.
	WriteLocked(path string, data []byte, perm os.FileMode) error

	// ValidateName validates a bare file name for safety.
	ValidateName(name string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// ListNames returns the entry names of dir, files and subdirectories alike.
// Entries are returned in whatever order the OS reports them; callers must
// not rely on it.
func (fs *RealFS) ListNames(dir string) []string {
	f, err := os.Open(dir)
	if err != nil {
		return []string{}
	}
	defer func() {
		_ = f.Close()
	}()

	// On error Readdirnames still returns the names read so far.
	names, _ := f.Readdirnames(-1)
	if names == nil {
		return []string{}
	}
	return names
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Rename renames oldpath to newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteLocked writes data to path while holding an exclusive lock on it.
func (fs *RealFS) WriteLocked(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := lockedfile.Write(path, bytes.NewReader(data), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ValidateName validates that name is a single path element.
// Returns an error if the name is empty, a dot entry or contains a separator.
func (fs *RealFS) ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid name: empty")
	}

	if strings.Contains(name, string(filepath.Separator)) || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("invalid name %q: must not contain path separators", name)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q: path traversal not allowed", name)
	}

	return nil
}
