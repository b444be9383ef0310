// Package fileutil provides the output file-store capability and path helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrWrite indicates the output tree could not be created or written.
var ErrWrite = errors.New("write failed")

// ErrInvalidPath indicates a store path that is absolute or escapes the root.
var ErrInvalidPath = errors.New("invalid store path")

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Store is the write side of a build. Names are slash-separated and
// relative to the store root.
type Store interface {
	RemoveAll(name string) error
	MkdirAll(name string) error
	WriteFile(name string, data []byte) error
}

// DirStore writes into a directory on disk.
type DirStore struct {
	root string
}

// NewDirStore returns a Store rooted at dir. The directory itself is
// created lazily by MkdirAll.
func NewDirStore(dir string) *DirStore {
	return &DirStore{root: dir}
}

// Root returns the on-disk root directory.
func (d *DirStore) Root() string {
	return d.root
}

// RemoveAll removes name and everything below it. A missing name is not an error.
func (d *DirStore) RemoveAll(name string) error {
	p, err := d.resolve(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(p); err != nil {
		return fmt.Errorf("%w: removing %s: %v", ErrWrite, p, err)
	}
	return nil
}

// MkdirAll creates name and any missing parents.
func (d *DirStore) MkdirAll(name string) error {
	p, err := d.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p, dirPermissions); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, p, err)
	}
	return nil
}

// WriteFile writes data to name. The parent directory must exist.
func (d *DirStore) WriteFile(name string, data []byte) error {
	p, err := d.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, p, err)
	}
	return nil
}

func (d *DirStore) resolve(name string) (string, error) {
	if err := ValidatePath(name); err != nil {
		return "", err
	}
	return filepath.Join(d.root, filepath.FromSlash(name)), nil
}

// ValidatePath checks that name is a clean relative slash path that stays
// inside the store root. "." names the root itself.
func ValidatePath(name string) error {
	if !fs.ValidPath(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string contains a directory separator
// rather than being a bare file name.
//
// Examples:
//   - "cover.jpg" -> false (bare name)
//   - "images/cover.jpg" -> true (relative path)
//   - "..\\shared\\a.png" -> true (Windows separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// BaseName returns the last element of a slash or backslash separated path.
func BaseName(p string) string {
	return path.Base(strings.ReplaceAll(p, "\\", "/"))
}

// Stem returns the base name of p without its extension.
func Stem(p string) string {
	base := BaseName(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Compile-time interface check.
var _ Store = (*DirStore)(nil)
