package fileutil

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// MemStore is an in-memory Store. It enforces the same parent-directory
// rule as DirStore so misordered builds fail in tests too. It is not safe
// for concurrent use.
type MemStore struct {
	dirs  map[string]bool
	files map[string][]byte
}

// NewMemStore returns an empty MemStore containing only the root.
func NewMemStore() *MemStore {
	return &MemStore{
		dirs:  map[string]bool{".": true},
		files: map[string][]byte{},
	}
}

// RemoveAll removes name and everything below it.
func (m *MemStore) RemoveAll(name string) error {
	if err := ValidatePath(name); err != nil {
		return err
	}
	for p := range m.files {
		if within(p, name) {
			delete(m.files, p)
		}
	}
	for p := range m.dirs {
		if p != "." && within(p, name) {
			delete(m.dirs, p)
		}
	}
	return nil
}

// MkdirAll records name and all its parents as directories.
func (m *MemStore) MkdirAll(name string) error {
	if err := ValidatePath(name); err != nil {
		return err
	}
	for p := name; p != "."; p = path.Dir(p) {
		if _, isFile := m.files[p]; isFile {
			return fmt.Errorf("%w: %s: not a directory", ErrWrite, p)
		}
		m.dirs[p] = true
	}
	return nil
}

// WriteFile stores a copy of data under name.
func (m *MemStore) WriteFile(name string, data []byte) error {
	if err := ValidatePath(name); err != nil {
		return err
	}
	if dir := path.Dir(name); !m.dirs[dir] {
		return fmt.Errorf("%w: %s: parent directory %s does not exist", ErrWrite, name, dir)
	}
	m.files[name] = slices.Clone(data)
	return nil
}

// ReadFile returns the content written under name.
func (m *MemStore) ReadFile(name string) ([]byte, bool) {
	data, ok := m.files[name]
	return slices.Clone(data), ok
}

// Files returns every written file name in sorted order.
func (m *MemStore) Files() []string {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsDir reports whether name was created as a directory.
func (m *MemStore) IsDir(name string) bool {
	return m.dirs[name]
}

func within(p, root string) bool {
	return root == "." || p == root || strings.HasPrefix(p, root+"/")
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)
