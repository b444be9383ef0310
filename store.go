package epub

import "github.com/myuanzhang/reader-epub/internal/fileutil"

// Store receives the files of a build. Names are slash-separated and
// relative to the store root; WriteFile requires the parent directory to
// exist.
type Store interface {
	RemoveAll(name string) error
	MkdirAll(name string) error
	WriteFile(name string, data []byte) error
}

// NewDirStore returns a Store writing below dir on disk.
func NewDirStore(dir string) Store {
	return fileutil.NewDirStore(dir)
}

// MemStore is an in-memory Store for tests and previews.
type MemStore = fileutil.MemStore

// NewMemStore returns an empty in-memory Store.
func NewMemStore() *MemStore {
	return fileutil.NewMemStore()
}
