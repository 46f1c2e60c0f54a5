package fs

import (
	"errors"
	iofs "io/fs"
)

// ErrReadOnly is returned by mutation methods of EmbedFileSystem.
var ErrReadOnly = errors.New("embedded filesystem is read-only")

// EmbedFileSystem adapts an embedded file tree to the FileSystem
// interface for read-only consumers like the scaffolder.
type EmbedFileSystem struct {
	fs iofs.FS
}

func NewEmbedFileSystem(fsys iofs.FS) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fsys}
}

func (e *EmbedFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(e.fs, path)
}

func (e *EmbedFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(e.fs, path)
}

func (e *EmbedFileSystem) FileExists(path string) bool {
	f, err := e.fs.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func (e *EmbedFileSystem) WriteFile(string, []byte, iofs.FileMode) error {
	return ErrReadOnly
}

func (e *EmbedFileSystem) MkdirAll(string, iofs.FileMode) error {
	return ErrReadOnly
}

func (e *EmbedFileSystem) Remove(string) error {
	return ErrReadOnly
}
