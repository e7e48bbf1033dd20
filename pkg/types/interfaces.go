package types

import (
	"io"
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required for sortdir operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Walk visits root and everything below it in lexical order without
	// following symlinks.
	Walk(root string, fn filepath.WalkFunc) error

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}
