// Package filesystem defines the filesystem collaborator consumed by the
// packaging and extraction engines, plus an OS-backed implementation.
package filesystem

import (
	"io"
	"io/fs"
)

// ReadFS defines the read operations the engines need.
type ReadFS interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	// WalkDir walks the tree rooted at root depth-first, visiting each
	// directory before its children. Walking a plain file visits just
	// that file.
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// WriteFS defines the write operations the engines need.
type WriteFS interface {
	Create(name string) (io.WriteCloser, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// FileSystem combines read and write operations.
type FileSystem interface {
	ReadFS
	WriteFS
}
