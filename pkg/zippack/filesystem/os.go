package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements FileSystem using the operating system's filesystem.
// Names are interpreted the way the os package interprets them; absolute and
// relative paths are both accepted.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS-based filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat implements ReadFS.
func (osfs *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Open implements ReadFS.
func (osfs *OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// WalkDir implements ReadFS.
func (osfs *OSFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Create implements WriteFS.
func (osfs *OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// MkdirAll implements WriteFS.
func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
