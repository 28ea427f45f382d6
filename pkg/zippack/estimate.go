package zippack

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/go-zippack/pkg/zippack/codec"
	"github.com/arthur-debert/go-zippack/pkg/zippack/filesystem"
)

// inputSize returns the total number of bytes the given paths will feed into
// an archive: the file size for plain files, the recursive sum of all
// non-directory descendants for directories. Directories themselves count
// zero bytes. Estimation is a precondition of packaging, not best-effort:
// any unreadable path fails the whole request before the output is touched.
func inputSize(fsys filesystem.ReadFS, paths []string) (int64, error) {
	var total int64
	for _, path := range paths {
		size, err := pathSize(fsys, path)
		if err != nil {
			return 0, fmt.Errorf("estimate size of %s: %w", path, err)
		}
		total += size
	}
	return total, nil
}

func pathSize(fsys filesystem.ReadFS, path string) (int64, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	err = fsys.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		total += fi.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// archiveSize returns the total declared uncompressed size of all file
// entries in the archive at path, clamping unknown or negative sizes to
// zero. ZIP keeps sizes in the central directory, so this reads metadata
// only and no entry content.
func archiveSize(path string) (int64, error) {
	r, err := codec.OpenReader(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Close() }()

	var total int64
	for {
		meta, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if meta.Dir {
			continue
		}
		if meta.Size > 0 {
			total += meta.Size
		}
	}
	return total, nil
}
