package zippack

import (
	"fmt"
	"path/filepath"
)

// includeBaseFolderName decides whether each directory input's own name is
// kept as a path prefix inside the archive. With more than one input the
// prefix is always kept: stripping it would merge every root's children into
// a single namespace. A single input honors the option, except that a
// filesystem root has no base name either way and inclusion falls back on.
func includeBaseFolderName(opts Options, paths []string) bool {
	if len(paths) > 1 {
		return true
	}
	if filepath.Dir(paths[0]) == paths[0] {
		// A filesystem root is its own parent.
		return true
	}
	return opts.IncludeBaseFolderName
}

// effectiveRoot returns the path an input's descendants are relativized
// against: the input's parent when the base folder name is included, the
// input itself when it is not.
func effectiveRoot(path string, includeBase bool) string {
	if includeBase {
		return filepath.Dir(path)
	}
	return path
}

// entryName derives the archive entry name for path relative to root, using
// forward slashes and a trailing slash for directories. The relativization
// root itself yields the empty name and produces no entry.
func entryName(root, path string, isDir bool) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", path, root, err)
	}
	if rel == "." {
		return "", nil
	}
	name := filepath.ToSlash(rel)
	if isDir {
		name += "/"
	}
	return name, nil
}
