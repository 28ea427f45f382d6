// Package codec hides the archive container format behind a stream-oriented
// entry interface. The engines in pkg/zippack never touch the ZIP record
// layout; they only open entries, move bytes, and close the archive.
package codec

import "io"

// EntryMeta describes a single archive entry.
type EntryMeta struct {
	// Name is the entry's path inside the archive, using forward slashes.
	// Directory entries end in "/".
	Name string

	// Dir reports whether the entry is a directory marker.
	Dir bool

	// Size is the entry's declared uncompressed size in bytes. A negative
	// value means the size is unknown.
	Size int64
}

// Writer appends entries to an archive being written. Creating a new entry
// implicitly closes the previous one; Close finishes the archive.
type Writer interface {
	// CreateEntry opens a new entry with the given name and returns the
	// writer for its content. Directory entries (trailing "/") take no
	// content.
	CreateEntry(name string) (io.Writer, error)

	// Close finishes the archive. It does not close the underlying sink.
	Close() error
}

// Reader iterates the entries of an archive in physical order.
type Reader interface {
	// Next advances to the next entry and returns its metadata.
	// It returns io.EOF when no entries remain.
	Next() (EntryMeta, error)

	// Open returns the decoded content of the current entry.
	Open() (io.ReadCloser, error)

	// Close releases any resource the reader owns.
	Close() error
}
