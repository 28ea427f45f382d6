package zippack

import "fmt"

// DefaultBufferSize is the size in bytes of the copy buffer used to move
// entry content when Options does not override it.
const DefaultBufferSize = 4096

// ProgressFunc receives progress updates. percentage is processed bytes over
// total bytes scaled to 0-100; label is the path of the node just processed:
// the source path while packing, the destination path while extracting.
type ProgressFunc func(percentage float64, label string)

// Options configures a packaging or extraction invocation. Start from
// DefaultOptions and derive with the With* methods; the engines never mutate
// an Options value.
type Options struct {
	// BufferSize is the size in bytes of the reusable buffer used to copy
	// entry content. It must be positive.
	BufferSize int

	// IncludeBaseFolderName controls whether a single input folder's own
	// name becomes a path prefix inside the archive. With two or more
	// inputs the prefix is always kept, regardless of this flag.
	IncludeBaseFolderName bool

	// OnProgress, when set, is invoked after every processed entry.
	OnProgress ProgressFunc
}

// DefaultOptions returns the options used when the caller supplies none:
// a 4096-byte buffer, base folder name included, no progress observer.
func DefaultOptions() Options {
	return Options{
		BufferSize:            DefaultBufferSize,
		IncludeBaseFolderName: true,
	}
}

// WithBufferSize returns a copy of o with the copy buffer size replaced.
func (o Options) WithBufferSize(n int) Options {
	o.BufferSize = n
	return o
}

// WithBaseFolderName returns a copy of o with the base-folder-name flag set.
func (o Options) WithBaseFolderName(include bool) Options {
	o.IncludeBaseFolderName = include
	return o
}

// WithProgress returns a copy of o with the progress observer set.
func (o Options) WithProgress(fn ProgressFunc) Options {
	o.OnProgress = fn
	return o
}

func (o Options) validate() error {
	if o.BufferSize <= 0 {
		return &ConfigError{
			Field:  "BufferSize",
			Reason: fmt.Sprintf("must be positive, got %d", o.BufferSize),
		}
	}
	return nil
}
