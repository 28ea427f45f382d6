package zippack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/go-zippack/pkg/zippack/codec"
	"github.com/arthur-debert/go-zippack/pkg/zippack/filesystem"
)

// Extractor reconstitutes the files and directories stored in a ZIP archive
// under a destination directory, reporting progress as a fraction of the
// archive's total uncompressed size.
type Extractor struct {
	fsys filesystem.FileSystem
	opts Options
	log  zerolog.Logger
}

// NewExtractor returns an Extractor writing to the OS filesystem.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{
		fsys: filesystem.NewOSFileSystem(),
		opts: opts,
		log:  DefaultLogger(),
	}
}

// WithFileSystem sets the filesystem the extractor writes to.
func (e *Extractor) WithFileSystem(fsys filesystem.FileSystem) *Extractor {
	e.fsys = fsys
	return e
}

// WithLogger sets the logger the extractor reports through.
func (e *Extractor) WithLogger(logger zerolog.Logger) *Extractor {
	e.log = logger
	return e
}

// ExtractFile extracts the archive at archivePath into destDir. The archive
// is opened twice: once to estimate the total uncompressed size for progress
// scaling, then again to stream the entries.
func (e *Extractor) ExtractFile(archivePath, destDir string) error {
	if err := e.opts.validate(); err != nil {
		return err
	}

	total, err := archiveSize(archivePath)
	if err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	return e.Extract(f, fi.Size(), destDir, total)
}

// Extract reads a ZIP archive from r and recreates its entries under
// destDir, creating the destination and any missing ancestors. totalSize is
// the archive's declared uncompressed size, used only to scale progress;
// pass the result of a prior estimate. Entries already written stay on disk
// when a later entry fails.
func (e *Extractor) Extract(r io.ReaderAt, size int64, destDir string, totalSize int64) error {
	if err := e.opts.validate(); err != nil {
		return err
	}
	if err := e.fsys.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination %s: %w", destDir, err)
	}

	cr, err := codec.NewReader(r, size)
	if err != nil {
		return err
	}
	defer func() { _ = cr.Close() }()

	tracker := newProgressTracker(totalSize, e.opts.OnProgress)
	buf := make([]byte, e.opts.BufferSize)

	for {
		meta, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		dest, err := entryDestination(destDir, meta.Name)
		if err != nil {
			return err
		}

		if meta.Dir {
			if err := e.fsys.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", dest, err)
			}
		} else {
			if err := e.extractFileEntry(cr, dest, buf); err != nil {
				return fmt.Errorf("extract %q: %w", meta.Name, err)
			}
		}

		e.log.Debug().Str("entry", meta.Name).Str("dest", dest).Msg("entry extracted")
		entrySize := meta.Size
		if entrySize < 0 {
			entrySize = 0
		}
		tracker.Add(entrySize, dest)
	}

	e.log.Info().
		Str("dest", destDir).
		Int64("bytes", tracker.Processed()).
		Msg("archive extracted")
	return nil
}

func (e *Extractor) extractFileEntry(cr codec.Reader, dest string, buf []byte) error {
	if err := e.fsys.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	src, err := cr.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := e.fsys.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.CopyBuffer(dst, src, buf); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// entryDestination joins destDir with the entry's stored name, rejecting
// names that would resolve outside destDir.
func entryDestination(destDir, name string) (string, error) {
	dest := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &ValidationError{Path: name, Reason: "entry escapes destination directory", Cause: err}
	}
	return dest, nil
}
