package zippack

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/go-zippack/pkg/zippack/codec"
	"github.com/arthur-debert/go-zippack/pkg/zippack/filesystem"
)

// Packer streams a set of filesystem paths into a ZIP archive, reporting
// progress as a fraction of the total input bytes.
type Packer struct {
	fsys filesystem.ReadFS
	opts Options
	log  zerolog.Logger
}

// NewPacker returns a Packer reading from the OS filesystem.
func NewPacker(opts Options) *Packer {
	return &Packer{
		fsys: filesystem.NewOSFileSystem(),
		opts: opts,
		log:  DefaultLogger(),
	}
}

// WithFileSystem sets the filesystem the packer reads inputs from.
func (p *Packer) WithFileSystem(fsys filesystem.ReadFS) *Packer {
	p.fsys = fsys
	return p
}

// WithLogger sets the logger the packer reports through.
func (p *Packer) WithLogger(logger zerolog.Logger) *Packer {
	p.log = logger
	return p
}

// PackFile creates the archive file at archivePath and packs paths into it.
// It is a thin adapter over Pack; inputs are validated before the file is
// created, and the file is closed on every exit path.
func (p *Packer) PackFile(archivePath string, paths ...string) error {
	if err := p.opts.validate(); err != nil {
		return err
	}
	if _, err := validateInputPaths(paths); err != nil {
		return err
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", archivePath, err)
	}
	if err := p.Pack(f, paths...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Pack writes the archive produced from paths to w. Inputs are validated and
// the total size is estimated before w receives any bytes; any I/O failure
// aborts the whole call, and partially written output is the caller's to
// clean up.
func (p *Packer) Pack(w io.Writer, paths ...string) error {
	if err := p.opts.validate(); err != nil {
		return err
	}
	cleaned, err := validateInputPaths(paths)
	if err != nil {
		return err
	}

	total, err := inputSize(p.fsys, cleaned)
	if err != nil {
		return err
	}
	includeBase := includeBaseFolderName(p.opts, cleaned)
	tracker := newProgressTracker(total, p.opts.OnProgress)

	p.log.Debug().
		Int64("total_bytes", total).
		Bool("include_base", includeBase).
		Int("inputs", len(cleaned)).
		Msg("packing")

	cw := codec.NewWriter(w)
	if err := p.packAll(cw, cleaned, includeBase, tracker); err != nil {
		_ = cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	p.log.Info().
		Int("inputs", len(cleaned)).
		Int64("bytes", tracker.Processed()).
		Msg("archive written")
	return nil
}

func (p *Packer) packAll(cw codec.Writer, paths []string, includeBase bool, tracker *progressTracker) error {
	buf := make([]byte, p.opts.BufferSize)
	for _, path := range paths {
		root := effectiveRoot(path, includeBase)
		err := p.fsys.WalkDir(path, func(cur string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			return p.packNode(cw, root, cur, d, buf, tracker)
		})
		if err != nil {
			return fmt.Errorf("pack %s: %w", path, err)
		}
	}
	return nil
}

func (p *Packer) packNode(cw codec.Writer, root, path string, d fs.DirEntry, buf []byte, tracker *progressTracker) error {
	name, err := entryName(root, path, d.IsDir())
	if err != nil {
		return err
	}
	if name == "" {
		// The relativization root itself carries no entry.
		return nil
	}

	var size int64
	if d.IsDir() {
		if _, err := cw.CreateEntry(name); err != nil {
			return err
		}
	} else {
		info, err := d.Info()
		if err != nil {
			return err
		}
		size = info.Size()
		if err := p.copyFileEntry(cw, name, path, buf); err != nil {
			return err
		}
	}

	p.log.Debug().Str("entry", name).Int64("bytes", size).Msg("entry added")
	tracker.Add(size, path)
	return nil
}

func (p *Packer) copyFileEntry(cw codec.Writer, name, path string, buf []byte) error {
	src, err := p.fsys.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := cw.CreateEntry(name)
	if err != nil {
		return err
	}
	if _, err := io.CopyBuffer(dst, src, buf); err != nil {
		return fmt.Errorf("write entry %q: %w", name, err)
	}
	return nil
}

// validateInputPaths cleans the inputs and rejects duplicates by canonical
// (absolute, cleaned) path. It runs before any archive I/O starts.
func validateInputPaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, &ValidationError{Reason: "at least one input path is required"}
	}
	cleaned := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		canonical, err := filepath.Abs(path)
		if err != nil {
			return nil, &ValidationError{Path: path, Reason: "cannot resolve path", Cause: err}
		}
		if _, ok := seen[canonical]; ok {
			return nil, &ValidationError{Path: path, Reason: "duplicate path entry"}
		}
		seen[canonical] = struct{}{}
		cleaned = append(cleaned, filepath.Clean(path))
	}
	return cleaned, nil
}
