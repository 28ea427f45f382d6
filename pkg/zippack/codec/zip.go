package codec

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// zipWriter adapts archive/zip's Writer to the codec Writer interface.
type zipWriter struct {
	zw *zip.Writer
}

// NewWriter returns a Writer that produces a ZIP archive on w.
func NewWriter(w io.Writer) Writer {
	return &zipWriter{zw: zip.NewWriter(w)}
}

func (w *zipWriter) CreateEntry(name string) (io.Writer, error) {
	ew, err := w.zw.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create entry %q: %w", name, err)
	}
	return ew, nil
}

func (w *zipWriter) Close() error {
	return w.zw.Close()
}

// zipReader adapts archive/zip's Reader to the codec Reader interface.
// ZIP locates entries through the central directory at the end of the file,
// so reading needs random access rather than a forward-only stream.
type zipReader struct {
	zr     *zip.Reader
	index  int
	closer io.Closer
}

// NewReader returns a Reader over a ZIP archive of the given size.
func NewReader(r io.ReaderAt, size int64) (Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return &zipReader{zr: zr, index: -1}, nil
}

// OpenReader opens the ZIP archive at path. The returned Reader owns the
// underlying file and releases it on Close.
func OpenReader(path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	return &zipReader{zr: zr, index: -1, closer: f}, nil
}

func (r *zipReader) Next() (EntryMeta, error) {
	r.index++
	if r.index >= len(r.zr.File) {
		return EntryMeta{}, io.EOF
	}
	f := r.zr.File[r.index]
	return EntryMeta{
		Name: f.Name,
		Dir:  strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir(),
		Size: int64(f.UncompressedSize64),
	}, nil
}

func (r *zipReader) Open() (io.ReadCloser, error) {
	if r.index < 0 || r.index >= len(r.zr.File) {
		return nil, fmt.Errorf("no current entry")
	}
	return r.zr.File[r.index].Open()
}

func (r *zipReader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
