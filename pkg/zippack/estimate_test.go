package zippack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/go-zippack/pkg/zippack/filesystem"
)

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestInputSize(t *testing.T) {
	fsys := filesystem.NewOSFileSystem()

	t.Run("plain file contributes its size", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "f.txt")
		writeTestFile(t, file, []byte("0123456789"))

		total, err := inputSize(fsys, []string{file})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 10 {
			t.Errorf("expected 10 bytes, got %d", total)
		}
	})

	t.Run("directory sums non-directory descendants", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "a.txt"), []byte("12345"))
		writeTestFile(t, filepath.Join(dir, "sub", "b.txt"), []byte("123"))
		if err := os.MkdirAll(filepath.Join(dir, "empty"), 0o755); err != nil {
			t.Fatal(err)
		}

		total, err := inputSize(fsys, []string{dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 8 {
			t.Errorf("expected 8 bytes, got %d", total)
		}
	})

	t.Run("multiple inputs sum", func(t *testing.T) {
		dir := t.TempDir()
		fileA := filepath.Join(dir, "a.txt")
		fileB := filepath.Join(dir, "b.txt")
		writeTestFile(t, fileA, []byte("12"))
		writeTestFile(t, fileB, []byte("345"))

		total, err := inputSize(fsys, []string{fileA, fileB})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 5 {
			t.Errorf("expected 5 bytes, got %d", total)
		}
	})

	t.Run("missing path fails the estimate", func(t *testing.T) {
		_, err := inputSize(fsys, []string{filepath.Join(t.TempDir(), "missing")})
		if err == nil {
			t.Error("expected an error for a missing path")
		}
	})
}

func TestArchiveSize(t *testing.T) {
	t.Run("sums uncompressed file entries", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "in", "a.txt"), []byte("0123456789"))
		writeTestFile(t, filepath.Join(dir, "in", "sub", "b.txt"), []byte("01234"))

		archive := filepath.Join(dir, "out.zip")
		if err := Zip(archive, filepath.Join(dir, "in")); err != nil {
			t.Fatalf("zip: %v", err)
		}

		total, err := archiveSize(archive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 15 {
			t.Errorf("expected 15 bytes, got %d", total)
		}
	})

	t.Run("directory entries contribute zero", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "in", "only-dirs"), 0o755); err != nil {
			t.Fatal(err)
		}

		archive := filepath.Join(dir, "out.zip")
		if err := Zip(archive, filepath.Join(dir, "in")); err != nil {
			t.Fatalf("zip: %v", err)
		}

		total, err := archiveSize(archive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 0 {
			t.Errorf("expected 0 bytes, got %d", total)
		}
	})

	t.Run("missing archive fails", func(t *testing.T) {
		if _, err := archiveSize(filepath.Join(t.TempDir(), "missing.zip")); err == nil {
			t.Error("expected an error for a missing archive")
		}
	})
}
