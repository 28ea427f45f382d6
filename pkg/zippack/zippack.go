// Package zippack packs sets of filesystem paths into ZIP archives and
// extracts them again, reporting progress as a fraction of the total bytes
// processed.
//
// The engines stream entry content through a fixed-size buffer and never
// load whole files into memory. The ZIP record layout and the compressor are
// delegated to the codec subpackage; filesystem access goes through the
// filesystem subpackage so tests and callers can substitute their own.
package zippack

import "io"

// Zip packs paths into a new archive file at archivePath using default
// options.
func Zip(archivePath string, paths ...string) error {
	return ZipWithOptions(archivePath, DefaultOptions(), paths...)
}

// ZipWithOptions packs paths into a new archive file at archivePath.
func ZipWithOptions(archivePath string, opts Options, paths ...string) error {
	return NewPacker(opts).PackFile(archivePath, paths...)
}

// ZipTo streams the archive produced from paths to w. The caller owns w;
// substituting a different sink (an encrypting writer, a network stream) is
// how non-file outputs are produced.
func ZipTo(w io.Writer, opts Options, paths ...string) error {
	return NewPacker(opts).Pack(w, paths...)
}

// Unzip extracts the archive at archivePath into destDir using default
// options.
func Unzip(archivePath, destDir string) error {
	return UnzipWithOptions(archivePath, destDir, DefaultOptions())
}

// UnzipWithOptions extracts the archive at archivePath into destDir.
func UnzipWithOptions(archivePath, destDir string, opts Options) error {
	return NewExtractor(opts).ExtractFile(archivePath, destDir)
}
