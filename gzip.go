package unpacker

// Package file gzip.go contains the standalone gzip commands. Unlike
// the container families, gzip holds exactly one compressed file.

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/osarchive/unpacker/command"
)

// listGzip returns the single entry of the gzip archive from the
// verbose listing of the [gzip program].
//
// [gzip]: https://www.gnu.org/software/gzip/
func (u *Unpacker) listGzip() (string, []string, error) {
	b := u.lookup(command.Gzip)
	if !b.Available() {
		return "", nil, fmt.Errorf("list gzip %w: %s", ErrTool, command.Gzip)
	}
	const (
		list    = "--list"    // -l list the compressed file
		verbose = "--verbose" // -v include the method and crc columns
	)
	args := []string{list, verbose, u.desc.path}
	out, err := u.run(TimeoutLookup, b.Path, args...)
	if err != nil {
		return cmdline(b.Path, args...), nil, fmt.Errorf("list gzip %w: %w", ErrList, err)
	}
	name := gzipEntry(out)
	if name == "" {
		name = gzipName(filepath.Base(u.desc.path))
	}
	return cmdline(b.Path, args...), []string{name}, nil
}

// gzipEntry picks the decompressed member name from the verbose
// listing and strips the directory prefix the listing injects.
//
//	method  crc     date  time           compressed        uncompressed  ratio uncompressed_name
//	defla 73eeb581 Aug 23 10:02                1634                4096  61.5% testdata/NOTES.txt
func gzipEntry(out []byte) string {
	for _, line := range bytes.Split(out, []byte("\n")) {
		fields := strings.Fields(string(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "method", "compressed":
			continue // header rows of the -lv and -l forms
		}
		return filepath.Base(fields[len(fields)-1])
	}
	return ""
}

// extractGzip decompresses the gzip file in place beside the source
// using the [gzip program]. The original file and its suffix are kept,
// and the result is a single staged file rather than a directory.
//
// [gzip]: https://www.gnu.org/software/gzip/
func (u *Unpacker) extractGzip() (string, error) {
	b := u.lookup(command.Gzip)
	if !b.Available() {
		return "", fmt.Errorf("extract gzip %w: %s", ErrTool, command.Gzip)
	}
	const (
		decompress = "--decompress" // -d decompress
		keep       = "--keep"       // -k keep the input file
		overwrite  = "--force"      // -f overwrite existing output
	)
	args := []string{decompress, keep, overwrite, u.desc.path}
	if _, err := u.run(TimeoutExtract, b.Path, args...); err != nil {
		return cmdline(b.Path, args...), fmt.Errorf("extract gzip %w: %w", ErrExtract, err)
	}
	return cmdline(b.Path, args...), nil
}
