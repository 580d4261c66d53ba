package unpacker

// Package file zip.go contains the zip container commands.

import (
	"fmt"
	"os"
	"strings"

	"github.com/osarchive/unpacker/command"
)

// zipExcludes are the junk entry exclusions applied to every zip
// extraction and listing.
func zipExcludes() []string {
	return []string{macosxDir + "/*", shadowPrefix + "*"}
}

// listZip returns the content of the zip archive using the zipinfo
// mode of the [unzip program], names only.
//
// [unzip program]: https://infozip.sourceforge.net/
func (u *Unpacker) listZip() (string, []string, error) {
	b := u.lookup(command.Unzip)
	if !b.Available() {
		return "", nil, fmt.Errorf("list zip %w: %s", ErrTool, command.Unzip)
	}
	const (
		zipinfo = "-Z" // -Z zipinfo mode
		names   = "-1" // -1 filenames only, one per line
		exclude = "-x" // -x entries to exclude
	)
	args := []string{zipinfo, names, u.desc.path, exclude}
	args = append(args, zipExcludes()...)
	out, err := u.run(TimeoutLookup, b.Path, args...)
	if err != nil {
		return cmdline(b.Path, args...), nil, fmt.Errorf("list zip %w: %w", ErrList, err)
	}
	return cmdline(b.Path, args...), strings.Split(string(out), "\n"), nil
}

// extractZip extracts the zip archive into the staging directory
// using the [unzip program].
//
// [unzip program]: https://www.linux.org/docs/man1/unzip.html
func (u *Unpacker) extractZip(staging string) (string, error) {
	b := u.lookup(command.Unzip)
	if !b.Available() {
		return "", fmt.Errorf("extract zip %w: %s", ErrTool, command.Unzip)
	}
	if err := os.MkdirAll(staging, DirWriteReadRead); err != nil {
		return "", fmt.Errorf("extract zip %w: %w", ErrExtract, err)
	}
	const (
		quieter   = "-qq" // -qq quieter
		overwrite = "-o"  // -o overwrite existing files without prompting
		exclude   = "-x"  // -x entries to exclude
		targetDir = "-d"  // -d target directory to extract files to
	)
	// unzip [-options] file[.zip] [-x files(s)] [-d exdir]
	args := []string{quieter, overwrite, u.desc.path, exclude}
	args = append(args, zipExcludes()...)
	args = append(args, targetDir, staging)
	if _, err := u.run(TimeoutExtract, b.Path, args...); err != nil {
		return cmdline(b.Path, args...), fmt.Errorf("extract zip %w: %w", ErrExtract, err)
	}
	return cmdline(b.Path, args...), nil
}
