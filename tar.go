package unpacker

// Package file tar.go contains the tape archive commands, covering
// both the plain and the gzip compressed tar families.

import (
	"fmt"
	"os"
	"strings"

	"github.com/osarchive/unpacker/command"
)

// tarExcludes are the junk entry exclusions applied to every tar
// extraction and listing.
func tarExcludes() []string {
	return []string{
		"--exclude=" + macosxDir,
		"--exclude=" + shadowPrefix + "*",
	}
}

// listTar returns the table of contents of the tar archive using the
// [tar program], with the same junk exclusions as extraction and a
// decompression flag added for the compressed family.
//
// [tar program]: https://www.gnu.org/software/tar/
func (u *Unpacker) listTar() (string, []string, error) {
	b := u.lookup(command.Tar)
	if !b.Available() {
		return "", nil, fmt.Errorf("list tar %w: %s", ErrTool, command.Tar)
	}
	const (
		list   = "-t" // -t list the archive content
		source = "-f" // -f file path of the archive
		gunzip = "-z" // -z filter the archive through gzip
	)
	args := []string{list, source, u.desc.path}
	if u.desc.family == CompressedTar {
		args = append(args, gunzip)
	}
	args = append(args, tarExcludes()...)
	out, err := u.run(TimeoutLookup, b.Path, args...)
	if err != nil {
		return cmdline(b.Path, args...), nil, fmt.Errorf("list tar %w: %w", ErrList, err)
	}
	return cmdline(b.Path, args...), strings.Split(string(out), "\n"), nil
}

// extractTar extracts the tar archive into the staging directory
// using the [tar program], original member paths preserved. The
// issued command is returned for reporting.
//
// [tar program]: https://www.gnu.org/software/tar/
func (u *Unpacker) extractTar(staging string) (string, error) {
	b := u.lookup(command.Tar)
	if !b.Available() {
		return "", fmt.Errorf("extract tar %w: %s", ErrTool, command.Tar)
	}
	if err := os.MkdirAll(staging, DirWriteReadRead); err != nil {
		return "", fmt.Errorf("extract tar %w: %w", ErrExtract, err)
	}
	const (
		extract   = "-x" // -x extract files
		source    = "-f" // -f file path of the archive
		gunzip    = "-z" // -z filter the archive through gzip
		targetDir = "-C" // -C change to the directory before extracting
	)
	args := []string{extract, source, u.desc.path}
	if u.desc.family == CompressedTar {
		args = append(args, gunzip)
	}
	args = append(args, tarExcludes()...)
	args = append(args, targetDir, staging)
	if _, err := u.run(TimeoutExtract, b.Path, args...); err != nil {
		return cmdline(b.Path, args...), fmt.Errorf("extract tar %w: %w", ErrExtract, err)
	}
	return cmdline(b.Path, args...), nil
}
