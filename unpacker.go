// Package unpacker classifies an archive file, locates the external
// decompression toolchain it requires, extracts the content into a
// transient staging location beside the source, and relocates the
// result to a caller destination with collision safe numbered backups.
// A read-only content listing is available without extraction.
//
// The archive families supported are the tape archive, the gzip
// compressed tape archive, the standalone gzip file, zip and rar.
//
// The package uses the following Linux terminal programs.
//
//  1. [tar] - GNU tar or BSD tar
//  2. [gzip] - GNU Gzip
//  3. [unzip] - UnZip by the Info-ZIP workgroup, its zipinfo mode is used for listings
//  4. [unrar] - freeware by Alexander Roshal, not the feature incomplete [unrar-free]
//  5. [mv] - the file move utility, numbered backups need GNU coreutils mv
//
// [tar]: https://www.gnu.org/software/tar/
// [gzip]: https://www.gnu.org/software/gzip/
// [unzip]: https://infozip.sourceforge.net/
// [unrar]: https://www.rarlab.com/rar_add.htm
// [unrar-free]: https://gitlab.com/bgermann/unrar-free
// [mv]: https://www.gnu.org/software/coreutils/
package unpacker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	TimeoutExtract = 15 * time.Second // TimeoutExtract is the maximum time allowed for an extraction or move.
	TimeoutLookup  = 2 * time.Second  // TimeoutLookup is the maximum time allowed for a listing or version report.

	// DirWriteReadRead is the file mode for the created staging and
	// destination directories.
	DirWriteReadRead fs.FileMode = 0o755
)

const (
	gzipx  = ".gz"     // GNU Zip by Jean-loup Gailly and Mark Adler
	rarx   = ".rar"    // Roshal ARchive by Alexander Roshal
	tarx   = ".tar"    // Tape ARchive by AT&T Bell Labs
	targzx = ".tar.gz" // gzip compressed tape archive
	tgzx   = ".tgz"    // gzip compressed tape archive, single suffix form
	zipx   = ".zip"    // Phil Katz's ZIP for MS-DOS systems
)

const (
	macosxDir    = "__MACOSX" // resource fork shadow directory added by macOS archivers
	shadowPrefix = "._"       // resource fork shadow file prefix added by macOS archivers
)

var (
	ErrNoPath      = errors.New("no archive path has been set")
	ErrDest        = errors.New("destination is empty")
	ErrNotFile     = errors.New("path is not a regular file")
	ErrFormat      = errors.New("file is not a supported archive format")
	ErrTool        = errors.New("required program is not installed")
	ErrUnsupported = errors.New("archive family is not supported")
	ErrExtract     = errors.New("could not extract the archive")
	ErrRelocate    = errors.New("could not relocate the extracted content")
	ErrList        = errors.New("could not list the archive content")
	ErrProg        = errors.New("program error")
)

// Family is the resolved archive family tag, produced once per SetPath.
type Family int

const (
	PlainTar      Family = iota + 1 // uncompressed tape archive
	CompressedTar                   // gzip compressed tape archive
	Gzip                            // standalone gzip compressed file
	Zip                             // zip container
	Rar                             // rar container
)

func (f Family) String() string {
	switch f {
	case PlainTar:
		return "tar"
	case CompressedTar:
		return "compressed tar"
	case Gzip:
		return "gzip"
	case Zip:
		return "zip"
	case Rar:
		return "rar"
	}
	return "unknown"
}

// Unpacker handles the lifecycle of one archive file, from
// classification through extraction, relocation and cleanup.
//
//	u := unpacker.New()
//	if err := u.SetPath("APP.tar.gz"); err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n", err)
//	    return
//	}
//	res, err := u.Unpack("/srv/files", nil, nil)
//
// An instance must not be shared across concurrently invoked
// operations on different archives, one instance handles one archive
// at a time. Independent instances may run concurrently.
type Unpacker struct {
	desc     *descriptor
	tools    map[string]Binding
	mvBackup *bool
	log      *zap.Logger
}

// New returns an Unpacker with a no-op logger.
func New() *Unpacker {
	return &Unpacker{
		tools: make(map[string]Binding),
		log:   zap.NewNop(),
	}
}

// SetLogger replaces the no-op logger used for command tracing and
// advisory cleanup warnings.
func (u *Unpacker) SetLogger(l *zap.Logger) {
	if l != nil {
		u.log = l
	}
}

func (u *Unpacker) logger() *zap.Logger {
	if u.log == nil {
		u.log = zap.NewNop()
	}
	return u.log
}

// SetPath validates, probes and classifies the named archive file,
// replacing any prior classification held by the instance.
func (u *Unpacker) SetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrNoPath
	}
	name, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("set path %w", err)
	}
	st, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("set path %w", err)
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("set path %w: %s", ErrNotFile, name)
	}
	desc, err := classify(name)
	if err != nil {
		return err
	}
	u.desc = desc
	return nil
}

// Path returns the absolute path of the classified archive.
func (u *Unpacker) Path() string {
	if u.desc == nil {
		return ""
	}
	return u.desc.path
}

// Mimetype returns the probed mimetype of the classified archive.
func (u *Unpacker) Mimetype() string {
	if u.desc == nil {
		return ""
	}
	return u.desc.mime
}

// Extension returns the recognized archive suffix of the filename,
// preferring the compound tar suffixes over a bare gzip match.
func (u *Unpacker) Extension() string {
	if u.desc == nil {
		return ""
	}
	return u.desc.ext
}

// Basename returns the filename with the recognized suffix removed.
func (u *Unpacker) Basename() string {
	if u.desc == nil {
		return ""
	}
	return u.desc.base
}

// Family returns the resolved archive family tag.
func (u *Unpacker) Family() Family {
	if u.desc == nil {
		return 0
	}
	return u.desc.family
}

// Compressed reports whether the classified archive holds compressed
// content, which is every family except the plain tape archive.
func (u *Unpacker) Compressed() bool {
	if u.desc == nil {
		return false
	}
	return u.desc.compress
}

// run executes the external program and returns its standard output.
// A nonzero exit status is the failure signal, with any standard error
// text folded into the returned error as context.
func (u *Unpacker) run(timeout time.Duration, prog string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var b bytes.Buffer
	cmd := exec.CommandContext(ctx, prog, args...)
	cmd.Stderr = &b
	u.logger().Debug("run program",
		zap.String("prog", prog), zap.Strings("args", args))
	out, err := cmd.Output()
	if err != nil {
		if s := strings.TrimSpace(b.String()); s != "" {
			return out, fmt.Errorf("%w: %s: %s", ErrProg, prog, s)
		}
		return out, fmt.Errorf("%w: %s", err, prog)
	}
	return out, nil
}

// cmdline returns the issued command as a single reportable string.
func cmdline(prog string, args ...string) string {
	return strings.Join(append([]string{prog}, args...), " ")
}
