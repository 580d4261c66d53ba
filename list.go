package unpacker

// Package file list.go dispatches the classified archive family to
// its read-only listing command.

import (
	"fmt"
	"slices"
	"strings"
)

// Listing is the result of a read-only content listing.
type Listing struct {
	Command string   // Command is the literal listing command issued.
	Files   []string // Files are the entries relative to the archive root.
}

// List returns the content of the classified archive without
// extracting it. A gzip archive always yields exactly one entry, the
// decompressed member's name.
func (u *Unpacker) List() (Listing, error) {
	if u.desc == nil {
		return Listing{}, ErrNoPath
	}
	var cmd string
	var files []string
	var err error
	switch u.desc.family {
	case PlainTar, CompressedTar:
		cmd, files, err = u.listTar()
	case Gzip:
		cmd, files, err = u.listGzip()
	case Zip:
		cmd, files, err = u.listZip()
	case Rar:
		cmd, files, err = u.listRar()
	default:
		return Listing{}, fmt.Errorf("list %w: %s", ErrUnsupported, u.desc.family)
	}
	if err != nil {
		return Listing{Command: cmd}, err
	}
	return Listing{Command: cmd, Files: normalize(files)}, nil
}

// normalize scrubs blank entries and strips the enclosing prefix a
// listing format injects, leaving paths relative to the archive root.
func normalize(files []string) []string {
	for i, name := range files {
		files[i] = strings.TrimPrefix(name, "./")
	}
	return slices.DeleteFunc(files, func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
}
