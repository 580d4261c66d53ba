package unpacker

// Package file unpack.go dispatches the classified archive family to
// its extraction strategy and drives the relocate and clean steps.

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Result reports one extraction. It is created fresh per Unpack call
// and is not retained by the instance.
type Result struct {
	Command     string // Command is the issued extraction command.
	Unpacked    bool   // Unpacked reports a successful extract and relocate.
	StagingPath string // StagingPath is the transient extraction location.
	Destination string // Destination is the caller's destination directory.
	FinalPath   string // FinalPath is the relocated, optionally renamed, entry.
}

// stagingPath returns the transient location the extraction writes
// to, always beside the source archive. The container families stage
// as a directory named after the basename, gzip stages as the single
// decompressed file. A signature only classification has no suffix to
// strip, so its staging name is marked to never collide with the
// source file itself.
func (u *Unpacker) stagingPath() string {
	dir := filepath.Dir(u.desc.path)
	name := u.desc.base
	if u.desc.family == Gzip {
		name = gzipName(filepath.Base(u.desc.path))
	}
	if name == filepath.Base(u.desc.path) {
		name += ".staging"
	}
	return filepath.Join(dir, name)
}

// Unpack extracts the classified archive into a staging location and
// relocates the result into the destination directory. A nil move
// options value means a numbered backup of any colliding destination
// entry, a nil rename options value keeps the staged name.
//
// Exactly one extraction strategy runs per call, selected by the
// family tag set by SetPath. Known junk artifacts are removed after a
// successful relocation on a best effort basis.
func (u *Unpacker) Unpack(destination string, move *MoveOptions, rename *RenameOptions) (Result, error) {
	if u.desc == nil {
		return Result{}, ErrNoPath
	}
	if destination == "" {
		return Result{}, ErrDest
	}
	staging := u.stagingPath()
	var cmd string
	var err error
	switch u.desc.family {
	case PlainTar, CompressedTar:
		cmd, err = u.extractTar(staging)
	case Gzip:
		cmd, err = u.extractGzip()
	case Zip:
		cmd, err = u.extractZip(staging)
	case Rar:
		cmd, err = u.extractRar(staging)
	default:
		return Result{}, fmt.Errorf("unpack %w: %s", ErrUnsupported, u.desc.family)
	}
	res := Result{
		Command:     cmd,
		StagingPath: staging,
		Destination: destination,
	}
	if err != nil {
		return res, err
	}
	final, err := u.relocate(staging, destination, move, rename)
	if err != nil {
		return res, err
	}
	res.FinalPath = final
	res.Unpacked = true
	u.logger().Debug("unpacked archive",
		zap.String("family", u.desc.family.String()),
		zap.String("final", final))
	u.clean(final)
	return res, nil
}
