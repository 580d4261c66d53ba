package unpacker

// Package file relocate.go moves the staged extraction output into
// the caller's destination, with numbered backups on collision and an
// optional rename of the relocated entry.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osarchive/unpacker/command"
)

// Backup policies for a colliding destination entry.
const (
	BackupNumbered = "numbered" // keep the existing entry under an incrementing suffix
	BackupOff      = "off"      // never keep the existing entry
)

// MoveOptions adjust the collision handling of the relocation step.
// The zero Backup value means numbered. When the platform's move
// utility lacks backup support the numbered policy is disabled
// automatically, and an existing destination entry is then replaced
// only when Force is set.
type MoveOptions struct {
	Force  bool
	Backup string
}

// RenameOptions request an explicit rename of the relocated entry.
type RenameOptions struct {
	Rename  bool
	NewName string
}

// relocate stats the staged output and moves it under the destination
// directory. A staged directory keeps the archive basename, a staged
// file lands in a subdirectory named after its stem. The path of the
// relocated, optionally renamed, entry is returned.
func (u *Unpacker) relocate(staging, destination string, move *MoveOptions, rename *RenameOptions) (string, error) {
	st, err := os.Stat(staging)
	if err != nil {
		return "", fmt.Errorf("relocate %w: %s: %w", ErrRelocate, staging, err)
	}
	opt := MoveOptions{}
	if move != nil {
		opt = *move
	}
	if opt.Backup == "" {
		opt.Backup = BackupNumbered
	}
	if opt.Backup == BackupNumbered && !u.backupSupported() {
		opt.Backup = BackupOff
	}
	if err := os.MkdirAll(destination, DirWriteReadRead); err != nil {
		return "", fmt.Errorf("relocate mkdir %w: %w", ErrRelocate, err)
	}
	name := u.desc.base
	if !st.IsDir() {
		name = stem(filepath.Base(staging))
	}
	target := filepath.Join(destination, name)
	switch {
	case !st.IsDir():
		// single decompressed file, create its destination directory
		if err := os.MkdirAll(target, DirWriteReadRead); err != nil {
			return "", fmt.Errorf("relocate mkdir %w: %w", ErrRelocate, err)
		}
		inner := filepath.Join(target, filepath.Base(staging))
		if filepath.Clean(staging) == filepath.Clean(inner) {
			break
		}
		if err := u.move(staging, inner, opt); err != nil {
			return "", err
		}
	case filepath.Clean(staging) == filepath.Clean(target):
		// already in place, nothing to move
	default:
		if err := u.move(staging, target, opt); err != nil {
			return "", err
		}
	}
	if rename == nil || !rename.Rename || rename.NewName == "" {
		return target, nil
	}
	renamed := filepath.Join(destination, rename.NewName)
	if err := os.MkdirAll(filepath.Dir(renamed), DirWriteReadRead); err != nil {
		return "", fmt.Errorf("relocate mkdir %w: %w", ErrRelocate, err)
	}
	if err := u.move(target, renamed, opt); err != nil {
		return "", err
	}
	return renamed, nil
}

// move invokes the external move utility on the staged entry. Under
// the numbered policy a pre-existing destination entry is preserved as
// dst.~N~ by the utility itself, otherwise a collision is resolved by
// removal first, and only when forced.
func (u *Unpacker) move(src, dst string, opt MoveOptions) error {
	b := u.lookup(command.Move)
	if !b.Available() {
		return fmt.Errorf("relocate %w: %s", ErrTool, command.Move)
	}
	const (
		noTarget = "-T"                // -T treat the destination as a normal file
		backup   = "--backup=numbered" // keep existing entries under incrementing suffixes
		force    = "-f"                // -f do not prompt before overwriting
	)
	var args []string
	if opt.Backup == BackupNumbered {
		args = []string{noTarget, backup, src, dst}
	} else {
		if _, err := os.Stat(dst); err == nil {
			if !opt.Force {
				return fmt.Errorf("relocate %w: %s already exists", ErrRelocate, dst)
			}
			if err := os.RemoveAll(dst); err != nil {
				return fmt.Errorf("relocate %w: %w", ErrRelocate, err)
			}
		}
		args = []string{force, src, dst}
	}
	if _, err := u.run(TimeoutExtract, b.Path, args...); err != nil {
		return fmt.Errorf("relocate %w: %w", ErrRelocate, err)
	}
	return nil
}
