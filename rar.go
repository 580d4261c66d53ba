package unpacker

// Package file rar.go contains the rar container commands.

import (
	"fmt"
	"os"
	"strings"

	"github.com/osarchive/unpacker/command"
)

// listRar returns the content of the rar archive, credited to
// Alexander Roshal, using the bare listing of the [unrar program].
//
// [unrar program]: https://www.rarlab.com/rar_add.htm
func (u *Unpacker) listRar() (string, []string, error) {
	b := u.lookup(command.Unrar)
	if !b.Available() {
		return "", nil, fmt.Errorf("list rar %w: %s", ErrTool, command.Unrar)
	}
	const (
		listBrief  = "lb"  // lb list the bare names
		noPaths    = "-ep" // -ep do not preserve paths
		noComments = "-c-" // -c- do not display comments
	)
	args := []string{listBrief, noPaths, noComments, u.desc.path}
	out, err := u.run(TimeoutLookup, b.Path, args...)
	if err != nil {
		return cmdline(b.Path, args...), nil, fmt.Errorf("list rar %w: %w", ErrList, err)
	}
	return cmdline(b.Path, args...), strings.Split(string(out), "\n"), nil
}

// extractRar extracts the rar archive into the staging directory
// using the [unrar program], flattening any nested directories.
//
// On Linux there are two versions of the unrar program, the freeware
// version by Alexander Roshal and the feature incomplete unrar-free.
// The freeware version is the required program.
//
// [unrar program]: https://www.rarlab.com/rar_add.htm
func (u *Unpacker) extractRar(staging string) (string, error) {
	b := u.lookup(command.Unrar)
	if !b.Available() {
		return "", fmt.Errorf("extract rar %w: %s", ErrTool, command.Unrar)
	}
	if err := os.MkdirAll(staging, DirWriteReadRead); err != nil {
		return "", fmt.Errorf("extract rar %w: %w", ErrExtract, err)
	}
	const (
		eXtract    = "x"   // x extract files
		noPaths    = "-ep" // -ep flatten the archived paths
		noComments = "-c-" // -c- do not display comments
		rename     = "-or" // -or rename clashing files automatically
		yes        = "-y"  // -y assume yes to all queries
		outputPath = "-op" // -op output path
	)
	args := []string{eXtract, noPaths, noComments, rename, yes, u.desc.path, outputPath + staging}
	if _, err := u.run(TimeoutExtract, b.Path, args...); err != nil {
		return cmdline(b.Path, args...), fmt.Errorf("extract rar %w: %w", ErrExtract, err)
	}
	return cmdline(b.Path, args...), nil
}
