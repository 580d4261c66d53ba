// Package command lists the external archiving, decompression and
// file move program names used by the unpacker.
package command

// A note about unrar: Linux distributions ship incompatible variants of
// unrar. The common unrar-free application is feature incomplete and
// rejects many rar files, so the freeware unrar by Alexander Roshal is
// the required program. Its bare invocation banners a copyright line in
// the form "UNRAR 6.24 freeware", which the locator uses for the
// version report.

const (
	Gzip  = "gzip"  // Gzip is the gzip decompression command.
	Move  = "mv"    // Move is the file move and rename command.
	Tar   = "tar"   // Tar is the tape archive command.
	Unrar = "unrar" // Unrar is the rar decompression command.
	Unzip = "unzip" // Unzip is the zip decompression and listing command.
)

// VersionArgs returns the arguments that ask the program to report
// its version. A nil return means the program prints an identifying
// banner when run bare.
func VersionArgs(prog string) []string {
	switch prog {
	case Gzip, Move, Tar:
		return []string{"--version"}
	case Unzip:
		return []string{"-v"}
	}
	return nil
}
