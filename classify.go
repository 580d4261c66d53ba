package unpacker

// Package file classify.go reconciles the content signature and the
// filename suffix into a single archive family tag.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Defacto2/magicnumber"
)

const (
	mimeGzip = "application/gzip"
	mimeRar  = "application/x-rar-compressed"
	mimeTar  = "application/x-tar"
	mimeZip  = "application/zip"
)

// descriptor is the classification of one archive file. It is rebuilt
// wholesale by each SetPath call and never mutated afterwards.
type descriptor struct {
	path     string // absolute path of the archive
	base     string // filename with the recognized suffix removed
	ext      string // recognized suffix, empty when only the signature matched
	mime     string // mimetype of the resolved family
	family   Family
	compress bool
}

// classify opens the named file, probes its content signature and
// resolves the archive family.
func classify(name string) (*descriptor, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("classify open %w", err)
	}
	defer r.Close()
	sign, err := magicnumber.Archive(r)
	if err != nil {
		return nil, fmt.Errorf("classify magic %w", err)
	}
	base := filepath.Base(name)
	ext := matchSuffix(base)
	family, ok := resolve(sign, ext)
	if !ok {
		return nil, fmt.Errorf("classify %w: %s", ErrFormat, base)
	}
	return &descriptor{
		path:     name,
		base:     base[:len(base)-len(ext)],
		ext:      ext,
		mime:     mimetype(family),
		family:   family,
		compress: family != PlainTar,
	}, nil
}

// matchSuffix returns the longest known archive suffix of the
// filename, so a compound tar suffix always beats a bare gzip match.
// An empty string is returned when the name carries no known suffix.
func matchSuffix(name string) string {
	s := strings.ToLower(name)
	for _, ext := range []string{targzx, tgzx, tarx, gzipx, zipx, rarx} {
		if strings.HasSuffix(s, ext) {
			return ext
		}
	}
	return ""
}

// resolve reconciles the two classification signals. The content
// signature picks the compression envelope while the filename suffix
// disambiguates what is inside it, so a gzip signature with a tar
// compound suffix is a compressed tape archive and not standalone
// gzip. A recognized signature with an unknown suffix follows the
// signature, an unknown signature falls back to the suffix alone.
func resolve(sign magicnumber.Signature, ext string) (Family, bool) {
	switch sign {
	case magicnumber.TapeARchive:
		return PlainTar, true
	case magicnumber.GzipCompressArchive:
		switch ext {
		case targzx, tgzx:
			return CompressedTar, true
		}
		return Gzip, true
	case magicnumber.PKWAREZip,
		magicnumber.PKWAREZip64,
		magicnumber.PKWAREZipImplode,
		magicnumber.PKWAREZipReduce,
		magicnumber.PKWAREZipShrink:
		return Zip, true
	case magicnumber.RoshalARchive,
		magicnumber.RoshalARchivev5:
		return Rar, true
	}
	switch ext {
	case tarx:
		return PlainTar, true
	case targzx, tgzx:
		return CompressedTar, true
	case gzipx:
		return Gzip, true
	case zipx:
		return Zip, true
	case rarx:
		return Rar, true
	}
	return 0, false
}

func mimetype(f Family) string {
	switch f {
	case PlainTar:
		return mimeTar
	case CompressedTar, Gzip:
		return mimeGzip
	case Zip:
		return mimeZip
	case Rar:
		return mimeRar
	}
	return ""
}

// gzipName returns the filename without its gzip suffix, the name the
// gzip program restores on decompression.
func gzipName(name string) string {
	s := strings.Split(name, ".")
	if len(s) < 2 {
		return name
	}
	return strings.Join(s[:len(s)-1], ".")
}

// stem returns the filename without its secondary extension, used to
// derive a destination directory name for a single decompressed file.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
