package unpacker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()
	final := t.TempDir()
	fork := filepath.Join(final, macosxDir)
	require.NoError(t, os.MkdirAll(fork, DirWriteReadRead))
	require.NoError(t, os.WriteFile(filepath.Join(fork, "junk"), []byte("x"), 0o644))
	shadow := filepath.Join(final, shadowPrefix+"APP")
	require.NoError(t, os.WriteFile(shadow, []byte("x"), 0o644))
	keep := filepath.Join(final, "APP.DAT")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	u := New()
	u.desc = &descriptor{base: "APP"}
	u.clean(final)

	_, err := os.Stat(fork)
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(shadow)
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(keep)
	require.NoError(t, err)
}

func TestMatchSuffix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want string
	}{
		{"APP.TAR.GZ", ".tar.gz"},
		{"app.tgz", ".tgz"},
		{"app.tar", ".tar"},
		{"NOTES.txt.gz", ".gz"},
		{"app.zip", ".zip"},
		{"app.rar", ".rar"},
		{"app.dat", ""},
		{"app", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchSuffix(tt.name))
		})
	}
}

func TestGzipName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"Filename with extension", "ARCHIVE.tar.gz", "ARCHIVE.tar"},
		{"Filename without extension", "ARCHIVE.gz", "ARCHIVE"},
		{"Filename with multiple dots", "ARCHIVE.tar.gz.gz", "ARCHIVE.tar.gz"},
		{"Filename with no dots", "ARCHIVE", "ARCHIVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gzipName(tt.src))
		})
	}
}

func TestStem(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "NOTES", stem("NOTES.txt"))
	assert.Equal(t, "ARCHIVE.tar", stem("ARCHIVE.tar.gz"))
	assert.Equal(t, "ARCHIVE", stem("ARCHIVE"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	got := normalize([]string{"./TESTDAT1.TXT", "", "  ", "sub/TESTDAT2.TXT"})
	assert.Equal(t, []string{"TESTDAT1.TXT", "sub/TESTDAT2.TXT"}, got)
}

func TestGzipEntry(t *testing.T) {
	t.Parallel()
	out := []byte(`method  crc     date  time           compressed        uncompressed  ratio uncompressed_name
defla 73eeb581 Aug 23 10:02                1634                4096  61.5% testdata/NOTES.txt
`)
	assert.Equal(t, "NOTES.txt", gzipEntry(out))
	assert.Empty(t, gzipEntry(nil))
}
