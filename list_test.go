package unpacker_test

import (
	"strings"
	"testing"

	"github.com/osarchive/unpacker"
	"github.com/osarchive/unpacker/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContainers(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	tests := []struct {
		testname string
		path     string
		tool     string
	}{
		{"Plain tar", mkTar(t, dir, "BUNDLE.tar", false), command.Tar},
		{"Compressed tar", mkTar(t, dir, "BUNDLE.tar.gz", true), command.Tar},
		{"Compressed tar single suffix", mkTar(t, dir, "BUNDLE.tgz", true), command.Tar},
		{"Zip", mkZip(t, dir, "BUNDLE.zip"), command.Unzip},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			t.Parallel()
			skipIfMissing(t, tt.tool)
			u := unpacker.New()
			require.NoError(t, u.SetPath(tt.path))
			got, err := u.List()
			require.NoError(t, err)
			assert.Contains(t, got.Command, tt.tool)
			assert.ElementsMatch(t, fixtureNames(), got.Files)
		})
	}
}

func TestListGzip(t *testing.T) {
	t.Parallel()
	skipIfMissing(t, command.Gzip)
	path := mkGzip(t, t.TempDir(), "NOTES.txt.gz", noteBody)
	u := unpacker.New()
	require.NoError(t, u.SetPath(path))
	got, err := u.List()
	require.NoError(t, err)
	assert.Contains(t, got.Command, command.Gzip)
	// a gzip archive always lists exactly one entry
	require.Len(t, got.Files, 1)
	assert.Equal(t, "NOTES.txt", got.Files[0])
}

func TestListNoPath(t *testing.T) {
	t.Parallel()
	_, err := unpacker.New().List()
	require.ErrorIs(t, err, unpacker.ErrNoPath)
}

func TestListBrokenArchive(t *testing.T) {
	t.Parallel()
	skipIfMissing(t, command.Tar)
	// a gzip member that is not a tar stream, named as a compressed
	// tar, larger than a tar block so tar cannot mistake the short
	// read for an empty archive
	path := mkGzip(t, t.TempDir(), "BUNDLE.tar.gz", strings.Repeat("not a tape archive\n", 64))
	u := unpacker.New()
	require.NoError(t, u.SetPath(path))
	_, err := u.List()
	require.ErrorIs(t, err, unpacker.ErrList)
}
