package unpacker_test

// Fixture archives are generated per test with the standard library
// writers, the package under test never parses them itself.

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osarchive/unpacker"
	"github.com/osarchive/unpacker/command"
	"github.com/stretchr/testify/require"
)

const noteBody = "hello world, this is the decompressed member\n"

// fixtureNames are the members packed into every container fixture.
func fixtureNames() []string {
	return []string{"TESTDAT1.TXT", "TESTDAT2.TXT", "TESTDAT3.TXT"}
}

func fixtureBody(name string) string {
	return strings.Repeat(name+" body line\n", 8)
}

// mkTar writes a tar fixture, gzip compressed when compress is set.
func mkTar(t *testing.T, dir, name string, compress bool) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}
	tw := tar.NewWriter(w)
	for _, member := range fixtureNames() {
		body := fixtureBody(member)
		hdr := &tar.Header{
			Name:   member,
			Mode:   0o644,
			Size:   int64(len(body)),
			Format: tar.FormatUSTAR,
		}
		require.NoError(t, tw.WriteHeader(hdr))
		_, err = tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	if gz != nil {
		require.NoError(t, gz.Close())
	}
	return path
}

// mkZip writes a zip fixture holding the canonical members.
func mkZip(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	zw := zip.NewWriter(f)
	for _, member := range fixtureNames() {
		w, err := zw.Create(member)
		require.NoError(t, err)
		_, err = w.Write([]byte(fixtureBody(member)))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

// mkGzip writes a standalone gzip fixture around a single member.
func mkGzip(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

// mkRarStub writes only the rar signature bytes, enough for the
// classifier but not for the unrar program.
func mkRarStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	sign := []byte{'R', 'a', 'r', '!', 0x1a, 0x07, 0x00}
	err := os.WriteFile(path, append(sign, make([]byte, 64)...), 0o644)
	require.NoError(t, err)
	return path
}

// skipIfMissing skips the test when a required terminal program is
// not installed on the host.
func skipIfMissing(t *testing.T, names ...string) {
	t.Helper()
	bindings := unpacker.New().CheckCommands()
	for _, name := range names {
		if !bindings[name].Available() {
			t.Skipf("the %s program is not installed", name)
		}
	}
}

// skipIfNoBackup skips the test when the move utility lacks numbered
// backup support, which only the GNU coreutils mv carries.
func skipIfNoBackup(t *testing.T) {
	t.Helper()
	out, err := exec.Command(command.Move, "--version").CombinedOutput()
	if err != nil || !strings.Contains(string(out), "GNU coreutils") {
		t.Skip("the move utility lacks numbered backup support")
	}
}
