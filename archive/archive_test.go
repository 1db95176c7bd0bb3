package archive

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilellia/fluidpath/pathtype"
)

func sourceTree(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.txt"), []byte("beta"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".hidden"), []byte("dot"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "skip.log"), []byte("noise"), 0o644))
	return src
}

func assertExtracted(t *testing.T, dest string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(data))

	// Hidden entries travel; excluded ones do not.
	assert.FileExists(t, filepath.Join(dest, ".hidden"))
	assert.NoFileExists(t, filepath.Join(dest, "skip.log"))
}

// TestZipRoundTrip tests pack and unpack through a ZIP archive
func TestZipRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := sourceTree(t)
	out := filepath.Join(t.TempDir(), "out.zip")
	dest := filepath.Join(t.TempDir(), "dest")

	require.NoError(t, CreateZip(ctx, src, out, Options{Exclude: []string{"*.log"}}))
	require.NoError(t, ExtractZip(ctx, out, dest))

	assertExtracted(t, dest)
}

// TestTarRoundTrip tests pack and unpack across compression modes
func TestTarRoundTrip(t *testing.T) {
	for _, comp := range []Compression{NoCompression, Gzip, Zstd} {
		t.Run(string(comp), func(t *testing.T) {
			ctx := context.Background()
			src := sourceTree(t)
			out := filepath.Join(t.TempDir(), "out.tar")
			dest := filepath.Join(t.TempDir(), "dest")

			require.NoError(t, CreateTar(ctx, src, out, comp, Options{Exclude: []string{"*.log"}}))
			// Extraction detects the compression from the stream, not
			// the file name.
			require.NoError(t, ExtractTar(ctx, out, dest))

			assertExtracted(t, dest)

			info, err := os.Stat(filepath.Join(dest, "sub", "b.txt"))
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		})
	}
}

// TestTarSymlinks tests that links are archived as links
func TestTarSymlinks(t *testing.T) {
	ctx := context.Background()
	src := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "real.txt"), []byte("r"), 0o644))
	require.NoError(t, os.Symlink("real.txt", filepath.Join(src, "link")))

	out := filepath.Join(t.TempDir(), "out.tar")
	dest := filepath.Join(t.TempDir(), "dest")
	require.NoError(t, CreateTar(ctx, src, out, NoCompression, Options{}))
	require.NoError(t, ExtractTar(ctx, out, dest))

	link := filepath.Join(dest, "link")
	assert.Equal(t, pathtype.Symlink, pathtype.Classify(link, false))
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "real.txt", target)
}

// TestExtractZipSlip tests rejection of escaping entries
func TestExtractZipSlip(t *testing.T) {
	dir := t.TempDir()
	malicious := filepath.Join(dir, "evil.zip")

	f, err := os.Create(malicious)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("../escape.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("pwned"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dest := filepath.Join(dir, "dest")
	require.NoError(t, os.MkdirAll(dest, 0o755))

	err = ExtractZip(context.Background(), malicious, dest)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "escape.txt"))
}

// TestCreateCancelled tests context cancellation during packing
func TestCreateCancelled(t *testing.T) {
	src := sourceTree(t)
	out := filepath.Join(t.TempDir(), "out.zip")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := CreateZip(ctx, src, out, Options{})
	assert.Error(t, err)
}
