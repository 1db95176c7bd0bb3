package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilellia/fluidpath/fserr"
)

// TestDeleteFile tests removing a single file
func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	writeFile(t, path, "x", 0o644)

	require.NoError(t, Delete(path, false))
	assert.NoFileExists(t, path)
}

// TestDeleteMissing tests the NotFound failure
func TestDeleteMissing(t *testing.T) {
	err := Delete(filepath.Join(t.TempDir(), "absent"), false)

	require.Error(t, err)
	assert.True(t, fserr.IsKind(err, fserr.NotFound))
}

// TestDeleteEmptyDirectory tests non-recursive removal of an empty dir
func TestDeleteEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(path, 0o755))

	require.NoError(t, Delete(path, false))
	assert.NoDirExists(t, path)
}

// TestDeleteNonEmptyDirectory tests the NotEmpty refusal
func TestDeleteNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "full")
	writeFile(t, filepath.Join(path, "child.txt"), "x", 0o644)

	err := Delete(path, false)
	require.Error(t, err)
	assert.True(t, fserr.IsKind(err, fserr.NotEmpty))
	assert.DirExists(t, path)

	require.NoError(t, Delete(path, true))
	assert.NoDirExists(t, path)
}

// TestDeleteRecursiveSymlinks tests that links are removed, not followed
func TestDeleteRecursiveSymlinks(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "outside")
	writeFile(t, filepath.Join(outside, "precious.txt"), "keep", 0o644)

	doomed := filepath.Join(dir, "doomed")
	writeFile(t, filepath.Join(doomed, "a.txt"), "x", 0o644)
	require.NoError(t, os.Symlink(outside, filepath.Join(doomed, "link")))

	require.NoError(t, Delete(doomed, true))

	assert.NoDirExists(t, doomed)
	// The link's target is untouched.
	assert.FileExists(t, filepath.Join(outside, "precious.txt"))
}

// TestDeleteSymlinkItself tests removing a symlink entry
func TestDeleteSymlinkItself(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	writeFile(t, target, "x", 0o644)
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, Delete(link, false))

	assert.NoFileExists(t, link)
	assert.FileExists(t, target)
}
