package fluidpath

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilellia/fluidpath/pathtype"
	"github.com/lilellia/fluidpath/traverse"
)

// TestPathComponents tests the pure string helpers
func TestPathComponents(t *testing.T) {
	p := New("data", "reports", "summary.tar.gz")

	assert.Equal(t, filepath.Join("data", "reports", "summary.tar.gz"), p.String())
	assert.Equal(t, "summary.tar.gz", p.Name())
	assert.Equal(t, ".gz", p.Suffix())
	assert.Equal(t, "summary.tar", p.Stem())
	assert.Equal(t, New("data", "reports"), p.Parent())
	assert.Equal(t, New("data", "reports", "x.txt"), p.WithName("x.txt"))
}

// TestWithSuffix tests suffix replacement rules
func TestWithSuffix(t *testing.T) {
	p := New("dir", "file.txt")

	// A leading dot is optional and an empty suffix strips.
	assert.Equal(t, New("dir", "file.md"), p.WithSuffix(".md"))
	assert.Equal(t, New("dir", "file.md"), p.WithSuffix("md"))
	assert.Equal(t, New("dir", "file"), p.WithSuffix(""))

	bare := New("dir", "file")
	assert.Equal(t, New("dir", "file.go"), bare.WithSuffix(".go"))
}

// TestContains tests subtree membership
func TestContains(t *testing.T) {
	root := New("a", "b")

	assert.True(t, root.Contains(New("a", "b", "c")))
	assert.True(t, root.Contains(New("a", "b", "c", "d.txt")))
	assert.True(t, root.Contains(root))
	assert.False(t, root.Contains(New("a")))
	assert.False(t, root.Contains(New("a", "other")))
}

// TestMatch tests one-shot regex matching against the full path and
// against the tail
func TestMatch(t *testing.T) {
	p := New("root", "a", "b", "file.txt")

	ok, err := p.Match(`root/.*f.*xt`, true, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Match(`f.*xt`, false, true)
	require.NoError(t, err)
	assert.True(t, ok)

	// Tail matching sees only the final segment.
	ok, err = p.Match(`root`, false, true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Match(`ROOT/.*F.*xt`, true, false)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Match(`(unclosed`, true, true)
	assert.Error(t, err)
}

// TestGlobMatch tests one-shot glob matching through the facade
func TestGlobMatch(t *testing.T) {
	p := New("root", "a", "b", "file.txt")

	ok, err := p.GlobMatch("root/*/*/f*xt", true, true)
	require.NoError(t, err)
	assert.True(t, ok)

	// A single * stays within one segment.
	ok, err = p.GlobMatch("root/*", true, true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.GlobMatch("root/**", true, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.GlobMatch("f*xt", false, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.GlobMatch("F*XT", false, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.GlobMatch("*.md", false, true)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestTypeAndExists tests live classification through the facade
func TestTypeAndExists(t *testing.T) {
	dir := t.TempDir()
	file := New(dir, "f.txt")
	require.NoError(t, file.WriteText("x"))

	link := New(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), string(link)))

	assert.Equal(t, pathtype.RegularFile, file.Type())
	assert.True(t, file.Exists())
	assert.True(t, file.IsExistingFile())
	assert.False(t, file.IsExistingDir())

	// A dangling link exists as an entry but resolves to nothing.
	assert.True(t, link.Exists())
	assert.Equal(t, pathtype.Symlink, link.Type())
	assert.Equal(t, pathtype.DoesNotExist, link.ResolvedType())

	assert.False(t, New(dir, "missing").Exists())
}

// TestIsDirHeuristic tests the trailing-separator intent fallback
func TestIsDirHeuristic(t *testing.T) {
	dir := t.TempDir()

	// Existing entries answer from the filesystem.
	assert.True(t, New(dir).IsDir())
	assert.False(t, New(dir).IsFile())

	// Missing entries answer from the path string.
	sep := string(os.PathSeparator)
	assert.True(t, Path(filepath.Join(dir, "ghost")+sep).IsDir())
	assert.False(t, New(dir, "ghost.txt").IsDir())
	assert.True(t, New(dir, "ghost.txt").IsFile())
}

// TestReadWrite tests the plain file I/O helpers
func TestReadWrite(t *testing.T) {
	p := New(t.TempDir(), "notes.txt")

	require.NoError(t, p.WriteText("line one\nline two\n"))

	text, err := p.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", text)

	lines, err := p.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line two"}, lines)

	require.NoError(t, p.AppendText("line three\n"))
	lines, err = p.ReadLines()
	require.NoError(t, err)
	assert.Len(t, lines, 3)

	data, err := p.ReadBytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), "line three")
}

// TestReadLinesCRLF tests newline normalization
func TestReadLinesCRLF(t *testing.T) {
	p := New(t.TempDir(), "dos.txt")
	require.NoError(t, p.WriteText("a\r\nb\r\n"))

	lines, err := p.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

// TestWriteLines tests line-oriented writes
func TestWriteLines(t *testing.T) {
	p := New(t.TempDir(), "out.txt")
	require.NoError(t, p.WriteLines([]string{"x", "y"}))

	text, err := p.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", text)
}

// TestWriteAtomic tests crash-safe replacement through the facade
func TestWriteAtomic(t *testing.T) {
	p := New(t.TempDir(), "state.json")
	require.NoError(t, p.WriteTextAtomic(`{"v": 1}`))
	require.NoError(t, p.WriteAtomic([]byte(`{"v": 2}`)))

	text, err := p.ReadText()
	require.NoError(t, err)
	assert.Equal(t, `{"v": 2}`, text)
}

// TestTraverseAndFind tests delegation to the traversal engine
func TestTraverseAndFind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, New(dir, "a.go").WriteText("x"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, New(dir, "sub", "b.go").WriteText("x"))
	require.NoError(t, New(dir, "sub", "c.txt").WriteText("x"))

	seq, err := New(dir).Find(traverse.Predicate{Pattern: "*.go", Glob: true})
	require.NoError(t, err)

	var names []string
	for e := range seq {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.go", "b.go"}, names)
}

// TestFacadeMutations tests copy, move, and delete delegation
func TestFacadeMutations(t *testing.T) {
	dir := t.TempDir()
	src := New(dir, "src.txt")
	require.NoError(t, src.WriteText("payload"))

	copied := New(dir, "copy.txt")
	require.NoError(t, src.Copy(copied, CopyOptions{}))
	assert.True(t, copied.IsExistingFile())

	sub := New(dir, "sub")
	require.NoError(t, os.MkdirAll(string(sub), 0o755))
	require.NoError(t, copied.MoveInto(sub))
	assert.False(t, copied.Exists())
	assert.True(t, sub.Join("copy.txt").IsExistingFile())

	require.NoError(t, src.Delete(false))
	assert.False(t, src.Exists())
}

// TestPermissions tests mode query and change
func TestPermissions(t *testing.T) {
	p := New(t.TempDir(), "f.txt")
	require.NoError(t, p.WriteText("x"))

	require.NoError(t, p.Chmod(0o600))
	mode, err := p.Permissions()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), mode.Perm())

	size, err := p.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)
}

// TestTempHelpers tests the scoped temporary file and directory facade
func TestTempHelpers(t *testing.T) {
	parent := New(t.TempDir())

	f, releaseFile, err := TempFile(TempOptions{Dir: parent.String(), Suffix: ".tmp"})
	require.NoError(t, err)
	assert.True(t, f.IsExistingFile())
	assert.True(t, parent.Contains(f))
	require.NoError(t, releaseFile())
	assert.False(t, f.Exists())

	d, releaseDir, err := TempDir(TempOptions{Dir: parent.String(), Prefix: "scratch-"})
	require.NoError(t, err)
	assert.True(t, d.IsExistingDir())
	require.NoError(t, d.Join("inner.txt").WriteText("x"))
	require.NoError(t, releaseDir())
	assert.False(t, d.Exists())
}
