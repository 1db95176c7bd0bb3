package fluidpath

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/lilellia/fluidpath/atomicfile"
	"github.com/lilellia/fluidpath/fileops"
	"github.com/lilellia/fluidpath/metadata"
	"github.com/lilellia/fluidpath/pathtype"
	"github.com/lilellia/fluidpath/pattern"
	"github.com/lilellia/fluidpath/traverse"
)

// Path is a filesystem path. It is a plain string value; constructing
// one touches nothing on disk.
type Path string

// CopyOptions re-exports fileops.CopyOptions so facade callers need no
// extra import.
type CopyOptions = fileops.CopyOptions

// TempOptions re-exports atomicfile.TempOptions.
type TempOptions = atomicfile.TempOptions

// New joins the given segments into a Path.
func New(elem ...string) Path {
	return Path(filepath.Join(elem...))
}

func (p Path) String() string { return string(p) }

// Join appends segments to p.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Parent returns the path with the final segment removed.
func (p Path) Parent() Path { return Path(filepath.Dir(string(p))) }

// Name returns the final path segment.
func (p Path) Name() string { return filepath.Base(string(p)) }

// Suffix returns the final dot-suffix of the name, including the dot,
// or "" when there is none.
func (p Path) Suffix() string { return filepath.Ext(string(p)) }

// Stem returns the name with its final dot-suffix removed.
func (p Path) Stem() string {
	name := p.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// WithSuffix returns the path with its final dot-suffix replaced. A
// leading dot on suffix is optional; an empty suffix strips it.
func (p Path) WithSuffix(suffix string) Path {
	if suffix != "" && !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	base := strings.TrimSuffix(string(p), filepath.Ext(string(p)))
	return Path(base + suffix)
}

// WithName returns the path with its final segment replaced.
func (p Path) WithName(name string) Path {
	return Path(filepath.Join(filepath.Dir(string(p)), name))
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool { return filepath.IsAbs(string(p)) }

// Contains reports whether other lies within p's subtree.
func (p Path) Contains(other Path) bool {
	rel, err := filepath.Rel(string(p), string(other))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

// Match reports whether p matches the regular expression, with search
// semantics. When full is true the whole slash-separated path is
// tested, otherwise only the final segment.
func (p Path) Match(expr string, full, caseSensitive bool) (bool, error) {
	pat, err := pattern.Compile(expr, false, caseSensitive)
	if err != nil {
		return false, err
	}
	if full {
		return pat.Match(filepath.ToSlash(string(p))), nil
	}
	return pat.MatchSegment(string(p)), nil
}

// GlobMatch is Match with glob syntax. The glob must cover the whole
// of whichever part is tested, and * does not cross separators.
func (p Path) GlobMatch(glob string, full, caseSensitive bool) (bool, error) {
	pat, err := pattern.Compile(glob, true, caseSensitive)
	if err != nil {
		return false, err
	}
	if full {
		return pat.Match(filepath.ToSlash(string(p))), nil
	}
	return pat.MatchSegment(string(p)), nil
}

// Type classifies the entry at p without following a terminal symlink.
func (p Path) Type() pathtype.Type {
	return pathtype.Classify(string(p), false)
}

// ResolvedType classifies the entry at p, following a terminal
// symlink.
func (p Path) ResolvedType() pathtype.Type {
	return pathtype.Classify(string(p), true)
}

// Exists reports whether anything exists at p (without following a
// terminal symlink, so a dangling link still exists).
func (p Path) Exists() bool {
	return p.Type() != pathtype.DoesNotExist
}

// IsDir reports whether p is a directory. For paths that do not exist,
// the trailing-separator intent heuristic decides (see
// pathtype.SemanticOf); use IsExistingDir to require existence.
func (p Path) IsDir() bool {
	switch p.ResolvedType() {
	case pathtype.Directory:
		return true
	case pathtype.DoesNotExist:
		return pathtype.SemanticOf(string(p)) == pathtype.SemanticDirectory
	default:
		return false
	}
}

// IsFile reports whether p is a regular file, with the same intent
// heuristic as IsDir for nonexistent paths.
func (p Path) IsFile() bool {
	switch p.ResolvedType() {
	case pathtype.RegularFile:
		return true
	case pathtype.DoesNotExist:
		return pathtype.SemanticOf(string(p)) == pathtype.SemanticFile
	default:
		return false
	}
}

// IsExistingDir reports whether p exists and is a directory.
func (p Path) IsExistingDir() bool { return p.ResolvedType() == pathtype.Directory }

// IsExistingFile reports whether p exists and is a regular file.
func (p Path) IsExistingFile() bool { return p.ResolvedType() == pathtype.RegularFile }

// Traverse returns a lazy depth-first sequence of p's descendants.
func (p Path) Traverse(f traverse.Filter) (iter.Seq[traverse.Entry], error) {
	return traverse.Walk(string(p), f)
}

// Find returns a lazy sequence of descendants matching the predicate.
func (p Path) Find(pred traverse.Predicate) (iter.Seq[traverse.Entry], error) {
	return traverse.Find(string(p), pred)
}

// Copy copies p to dst.
func (p Path) Copy(dst Path, opts fileops.CopyOptions) error {
	return fileops.Copy(string(p), string(dst), opts)
}

// Move renames p to dst, falling back to copy+delete across
// filesystems.
func (p Path) Move(dst Path) error {
	return fileops.Move(string(p), string(dst))
}

// MoveInto moves p inside the directory dst, keeping its name.
func (p Path) MoveInto(dst Path) error {
	return fileops.Move(string(p), filepath.Join(string(dst), p.Name()))
}

// Delete removes p; recursive is required for populated directories.
func (p Path) Delete(recursive bool) error {
	return fileops.Delete(string(p), recursive)
}

// Stat returns a metadata summary for p.
func (p Path) Stat() (*metadata.Info, error) {
	return metadata.Stat(string(p))
}

// Size returns p's size in bytes.
func (p Path) Size() (int64, error) {
	return metadata.Size(string(p))
}

// Permissions returns p's permission bits.
func (p Path) Permissions() (fs.FileMode, error) {
	info, err := os.Stat(string(p))
	if err != nil {
		return 0, err
	}
	return info.Mode().Perm(), nil
}

// Chmod sets p's permission bits.
func (p Path) Chmod(mode fs.FileMode) error {
	return os.Chmod(string(p), mode)
}

// Chown changes p's owner and/or group by name or numeric id.
func (p Path) Chown(owner, group string) error {
	return fileops.Chown(string(p), owner, group, true)
}

// DiskUsage reports usage for the filesystem containing p.
func (p Path) DiskUsage() (fileops.Usage, error) {
	return fileops.DiskUsage(string(p))
}

// TempFile creates a scoped temporary file and returns its path with a
// release function that removes it. Skipping the release keeps the
// file.
func TempFile(opts TempOptions) (Path, func() error, error) {
	path, release, err := atomicfile.TempFile(opts)
	return Path(path), release, err
}

// TempDir creates a scoped temporary directory, returning its path and
// a release function that removes it recursively.
func TempDir(opts TempOptions) (Path, func() error, error) {
	path, release, err := atomicfile.TempDir(opts)
	return Path(path), release, err
}
