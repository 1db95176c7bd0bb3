package fileops

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/pathtype"
	"github.com/lilellia/fluidpath/pattern"
)

// CopyOptions controls Copy behavior.
type CopyOptions struct {
	// Metadata also copies permission bits and access/modification
	// timestamps after each entry's contents.
	Metadata bool

	// FollowSymlinks applies when the source is a single symlink: true
	// copies the linked file's contents, false recreates the link.
	FollowSymlinks bool

	// MaintainSymlinks applies to tree copies: true recreates symlinks
	// in the destination tree, false copies the contents of linked
	// regular files instead. Symlinks to directories are always
	// recreated, never expanded, so tree copies terminate on cyclic
	// link graphs.
	MaintainSymlinks bool

	// DirsExistOK merges into an existing destination directory
	// instead of failing with AlreadyExists.
	DirsExistOK bool

	// Ignore lists glob patterns; tree entries whose name matches any
	// of them are skipped, and matching directories prune their whole
	// subtree.
	Ignore []string
}

// Copy copies src to dst. A directory source triggers a recursive tree
// copy preserving relative structure; anything else is copied as a
// single entry. See CopyOptions for the knobs.
//
// Tree copies are best-effort: the first failure aborts the operation
// and is returned with its offending path, leaving previously copied
// entries in place.
func Copy(src, dst string, opts CopyOptions) error {
	switch pathtype.Classify(src, false) {
	case pathtype.DoesNotExist:
		return fserr.WithKind("copy", src, fserr.NotFound, fs.ErrNotExist)
	case pathtype.Directory:
		ignore, err := pattern.CompileSet(opts.Ignore)
		if err != nil {
			return err
		}
		return copyTree(src, dst, opts, ignore)
	case pathtype.Symlink:
		if !opts.FollowSymlinks {
			return copyLink(src, dst)
		}
		return copyFile(src, dst, opts.Metadata)
	default:
		return copyFile(src, dst, opts.Metadata)
	}
}

func copyTree(src, dst string, opts CopyOptions, ignore pattern.Set) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fserr.New("copy", src, err)
	}

	if _, err := os.Lstat(dst); err == nil {
		if !opts.DirsExistOK {
			return fserr.WithKind("copy", dst, fserr.AlreadyExists, fs.ErrExist)
		}
	} else if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return fserr.New("copy", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fserr.New("copy", src, err)
	}

	for _, d := range entries {
		if ignore.MatchName(d.Name()) {
			continue
		}
		s := filepath.Join(src, d.Name())
		t := filepath.Join(dst, d.Name())

		switch {
		case d.IsDir():
			if err := copyTree(s, t, opts, ignore); err != nil {
				return err
			}
		case d.Type()&fs.ModeSymlink != 0:
			if err := copyTreeLink(s, t, opts); err != nil {
				return err
			}
		case d.Type().IsRegular():
			if err := copyFile(s, t, opts.Metadata); err != nil {
				return err
			}
		default:
			err := fmt.Errorf("unsupported entry type: %s", pathtype.FromMode(d.Type()))
			return fserr.WithKind("copy", s, fserr.IOFailure, err)
		}
	}

	// The directory's own timestamps go last so that creating children
	// does not clobber them.
	if opts.Metadata {
		return copyFileInfo(src, dst)
	}
	return nil
}

// copyTreeLink handles a symlink met during a tree copy.
func copyTreeLink(src, dst string, opts CopyOptions) error {
	if opts.MaintainSymlinks {
		return copyLink(src, dst)
	}
	if pathtype.Classify(src, true) == pathtype.RegularFile {
		return copyFile(src, dst, opts.Metadata)
	}
	// Dangling links and links to directories are recreated as links.
	return copyLink(src, dst)
}

func copyLink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fserr.New("copy", src, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fserr.New("copy", dst, err)
	}
	return nil
}

// copyFile copies file contents (following a symlink source), creating
// dst with the source's permission bits.
func copyFile(src, dst string, metadata bool) error {
	in, err := os.Open(src)
	if err != nil {
		return fserr.New("copy", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fserr.New("copy", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fserr.New("copy", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fserr.New("copy", dst, err)
	}
	if err := out.Close(); err != nil {
		return fserr.New("copy", dst, err)
	}

	if metadata {
		return copyFileInfo(src, dst)
	}
	return nil
}

// copyFileInfo transfers permission bits and access/modification
// timestamps from src to dst. Contents, owner, and group are
// unaffected.
func copyFileInfo(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fserr.New("copy", src, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fserr.New("copy", dst, err)
	}
	atime, mtime := fileTimes(info)
	if err := os.Chtimes(dst, atime, mtime); err != nil {
		return fserr.New("copy", dst, err)
	}
	return nil
}
