package fileops

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strconv"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/pathtype"
)

// CopyPermissions copies the permission bits from src to dst. The
// contents, owner, and group of dst are unaffected.
//
// With followSymlinks false, a terminal symlink at either end cannot
// have its own permission bits changed portably; the operation reports
// IOFailure rather than silently acting on the link target.
func CopyPermissions(src, dst string, followSymlinks bool) error {
	if pathtype.Classify(src, false) == pathtype.DoesNotExist {
		return fserr.WithKind("copy_permissions", src, fserr.NotFound, fs.ErrNotExist)
	}

	if !followSymlinks {
		if pathtype.Classify(src, false) == pathtype.Symlink || pathtype.Classify(dst, false) == pathtype.Symlink {
			err := fmt.Errorf("symlink permission bits cannot be modified on this platform")
			return fserr.WithKind("copy_permissions", dst, fserr.IOFailure, err)
		}
	}

	info, err := os.Stat(src)
	if err != nil {
		return fserr.New("copy_permissions", src, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fserr.New("copy_permissions", dst, err)
	}
	return nil
}

// CopyStat copies permission bits plus access/modification timestamps
// from src to dst. With followSymlinks false and a symlink at both
// ends, timestamps are applied to the links themselves.
func CopyStat(src, dst string, followSymlinks bool) error {
	if pathtype.Classify(src, false) == pathtype.DoesNotExist {
		return fserr.WithKind("copy_stat", src, fserr.NotFound, fs.ErrNotExist)
	}

	if !followSymlinks && pathtype.Classify(src, false) == pathtype.Symlink {
		info, err := os.Lstat(src)
		if err != nil {
			return fserr.New("copy_stat", src, err)
		}
		atime, mtime := fileTimes(info)
		if err := lutimes(dst, atime, mtime); err != nil {
			return fserr.New("copy_stat", dst, err)
		}
		return nil
	}

	if err := CopyPermissions(src, dst, true); err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return fserr.New("copy_stat", src, err)
	}
	atime, mtime := fileTimes(info)
	if err := os.Chtimes(dst, atime, mtime); err != nil {
		return fserr.New("copy_stat", dst, err)
	}
	return nil
}

// Chown changes the owner and/or group of path. Both parameters accept
// a name or a numeric id; an empty string leaves that side unchanged,
// and at least one of the two must be given.
func Chown(path, owner, group string, followSymlinks bool) error {
	if pathtype.Classify(path, false) == pathtype.DoesNotExist {
		return fserr.WithKind("chown", path, fserr.NotFound, fs.ErrNotExist)
	}
	if owner == "" && group == "" {
		err := fmt.Errorf("at least one of owner and group must be specified")
		return fserr.WithKind("chown", path, fserr.IOFailure, err)
	}

	uid, err := lookupUID(owner)
	if err != nil {
		return fserr.WithKind("chown", path, fserr.IOFailure, err)
	}
	gid, err := lookupGID(group)
	if err != nil {
		return fserr.WithKind("chown", path, fserr.IOFailure, err)
	}

	if followSymlinks {
		err = os.Chown(path, uid, gid)
	} else {
		err = os.Lchown(path, uid, gid)
	}
	if err != nil {
		return fserr.New("chown", path, err)
	}
	return nil
}

// lookupUID resolves a username or numeric id; "" maps to -1, which
// chown treats as "leave unchanged".
func lookupUID(owner string) (int, error) {
	if owner == "" {
		return -1, nil
	}
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return -1, fmt.Errorf("lookup user %q: %w", owner, err)
	}
	return strconv.Atoi(u.Uid)
}

func lookupGID(group string) (int, error) {
	if group == "" {
		return -1, nil
	}
	if gid, err := strconv.Atoi(group); err == nil {
		return gid, nil
	}
	g, err := user.LookupGroup(group)
	if err != nil {
		return -1, fmt.Errorf("lookup group %q: %w", group, err)
	}
	return strconv.Atoi(g.Gid)
}
