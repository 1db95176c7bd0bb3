package fileops

import (
	"errors"
	"io/fs"
	"os"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/pathtype"
)

// Delete removes the entry at path. Non-directories are removed
// directly. A directory requires recursive unless it is empty; with
// recursive, the subtree is removed children-before-parents, and
// symlinks within it are removed as entries, never dereferenced into
// their targets.
func Delete(path string, recursive bool) error {
	switch pathtype.Classify(path, false) {
	case pathtype.DoesNotExist:
		return fserr.WithKind("delete", path, fserr.NotFound, fs.ErrNotExist)
	case pathtype.Directory:
		if recursive {
			// os.RemoveAll removes post-order and stops at symlinks.
			if err := os.RemoveAll(path); err != nil {
				return wrapPathError("delete", path, err)
			}
			return nil
		}
		if err := os.Remove(path); err != nil {
			return wrapPathError("delete", path, err)
		}
		return nil
	default:
		if err := os.Remove(path); err != nil {
			return wrapPathError("delete", path, err)
		}
		return nil
	}
}

// wrapPathError prefers the offending path reported by the OS over the
// operation's argument, so tree failures name the entry that failed.
func wrapPathError(op, fallback string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) && pe.Path != "" {
		return fserr.New(op, pe.Path, err)
	}
	return fserr.New(op, fallback, err)
}
