package fileops

import (
	"io/fs"
	"os"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/pathtype"
)

// Move renames src to dst. On the same filesystem this is a single
// atomic rename. When the rename fails because src and dst live on
// different filesystems, Move falls back to a metadata-preserving copy
// followed by a recursive delete of src; that pair is not atomic as a
// whole, and the idempotent recovery after a crash between the steps
// is to delete src again.
func Move(src, dst string) error {
	if pathtype.Classify(src, false) == pathtype.DoesNotExist {
		return fserr.WithKind("move", src, fserr.NotFound, fs.ErrNotExist)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if fserr.KindOf(err) != fserr.CrossDevice {
		return fserr.New("move", src, err)
	}
	return moveFallback(src, dst)
}

// moveFallback services cross-device moves. Symlinks are carried over
// as links so the destination tree mirrors the source exactly.
func moveFallback(src, dst string) error {
	opts := CopyOptions{Metadata: true, MaintainSymlinks: true}
	if err := Copy(src, dst, opts); err != nil {
		return err
	}
	return Delete(src, true)
}
