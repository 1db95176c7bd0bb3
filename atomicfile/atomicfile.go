package atomicfile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lilellia/fluidpath/fserr"
)

// File accumulates content for one atomic replacement. Writes land in
// a hidden temporary file beside the target; Close flushes and commits
// it with a single rename, and Cancel discards it, leaving the target
// untouched either way until the rename happens.
type File struct {
	target string
	tmp    *os.File
	closed bool
}

// New opens an atomic writer for path. The temporary file is created
// in path's directory with the given permission bits.
func New(path string, perm fs.FileMode) (*File, error) {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.NewString()))

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, fserr.New("write_atomic", path, err)
	}
	return &File{target: path, tmp: tmp}, nil
}

// Write appends to the pending content. A write error leaves the
// target untouched; call Cancel to discard the temporary file.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.tmp.Write(p)
	if err != nil {
		return n, fserr.New("write_atomic", f.target, err)
	}
	return n, nil
}

// Close forces the pending content to durable storage and renames it
// onto the target. On any failure the temporary file is removed and
// the target keeps its previous content.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if err := f.tmp.Sync(); err != nil {
		f.discard()
		return fserr.New("write_atomic", f.target, err)
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name())
		return fserr.New("write_atomic", f.target, err)
	}
	if err := os.Rename(f.tmp.Name(), f.target); err != nil {
		os.Remove(f.tmp.Name())
		return fserr.New("write_atomic", f.target, err)
	}
	return nil
}

// Cancel abandons the pending write, removing the temporary file. The
// target is never touched. Calling Cancel after a successful Close is
// a no-op.
func (f *File) Cancel() {
	if f.closed {
		return
	}
	f.closed = true
	f.discard()
}

func (f *File) discard() {
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}

// WriteFile atomically replaces the content of path with data.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	f, err := New(path, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Cancel()
		return err
	}
	return f.Close()
}

// WriteString atomically replaces the content of path with s, using
// 0644 permissions for a newly created file.
func WriteString(path, s string) error {
	return WriteFile(path, []byte(s), 0o644)
}

// WriteReader atomically replaces the content of path with everything
// read from r.
func WriteReader(path string, r io.Reader, perm fs.FileMode) error {
	f, err := New(path, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Cancel()
		if _, ok := err.(*fserr.Error); ok {
			return err
		}
		return fserr.New("write_atomic", path, err)
	}
	return f.Close()
}
