package atomicfile

import (
	"errors"
	"io/fs"
	"os"

	"github.com/lilellia/fluidpath/fserr"
)

// TempOptions configures scoped temporary file and directory creation.
// The zero value places the entry in the system default temporary
// directory with no name affixes.
type TempOptions struct {
	// Dir is the parent directory. Empty means os.TempDir().
	Dir string

	// Prefix and Suffix are affixed to the randomized middle of the
	// entry's name.
	Prefix string
	Suffix string
}

func (o TempOptions) pattern() string {
	return o.Prefix + "*" + o.Suffix
}

// TempFile creates an empty temporary file and returns its path along
// with a release function that removes it. Callers that want to keep
// the file simply never call release; releasing an already-removed
// file is not an error.
func TempFile(opts TempOptions) (string, func() error, error) {
	f, err := os.CreateTemp(opts.Dir, opts.pattern())
	if err != nil {
		return "", nil, fserr.New("temp_file", opts.Dir, err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, fserr.New("temp_file", path, err)
	}

	release := func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fserr.New("temp_file", path, err)
		}
		return nil
	}
	return path, release, nil
}

// TempDir creates a temporary directory and returns its path along
// with a release function that removes it and everything under it.
func TempDir(opts TempOptions) (string, func() error, error) {
	path, err := os.MkdirTemp(opts.Dir, opts.pattern())
	if err != nil {
		return "", nil, fserr.New("temp_dir", opts.Dir, err)
	}

	release := func() error {
		if err := os.RemoveAll(path); err != nil {
			return fserr.New("temp_dir", path, err)
		}
		return nil
	}
	return path, release, nil
}
