package metadata

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/lilellia/fluidpath/fserr"
)

// Info is a stat summary for one entry.
type Info struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	IsDir     bool      `json:"is_dir"`
	Mode      string    `json:"mode"`
	Modified  time.Time `json:"modified"`
	Extension string    `json:"extension,omitempty"`
}

// Stat queries metadata for path without following a terminal symlink.
func Stat(path string) (*Info, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fserr.New("stat", path, err)
	}
	return &Info{
		Name:      info.Name(),
		Path:      path,
		Size:      info.Size(),
		IsDir:     info.IsDir(),
		Mode:      info.Mode().String(),
		Modified:  info.ModTime(),
		Extension: filepath.Ext(info.Name()),
	}, nil
}

// Size returns the size in bytes of the entry at path.
func Size(path string) (int64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, fserr.New("size", path, err)
	}
	return info.Size(), nil
}

// TotalSize sums the sizes of all files beneath root using a parallel
// walk. Symlinked directories are not followed; unreadable entries are
// skipped.
func TotalSize(ctx context.Context, root string) (int64, error) {
	var total atomic.Int64
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		return 0, fserr.New("total_size", root, err)
	}
	return total.Load(), nil
}
