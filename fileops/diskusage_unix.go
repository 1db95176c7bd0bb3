//go:build unix

package fileops

import (
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/pathtype"
)

// DiskUsage reports total/used/free space for the filesystem
// containing path. Free counts blocks available to unprivileged users.
func DiskUsage(path string) (Usage, error) {
	if pathtype.Classify(path, false) == pathtype.DoesNotExist {
		return Usage{}, fserr.WithKind("disk_usage", path, fserr.NotFound, fs.ErrNotExist)
	}

	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, fserr.New("disk_usage", path, err)
	}

	bsize := uint64(st.Bsize)
	total := uint64(st.Blocks) * bsize
	free := uint64(st.Bavail) * bsize
	used := (uint64(st.Blocks) - uint64(st.Bfree)) * bsize
	return Usage{Total: total, Used: used, Free: free}, nil
}
