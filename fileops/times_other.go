//go:build !linux

package fileops

import (
	"io/fs"
	"os"
	"time"
)

// fileTimes extracts access and modification times from a stat result.
// Access time is not portably available here, so modification time
// stands in for both.
func fileTimes(info fs.FileInfo) (atime, mtime time.Time) {
	return info.ModTime(), info.ModTime()
}

// lutimes falls back to following the link on platforms without a
// no-follow timestamp call.
func lutimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}
