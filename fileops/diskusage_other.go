//go:build !unix

package fileops

import (
	"fmt"

	"github.com/lilellia/fluidpath/fserr"
)

// DiskUsage is unsupported on this platform.
func DiskUsage(path string) (Usage, error) {
	err := fmt.Errorf("disk usage is not supported on this platform")
	return Usage{}, fserr.WithKind("disk_usage", path, fserr.IOFailure, err)
}
