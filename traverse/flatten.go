package traverse

import (
	"context"
	"os"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Flatten eagerly collects every file beneath root as a flat list of
// paths. It trades the lazy contract of Walk for fastwalk's parallel
// descent; result order is unspecified. Symlinked directories are not
// followed.
func Flatten(ctx context.Context, root string) ([]string, error) {
	var (
		mu    sync.Mutex
		files []string
	)
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

		mu.Lock()
		files = append(files, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
