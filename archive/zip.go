package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/traverse"
)

// Options controls archive creation.
type Options struct {
	// Exclude lists glob patterns; entries whose name matches any of
	// them are skipped, and a matching directory prunes its subtree.
	Exclude []string
}

// CreateZip packs the tree rooted at src into a ZIP archive at out.
func CreateZip(ctx context.Context, src, out string, opts Options) error {
	walk, err := traverse.Walk(src, traverse.Filter{ShowHidden: true, ExcludeGlobs: opts.Exclude})
	if err != nil {
		return err
	}

	zipFile, err := os.Create(out)
	if err != nil {
		return fserr.New("zip_create", out, err)
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	for e := range walk {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return fserr.WithKind("zip_create", out, fserr.IOFailure, err)
		}
		if err := addZipEntry(zw, src, e); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fserr.New("zip_create", out, err)
	}
	return zipFile.Close()
}

func addZipEntry(zw *zip.Writer, root string, e traverse.Entry) error {
	rel, err := filepath.Rel(root, e.Path)
	if err != nil {
		return fserr.New("zip_create", e.Path, err)
	}
	rel = filepath.ToSlash(rel)

	if e.IsDir {
		if _, err := zw.Create(rel + "/"); err != nil {
			return fserr.New("zip_create", e.Path, err)
		}
		return nil
	}

	w, err := zw.Create(rel)
	if err != nil {
		return fserr.New("zip_create", e.Path, err)
	}
	f, err := os.Open(e.Path)
	if err != nil {
		return fserr.New("zip_create", e.Path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fserr.New("zip_create", e.Path, err)
	}
	return nil
}

// ExtractZip unpacks the ZIP archive into dest. Entries whose
// resolved path would escape dest are rejected.
func ExtractZip(ctx context.Context, archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fserr.New("zip_extract", archive, err)
	}
	defer r.Close()

	for _, file := range r.File {
		if err := ctx.Err(); err != nil {
			return fserr.WithKind("zip_extract", archive, fserr.IOFailure, err)
		}

		target, err := securePath(dest, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fserr.New("zip_extract", target, err)
			}
			continue
		}
		if err := extractZipFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fserr.New("zip_extract", target, err)
	}

	src, err := file.Open()
	if err != nil {
		return fserr.New("zip_extract", target, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode().Perm())
	if err != nil {
		return fserr.New("zip_extract", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fserr.New("zip_extract", target, err)
	}
	return dst.Close()
}

// securePath joins name under dest, rejecting entries that would land
// outside it.
func securePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fserr.WithKind("extract", name, fserr.IOFailure,
			os.ErrInvalid)
	}
	return target, nil
}
