package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/lilellia/fluidpath/fserr"
	"github.com/lilellia/fluidpath/traverse"
)

// Compression selects the TAR stream compression.
type Compression string

const (
	NoCompression Compression = "none"
	Gzip          Compression = "gzip"
	Zstd          Compression = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// CreateTar packs the tree rooted at src into a TAR archive at out,
// compressed per comp.
func CreateTar(ctx context.Context, src, out string, comp Compression, opts Options) error {
	walk, err := traverse.Walk(src, traverse.Filter{ShowHidden: true, ExcludeGlobs: opts.Exclude})
	if err != nil {
		return err
	}

	outFile, err := os.Create(out)
	if err != nil {
		return fserr.New("tar_create", out, err)
	}
	defer outFile.Close()

	var (
		tw     *tar.Writer
		closer io.Closer
	)
	switch comp {
	case Gzip:
		gz := gzip.NewWriter(outFile)
		closer = gz
		tw = tar.NewWriter(gz)
	case Zstd:
		zw, err := zstd.NewWriter(outFile)
		if err != nil {
			return fserr.New("tar_create", out, err)
		}
		closer = zw
		tw = tar.NewWriter(zw)
	default:
		tw = tar.NewWriter(outFile)
	}

	for e := range walk {
		if err := ctx.Err(); err != nil {
			tw.Close()
			return fserr.WithKind("tar_create", out, fserr.IOFailure, err)
		}
		if err := addTarEntry(tw, src, e); err != nil {
			tw.Close()
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fserr.New("tar_create", out, err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fserr.New("tar_create", out, err)
		}
	}
	return outFile.Close()
}

func addTarEntry(tw *tar.Writer, root string, e traverse.Entry) error {
	info, err := os.Lstat(e.Path)
	if err != nil {
		return fserr.New("tar_create", e.Path, err)
	}

	link := ""
	if info.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(e.Path); err != nil {
			return fserr.New("tar_create", e.Path, err)
		}
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return fserr.New("tar_create", e.Path, err)
	}
	rel, err := filepath.Rel(root, e.Path)
	if err != nil {
		return fserr.New("tar_create", e.Path, err)
	}
	header.Name = filepath.ToSlash(rel)

	if err := tw.WriteHeader(header); err != nil {
		return fserr.New("tar_create", e.Path, err)
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(e.Path)
	if err != nil {
		return fserr.New("tar_create", e.Path, err)
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return fserr.New("tar_create", e.Path, err)
	}
	return nil
}

// ExtractTar unpacks the TAR archive into dest, auto-detecting gzip
// and zstd compression from the stream's magic bytes.
func ExtractTar(ctx context.Context, archive, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return fserr.New("tar_extract", archive, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	stream, err := decompressed(br)
	if err != nil {
		return fserr.New("tar_extract", archive, err)
	}

	tr := tar.NewReader(stream)
	for {
		if err := ctx.Err(); err != nil {
			return fserr.WithKind("tar_extract", archive, fserr.IOFailure, err)
		}

		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fserr.New("tar_extract", archive, err)
		}

		target, err := securePath(dest, header.Name)
		if err != nil {
			return err
		}
		if err := extractTarEntry(tr, header, target); err != nil {
			return err
		}
	}
}

func extractTarEntry(tr *tar.Reader, header *tar.Header, target string) error {
	switch header.Typeflag {
	case tar.TypeDir:
		if err := os.MkdirAll(target, header.FileInfo().Mode().Perm()); err != nil {
			return fserr.New("tar_extract", target, err)
		}
	case tar.TypeSymlink:
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fserr.New("tar_extract", target, err)
		}
		if err := os.Symlink(header.Linkname, target); err != nil {
			return fserr.New("tar_extract", target, err)
		}
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fserr.New("tar_extract", target, err)
		}
		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, header.FileInfo().Mode().Perm())
		if err != nil {
			return fserr.New("tar_extract", target, err)
		}
		if _, err := io.Copy(f, tr); err != nil {
			f.Close()
			return fserr.New("tar_extract", target, err)
		}
		if err := f.Close(); err != nil {
			return fserr.New("tar_extract", target, err)
		}
	default:
		// Devices, FIFOs, and hard links are skipped rather than
		// failing the whole extraction.
	}
	return nil
}

// decompressed wraps r with the decoder its magic bytes call for.
func decompressed(r *bufio.Reader) (io.Reader, error) {
	head, err := r.Peek(4)
	if err != nil && len(head) < 2 {
		return nil, fmt.Errorf("read archive header: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return gzip.NewReader(r)
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return r, nil
	}
}
