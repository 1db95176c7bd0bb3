package traverse

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/lilellia/fluidpath/pattern"
)

// Entry is one yielded descendant of the walk root.
type Entry struct {
	// Path is the entry's path, rooted at the walk root.
	Path string

	// Depth is the entry's depth relative to the root; immediate
	// children of the root have depth 1.
	Depth int

	// IsDir reports whether the entry itself is a directory. Symlinks
	// to directories report false: they are yielded but never expanded.
	IsDir bool
}

// Name returns the entry's final path segment.
func (e Entry) Name() string { return filepath.Base(e.Path) }

// Filter restricts which descendants a walk yields.
type Filter struct {
	// ShowHidden admits entries whose name begins with a dot. When
	// false (the zero value), a hidden directory also hides everything
	// beneath it.
	ShowHidden bool

	// MaxDepth bounds recursion: entries deeper than MaxDepth are never
	// visited, not merely filtered after the fact. Zero or negative
	// means unbounded.
	MaxDepth int

	// ExcludeGlobs excludes entries whose name (not full path) matches
	// any pattern. An excluded directory prunes its whole subtree.
	ExcludeGlobs []string

	// OnError, when set, receives directory-listing failures. When nil,
	// unreadable directories are skipped silently.
	OnError func(path string, err error)
}

// Walk returns a lazy depth-first sequence of the descendants of root,
// restricted by the filter. Sibling order follows the underlying
// directory listing and is not part of the contract.
//
// The only upfront failure is an invalid exclusion glob; listing
// failures during iteration are routed to Filter.OnError.
func Walk(root string, f Filter) (iter.Seq[Entry], error) {
	excl, err := pattern.CompileSet(f.ExcludeGlobs)
	if err != nil {
		return nil, err
	}
	return func(yield func(Entry) bool) {
		walkDir(root, 1, f, excl, yield)
	}, nil
}

// walkDir yields dir's entries and recurses into subdirectories. It
// returns false once the consumer stops pulling.
func walkDir(dir string, depth int, f Filter, excl pattern.Set, yield func(Entry) bool) bool {
	if f.MaxDepth > 0 && depth > f.MaxDepth {
		return true
	}

	// os.ReadDir opens, reads, and closes the handle before we yield,
	// so abandoning the sequence leaks nothing.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if f.OnError != nil {
			f.OnError(dir, err)
		}
		return true
	}

	for _, d := range entries {
		name := d.Name()
		if !f.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if excl.MatchName(name) {
			continue
		}

		path := filepath.Join(dir, name)
		if !yield(Entry{Path: path, Depth: depth, IsDir: d.IsDir()}) {
			return false
		}

		// d.IsDir is lstat-based: a symlink to a directory reports
		// false here, which is what guarantees termination on cyclic
		// symlink graphs.
		if d.IsDir() {
			if !walkDir(path, depth+1, f, excl, yield) {
				return false
			}
		}
	}
	return true
}
