package traverse

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/lilellia/fluidpath/pathtype"
	"github.com/lilellia/fluidpath/pattern"
)

// Predicate restricts Find results beyond the traversal filter.
type Predicate struct {
	Filter

	// MinDepth excludes entries shallower than the threshold. Unlike
	// MaxDepth it does not prune recursion; deeper descendants of a
	// shallow entry are still considered.
	MinDepth int

	// Pattern matches the entry's final path segment. Empty admits
	// everything. Glob selects glob translation instead of regex;
	// FoldCase makes the match case-insensitive.
	Pattern  string
	Glob     bool
	FoldCase bool

	// Types, when non-empty, retains only entries whose classification
	// (without following symlinks) is a member.
	Types pathtype.Set

	// Extension, when non-empty, retains only entries whose final
	// dot-suffix matches. A leading dot is optional. Comparison is
	// case-sensitive unless FoldExtension is set.
	Extension     string
	FoldExtension bool
}

// Find returns a lazy sequence of the descendants of root matching all
// predicate conditions. Checks run cheapest-first per candidate: depth
// range, then type (one metadata query), then pattern and extension.
func Find(root string, p Predicate) (iter.Seq[Entry], error) {
	walk, err := Walk(root, p.Filter)
	if err != nil {
		return nil, err
	}

	var pat *pattern.Pattern
	if p.Pattern != "" {
		pat, err = pattern.Compile(p.Pattern, p.Glob, !p.FoldCase)
		if err != nil {
			return nil, err
		}
	}

	ext := p.Extension
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return func(yield func(Entry) bool) {
		for e := range walk {
			if e.Depth < p.MinDepth {
				continue
			}
			if !p.Types.Empty() && !p.Types.Has(pathtype.Classify(e.Path, false)) {
				continue
			}
			if pat != nil && !pat.MatchSegment(e.Path) {
				continue
			}
			if ext != "" && !extensionMatches(e.Path, ext, p.FoldExtension) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}, nil
}

func extensionMatches(path, ext string, foldCase bool) bool {
	got := filepath.Ext(path)
	if foldCase {
		return strings.EqualFold(got, ext)
	}
	return got == ext
}
