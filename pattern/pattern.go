package pattern

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Pattern is a compiled matcher over path strings.
type Pattern struct {
	re       *regexp.Regexp
	foldCase bool
	glob     bool
}

// Compile builds a Pattern. When glob is true, expr is translated to an
// anchored regular expression; otherwise expr is used as a regular
// expression as-is, with search (unanchored) semantics.
//
// When caseSensitive is false, glob patterns and candidates are
// case-folded with Unicode rules before comparison, and regular
// expressions match with Unicode case folding enabled.
func Compile(expr string, glob, caseSensitive bool) (*Pattern, error) {
	src := expr
	if glob {
		if !caseSensitive {
			src = fold.String(src)
		}
		src = TranslateGlob(src)
	} else if !caseSensitive {
		src = `(?i)` + src
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return &Pattern{re: re, foldCase: glob && !caseSensitive, glob: glob}, nil
}

// MustCompile is Compile that panics on invalid patterns; intended for
// package-level variables with fixed patterns.
func MustCompile(expr string, glob, caseSensitive bool) *Pattern {
	p, err := Compile(expr, glob, caseSensitive)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether s matches the pattern. Globs must match the
// whole string; regular expressions match anywhere within it.
func (p *Pattern) Match(s string) bool {
	if p.foldCase {
		s = fold.String(s)
	}
	return p.re.MatchString(s)
}

// MatchSegment matches only the final path segment of path.
func (p *Pattern) MatchSegment(path string) bool {
	return p.Match(filepath.Base(path))
}

// PathMatch matches a whole (slash-separated) path against a doublestar
// glob, with ** crossing separator boundaries.
func PathMatch(glob, path string) (bool, error) {
	ok, err := doublestar.Match(glob, filepath.ToSlash(path))
	if err != nil {
		return false, fmt.Errorf("match pattern %q: %w", glob, err)
	}
	return ok, nil
}

// ValidGlob reports whether glob is well-formed.
func ValidGlob(glob string) bool {
	return doublestar.ValidatePattern(glob)
}

// Set is a compiled collection of glob patterns, matched per-segment.
// Traversal uses it for exclusion filters.
type Set []*Pattern

// CompileSet compiles a list of case-sensitive glob patterns.
func CompileSet(globs []string) (Set, error) {
	if len(globs) == 0 {
		return nil, nil
	}
	set := make(Set, 0, len(globs))
	for _, g := range globs {
		p, err := Compile(g, true, true)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// MatchName reports whether any pattern in the set matches name.
func (s Set) MatchName(name string) bool {
	for _, p := range s {
		if p.Match(name) {
			return true
		}
	}
	return false
}
