// Package pattern evaluates paths against regular expressions and
// shell-style glob patterns.
//
// Globs are translated to an equivalent anchored regular expression:
// `*` matches any run of characters excluding the separator, `?` one
// character excluding the separator, `**` any run including
// separators, and `[...]` a character class. The translation is total
// and deterministic: every valid glob maps to exactly one regex.
//
// Matching against a full path and against only the final segment are
// distinct operations. Traversal exclusion matches per-segment (entry
// names); PathMatch matches whole relative paths with doublestar
// semantics.
//
// Case-insensitive matching applies Unicode case rules: glob patterns
// and candidates are case-folded before comparison, and regular
// expressions run with Unicode-aware folding.
package pattern
