// Package pathtype classifies filesystem entries into one closed set
// of categories.
//
// Classify is a pure read: it performs a single metadata query and maps
// every failure mode into the type set itself (DoesNotExist for missing
// or inaccessible paths, Unknown for unrecognized mode bits), so it
// never returns an error. Downstream code switches on the returned tag
// instead of chaining boolean predicates.
//
// Semantic is a separate, purely string-based heuristic: a path ending
// in a separator denotes an intended directory even when nothing exists
// there yet. It mirrors shell mkdir/touch conventions and is policy,
// not filesystem fact; Classify never consults it.
package pathtype
