// Package traverse produces lazy, filtered sequences of the
// descendants of a directory.
//
// Walk is the raw engine: a pull-based, restartable depth-first
// sequence. Each call returns an independent iterator reflecting
// filesystem state at consumption time; abandoning the loop early is
// always safe and holds no residual handles, because each directory is
// listed with a scoped read that closes before its entries are
// yielded. The engine never descends through a symlinked directory, so
// it terminates on cyclic symlink graphs by construction; the symlink
// entry itself is still yielded, subject to filters.
//
// Find layers depth-range, type, pattern, and extension predicates on
// top of Walk, evaluated cheapest-first with short-circuiting.
//
// Flatten is the deliberately non-lazy sibling: an eager, parallel
// file listing on fastwalk for callers that want throughput over
// incremental consumption.
package traverse
