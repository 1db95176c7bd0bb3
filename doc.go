// Package fluidpath is a filesystem-path utility layer unifying type
// classification, filtered recursive traversal and search, and
// crash-safe mutation behind one Path abstraction.
//
// The Path type is a thin convenience facade: every method delegates
// directly into the core packages (pathtype, pattern, traverse,
// fileops, atomicfile, metadata) without adding filesystem logic of
// its own. Programs wanting finer control can use those packages
// directly.
//
// No state is retained between calls; every operation re-queries the
// filesystem, so results are point-in-time facts.
package fluidpath
