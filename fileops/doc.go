// Package fileops implements the mutation layer: copy, move, and
// delete for single entries and whole trees, plus metadata transfer
// (permissions, timestamps, ownership) and disk usage queries.
//
// Dispatch between single-entry and tree operations switches on the
// classifier's type tag. Tree operations are best-effort, not atomic:
// a failure partway through aborts the remaining work and reports the
// first failing path, leaving already-processed entries in place.
// Callers needing all-or-nothing tree replacement should copy into a
// temporary location and rename.
//
// Move relies on the filesystem's atomic rename when source and
// destination share a filesystem, and falls back to a
// copy-then-delete pair across filesystems; the fallback as a whole is
// not atomic, and re-deleting the source is the idempotent recovery
// after a crash between the two steps.
package fileops
