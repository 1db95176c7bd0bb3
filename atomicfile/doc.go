// Package atomicfile provides crash-safe, all-or-nothing replacement of
// a single file's contents.
//
// A write goes to a uniquely named temporary file in the target's own
// directory (same filesystem, so the final step is a pure rename), is
// flushed to durable storage, and is then renamed onto the target in
// one atomic step. Concurrent readers of the target observe either the
// fully-old or fully-new content, never a partial write. On any failure
// before the rename, the temporary file is removed and the target is
// left completely untouched.
//
// Concurrent writers to the same path are not coordinated here: the
// last rename to complete wins. Callers needing mutual exclusion must
// bring their own locking.
package atomicfile
