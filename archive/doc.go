// Package archive packs directory trees into ZIP or TAR archives and
// extracts them back, with optional gzip or zstd compression for TAR.
// Enumeration reuses the traversal engine, so exclusion globs behave
// exactly as they do in a walk, and extraction rejects entries that
// would escape the destination directory.
package archive
