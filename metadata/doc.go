// Package metadata reports file metadata and statistics: stat
// summaries, sizes (single entries and whole trees), human-readable
// size formatting with decimal and binary prefixes, and content-based
// MIME detection.
package metadata
