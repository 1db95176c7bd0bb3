// Package formats reads and writes structured file formats: JSON,
// YAML, TOML, and CSV. Every write is routed through the atomic
// writer, so a failed serialization or write never leaves a partial
// file behind.
package formats
