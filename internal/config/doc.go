// Package config provides 12-factor configuration for the pathq CLI.
//
// Configuration is loaded from environment variables with sensible
// defaults; every variable also works with a FLUIDPATH_ prefix.
//
// Configuration Sections:
//   - Logging: log level and output format
//   - Find: traversal defaults (hidden entries)
//   - Output: terminal output settings (color)
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	if cfg.Find.ShowHidden { ... }
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - SHOW_HIDDEN
//   - COLOR
package config
