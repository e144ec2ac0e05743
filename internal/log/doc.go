// Package log provides logging helpers for satlens, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Automatic trimming of oversized attribute values (parameter dumps,
//     raw block payloads) so diagnostics stay readable
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Trimming
//
// Solver run records can carry large parameter maps and long progress
// tables. When those land in a log attribute verbatim, a single warning
// can span hundreds of columns. The TrimHandler caps string attribute
// values at a fixed length and marks the cut with an ellipsis suffix, so
// the surrounding record stays scannable.
//
// # Usage
//
//	// Create a trimming logger
//	logger := log.NewTrimLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Warn("duplicate block",
//	    "kind", "search_progress",
//	    "parameters", hugeParameterDump, // trimmed before output
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
