// Package logger provides logging facilities for the dodgem application.
//
// This package defines the Logger interface used across dodgem together with
// a default implementation backed by log/slog. Internal diagnostics (Info,
// Warning, Error) are emitted as structured text records on stderr, while
// user-facing messages (StatusMessage, Success) are plain lines. Verbosity is
// a single switch: quiet mode silences everything except errors and the final
// success report.
//
// # Usage
//
//	log := logger.New(verbose)
//	log.StatusMessage("Updating %s from %s to %s", path, old, next)
//	log.Success("Bumped %s to %s", path, next)
//
// NewWithOutput accepts custom writers and is the entry point used by tests.
package logger
