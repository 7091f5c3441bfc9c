// Package config handles configuration for the dodgem application.
//
// Configuration comes from exactly two places, in priority order: built-in
// defaults (internal/constants) and command-line flags bound by the CLI
// layer. There is no environment or file-based configuration; a run is meant
// to be fully described by its invocation.
//
// Finalize validates the assembled configuration and resolves the repository
// path to an absolute one, defaulting to the current working directory.
package config
