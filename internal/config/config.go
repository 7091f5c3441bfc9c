package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dbr/dodgem/internal/constants"
	"github.com/dbr/dodgem/internal/errors"
)

// Config holds all dodgem application settings
type Config struct {
	// Bump selection
	Bump string

	// Repository configuration
	RepoPath    string
	Branch      string
	VersionFile string

	// Behavior switches
	AllowDirty bool
	DryRun     bool

	// User experience
	Verbose bool

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Bump:        constants.DefaultBumpKind,
		RepoPath:    "",
		Branch:      constants.DefaultBranch,
		VersionFile: constants.DefaultVersionFile,
		AllowDirty:  false,
		DryRun:      false,
		Verbose:     true,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("path", "", errors.Wrapf(errors.ErrInvalidConfiguration, "failed to get current directory: %v", err))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("path", c.RepoPath, errors.Wrapf(errors.ErrInvalidConfiguration, "failed to resolve absolute path: %v", err))
	}
	c.RepoPath = absRepoPath

	if c.Branch == "" {
		return errors.NewConfigError("branch", c.Branch, errors.Wrap(errors.ErrInvalidConfiguration, "branch name must not be empty"))
	}

	// The version file is a name relative to the worktree root, never a path.
	if c.VersionFile == "" {
		return errors.NewConfigError("file", c.VersionFile, errors.Wrap(errors.ErrInvalidConfiguration, "version file name must not be empty"))
	}
	if filepath.IsAbs(c.VersionFile) || strings.ContainsRune(c.VersionFile, os.PathSeparator) {
		return errors.NewConfigError("file", c.VersionFile, errors.Wrap(errors.ErrInvalidConfiguration, "version file must be a bare file name at the repository root"))
	}

	return nil
}
