package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrNotRepository indicates no git repository encloses the target path
	ErrNotRepository = errors.New("not a git repository")

	// ErrWrongBranch indicates HEAD is not on the expected branch
	ErrWrongBranch = errors.New("not on the expected branch")

	// ErrDirtyWorktree indicates the repository has uncommitted changes
	ErrDirtyWorktree = errors.New("repository contains uncommitted changes")

	// ErrNoPreviousTag indicates no tagged ancestor was found from HEAD
	ErrNoPreviousTag = errors.New("no previous tag found")

	// ErrMalformedTag indicates a tag name does not carry a -X.Y.Z suffix
	ErrMalformedTag = errors.New("malformed version tag")

	// ErrPatchFailed indicates the version file could not be read or written
	ErrPatchFailed = errors.New("failed to patch version file")

	// ErrInvalidConfiguration indicates an invalid or conflicting user configuration
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// New creates a new error with the given message.
// This is a convenience function that wraps errors.New.
func New(message string) error {
	return errors.New(message)
}

// Errorf creates a new formatted error.
// This is a convenience function that wraps fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether target is in err's chain.
// This is a convenience function that wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience function that wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// WrongBranchError reports that HEAD did not resolve to the expected branch.
// Actual is empty when HEAD is detached.
type WrongBranchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface with a user-friendly message.
func (e *WrongBranchError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("must be on branch %q, but HEAD is detached", e.Expected)
	}
	return fmt.Sprintf("must be on branch %q, currently on %q", e.Expected, e.Actual)
}

// Unwrap returns ErrWrongBranch for use with errors.Is.
func (e *WrongBranchError) Unwrap() error {
	return ErrWrongBranch
}

// NewWrongBranchError creates a new WrongBranchError with the given parameters.
func NewWrongBranchError(expected, actual string) *WrongBranchError {
	return &WrongBranchError{Expected: expected, Actual: actual}
}

// DirtyWorktreeError reports uncommitted changes between the index and the
// working tree. Stats holds a compact per-file summary.
type DirtyWorktreeError struct {
	Files int
	Stats string
}

// Error implements the error interface with a change summary.
func (e *DirtyWorktreeError) Error() string {
	if e.Stats != "" {
		return fmt.Sprintf("repository contains uncommitted changes (%d files):\n%s", e.Files, e.Stats)
	}
	return fmt.Sprintf("repository contains uncommitted changes (%d files)", e.Files)
}

// Unwrap returns ErrDirtyWorktree for use with errors.Is.
func (e *DirtyWorktreeError) Unwrap() error {
	return ErrDirtyWorktree
}

// NewDirtyWorktreeError creates a new DirtyWorktreeError with the given parameters.
func NewDirtyWorktreeError(files int, stats string) *DirtyWorktreeError {
	return &DirtyWorktreeError{Files: files, Stats: stats}
}

// MalformedTagError reports a tag name whose suffix is not a parseable
// major.minor.patch triple.
type MalformedTagError struct {
	Tag string
	Err error
}

// Error implements the error interface with the offending tag name.
func (e *MalformedTagError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tag %q does not end in a -MAJOR.MINOR.PATCH suffix: %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("tag %q does not end in a -MAJOR.MINOR.PATCH suffix", e.Tag)
}

// Unwrap returns ErrMalformedTag for use with errors.Is.
func (e *MalformedTagError) Unwrap() error {
	return ErrMalformedTag
}

// NewMalformedTagError creates a new MalformedTagError with the given parameters.
func NewMalformedTagError(tag string, err error) *MalformedTagError {
	return &MalformedTagError{Tag: tag, Err: err}
}

// ConfigError represents an error in the application configuration.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value interface{}, err error) *ConfigError {
	return &ConfigError{Parameter: parameter, Value: value, Err: err}
}
