// Package version handles the major.minor.patch triple dodgem reads from
// release tags and the bump operations applied to it.
//
// Tag names are expected to end in a -MAJOR.MINOR.PATCH suffix (for example
// "release-1.2.3"). ParseTag splits on the last hyphen and requires exactly
// three non-negative decimal integers; pre-release and build-metadata
// suffixes are out of scope and rejected as malformed. Parsed versions are
// carried as Masterminds semver values, and Bump delegates to their
// IncMajor/IncMinor/IncPatch operations, which reset the lower components.
package version
