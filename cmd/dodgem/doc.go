// Command dodgem bumps a project's semantic version from its git tags.
//
// dodgem walks commit ancestry from HEAD to the most recent tagged ancestor,
// parses the tag's -MAJOR.MINOR.PATCH suffix, computes the next version for
// the requested bump type (major, minor, or patch), and rewrites the version
// string inside the project's version file at the repository root.
//
// Usage:
//
//	dodgem [major|minor|patch] [flags]
//
// The bump type defaults to minor. The repository is located from the current
// directory, or from --path/-p. The run refuses to proceed off the expected
// branch (--branch, default main) or with uncommitted changes (unless
// --allow-dirty). --dry-run reports the computed transition without writing.
//
// dodgem never creates commits or tags; the patched file is left as an
// uncommitted working-tree change for the caller to review and commit.
package main
