// Package git provides dodgem's read-only view of a git repository, built on
// go-git.
//
// A Repository is obtained with Discover, which walks upward from a path to
// the enclosing repository the way git itself does. The handle exposes the
// checks and queries the bump pipeline needs, in pipeline order:
//
//   - EnsureBranch: HEAD must be a symbolic reference to the expected branch
//   - EnsureClean: the working tree must match the index (untracked ignored)
//   - TagIndex: commit id → tag name for every resolvable tag
//   - LatestTaggedCommit: the most recent tagged ancestor of HEAD
//
// Nothing in this package writes to the repository. Annotated tags are peeled
// to their target commit; tags that do not resolve to a commit are skipped
// with a warning. History is walked newest-first by committer time.
package git
