package constants

const (
	// DefaultBranch is the branch a bump is allowed to run on unless
	// overridden with --branch.
	DefaultBranch = "main"

	// DefaultVersionFile is the file patched at the repository root.
	DefaultVersionFile = "package.py"

	// DefaultBumpKind is the bump applied when no positional argument
	// is given.
	DefaultBumpKind = "minor"
)
