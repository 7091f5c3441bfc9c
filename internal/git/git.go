package git

import (
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/dbr/dodgem/internal/errors"
	"github.com/dbr/dodgem/internal/logger"
)

// Repository is a read-only handle to an on-disk git repository. dodgem never
// mutates repository state through it; the only write of a run goes to the
// version file in the working tree.
type Repository struct {
	repo *gogit.Repository
	log  logger.Logger
}

// Discover opens the git repository enclosing path, walking upward through
// parent directories the way git itself does. Fails with ErrNotRepository
// when no repository encloses the path.
func Discover(path string, log logger.Logger) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(errors.ErrNotRepository, "no git repository found at or above %q", path)
		}
		return nil, errors.Wrapf(err, "failed to open repository at %q", path)
	}

	log.Info("Opened repository enclosing %s", path)
	return &Repository{repo: repo, log: log}, nil
}

// Workdir returns the filesystem root of the repository's working tree.
func (r *Repository) Workdir() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "repository has no working tree")
	}
	return wt.Filesystem.Root(), nil
}

// EnsureBranch verifies that HEAD is a symbolic reference to the expected
// branch. A detached HEAD or any other branch fails with ErrWrongBranch,
// reporting the actual branch name when one exists.
func (r *Repository) EnsureBranch(expected string) error {
	head, err := r.repo.Head()
	if err != nil {
		return errors.Wrap(err, "failed to resolve HEAD")
	}

	if !head.Name().IsBranch() {
		return errors.NewWrongBranchError(expected, "")
	}

	actual := head.Name().Short()
	if actual != expected {
		return errors.NewWrongBranchError(expected, actual)
	}

	r.log.Info("On branch %s", actual)
	return nil
}

// EnsureClean verifies that the working tree matches the index. Untracked
// files are ignored; staged-but-uncommitted content that still matches the
// working tree is also ignored, mirroring an index-to-workdir diff. Any
// difference fails with ErrDirtyWorktree carrying a compact stat block.
func (r *Repository) EnsureClean() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return errors.Wrap(err, "repository has no working tree")
	}

	status, err := wt.Status()
	if err != nil {
		return errors.Wrap(err, "failed to compute worktree status")
	}

	var changed []string
	for path, fs := range status {
		if fs.Worktree == gogit.Unmodified || fs.Worktree == gogit.Untracked {
			continue
		}
		changed = append(changed, fmt.Sprintf(" %c %s", byte(fs.Worktree), path))
	}

	if len(changed) == 0 {
		r.log.Info("Working tree is clean")
		return nil
	}

	// Map iteration order is random; keep the summary stable.
	sort.Strings(changed)
	return errors.NewDirtyWorktreeError(len(changed), strings.Join(changed, "\n"))
}
