package git

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/dbr/dodgem/internal/errors"
)

// LatestTaggedCommit walks commit ancestry from HEAD, newest first by
// committer time, and returns the id and tag name of the first commit present
// in the index — the most recent tagged ancestor of HEAD. Fails with
// ErrNoPreviousTag when the traversal exhausts without a hit.
func (r *Repository) LatestTaggedCommit(idx TagIndex) (plumbing.Hash, string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, "", errors.Wrap(err, "failed to resolve HEAD")
	}

	commits, err := r.repo.Log(&gogit.LogOptions{
		From:  head.Hash(),
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return plumbing.ZeroHash, "", errors.Wrap(err, "failed to walk history from HEAD")
	}
	defer commits.Close()

	var (
		foundHash plumbing.Hash
		foundTag  string
	)
	err = commits.ForEach(func(c *object.Commit) error {
		if tag, ok := idx[c.Hash]; ok {
			foundHash = c.Hash
			foundTag = tag
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return plumbing.ZeroHash, "", errors.Wrap(err, "failed to walk history from HEAD")
	}

	if foundTag == "" {
		return plumbing.ZeroHash, "", errors.Wrap(errors.ErrNoPreviousTag, "no tagged commit reachable from HEAD")
	}

	r.log.Info("Most recent tagged ancestor: %s (%s)", foundTag, foundHash)
	return foundHash, foundTag, nil
}
