package git

import (
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/dbr/dodgem/internal/errors"
)

// TagIndex maps a commit id to the short name of a tag pointing at it. When
// several tags point at the same commit, the last one enumerated wins; the
// enumeration order is unspecified, so callers dual-tagging a commit should
// not rely on which name survives.
type TagIndex map[plumbing.Hash]string

// TagIndex enumerates every tag in the repository and records the pair
// (target commit id, tag name). Annotated tags are peeled to the commit they
// point at; lightweight tags are used as-is. Tags that cannot be resolved to
// a commit are skipped with a warning rather than failing the run.
func (r *Repository) TagIndex() (TagIndex, error) {
	refs, err := r.repo.Tags()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate tags")
	}

	idx := make(TagIndex)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		if tag, err := r.repo.TagObject(ref.Hash()); err == nil {
			commit, err := tag.Commit()
			if err != nil {
				r.log.Warning("Skipping tag %s: does not point at a commit", name)
				return nil
			}
			idx[commit.Hash] = name
			return nil
		}

		// Lightweight tag: the reference points straight at an object.
		if _, err := r.repo.CommitObject(ref.Hash()); err != nil {
			r.log.Warning("Skipping tag %s: does not point at a commit", name)
			return nil
		}
		idx[ref.Hash()] = name
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate tags")
	}

	r.log.Info("Indexed %d tagged commits", len(idx))
	return idx, nil
}
