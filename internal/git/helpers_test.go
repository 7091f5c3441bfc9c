package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func mkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// testRepo wraps a throwaway on-disk repository for building fixtures.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	// Monotonic commit clock so committer-time ordering is deterministic.
	clock time.Time
}

// initTestRepo creates an empty repository on branch main in a temp dir.
func initTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.Main,
		},
	})
	if err != nil {
		t.Fatalf("Failed to init test repository: %v", err)
	}

	return &testRepo{
		t:     t,
		dir:   dir,
		repo:  repo,
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (tr *testRepo) signature() *object.Signature {
	tr.clock = tr.clock.Add(time.Minute)
	return &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  tr.clock,
	}
}

// commitFile writes content to name and commits it.
func (tr *testRepo) commitFile(name, content, message string) plumbing.Hash {
	tr.t.Helper()

	if err := os.WriteFile(filepath.Join(tr.dir, name), []byte(content), 0644); err != nil {
		tr.t.Fatalf("Failed to write %s: %v", name, err)
	}

	wt, err := tr.repo.Worktree()
	if err != nil {
		tr.t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		tr.t.Fatalf("Failed to stage %s: %v", name, err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: tr.signature()})
	if err != nil {
		tr.t.Fatalf("Failed to commit %s: %v", name, err)
	}
	return hash
}

// writeFile writes content to name without staging or committing it.
func (tr *testRepo) writeFile(name, content string) {
	tr.t.Helper()

	if err := os.WriteFile(filepath.Join(tr.dir, name), []byte(content), 0644); err != nil {
		tr.t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// lightweightTag points name straight at the given commit.
func (tr *testRepo) lightweightTag(name string, hash plumbing.Hash) {
	tr.t.Helper()

	if _, err := tr.repo.CreateTag(name, hash, nil); err != nil {
		tr.t.Fatalf("Failed to create lightweight tag %s: %v", name, err)
	}
}

// annotatedTag creates a tag object targeting the given commit.
func (tr *testRepo) annotatedTag(name string, hash plumbing.Hash) {
	tr.t.Helper()

	_, err := tr.repo.CreateTag(name, hash, &gogit.CreateTagOptions{
		Tagger:  tr.signature(),
		Message: "tagging " + name,
	})
	if err != nil {
		tr.t.Fatalf("Failed to create annotated tag %s: %v", name, err)
	}
}

// checkoutBranch creates (if needed) and checks out a branch.
func (tr *testRepo) checkoutBranch(name string, create bool) {
	tr.t.Helper()

	wt, err := tr.repo.Worktree()
	if err != nil {
		tr.t.Fatalf("Failed to get worktree: %v", err)
	}
	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: create,
	})
	if err != nil {
		tr.t.Fatalf("Failed to checkout branch %s: %v", name, err)
	}
}

// detachHead checks out a commit directly, leaving HEAD detached.
func (tr *testRepo) detachHead(hash plumbing.Hash) {
	tr.t.Helper()

	wt, err := tr.repo.Worktree()
	if err != nil {
		tr.t.Fatalf("Failed to get worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: hash}); err != nil {
		tr.t.Fatalf("Failed to detach HEAD at %s: %v", hash, err)
	}
}
