package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/dbr/dodgem/internal/config"
	"github.com/dbr/dodgem/internal/logger"
)

func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
}

// fixtureRepo is an on-disk repository for end-to-end pipeline tests.
type fixtureRepo struct {
	t     *testing.T
	dir   string
	repo  *gogit.Repository
	clock time.Time
}

// newFixtureRepo creates an empty repository on branch main in a temp dir.
func newFixtureRepo(t *testing.T) *fixtureRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.Main,
		},
	})
	if err != nil {
		t.Fatalf("Failed to init fixture repository: %v", err)
	}

	return &fixtureRepo{
		t:     t,
		dir:   dir,
		repo:  repo,
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (fr *fixtureRepo) signature() *object.Signature {
	fr.clock = fr.clock.Add(time.Minute)
	return &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  fr.clock,
	}
}

func (fr *fixtureRepo) commitFile(name, content, message string) plumbing.Hash {
	fr.t.Helper()

	if err := os.WriteFile(filepath.Join(fr.dir, name), []byte(content), 0644); err != nil {
		fr.t.Fatalf("Failed to write %s: %v", name, err)
	}

	wt, err := fr.repo.Worktree()
	if err != nil {
		fr.t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		fr.t.Fatalf("Failed to stage %s: %v", name, err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: fr.signature()})
	if err != nil {
		fr.t.Fatalf("Failed to commit %s: %v", name, err)
	}
	return hash
}

func (fr *fixtureRepo) tag(name string, hash plumbing.Hash) {
	fr.t.Helper()

	if _, err := fr.repo.CreateTag(name, hash, nil); err != nil {
		fr.t.Fatalf("Failed to create tag %s: %v", name, err)
	}
}

func (fr *fixtureRepo) checkoutBranch(name string) {
	fr.t.Helper()

	wt, err := fr.repo.Worktree()
	if err != nil {
		fr.t.Fatalf("Failed to get worktree: %v", err)
	}
	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	if err != nil {
		fr.t.Fatalf("Failed to checkout branch %s: %v", name, err)
	}
}

func (fr *fixtureRepo) readFile(name string) string {
	fr.t.Helper()

	content, err := os.ReadFile(filepath.Join(fr.dir, name))
	if err != nil {
		fr.t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(content)
}

// standardFixture is a repo with package.py at 1.2.3, tagged one commit
// behind HEAD: C1 <- C2 (release-1.2.3) <- C3 (HEAD).
func standardFixture(t *testing.T) *fixtureRepo {
	t.Helper()

	fr := newFixtureRepo(t)
	fr.commitFile("README.md", "demo project\n", "C1")
	h2 := fr.commitFile("package.py", "name = \"demo\"\nversion = \"1.2.3\"\n", "C2")
	fr.commitFile("README.md", "demo project, improved\n", "C3")
	fr.tag("release-1.2.3", h2)
	return fr
}

// newTestApp builds an App over the fixture with captured output.
func newTestApp(t *testing.T, fr *fixtureRepo) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := config.New()
	cfg.RepoPath = fr.dir

	var stdout, stderr bytes.Buffer
	app := NewApp(AppOptions{
		Config: cfg,
		Logger: logger.NewWithOutput(true, &stdout, &stderr),
		Stdout: &stdout,
		Stderr: &stderr,
		Exit:   func(code int) { t.Fatalf("unexpected exit(%d)", code) },
	})
	return app, &stdout, &stderr
}
