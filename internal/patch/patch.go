package patch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbr/dodgem/internal/errors"
	"github.com/dbr/dodgem/internal/logger"
)

// Patcher rewrites the version string embedded in a project file. The edit is
// a literal textual substitution, not a structural one: every occurrence of
// the old string is replaced, including incidental ones in comments.
type Patcher struct {
	log logger.Logger
}

// New creates a Patcher that reports through the given logger.
func New(log logger.Logger) *Patcher {
	return &Patcher{log: log}
}

// Apply replaces every occurrence of oldVersion with newVersion in the named
// file under dir, preserving the file's mode. The transition is reported
// before the write. Read or write failures fail with ErrPatchFailed.
func (p *Patcher) Apply(dir, name, oldVersion, newVersion string) error {
	path := filepath.Join(dir, name)

	content, mode, err := readWithMode(path)
	if err != nil {
		return err
	}

	p.log.StatusMessage("Updating %s from %s to %s", path, oldVersion, newVersion)

	updated := strings.ReplaceAll(content, oldVersion, newVersion)
	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return errors.Wrapf(errors.ErrPatchFailed, "failed to write %s: %v", path, err)
	}

	return nil
}

// Check verifies that the named file under dir exists and is readable,
// without modifying it. Used for dry runs.
func (p *Patcher) Check(dir, name string) error {
	path := filepath.Join(dir, name)
	_, _, err := readWithMode(path)
	return err
}

func readWithMode(path string) (string, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, errors.Wrapf(errors.ErrPatchFailed, "%s does not exist", path)
		}
		return "", 0, errors.Wrapf(errors.ErrPatchFailed, "failed to stat %s: %v", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.Wrapf(errors.ErrPatchFailed, "failed to read %s: %v", path, err)
	}

	return string(content), info.Mode().Perm(), nil
}
