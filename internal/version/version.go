package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/dbr/dodgem/internal/errors"
)

// Kind selects which version component a bump increments.
type Kind string

// Supported bump kinds.
const (
	Major Kind = "major"
	Minor Kind = "minor"
	Patch Kind = "patch"
)

// Kinds lists the accepted bump kinds in display order.
var Kinds = []string{string(Major), string(Minor), string(Patch)}

// ParseKind validates a bump kind given on the command line.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Major, Minor, Patch:
		return Kind(s), nil
	}
	return "", errors.Errorf("unknown bump type %q (expected one of: %s)", s, strings.Join(Kinds, ", "))
}

// ParseTag extracts a major.minor.patch triple from a tag name of the shape
// <anything>-MAJOR.MINOR.PATCH. The suffix after the last hyphen must be
// exactly three dot-separated non-negative decimal integers; anything else
// fails with ErrMalformedTag. Implemented as an explicit split rather than a
// pattern match so the accepted shape stays obvious.
func ParseTag(name string) (*semver.Version, error) {
	idx := strings.LastIndex(name, "-")
	if idx < 0 {
		return nil, errors.NewMalformedTagError(name, errors.New("no hyphen in tag name"))
	}

	suffix := name[idx+1:]
	parts := strings.Split(suffix, ".")
	if len(parts) != 3 {
		return nil, errors.NewMalformedTagError(name, errors.Errorf("expected 3 version components, found %d", len(parts)))
	}

	nums := make([]uint64, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, errors.NewMalformedTagError(name, errors.Errorf("component %q is not a non-negative integer", part))
		}
		nums[i] = n
	}

	return semver.New(nums[0], nums[1], nums[2], "", ""), nil
}

// Bump produces the next version for the requested kind. The input is never
// mutated; lower components reset to zero.
func Bump(v *semver.Version, kind Kind) (*semver.Version, error) {
	switch kind {
	case Major:
		next := v.IncMajor()
		return &next, nil
	case Minor:
		next := v.IncMinor()
		return &next, nil
	case Patch:
		next := v.IncPatch()
		return &next, nil
	}
	return nil, errors.Errorf("unknown bump kind %q", kind)
}

// String renders a version in its canonical major.minor.patch form.
func String(v *semver.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
