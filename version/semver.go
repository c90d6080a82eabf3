package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// normalizeSemver adds the "v" prefix golang.org/x/mod/semver expects.
func normalizeSemver(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return v, nil
}

// HasSemverUpdate reports whether candidate has higher semantic version
// precedence than current.  A pre-release sorts below its release, and
// build metadata is ignored.  The leading "v" is optional.
func HasSemverUpdate(current, candidate string) (bool, error) {
	cur, err := normalizeSemver(current)
	if err != nil {
		return false, fmt.Errorf("current version: %w", err)
	}
	cand, err := normalizeSemver(candidate)
	if err != nil {
		return false, fmt.Errorf("candidate version: %w", err)
	}
	return semver.Compare(cand, cur) > 0, nil
}
