package version

import "errors"

// ErrInvalidVersion indicates the provided version string is not valid semver.
var ErrInvalidVersion = errors.New("invalid semantic version")
