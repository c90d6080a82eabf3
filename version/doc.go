// Package version compares dot-delimited version strings.
//
// HasUpdate decides whether a candidate version is newer than the current
// one.  Both strings are split on '.', the shorter list is padded at the end
// with "0" segments, and segments are compared as unbounded non-negative
// integers from the most significant down.  The first segment which is not
// equal decides.  A segment which is not a number decides against an update,
// so malformed input never reports one.
//
//	version.HasUpdate("1.2", "1.2.3")  // true: 1.2.0 < 1.2.3
//	version.HasUpdate("2.0", "1.9.9")  // false
//
// HasSemverUpdate applies semantic versioning precedence, pre-releases
// included, for strict semver tags.
package version
