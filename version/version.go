package version

import (
	"cmp"
	"strings"

	"github.com/signadot/uniutil/debug"
)

const Separator = "."

// Segment is one dot-delimited component of a version.
type Segment struct {
	Raw string

	// digits is the canonical decimal value, without leading zeros.
	digits string
	nan    bool
}

// ParseSegment converts raw to a segment.  Surrounding white space is
// ignored and an empty segment is 0.  Anything other than decimal digits
// makes the segment NaN.
func ParseSegment(raw string) Segment {
	s := strings.TrimSpace(raw)
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Segment{Raw: raw, nan: true}
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return Segment{Raw: raw, digits: s}
}

func (s Segment) IsNaN() bool { return s.nan }

// Compare compares two segments numerically.  ok is false when either
// segment is NaN, in which case they are unordered.
func (s Segment) Compare(o Segment) (res int, ok bool) {
	if s.nan || o.nan {
		return 0, false
	}
	if c := cmp.Compare(len(s.digits), len(o.digits)); c != 0 {
		return c, true
	}
	return strings.Compare(s.digits, o.digits), true
}

type Version []Segment

func Parse(v string) Version {
	parts := strings.Split(v, Separator)
	res := make(Version, len(parts))
	for i, p := range parts {
		res[i] = ParseSegment(p)
	}
	return res
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = v[i].Raw
	}
	return strings.Join(parts, Separator)
}

func (v Version) Len() int { return len(v) }

// Pad returns v extended at the end with "0" segments up to n segments.
// v is returned unchanged when it already has n or more.
func (v Version) Pad(n int) Version {
	if len(v) >= n {
		return v
	}
	res := make(Version, n)
	copy(res, v)
	for i := len(v); i < n; i++ {
		res[i] = ParseSegment("0")
	}
	return res
}

// Compare compares v to o after padding both to the same length.  The
// first index at which the segments are not equal decides; if that pair
// is unordered because of a NaN, ok is false.
func (v Version) Compare(o Version) (res int, ok bool) {
	n := max(len(v), len(o))
	a, b := v.Pad(n), o.Pad(n)
	for i := range n {
		c, ok := a[i].Compare(b[i])
		if !ok {
			if debug.Version() {
				debug.Logf("version %s vs %s: segment %d unordered (%q, %q)", v, o, i, a[i].Raw, b[i].Raw)
			}
			return 0, false
		}
		if c != 0 {
			if debug.Version() {
				debug.Logf("version %s vs %s: decided at segment %d", v, o, i)
			}
			return c, true
		}
	}
	return 0, true
}

// Compare parses and compares two version strings, see Version.Compare.
func Compare(a, b string) (int, bool) {
	return Parse(a).Compare(Parse(b))
}

// HasUpdate reports whether candidate is newer than current.
func HasUpdate(current, candidate string) bool {
	c, ok := Compare(candidate, current)
	return ok && c > 0
}
