package textfmt

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

var (
	spaceRE = regexp.MustCompile(`\s+`)
	tagRE   = regexp.MustCompile(`<[^>]*>`)
)

// HTMLToText removes all white space and then all tags from html.
func HTMLToText(html string) string {
	return tagRE.ReplaceAllString(spaceRE.ReplaceAllString(html, ""), "")
}

// RandomInt returns a random integer in the closed interval [lo, hi].
func RandomInt(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	// the span is taken unsigned so wide ranges do not overflow
	span := uint(hi) - uint(lo) + 1
	if span == 0 {
		return int(rand.Uint())
	}
	return lo + int(rand.UintN(span))
}

const alnum = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultRandomLen is the RandomString length used for n <= 0.
const DefaultRandomLen = 8

// RandomString returns n random letters and digits.
func RandomString(n int) string {
	if n <= 0 {
		n = DefaultRandomLen
	}
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alnum[rand.IntN(len(alnum))])
	}
	return b.String()
}
