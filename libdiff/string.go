package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	InsertPrefix = "+ "
	DeletePrefix = "- "
	EqualPrefix  = "  "
)

// Lines returns a line oriented diff of from and to.  Each line of the
// result is prefixed with InsertPrefix, DeletePrefix or EqualPrefix.  The
// result is empty when from and to are equal.
func Lines(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var buf strings.Builder
	for _, d := range diffs {
		prefix := EqualPrefix
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = InsertPrefix
		case diffpatch.DiffDelete:
			prefix = DeletePrefix
		}
		for _, ln := range splitLines(d.Text) {
			buf.WriteString(prefix + ln + "\n")
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
