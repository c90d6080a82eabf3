package libdiff

import "testing"

func TestLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nB\nc\nd\n"
	want := "  a\n- b\n+ B\n  c\n+ d\n"
	if got := Lines(from, to); got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
	if got := Lines(from, from); got != "" {
		t.Errorf("equal inputs gave %q", got)
	}
}
