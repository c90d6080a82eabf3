package ir

import "testing"

func TestPathString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"$", "$"},
		{"$.a", "$.a"},
		{"$.a[2].b", "$.a[2].b"},
		{"$.'x.y'", "$.'x.y'"},
		{"$[0][1]", "$[0][1]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePath(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, p := range []string{"", "a", "$.", "$[x]", "$[1", "$.'open", "$x"} {
		if _, err := ParsePath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
}

func TestGetPath(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromKeyVals([]KeyVal{{Key: "b.c", Val: FromString("hit")}})})},
	})
	got, err := n.GetPath("$.a[1].'b.c'")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.String != "hit" {
		t.Errorf("got %v", got)
	}
	got, err = n.GetPath("$.a[7]")
	if err != nil || got != nil {
		t.Errorf("out of range: %v %v", got, err)
	}
	got, _ = n.GetPath("$")
	if got != n {
		t.Error("root")
	}
}
