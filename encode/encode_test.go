package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/uniutil/format"
	"github.com/signadot/uniutil/ir"
)

func doc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromFloat(1.5), ir.Null(), ir.FromFunc(func() {})})},
		{Key: "cb", Val: ir.FromFunc(func() {})},
		{Key: "s", Val: ir.FromString("<x> & \"y\"")},
		{Key: "empty", Val: ir.FromKeyVals(nil)},
	})
}

func TestEncodeJSONCompact(t *testing.T) {
	got, err := String(doc())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":1,"a":[1.5,null,null],"s":"<x> & \"y\"","empty":{}}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromBool(true)})},
		{Key: "e", Val: ir.FromSlice(nil)},
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1,\n    true\n  ],\n  \"e\": []\n}\n"
	if buf.String() != want {
		t.Errorf("got\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestEncodeYAML(t *testing.T) {
	got, err := String(doc(), EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	if lines[0] != "b: 1" {
		t.Errorf("field order lost: %q", got)
	}
	if strings.Contains(got, "cb") {
		t.Errorf("func field encoded: %q", got)
	}
}

func TestMarshalJSONNumbers(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromNumber("1e400"), ir.FromInt(-3), ir.FromFloat(0.1)})
	d, err := MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "[1e400,-3,0.1]" {
		t.Errorf("got %s", d)
	}
}

func TestColors(t *testing.T) {
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{
		{Type: ir.StringType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got, err := String(ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromInt(1)}), EncodeColors(c))
	if err != nil {
		t.Fatal(err)
	}
	if got != `[<"x">,1]` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeYAMLNumberText(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "big", Val: ir.FromNumber("1e400")},
		{Key: "s", Val: ir.FromString("1e3")},
		{Key: "word", Val: ir.FromString("abc")},
	})
	got, err := String(node, EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"big: 1e400\n", "s: \"1e3\"\n", "word: abc\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}
