package merge

import (
	"testing"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"
)

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"x":1,"z":[1,2]}}`)
	patch := mustParse(t, `{"b":{"x":null,"z":[9]},"c":"new"}`)
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":1,"b":{"z":[9]},"c":"new"}`)
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.MustString(got))
	}
	if encode.MustString(doc) != `{"a":1,"b":{"x":1,"z":[1,2]}}` {
		t.Error("doc modified")
	}
}

func TestApplyJSONPatch(t *testing.T) {
	doc := mustParse(t, `{"a":[1,2],"b":"x"}`)
	got, err := ApplyJSONPatch(doc, []byte(`[
		{"op":"add","path":"/a/-","value":3},
		{"op":"remove","path":"/b"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `{"a":[1,2,3]}` {
		t.Errorf("got %s", s)
	}
	if _, err := ApplyJSONPatch(doc, []byte(`[{"op":"remove","path":"/missing"}]`)); err == nil {
		t.Error("expected error removing a missing path")
	}
	if _, err := ApplyJSONPatch(doc, []byte(`not json`)); err == nil {
		t.Error("expected decode error")
	}
}
