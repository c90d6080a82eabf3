package ir

import (
	"errors"
	"testing"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromKeyVals([]KeyVal{
			{Key: "x", Val: FromString("x")},
			{Key: "list", Val: FromSlice([]*Node{FromInt(1), FromKeyVals([]KeyVal{{Key: "deep", Val: FromBool(true)}})})},
		})},
		{Key: "cb", Val: FromFunc(func() {})},
		{Key: "n", Val: Null()},
	})
}

func TestCloneStructure(t *testing.T) {
	src := sample()
	dst := src.Clone()
	if dst == src {
		t.Fatal("clone returned its input")
	}
	if !Equal(src, dst) {
		t.Fatal("clone is not structurally equal")
	}
	b, cb := Get(src, "b"), Get(dst, "b")
	if b == cb {
		t.Error("nested object shared")
	}
	if Get(b, "list") == Get(cb, "list") {
		t.Error("nested array shared")
	}
	if Get(dst, "cb") != Get(src, "cb") {
		t.Error("func leaf should be shared")
	}
	if Get(dst, "a") != Get(src, "a") {
		t.Error("scalar leaf should be shared")
	}
}

func TestCloneIsolation(t *testing.T) {
	src := sample()
	dst := Clone(src)
	Get(dst, "b").Set("x", FromString("changed"))
	Get(dst, "b").Set("y", FromInt(2))
	if got := Get(Get(src, "b"), "x").String; got != "x" {
		t.Errorf("original nested value changed to %q", got)
	}
	if Get(Get(src, "b"), "y") != nil {
		t.Error("original gained a key")
	}
	list := Get(Get(dst, "b"), "list")
	list.Values[0] = FromInt(9)
	if *Get(Get(src, "b"), "list").Values[0].Int64 != 1 {
		t.Error("original array changed")
	}
}

func TestCloneKeepsKind(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1)})
	if Clone(arr).Type != ArrayType {
		t.Error("array became", Clone(arr).Type)
	}
	if Clone(FromKeyVals(nil)).Type != ObjectType {
		t.Error("object kind lost")
	}
}

func TestCloneScalars(t *testing.T) {
	for _, n := range []*Node{nil, Null(), FromInt(3), FromString("s"), FromBool(true), FromFunc(t.Log)} {
		if Clone(n) != n {
			t.Errorf("scalar %v not returned as is", n)
		}
	}
}

func TestCloneChecked(t *testing.T) {
	src := sample()
	dst, err := CloneChecked(src)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(src, dst) {
		t.Fatal("checked clone differs")
	}

	shared := FromSlice([]*Node{FromInt(1)})
	dag := FromKeyVals([]KeyVal{{Key: "a", Val: shared}, {Key: "b", Val: shared}})
	if _, err := CloneChecked(dag); err != nil {
		t.Errorf("shared subtree is not a cycle: %v", err)
	}

	loop := FromKeyVals(nil)
	inner := FromSlice(nil)
	inner.Values = append(inner.Values, loop)
	loop.Set("self", inner)
	_, err = CloneChecked(loop)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	if want := "cyclic structure at $.self[0]"; err.Error() != want {
		t.Errorf("got %q want %q", err, want)
	}
}
