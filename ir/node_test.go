package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldCoerces(t *testing.T) {
	y := FromInt(3)
	y.Field("b").Assign(FromString("x"))
	y.Field("a").Assign(FromBool(true))
	if y.Type != ObjectType {
		t.Fatalf("expected object, got %s", y.Type)
	}
	if diff := cmp.Diff([]string{"a", "b"}, y.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := y.Field("c"); !got.IsNone() {
		t.Errorf("new field should be None, got %s", got.Type)
	}
	if y.Size() != 3 {
		t.Errorf("size %d", y.Size())
	}
}

func TestIndexGrows(t *testing.T) {
	y := FromString("s")
	y.Index(2).Assign(FromInt(7))
	if got := y.Text(); got != "[None, None, 7]" {
		t.Errorf("got %s", got)
	}
	y.Append(FromChar('c'))
	if got := y.Text(); got != "[None, None, 7, 'c']" {
		t.Errorf("got %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative index")
		}
	}()
	y.Index(-1)
}

func TestAtErrors(t *testing.T) {
	obj := FromMap(map[string]*Node{"a": FromInt(1)})
	if _, err := obj.At("b"); err == nil {
		t.Error("expected missing key error")
	}
	if _, err := obj.AtIndex(0); err == nil {
		t.Error("expected wrong kind error")
	}
	arr := FromSlice([]*Node{FromInt(1)})
	if _, err := arr.AtIndex(1); err == nil {
		t.Error("expected range error")
	}
	if v, err := arr.AtIndex(0); err != nil || v.Int64 != 1 {
		t.Errorf("got %v %v", v, err)
	}
	if obj.Get("missing") != nil {
		t.Error("Get of missing key should be nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"list": FromSlice([]*Node{FromInt(1), FromInt(2)}),
	})
	c := orig.Clone()
	c.Field("list").Index(0).Assign(FromInt(100))
	c.Put("new", FromBool(false))
	if got := orig.Text(); got != `{"list": [1, 2]}` {
		t.Errorf("original changed: %s", got)
	}
	if got := (*Node)(nil).Clone(); !got.IsNone() {
		t.Errorf("nil clone: %s", got.Type)
	}
}

func TestDelete(t *testing.T) {
	y := FromMap(map[string]*Node{"a": None(), "b": None()})
	if !y.Delete("a") {
		t.Error("expected delete of a")
	}
	if y.Delete("a") {
		t.Error("second delete should report absent")
	}
	if diff := cmp.Diff([]string{"b"}, y.Keys()); diff != "" {
		t.Error(diff)
	}
	if FromInt(1).Delete("a") {
		t.Error("delete on a leaf")
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		n    *Node
		want int
	}{
		{FromString("héllo"), 5},
		{FromInt(12345), 0},
		{FromSlice([]*Node{None(), None()}), 2},
		{None(), 0},
	}
	for _, tc := range tests {
		if got := tc.n.Size(); got != tc.want {
			t.Errorf("Size(%s) = %d, want %d", tc.n.Text(), got, tc.want)
		}
	}
}

func TestAccess(t *testing.T) {
	if i, ok := FromFloat(2.9).AsInt(); !ok || i != 2 {
		t.Errorf("AsInt float: %d %v", i, ok)
	}
	if f, ok := FromInt(3).AsFloat(); !ok || f != 3 {
		t.Errorf("AsFloat int: %v %v", f, ok)
	}
	if _, ok := FromString("3").AsInt(); ok {
		t.Error("AsInt string")
	}
	if s, ok := FromChar('x').AsString(); !ok || s != "x" {
		t.Errorf("AsString char: %q %v", s, ok)
	}
	if r, ok := FromString("é").AsChar(); !ok || r != 'é' {
		t.Errorf("AsChar: %q %v", r, ok)
	}
	if _, ok := FromString("ab").AsChar(); ok {
		t.Error("AsChar of two runes")
	}
	if _, ok := FromString("").AsChar(); ok {
		t.Error("AsChar of empty string")
	}
	if b, ok := FromBool(true).AsBool(); !ok || !b {
		t.Error("AsBool")
	}
}

func TestTruth(t *testing.T) {
	falsy := []*Node{None(), FromInt(0), FromFloat(0), FromString(""), FromBool(false), FromChar(0), FromSlice(nil), FromMap(nil)}
	for _, n := range falsy {
		if Truth(n) {
			t.Errorf("%s should be false", n.Text())
		}
	}
	truthy := []*Node{FromInt(-1), FromFloat(0.1), FromString("x"), FromBool(true), FromChar('a'), FromSlice([]*Node{None()})}
	for _, n := range truthy {
		if !Truth(n) {
			t.Errorf("%s should be true", n.Text())
		}
	}
}

func TestText(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b":     FromSlice([]*Node{FromFloat(1), FromString("q\"")}),
		"a key": FromChar('\''),
		"n":     None(),
	})
	want := `{"a key": '\'', "b": [1.0, "q\""], "n": None}`
	if got := n.Text(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, _ := typ.MarshalText()
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s came back as %s", typ, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Number")); err == nil {
		t.Error("expected error")
	}
}
