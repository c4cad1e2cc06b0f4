package cnt

import (
	"testing"

	"github.com/cntlib/cnt/ir"
)

func TestPatch(t *testing.T) {
	doc := mustValue(t, `{mods: ["a", "b"], memory: 2048, c: 'x', f: 2.0}`)
	res, err := Patch(doc, []byte(`[
		{"op": "add", "path": "/mods/-", "value": "c"},
		{"op": "replace", "path": "/memory", "value": 4096},
		{"op": "remove", "path": "/f"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Text(), `{"c": "x", "memory": 4096, "mods": ["a", "b", "c"]}`; got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if got := doc.Text(); got != `{"c": 'x', "f": 2.0, "memory": 2048, "mods": ["a", "b"]}` {
		t.Errorf("input modified: %s", got)
	}

	if _, err := Patch(doc, []byte(`not json`)); err == nil {
		t.Error("expected decode error")
	}
	if _, err := Patch(doc, []byte(`[{"op": "remove", "path": "/nope"}]`)); err == nil {
		t.Error("expected apply error")
	}
}

func TestConfigPatch(t *testing.T) {
	c := New()
	c.Set("a", ir.FromInt(1))
	if err := c.Patch([]byte(`[{"op": "add", "path": "/b", "value": {"c": [true]}}]`)); err != nil {
		t.Fatal(err)
	}
	if got := c.Node().Text(); got != `{"a": 1, "b": {"c": [true]}}` {
		t.Errorf("got %s", got)
	}
	if err := c.Patch([]byte(`[{"op": "replace", "path": "", "value": [1]}]`)); err == nil {
		t.Error("expected error replacing the document with an array")
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustValue(t, `{a: 1, b: {c: 2, d: 3}}`)
	res, err := MergePatch(doc, mustValue(t, `{a: None, b: {c: 5}, e: "new"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Text(), `{"b": {"c": 5, "d": 3}, "e": "new"}`; got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}
