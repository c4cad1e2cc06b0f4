package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestAbsPath(t *testing.T) {
	for in, want := range map[string]string{
		"$.a":     "$.a",
		"$":       "$",
		".a.b":    "$.a.b",
		"[0]":     "$[0]",
		"flags":   "$.flags",
		"meta.id": "$.meta.id",
	} {
		if got := absPath(in); got != want {
			t.Errorf("absPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggest(t *testing.T) {
	doc, err := parse.Parse([]byte(`name: "x", meta: {author: "a", build: 3}, mods: [{id: 1}]`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want string
	}{
		{"$.nmae", "$.name"},
		{"$.meta.autor", "$.meta.author"},
		{"$.mods[0].ib", "$.mods[0].id"},
		{"$.meta.zzzzzz", ""},
		{"$.mods[4].id", ""},
		{"$.name", ""},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := suggest(doc, tc.path); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"name=demo", "meta.build=3", "meta.debug=true"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	if env["name"] != "demo" {
		t.Errorf("name: got %#v", env["name"])
	}
	meta, ok := env["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta: got %#v", env["meta"])
	}
	if fmt.Sprint(meta["build"]) != "3" || meta["debug"] != true {
		t.Errorf("meta: got %#v", meta)
	}
	if err := envFunc(env, "name.x=1"); err == nil {
		t.Errorf("expected error setting a field of a scalar")
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Errorf("expected usage error")
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"a.cnt", "sub/b.cnt", "sub/deeper/c.cnt", "sub/skip.json"} {
		p := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("a: 1\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := expandGlobs([]string{
		filepath.Join(dir, "**", "*.cnt"),
		filepath.Join(dir, "a.cnt"),
		"-",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.cnt"),
		filepath.Join(dir, "sub", "b.cnt"),
		filepath.Join(dir, "sub", "deeper", "c.cnt"),
		"-",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("globs mismatch (-want +got):\n%s", diff)
	}
	if _, err := expandGlobs([]string{filepath.Join(dir, "*.yaml")}); err == nil {
		t.Errorf("expected error for a pattern without matches")
	}
}

func TestReformat(t *testing.T) {
	cfg := &MainConfig{}
	out, err := reformat(cfg, "x.cnt", []byte("version:'1' , name : \"demo\",flags:[1,2,3,4]"))
	if err != nil {
		t.Fatal(err)
	}
	want := "flags: [\n    1,\n    2,\n    3,\n    4\n]\nname: \"demo\"\nversion: '1'\n"
	if string(out) != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
	again, err := reformat(cfg, "x.cnt", out)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(out) {
		t.Errorf("reformat is not idempotent:\n%s", again)
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	if f := cfg.inFormat("a.json"); f != format.JSONFormat {
		t.Errorf("got %s for a.json", f)
	}
	if f := cfg.inFormat("-"); f != format.CNTFormat {
		t.Errorf("got %s for stdin", f)
	}
	cfg.Y = true
	if f := cfg.inFormat("a.json"); f != format.YAMLFormat {
		t.Errorf("got %s with -y", f)
	}
	j := format.JSONFormat
	cfg.InFormat = &j
	if f := cfg.inFormat("a.cnt"); f != format.JSONFormat {
		t.Errorf("got %s with -I json", f)
	}
}

func TestOpenConfigMemFs(t *testing.T) {
	saved := files
	t.Cleanup(func() { files = saved })
	files = afero.NewMemMapFs()
	if err := afero.WriteFile(files, "/srv/launcher.cnt", []byte("name: \"demo\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{}
	c, err := cfg.openConfig("/srv/launcher.cnt")
	if err != nil {
		t.Fatal(err)
	}
	c.Set("memory", ir.FromInt(2048))
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	d, err := readFile(nil, "/srv/launcher.cnt")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"memory", "name"}, doc.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if _, err := readFile(nil, "/srv/missing.cnt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
