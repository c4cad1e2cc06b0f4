package gomap

import (
	"errors"
	"testing"

	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"

	"github.com/google/go-cmp/cmp"
)

type Common struct {
	Name string `cnt:"name"`
}

type Settings struct {
	Common
	Version  string            `cnt:"version"`
	Flags    []string          `cnt:"flags"`
	Memory   int               `cnt:"memory,omitempty"`
	Scale    float64           `cnt:"scale"`
	Sep      rune              `cnt:"sep"`
	Fullscr  bool              `cnt:"fullscreen"`
	Meta     map[string]string `cnt:"meta"`
	Extra    *ir.Node          `cnt:"extra"`
	Anything any               `cnt:"anything"`
	Java     *Java             `cnt:"java,omitempty"`
	Ignored  string            `cnt:"-"`
	internal int
}

type Java struct {
	Path string
	Args []string `cnt:"args,omitempty"`
}

const settingsDoc = `
name: "demo"
version: "1.20.1"
flags: ["-Xmx2G", "-server"]
scale: 1.5
sep: ';'
fullscreen: true
meta: {author: "someone"}
extra: [1, 'x', None]
anything: {a: [1, 2]}
java: {Path: "/usr/bin/java"}
Ignored: "no"
unknown: 3
`

func TestLoad(t *testing.T) {
	var s Settings
	if err := Load([]byte(settingsDoc), &s, LoadStrict(true)); err != nil {
		t.Fatal(err)
	}
	extra, err := parse.ParseValue([]byte(`[1, 'x', None]`))
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{
		Common:   Common{Name: "demo"},
		Version:  "1.20.1",
		Flags:    []string{"-Xmx2G", "-server"},
		Scale:    1.5,
		Sep:      ';',
		Fullscr:  true,
		Meta:     map[string]string{"author": "someone"},
		Extra:    extra,
		Anything: map[string]any{"a": []any{int64(1), int64(2)}},
		Java:     &Java{Path: "/usr/bin/java"},
	}
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(Settings{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	var s Settings
	err := Load([]byte(`{"name": "demo", "memory": 2048.0}`), &s, LoadFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "demo" || s.Memory != 2048 {
		t.Errorf("got %+v", s)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		p    any
	}{
		{"string into int", `memory: "lots"`, &Settings{}},
		{"fraction into int", `memory: 1.5`, &Settings{}},
		{"object into slice", `flags: {a: 1}`, &Settings{}},
		{"int into bool", `fullscreen: 1`, &Settings{}},
		{"overflow", `v: 300`, &struct {
			V int8 `cnt:"v"`
		}{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Load([]byte(tc.doc), tc.p)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	}
	if err := Decode(ir.FromInt(1), Settings{}); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for a non-pointer, got %v", err)
	}
}

func TestToNode(t *testing.T) {
	s := Settings{
		Common:  Common{Name: "demo"},
		Version: "1.20.1",
		Flags:   []string{"-server"},
		Meta:    map[string]string{"author": "someone"},
		Extra:   ir.FromBool(true),
		Ignored: "x",
	}
	got, err := ToNode(&s)
	if err != nil {
		t.Fatal(err)
	}
	want, err := parse.Parse([]byte(`
name: "demo"
version: "1.20.1"
flags: ["-server"]
scale: 0.0
sep: 0
fullscreen: false
meta: {author: "someone"}
extra: true
anything: None
`))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(want, got) {
		t.Errorf("got %s want %s", got.Text(), want.Text())
	}

	var back Settings
	if err := Decode(got, &back); err != nil {
		t.Fatal(err)
	}
	s.Ignored = ""
	if diff := cmp.Diff(s, back, cmp.AllowUnexported(Settings{})); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
