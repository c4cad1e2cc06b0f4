package cnt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type launcherSettings struct {
	Name    string            `cnt:"name"`
	Version string            `cnt:"version"`
	Flags   []string          `cnt:"flags"`
	Meta    map[string]string `cnt:"meta,omitempty"`
}

func TestDecode(t *testing.T) {
	c, err := Load([]byte(`name: "demo", version: "1.20.1", flags: ["-Xmx2G"], meta: {author: "someone"}`))
	if err != nil {
		t.Fatal(err)
	}
	var s launcherSettings
	if err := c.Decode(&s); err != nil {
		t.Fatal(err)
	}
	want := launcherSettings{
		Name:    "demo",
		Version: "1.20.1",
		Flags:   []string{"-Xmx2G"},
		Meta:    map[string]string{"author": "someone"},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var flags []string
	if err := c.DecodeKey("flags", &flags); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"-Xmx2G"}, flags); diff != "" {
		t.Errorf("flags (-want +got):\n%s", diff)
	}
	missing := "unchanged"
	if err := c.DecodeKey("missing", &missing); err != nil || missing != "unchanged" {
		t.Errorf("got %q, %v", missing, err)
	}
}

func TestSetAny(t *testing.T) {
	c := New()
	err := c.SetAny("launcher", launcherSettings{Name: "demo", Flags: []string{"-server"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetAny("memory", 2048); err != nil {
		t.Fatal(err)
	}
	want := `{"launcher": {"flags": ["-server"], "name": "demo", "version": ""}, "memory": 2048}`
	if got := c.Node().Text(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if err := c.SetAny("bad", map[int]string{1: "x"}); err == nil {
		t.Errorf("expected an error for non-string map keys")
	}
}
