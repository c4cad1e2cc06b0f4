package cnt

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"
)

func memConfig(t *testing.T, files map[string]string) (*Config, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return New(WithFs(fs)), fs
}

func TestOpenSave(t *testing.T) {
	c, fs := memConfig(t, map[string]string{
		"/inst/config.cnt": "// launcher settings\nname: \"survival\"\nmemory: 4096\njvm_args: [\"-Xmx4G\"]\n",
	})
	if c.IsOpen() {
		t.Fatal("new config should be closed")
	}
	if err := c.Open("/inst/config.cnt"); err != nil {
		t.Fatal(err)
	}
	if !c.IsOpen() || c.Path() != "/inst/config.cnt" {
		t.Fatalf("open=%v path=%q", c.IsOpen(), c.Path())
	}
	if diff := cmp.Diff([]string{"jvm_args", "memory", "name"}, c.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	c.Set("memory", ir.FromInt(8192))
	c.Add("jvm_args", ir.FromString("-XX:+UseG1GC"))
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	d, err := afero.ReadFile(fs, "/inst/config.cnt")
	if err != nil {
		t.Fatal(err)
	}
	want := "jvm_args: [\"-Xmx4G\", \"-XX:+UseG1GC\"]\nmemory: 8192\nname: \"survival\"\n"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("saved (-want +got):\n%s", diff)
	}

	// saving what was just read changes nothing
	again := New(WithFs(fs))
	if err := again.Open("/inst/config.cnt"); err != nil {
		t.Fatal(err)
	}
	if err := again.Save(); err != nil {
		t.Fatal(err)
	}
	d2, _ := afero.ReadFile(fs, "/inst/config.cnt")
	if diff := cmp.Diff(string(d), string(d2)); diff != "" {
		t.Errorf("re-save changed the file:\n%s", diff)
	}

	c.Close()
	if c.IsOpen() || c.Path() != "" || c.Len() != 0 {
		t.Errorf("close left open=%v path=%q len=%d", c.IsOpen(), c.Path(), c.Len())
	}
}

func TestSaveNoPath(t *testing.T) {
	c, fs := memConfig(t, nil)
	c.Set("a", ir.FromInt(1))
	if err := c.Save(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if err := c.SaveAs("/out.cnt"); err != nil {
		t.Fatal(err)
	}
	if c.Path() != "" {
		t.Errorf("SaveAs bound the path %q", c.Path())
	}
	if ok, _ := afero.Exists(fs, "/out.cnt"); !ok {
		t.Error("file not written")
	}
	if err := c.SaveAs(""); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestOpenFailures(t *testing.T) {
	c, _ := memConfig(t, map[string]string{"/bad.cnt": "a: 1.2.3\n"})
	c.Set("keep", ir.FromBool(true))

	err := c.Open("/missing.cnt")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist, got %v", err)
	}
	err = c.Open("/bad.cnt")
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
	if c.IsOpen() || !c.Has("keep") || c.Len() != 1 {
		t.Errorf("failed open changed the config: open=%v keys=%v", c.IsOpen(), c.Keys())
	}
}

func TestOpenReplaces(t *testing.T) {
	c, _ := memConfig(t, map[string]string{"/a.cnt": "x: 1", "/b.cnt": "y: 2"})
	if err := c.Open("/a.cnt"); err != nil {
		t.Fatal(err)
	}
	if err := c.Open("/b.cnt"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"y"}, c.Keys()); diff != "" {
		t.Error(diff)
	}
}

func TestMutation(t *testing.T) {
	c := New()
	if v := c.Get("absent"); !v.IsNone() {
		t.Errorf("absent key gave %s", v.Text())
	}
	if _, ok := c.Lookup("absent"); ok {
		t.Error("Lookup of absent key")
	}
	if c.Has("absent") {
		t.Error("Get must not insert")
	}

	c.Add("list", ir.FromInt(1))
	c.Add("list", ir.FromInt(2))
	if got := c.Get("list").Text(); got != "[1, 2]" {
		t.Errorf("got %s", got)
	}
	c.Set("scalar", ir.FromString("x"))
	c.Add("scalar", ir.FromString("y"))
	if got := c.Get("scalar").Text(); got != `"y"` {
		t.Errorf("add to scalar gave %s", got)
	}
	c.Set("n", ir.None())
	c.Add("n", ir.FromBool(true))
	if got := c.Get("n").Text(); got != "[true]" {
		t.Errorf("add to None gave %s", got)
	}

	// Get returns a copy
	v := c.Get("list")
	v.Append(ir.FromInt(3))
	if got := c.Get("list").Size(); got != 2 {
		t.Errorf("Get leaked a reference, size %d", got)
	}

	c.Remove("scalar")
	c.Remove("scalar")
	if c.Has("scalar") {
		t.Error("remove")
	}
	if got := c.Pop("n").Text(); got != "[true]" {
		t.Errorf("pop gave %s", got)
	}
	if got := c.Pop("n"); !got.IsNone() {
		t.Errorf("second pop gave %s", got.Text())
	}

	var keys []string
	for k, v := range c.All() {
		keys = append(keys, k+"="+v.Text())
	}
	if diff := cmp.Diff([]string{"list=[1, 2]"}, keys); diff != "" {
		t.Error(diff)
	}
}

func TestPaths(t *testing.T) {
	c := New()
	if err := c.SetPath("$.window.size[1]", ir.FromInt(480)); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPath("$.window.size[0]", ir.FromInt(854)); err != nil {
		t.Fatal(err)
	}
	v, err := c.GetPath("$.window.size")
	if err != nil {
		t.Fatal(err)
	}
	if v.Text() != "[854, 480]" {
		t.Errorf("got %s", v.Text())
	}
	if err := c.SetPath("$[0]", ir.None()); !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
	if err := c.SetPath("$", ir.None()); !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
	if err := c.DeletePath("$.window.size[0]"); err != nil {
		t.Fatal(err)
	}
	if got := c.Node().Text(); got != `{"window": {"size": [480]}}` {
		t.Errorf("got %s", got)
	}
	if _, err := c.GetPath("$.nope"); !errors.Is(err, ir.ErrNoSuchKey) {
		t.Errorf("expected ErrNoSuchKey, got %v", err)
	}
}

func TestLoadReplace(t *testing.T) {
	c, err := Load([]byte(`{"a": [1, 2]}`), WithParseOptions(parse.ParseJSON()))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Get("a").Text(); got != "[1, 2]" {
		t.Errorf("got %s", got)
	}
	if err := c.Replace(ir.FromInt(1)); !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
	if err := c.Replace(ir.FromMap(map[string]*ir.Node{"b": ir.None()})); err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := c.Encode(buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "b: None\n" {
		t.Errorf("got %q", buf.String())
	}
	if _, err := Load([]byte("x: 1e")); !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestEncodeOptions(t *testing.T) {
	_, fs := memConfig(t, nil)
	c := New(WithFs(fs), WithEncodeOptions(encode.EncodeInlineMax(0)))
	c.Set("a", ir.FromSlice([]*ir.Node{ir.FromInt(1)}))
	if err := c.SaveAs("/x.cnt"); err != nil {
		t.Fatal(err)
	}
	d, _ := afero.ReadFile(fs, "/x.cnt")
	if diff := cmp.Diff("a: [\n    1\n]\n", string(d)); diff != "" {
		t.Error(diff)
	}
}

// A launcher stores per-instance settings, reopens them later and
// appends to list entries.
func TestLauncherSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := New(WithFs(fs))
	c.Set("java_path", ir.FromString(`C:\Program Files\Java\jdk-17\bin\java.exe`))
	c.Set("version", ir.FromString("1.20.4"))
	c.Set("resolution", ir.FromMap(map[string]*ir.Node{
		"width":      ir.FromInt(1920),
		"height":     ir.FromInt(1080),
		"fullscreen": ir.FromBool(false),
	}))
	c.Set("separator", ir.FromChar('/'))
	c.Set("scale", ir.FromFloat(1.25))
	for _, m := range []string{"sodium", "lithium", "iris", "modmenu"} {
		c.Add("mods", ir.FromString(m))
	}
	if err := c.SaveAs("/instances/main/settings.cnt"); err != nil {
		t.Fatal(err)
	}

	r := New(WithFs(fs), WithParseOptions(parse.ParseStrict(true)))
	if err := r.Open("/instances/main/settings.cnt"); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(c.Node(), r.Node()) {
		t.Errorf("reopened config differs:\n%s\n%s", c.Node().Text(), r.Node().Text())
	}
	s, _ := r.Get("java_path").AsString()
	if s != `C:\Program Files\Java\jdk-17\bin\java.exe` {
		t.Errorf("java_path %q", s)
	}
	if r.Get("mods").Size() != 4 {
		t.Errorf("mods %s", r.Get("mods").Text())
	}
}
