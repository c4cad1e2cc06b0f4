package cnt

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/spf13/afero"

	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"
)

// Config is a document of top level entries, optionally bound to a file.
// It is not safe for concurrent use.
type Config struct {
	fs        afero.Fs
	parseOpts []parse.ParseOption
	encOpts   []encode.EncodeOption

	path string
	open bool
	data *ir.Node
}

type Option func(*Config)

// WithFs sets the filesystem used by Open and Save. The default is the
// operating system's.
func WithFs(fs afero.Fs) Option {
	return func(c *Config) { c.fs = fs }
}

// WithParseOptions passes opts to the parser on Open.
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(c *Config) { c.parseOpts = append(c.parseOpts, opts...) }
}

// WithEncodeOptions passes opts to the encoder on Save.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *Config) { c.encOpts = append(c.encOpts, opts...) }
}

func New(opts ...Option) *Config {
	c := &Config{
		fs:   afero.NewOsFs(),
		data: &ir.Node{Type: ir.ObjectType},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns an unbound Config holding the document in d.
func Load(d []byte, opts ...Option) (*Config, error) {
	c := New(opts...)
	doc, err := parse.Parse(d, c.parseOpts...)
	if err != nil {
		return nil, err
	}
	c.data = doc
	return c, nil
}

// Open reads and parses the file at path, replacing the contents of c
// and binding it to path. On failure c is left unchanged.
func (c *Config) Open(path string) error {
	d, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	doc, err := parse.Parse(d, c.parseOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.data = doc
	c.path = path
	c.open = true
	if debug.Config() {
		debug.Logf("opened %s with %d entries\n", path, doc.Size())
	}
	return nil
}

func (c *Config) IsOpen() bool {
	return c.open
}

// Path returns the bound file path, or "" if none.
func (c *Config) Path() string {
	return c.path
}

// Close discards all entries and unbinds the file.
func (c *Config) Close() {
	c.data = &ir.Node{Type: ir.ObjectType}
	c.path = ""
	c.open = false
}

// Save writes the document to the bound path.
func (c *Config) Save() error {
	if c.path == "" {
		return ErrNoPath
	}
	return c.SaveAs(c.path)
}

// SaveAs writes the document to path without rebinding c.
func (c *Config) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	buf := &bytes.Buffer{}
	if err := c.Encode(buf); err != nil {
		return err
	}
	if err := afero.WriteFile(c.fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if debug.Config() {
		debug.Logf("saved %d entries to %s\n", c.data.Size(), path)
	}
	return nil
}

// Encode writes the document as key: value lines.
func (c *Config) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.EncodeDocument(c.data, w, slices.Concat(c.encOpts, opts)...)
}

// Get returns a copy of the value at key, or None if absent.
func (c *Config) Get(key string) *ir.Node {
	return c.data.Get(key).Clone()
}

// Lookup is like Get but reports whether key is present.
func (c *Config) Lookup(key string) (*ir.Node, bool) {
	v := c.data.Get(key)
	if v == nil {
		return ir.None(), false
	}
	return v.Clone(), true
}

func (c *Config) Has(key string) bool {
	return c.data.HasKey(key)
}

// Set stores a copy of v at key.
func (c *Config) Set(key string, v *ir.Node) {
	c.data.Put(key, v)
}

// Add appends a copy of v to the array at key. A missing or None entry
// becomes a one element array; any other entry is overwritten by v.
func (c *Config) Add(key string, v *ir.Node) {
	cur := c.data.Get(key)
	switch {
	case cur == nil || cur.Type == ir.NoneType:
		c.data.Field(key).Append(v)
	case cur.Type == ir.ArrayType:
		cur.Append(v)
	default:
		c.data.Put(key, v)
	}
}

// Remove deletes key if present.
func (c *Config) Remove(key string) {
	c.data.Delete(key)
}

// Pop removes key and returns its value, None if it was absent.
func (c *Config) Pop(key string) *ir.Node {
	v := c.data.Get(key)
	if v == nil {
		return ir.None()
	}
	c.data.Delete(key)
	return v
}

// GetPath returns a copy of the value at path, such as $.meta.author.
func (c *Config) GetPath(path string) (*ir.Node, error) {
	v, err := c.data.GetPath(path)
	if err != nil {
		return nil, err
	}
	return v.Clone(), nil
}

// SetPath stores a copy of v at path, creating containers as needed.
func (c *Config) SetPath(path string, v *ir.Node) error {
	p, err := ir.ParsePath(path)
	if err != nil {
		return err
	}
	if p == nil || p.Field == nil {
		return fmt.Errorf("%w: path %q must start with a key", ErrNotObject, path)
	}
	return c.data.SetPath(path, v)
}

// DeletePath removes the value at path.
func (c *Config) DeletePath(path string) error {
	return c.data.DeletePath(path)
}

// All iterates over copies of the entries in key order.
func (c *Config) All() iter.Seq2[string, *ir.Node] {
	return func(yield func(string, *ir.Node) bool) {
		for i, k := range c.data.Fields {
			if !yield(k, c.data.Values[i].Clone()) {
				return
			}
		}
	}
}

func (c *Config) Keys() []string {
	return c.data.Keys()
}

func (c *Config) Len() int {
	return len(c.data.Fields)
}

// Node returns a copy of the whole document as an object.
func (c *Config) Node() *ir.Node {
	return c.data.Clone()
}

// Replace sets the contents of c to a copy of obj, which must be an
// object. The bound path is kept.
func (c *Config) Replace(obj *ir.Node) error {
	if obj.Type != ir.ObjectType {
		return fmt.Errorf("%w: got %s", ErrNotObject, obj.Type)
	}
	c.data = obj.Clone()
	return nil
}
