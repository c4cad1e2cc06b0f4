package cnt

import (
	"github.com/cntlib/cnt/gomap"
	"github.com/cntlib/cnt/ir"
)

// Decode stores the document in the value p points to, typically a
// struct with `cnt` field tags.
func (c *Config) Decode(p any) error {
	return gomap.Decode(c.data, p)
}

// DecodeKey stores the entry at key in the value p points to. An absent
// key leaves it unchanged.
func (c *Config) DecodeKey(key string, p any) error {
	v := c.data.Get(key)
	if v == nil {
		v = ir.None()
	}
	return gomap.Decode(v, p)
}

// SetAny stores v at key, converting it to a node first.
func (c *Config) SetAny(key string, v any) error {
	n, err := gomap.ToNode(v)
	if err != nil {
		return err
	}
	c.Set(key, n)
	return nil
}
