package encode

import (
	"github.com/cntlib/cnt/ir"

	"github.com/fatih/color"
)

// Colorable names a part of the output which may be colored: the value
// of a given type, an object key or the punctuation around them.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors maps output parts to the functions coloring them. Parts
// missing from Map use Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var palette = []struct {
	able Colorable
	c    *color.Color
}{
	{Colorable{ir.NoneType, ValueColor}, color.RGB(168, 0, 196)},
	{Colorable{ir.IntType, ValueColor}, color.RGB(128, 216, 236)},
	{Colorable{ir.FloatType, ValueColor}, color.RGB(96, 176, 236)},
	{Colorable{ir.BoolType, ValueColor}, color.New(color.FgCyan)},
	{Colorable{ir.StringType, ValueColor}, color.RGB(8, 196, 16)},
	{Colorable{ir.CharType, ValueColor}, color.RGB(88, 158, 86)},
	{Colorable{ir.ObjectType, FieldColor}, color.RGB(128, 168, 196)},
	{Colorable{ir.ObjectType, SepColor}, color.RGB(196, 128, 128)},
	{Colorable{ir.ArrayType, SepColor}, color.RGB(255, 0, 196)},
}

// NewColors returns the default terminal palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[Colorable]func(string, ...any) string, len(palette)),
	}
	for _, p := range palette {
		sprint := p.c.SprintFunc()
		// the text is printed as is, never as a format
		colors.Map[p.able] = func(v string, _ ...any) string {
			return sprint(v)
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}
