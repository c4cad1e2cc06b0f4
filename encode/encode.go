package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent    int
	inlineMax int
	inline    bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:    4,
		inlineMax: 3,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es, 0, es.inline); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// EncodeDocument writes each entry of the object doc as a line
// `key: value`. Keys are written bare when they are identifiers.
// For JSON and YAML it is the same as Encode.
func EncodeDocument(doc *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format != format.CNTFormat {
		return Encode(doc, w, opts...)
	}
	if doc.Type != ir.ObjectType {
		return fmt.Errorf("%w: document must be an object, got %s", ErrEncoding, doc.Type)
	}
	for i, key := range doc.Fields {
		k := key
		if !token.IsBare(k) {
			k = token.Quote(k)
		}
		if err := writeString(w, es.color(ir.ObjectType, FieldColor, k)+es.color(ir.ObjectType, SepColor, ":")+" "); err != nil {
			return err
		}
		if err := encode(doc.Values[i], w, es, 0, es.inline); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", es.indent*depth)
}

func encode(node *ir.Node, w io.Writer, es *EncState, depth int, inline bool) error {
	switch node.Type {
	case ir.NoneType:
		return writeString(w, es.color(ir.NoneType, ValueColor, token.KeywordNone))
	case ir.IntType:
		return writeString(w, es.color(ir.IntType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.FloatType:
		f := node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v has no literal form", ErrEncoding, f)
		}
		return writeString(w, es.color(ir.FloatType, ValueColor, token.FormatFloat(f)))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, token.Quote(node.String)))
	case ir.CharType:
		return writeString(w, es.color(ir.CharType, ValueColor, token.QuoteChar(node.Char)))
	case ir.ArrayType:
		return encodeArray(node, w, es, depth, inline)
	case ir.ObjectType:
		return encodeObject(node, w, es, depth, inline)
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState, depth int, inline bool) error {
	sep := func(s string) string { return es.color(ir.ArrayType, SepColor, s) }
	if len(node.Values) == 0 {
		return writeString(w, sep("[]"))
	}
	if inline || len(node.Values) <= es.inlineMax {
		if err := writeString(w, sep("[")); err != nil {
			return err
		}
		for i, v := range node.Values {
			if i > 0 {
				if err := writeString(w, sep(",")+" "); err != nil {
					return err
				}
			}
			if err := encode(v, w, es, 0, true); err != nil {
				return err
			}
		}
		return writeString(w, sep("]"))
	}
	if err := writeString(w, sep("[")+"\n"); err != nil {
		return err
	}
	pad := es.pad(depth + 1)
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, sep(",")+"\n"); err != nil {
				return err
			}
		}
		if err := writeString(w, pad); err != nil {
			return err
		}
		if err := encode(v, w, es, depth+1, false); err != nil {
			return err
		}
	}
	return writeString(w, "\n"+es.pad(depth)+sep("]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, depth int, inline bool) error {
	sep := func(s string) string { return es.color(ir.ObjectType, SepColor, s) }
	if len(node.Values) == 0 {
		return writeString(w, sep("{}"))
	}
	field := func(k string) string {
		return es.color(ir.ObjectType, FieldColor, token.Quote(k)) + sep(":") + " "
	}
	if inline {
		if err := writeString(w, sep("{")); err != nil {
			return err
		}
		for i, k := range node.Fields {
			if i > 0 {
				if err := writeString(w, sep(",")+" "); err != nil {
					return err
				}
			}
			if err := writeString(w, field(k)); err != nil {
				return err
			}
			if err := encode(node.Values[i], w, es, 0, true); err != nil {
				return err
			}
		}
		return writeString(w, sep("}"))
	}
	if err := writeString(w, sep("{")+"\n"); err != nil {
		return err
	}
	pad := es.pad(depth + 1)
	for i, k := range node.Fields {
		if i > 0 {
			if err := writeString(w, sep(",")+"\n"); err != nil {
				return err
			}
		}
		if err := writeString(w, pad+field(k)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es, depth+1, false); err != nil {
			return err
		}
	}
	return writeString(w, "\n"+es.pad(depth)+sep("}"))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
