package gomap

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"
)

var ErrDecode = errors.New("decode error")

var nodeType = reflect.TypeFor[ir.Node]()

type fromOpts struct {
	format format.Format
	strict bool
}

type FromOption func(*fromOpts)

func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }
func LoadStrict(v bool) FromOption          { return func(o *fromOpts) { o.strict = v } }

// Load parses the document d and decodes it into p.
func Load(d []byte, p any, opts ...FromOption) error {
	fo := &fromOpts{}
	for _, f := range opts {
		f(fo)
	}
	node, err := parse.Parse(d, parse.ParseFormat(fo.format), parse.ParseStrict(fo.strict))
	if err != nil {
		return err
	}
	return Decode(node, p)
}

// Decode stores node in the value p points to. Object keys without a
// matching field are ignored; None leaves the target unchanged.
func Decode(node *ir.Node, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: need a non-nil pointer, got %T", ErrDecode, p)
	}
	return decode(node, rv.Elem(), "$")
}

func decode(node *ir.Node, v reflect.Value, path string) error {
	switch v.Type() {
	case nodeType:
		v.Set(reflect.ValueOf(*node.Clone()))
		return nil
	case reflect.PointerTo(nodeType):
		v.Set(reflect.ValueOf(node.Clone()))
		return nil
	}
	if node.Type == ir.NoneType {
		return nil
	}
	mismatch := func() error {
		return fmt.Errorf("%w: %s: cannot store %s in %s", ErrDecode, path, node.Type, v.Type())
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decode(node, v.Elem(), path)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return mismatch()
		}
		if x := ir.ToAny(node); x != nil {
			v.Set(reflect.ValueOf(x))
		}
		return nil
	case reflect.Bool:
		b, ok := node.AsBool()
		if !ok {
			return mismatch()
		}
		v.SetBool(b)
	case reflect.String:
		s, ok := node.AsString()
		if !ok {
			return mismatch()
		}
		v.SetString(s)
	case reflect.Int32:
		if node.Type == ir.CharType || node.Type == ir.StringType {
			r, ok := node.AsChar()
			if !ok {
				return mismatch()
			}
			v.SetInt(int64(r))
			return nil
		}
		fallthrough
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64:
		i, ok := asInt(node)
		if !ok || v.OverflowInt(i) {
			return mismatch()
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, ok := asInt(node)
		if !ok || i < 0 || v.OverflowUint(uint64(i)) {
			return mismatch()
		}
		v.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, ok := node.AsFloat()
		if !ok {
			return mismatch()
		}
		v.SetFloat(f)
	case reflect.Slice:
		if node.Type != ir.ArrayType {
			return mismatch()
		}
		res := reflect.MakeSlice(v.Type(), len(node.Values), len(node.Values))
		for i, elt := range node.Values {
			if err := decode(elt, res.Index(i), ir.IndexPath(path, i)); err != nil {
				return err
			}
		}
		v.Set(res)
	case reflect.Array:
		if node.Type != ir.ArrayType || len(node.Values) > v.Len() {
			return mismatch()
		}
		for i, elt := range node.Values {
			if err := decode(elt, v.Index(i), ir.IndexPath(path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if node.Type != ir.ObjectType || v.Type().Key().Kind() != reflect.String {
			return mismatch()
		}
		if v.IsNil() {
			v.Set(reflect.MakeMapWithSize(v.Type(), len(node.Fields)))
		}
		for i, f := range node.Fields {
			elt := reflect.New(v.Type().Elem()).Elem()
			if err := decode(node.Values[i], elt, ir.FieldPath(path, f)); err != nil {
				return err
			}
			v.SetMapIndex(reflect.ValueOf(f).Convert(v.Type().Key()), elt)
		}
	case reflect.Struct:
		if node.Type != ir.ObjectType {
			return mismatch()
		}
		for _, fi := range fields(v.Type()) {
			child := node.Get(fi.name)
			if child == nil {
				continue
			}
			if err := decode(child, v.FieldByIndex(fi.index), ir.FieldPath(path, fi.name)); err != nil {
				return err
			}
		}
	default:
		return mismatch()
	}
	return nil
}

// asInt accepts floats without a fractional part.
func asInt(node *ir.Node) (int64, bool) {
	switch node.Type {
	case ir.IntType:
		return node.AsInt()
	case ir.FloatType:
		f, _ := node.AsFloat()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}
