package gomap

import (
	"fmt"
	"reflect"

	"github.com/cntlib/cnt/ir"
)

// ToNode converts v to a node, honoring `cnt` struct tags. Fields
// tagged omitempty are left out when they hold their zero value.
func ToNode(v any) (*ir.Node, error) {
	if v == nil {
		return ir.None(), nil
	}
	return toNode(reflect.ValueOf(v), "$")
}

func toNode(v reflect.Value, path string) (*ir.Node, error) {
	switch v.Type() {
	case nodeType:
		n := v.Interface().(ir.Node)
		return n.Clone(), nil
	case reflect.PointerTo(nodeType):
		if v.IsNil() {
			return ir.None(), nil
		}
		return v.Interface().(*ir.Node).Clone(), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return ir.None(), nil
		}
		return toNode(v.Elem(), path)
	case reflect.Slice:
		if v.IsNil() {
			return ir.None(), nil
		}
		fallthrough
	case reflect.Array:
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, v.Len())}
		for i := range v.Len() {
			n, err := toNode(v.Index(i), ir.IndexPath(path, i))
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %s: map keys must be strings, got %s", ir.ErrWrongKind, path, v.Type().Key())
		}
		res := &ir.Node{Type: ir.ObjectType}
		iter := v.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			n, err := toNode(iter.Value(), ir.FieldPath(path, k))
			if err != nil {
				return nil, err
			}
			res.Put(k, n)
		}
		return res, nil
	case reflect.Struct:
		res := &ir.Node{Type: ir.ObjectType}
		for _, fi := range fields(v.Type()) {
			fv, err := v.FieldByIndexErr(fi.index)
			if err != nil {
				// nil embedded pointer
				continue
			}
			if fi.omitEmpty && fv.IsZero() {
				continue
			}
			n, err := toNode(fv, ir.FieldPath(path, fi.name))
			if err != nil {
				return nil, err
			}
			res.Put(fi.name, n)
		}
		return res, nil
	}
	res, err := ir.FromAny(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
