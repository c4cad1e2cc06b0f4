package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// ToAny converts y to plain Go values: nil, int64, float64, bool,
// string, []any and map[string]any. Chars become one rune strings.
func ToAny(y *Node) any {
	switch y.Type {
	case IntType:
		return y.Int64
	case FloatType:
		return y.Float64
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case CharType:
		return string(y.Char)
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	default:
		return nil
	}
}

// FromAny converts decoded JSON, YAML or expression results into a
// node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return None(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", x, err)
		}
		return FromFloat(f), nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			*res.Field(k) = *n
		}
		return res, nil
	case map[any]any:
		res := &Node{Type: ObjectType}
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			*res.Field(fmt.Sprint(k)) = *n
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromFloat(float64(u))
	}
	return FromInt(int64(u))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return None(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		res := &Node{Type: ArrayType, Values: make([]*Node, rv.Len())}
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case reflect.Map:
		res := &Node{Type: ObjectType}
		for _, k := range rv.MapKeys() {
			n, err := FromAny(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			*res.Field(fmt.Sprint(k.Interface())) = *n
		}
		return res, nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T", ErrWrongKind, rv.Interface())
}
