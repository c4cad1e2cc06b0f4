package ir

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// Node is a single cnt value. Objects keep Fields sorted, with Values
// holding the value for each field at the same index. Arrays only use
// Values.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
	Char    rune
}

func None() *Node {
	return &Node{Type: NoneType}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromChar(r rune) *Node {
	return &Node{Type: CharType, Char: r}
}

// FromMap builds an object holding copies of the values of m. Nil
// values become None.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Fields))
	for i, k := range res.Fields {
		res.Values[i] = m[k].Clone()
	}
	return res
}

// FromSlice builds an array holding copies of vs.
func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.Values[i] = v.Clone()
	}
	return res
}

// ToMap returns the children of an object keyed by field. The values
// are not copied. It returns nil if y is not an object.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for i, f := range y.Fields {
		res[f] = y.Values[i]
	}
	return res
}

// Clone returns a deep copy of y. Cloning nil gives None.
func (y *Node) Clone() *Node {
	if y == nil {
		return None()
	}
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
		Char:    y.Char,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Assign replaces the contents of y with a copy of v.
func (y *Node) Assign(v *Node) *Node {
	*y = *v.Clone()
	return y
}

func (y *Node) IsNone() bool      { return y.Type == NoneType }
func (y *Node) IsObject() bool    { return y.Type == ObjectType }
func (y *Node) IsArray() bool     { return y.Type == ArrayType }
func (y *Node) IsContainer() bool { return !y.Type.IsLeaf() }

// MakeObject turns y into an empty object unless it already is one.
func (y *Node) MakeObject() *Node {
	if y.Type != ObjectType {
		*y = Node{Type: ObjectType}
	}
	return y
}

// MakeArray turns y into an empty array unless it already is one.
func (y *Node) MakeArray() *Node {
	if y.Type != ArrayType {
		*y = Node{Type: ArrayType}
	}
	return y
}

func (y *Node) find(key string) (int, bool) {
	return slices.BinarySearch(y.Fields, key)
}

// Field returns the child of y at key for writing, creating it as None
// if absent. y is made into an object first.
func (y *Node) Field(key string) *Node {
	y.MakeObject()
	i, ok := y.find(key)
	if ok {
		return y.Values[i]
	}
	v := None()
	y.Fields = slices.Insert(y.Fields, i, key)
	y.Values = slices.Insert(y.Values, i, v)
	return v
}

// Put stores a copy of v at key, making y an object first.
func (y *Node) Put(key string, v *Node) {
	y.Field(key).Assign(v)
}

// Delete removes key from an object. It reports whether the key was
// present.
func (y *Node) Delete(key string) bool {
	if y.Type != ObjectType {
		return false
	}
	i, ok := y.find(key)
	if !ok {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Index returns element i of y for writing. y is made into an array
// first and grown with None values so that i is in range. Index panics
// if i is negative.
func (y *Node) Index(i int) *Node {
	if i < 0 {
		panic(fmt.Sprintf("ir: negative index %d", i))
	}
	y.MakeArray()
	for len(y.Values) <= i {
		y.Values = append(y.Values, None())
	}
	return y.Values[i]
}

// Append adds a copy of v to the end of y, making y an array first.
func (y *Node) Append(v *Node) {
	y.MakeArray()
	y.Values = append(y.Values, v.Clone())
}

// Get returns the child at key, or nil if y is not an object or has no
// such key. The child is not copied.
func (y *Node) Get(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i, ok := y.find(key)
	if !ok {
		return nil
	}
	return y.Values[i]
}

// At is the read-only counterpart of Field.
func (y *Node) At(key string) (*Node, error) {
	if y.Type != ObjectType {
		return nil, fmt.Errorf("%w: field %q of %s", ErrWrongKind, key, y.Type)
	}
	v := y.Get(key)
	if v == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchKey, key)
	}
	return v, nil
}

// AtIndex is the read-only counterpart of Index.
func (y *Node) AtIndex(i int) (*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: index %d of %s", ErrWrongKind, i, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, len(y.Values))
	}
	return y.Values[i], nil
}

func (y *Node) HasKey(key string) bool {
	return y.Get(key) != nil
}

// Keys returns the sorted keys of an object.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

// Size is the number of children of a container, the number of code
// points of a string and 0 for everything else.
func (y *Node) Size() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	case StringType:
		return utf8.RuneCountInString(y.String)
	default:
		return 0
	}
}
