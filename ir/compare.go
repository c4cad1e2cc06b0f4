package ir

import (
	"cmp"
	"slices"
	"strings"
)

// typeOrder ranks variants for Compare. Integers and floats share a
// rank and are ordered by value.
var typeOrder = [...]int{
	NoneType:   0,
	BoolType:   1,
	IntType:    2,
	FloatType:  2,
	CharType:   3,
	StringType: 4,
	ArrayType:  5,
	ObjectType: 6,
}

func typeRank(t Type) int {
	if t < 0 || int(t) >= len(typeOrder) {
		return len(typeOrder)
	}
	return typeOrder[t]
}

// Compare gives a total order on nodes: -1, 0 or +1 as a sorts before,
// with or after b. A nil node sorts first.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(typeRank(a.Type), typeRank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case IntType, FloatType:
		if a.Type == IntType && b.Type == IntType {
			return cmp.Compare(a.Int64, b.Int64)
		}
		fa, _ := a.AsFloat()
		fb, _ := b.AsFloat()
		// 1 before 1.0
		return cmp.Or(cmp.Compare(fa, fb), cmp.Compare(a.Type, b.Type))
	case BoolType:
		return cmp.Compare(boolRank(a.Bool), boolRank(b.Bool))
	case CharType:
		return cmp.Compare(a.Char, b.Char)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case ObjectType:
		for i := range min(len(a.Fields), len(b.Fields)) {
			c := cmp.Or(strings.Compare(a.Fields[i], b.Fields[i]), Compare(a.Values[i], b.Values[i]))
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Fields), len(b.Fields))
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Equal reports whether a and b hold the same variant with equal
// contents. An Int never equals a Float.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type == b.Type && Compare(a, b) == 0
}

// Truth reports whether node holds a non-zero value. None is false.
func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType, ArrayType:
		return len(node.Values) > 0
	case StringType:
		return len(node.String) > 0
	case IntType:
		return node.Int64 != 0
	case FloatType:
		return node.Float64 != 0
	case CharType:
		return node.Char != 0
	case BoolType:
		return node.Bool
	}
	return false
}
