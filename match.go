package cnt

import (
	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/ir"
)

// Match reports whether doc contains pattern. Objects match when every
// key of pattern is present in doc with a matching value; arrays match
// element-wise and must have the same length; None in pattern matches
// anything. Other values match when equal and of the same type.
func Match(doc, pattern *ir.Node) bool {
	return match(doc, pattern, "$")
}

func match(doc, pattern *ir.Node, path string) bool {
	if debug.Match() {
		debug.Logf("match %s at %s\n", pattern.Type, path)
	}
	if pattern.Type == ir.NoneType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.ObjectType:
		for i, field := range pattern.Fields {
			child := doc.Get(field)
			if child == nil {
				return false
			}
			if !match(child, pattern.Values[i], ir.FieldPath(path, field)) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if len(doc.Values) != len(pattern.Values) {
			return false
		}
		for i := range doc.Values {
			if !match(doc.Values[i], pattern.Values[i], ir.IndexPath(path, i)) {
				return false
			}
		}
		return true
	default:
		return ir.Equal(doc, pattern)
	}
}

// Trim returns a copy of doc restricted to the keys present in pattern.
// Array elements are kept when some element of pattern matches them.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		res := &ir.Node{Type: ir.ObjectType}
		for i, field := range doc.Fields {
			p := pattern.Get(field)
			if p == nil {
				continue
			}
			*res.Field(field) = *Trim(p, doc.Values[i])
		}
		return res
	case pattern.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		res := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}
		used := make([]bool, len(doc.Values))
		for _, p := range pattern.Values {
			for i, elt := range doc.Values {
				if used[i] || !Match(elt, p) {
					continue
				}
				res.Values = append(res.Values, Trim(p, elt))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
