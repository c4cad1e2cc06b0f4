package libdiff

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cntlib/cnt/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.node(from, to, "$")
	return d.res
}

type differ struct {
	res []Change
}

func (d *differ) add(path string, from, to *ir.Node) {
	d.res = append(d.res, MakeChange(path, from, to))
}

func (d *differ) node(from, to *ir.Node, path string) {
	switch {
	case from.Type != to.Type:
		d.add(path, from, to)
	case from.Type == ir.ObjectType:
		d.object(from, to, path)
	case from.Type == ir.ArrayType:
		d.array(from, to, path)
	case !ir.Equal(from, to):
		d.add(path, from, to)
	}
}

// alphabet assigns each distinct key a rune so that sequences of keys
// can go through the rune diff.
type alphabet struct {
	runes map[string]rune
	keys  []string
}

func (a *alphabet) encode(keys []string) []rune {
	if a.runes == nil {
		a.runes = map[string]rune{}
	}
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := a.runes[k]
		if !ok {
			r = runeFor(len(a.keys))
			a.runes[k] = r
			a.keys = append(a.keys, k)
		}
		rs[i] = r
	}
	return rs
}

// runeFor maps n to a distinct valid rune, skipping the surrogate range
// which does not survive conversion to string.
func runeFor(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

// index inverts runeFor.
func (a *alphabet) index(r rune) int {
	if r >= 0xD800+0x800 {
		r -= 0x800
	}
	return int(r)
}

func (a *alphabet) diff(from, to []string) []diffpatch.Diff {
	return diffpatch.New().DiffMainRunes(a.encode(from), a.encode(to), false)
}

// Fields present on one side only are whole changes; shared fields are
// compared recursively.
func (d *differ) object(from, to *ir.Node, path string) {
	ab := &alphabet{}
	fi, ti := 0, 0
	for _, op := range ab.diff(from.Fields, to.Fields) {
		for range utf8.RuneCountInString(op.Text) {
			switch op.Type {
			case diffpatch.DiffDelete:
				d.add(ir.FieldPath(path, from.Fields[fi]), from.Values[fi], nil)
				fi++
			case diffpatch.DiffInsert:
				d.add(ir.FieldPath(path, to.Fields[ti]), nil, to.Values[ti])
				ti++
			case diffpatch.DiffEqual:
				d.node(from.Values[fi], to.Values[ti], ir.FieldPath(path, to.Fields[ti]))
				fi++
				ti++
			}
		}
	}
}

// Elements are aligned on a fingerprint of each value. A deletion
// directly followed by an insertion pairs up element by element; what
// is left over is reported whole. Deleted elements are addressed by
// their index in from, everything else by the index in to.
func (d *differ) array(from, to *ir.Node, path string) {
	ab := &alphabet{}
	ops := ab.diff(fingerprints(from), fingerprints(to))
	fi, ti := 0, 0
	pair := func(n int) {
		for range n {
			d.node(from.Values[fi], to.Values[ti], ir.IndexPath(path, ti))
			fi++
			ti++
		}
	}
	for i := 0; i < len(ops); i++ {
		n := utf8.RuneCountInString(ops[i].Text)
		switch ops[i].Type {
		case diffpatch.DiffEqual:
			pair(n)
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(ops) && ops[i+1].Type == diffpatch.DiffInsert {
				i++
				ins = utf8.RuneCountInString(ops[i].Text)
			}
			k := min(n, ins)
			pair(k)
			for range n - k {
				d.add(ir.IndexPath(path, fi), from.Values[fi], nil)
				fi++
			}
			for range ins - k {
				d.add(ir.IndexPath(path, ti), nil, to.Values[ti])
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(ir.IndexPath(path, ti), nil, to.Values[ti])
				ti++
			}
		}
	}
}

// fingerprints summarizes elements coarsely: containers by type only,
// multi-line strings by type only, other scalars by value.
func fingerprints(node *ir.Node) []string {
	res := make([]string, len(node.Values))
	for i, v := range node.Values {
		t := v.Type.String()
		switch v.Type {
		case ir.ObjectType, ir.ArrayType, ir.NoneType:
			res[i] = t
		case ir.BoolType:
			res[i] = t + "-" + strconv.FormatBool(v.Bool)
		case ir.StringType:
			if strings.Contains(v.String, "\n") {
				res[i] = t + "/m"
			} else {
				res[i] = t + "-" + v.String
			}
		default:
			res[i] = t + "-" + v.Text()
		}
	}
	return res
}
