package libdiff

import (
	"fmt"

	"github.com/cntlib/cnt/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}

// Change is a single difference. From is nil for insertions and To is
// nil for deletions.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.To.Text())
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.From.Text())
	default:
		if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
			return fmt.Sprintf("%s %s: %s", c.Op, c.Path, StringDiff(c.From.String, c.To.String))
		}
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, c.From.Text(), c.To.Text())
	}
}

func MakeChange(path string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Path: path, Op: Insert, To: to.Clone()}
	case to == nil:
		return Change{Path: path, Op: Delete, From: from.Clone()}
	default:
		return Change{Path: path, Op: Replace, From: from.Clone(), To: to.Clone()}
	}
}
