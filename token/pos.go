package token

import (
	"fmt"
	"sort"
)

// PosDoc maps byte offsets of a document to line and column.
type PosDoc struct {
	d      []byte
	starts []int // offset of the first byte of each line
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d, starts: []int{0}}
	for i, c := range d {
		if c == '\n' {
			p.starts = append(p.starts, i+1)
		}
	}
	return p
}

// LineCol returns the zero based line and column (in bytes) of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	line := sort.SearchInts(p.starts, off+1) - 1
	if line < 0 {
		return 0, off
	}
	return line, off - p.starts[line]
}

// Offset is the inverse of LineCol. Lines past the last one clamp to
// the end of the document.
func (p *PosDoc) Offset(line, col int) int {
	switch {
	case line < 0:
		line = 0
	case line >= len(p.starts):
		return len(p.d)
	}
	return min(p.starts[line]+col, len(p.d))
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is an offset into a PosDoc.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// String shows the bytes around p with a one based line and column.
func (p Pos) String() string {
	var near []byte
	if p.D != nil {
		lo, hi := max(0, p.I-5), min(p.I+5, len(p.D.d))
		if lo < hi {
			near = p.D.d[lo:hi]
		}
	}
	l, c := p.LineCol()
	return fmt.Sprintf("%+q at %d:%d", near, l+1, c+1)
}
