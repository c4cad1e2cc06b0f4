package ir

import (
	"strconv"
	"strings"

	"github.com/cntlib/cnt/token"
)

// Text renders y compactly on one line in a form the parser reads back
// to an equal value.
func (y *Node) Text() string {
	buf := &strings.Builder{}
	y.text(buf)
	return buf.String()
}

func (y *Node) text(buf *strings.Builder) {
	switch y.Type {
	case NoneType:
		buf.WriteString(token.KeywordNone)
	case IntType:
		buf.WriteString(strconv.FormatInt(y.Int64, 10))
	case FloatType:
		buf.WriteString(token.FormatFloat(y.Float64))
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case StringType:
		buf.WriteString(token.Quote(y.String))
	case CharType:
		buf.WriteString(token.QuoteChar(y.Char))
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			v.text(buf)
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(token.Quote(f))
			buf.WriteString(": ")
			y.Values[i].text(buf)
		}
		buf.WriteByte('}')
	}
}
