package parse

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/token"
)

// Parse reads a whole document. The result is always an object.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := collect(opts)
	if pOpts.format != format.CNTFormat {
		res, err := parseForeign(d, pOpts.format)
		if err != nil {
			return nil, err
		}
		if res.Type == ir.NoneType {
			res.MakeObject()
		}
		if res.Type != ir.ObjectType {
			return nil, &Error{Msg: "document is a " + res.Type.String() + ", not an object"}
		}
		return res, nil
	}
	p := newParser(d, pOpts)
	res, err := p.document()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d entries from %d bytes\n", res.Size(), len(d))
	}
	return res, nil
}

// ParseValue reads a single value, such as the right hand side of an
// entry.
func ParseValue(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := collect(opts)
	if pOpts.format != format.CNTFormat {
		return parseForeign(d, pOpts.format)
	}
	p := newParser(d, pOpts)
	res := ir.None()
	if err := p.value(res); err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() && p.opts.strict {
		return nil, p.errorf("unexpected trailing input", p.rest())
	}
	return res, nil
}

type parser struct {
	d    []byte
	i    int
	opts *parseOpts
	pd   *token.PosDoc
}

func newParser(d []byte, opts *parseOpts) *parser {
	return &parser{d: d, opts: opts, pd: token.NewPosDoc(d)}
}

func (p *parser) eof() bool {
	return p.i >= len(p.d)
}

func (p *parser) peek() byte {
	return p.d[p.i]
}

func (p *parser) rest() string {
	end := p.i
	for end < len(p.d) && !isSpace(p.d[end]) {
		end++
	}
	return string(p.d[p.i:end])
}

func (p *parser) errorf(msg, lit string) *Error {
	return &Error{Pos: p.pd.Pos(p.i), Literal: lit, Msg: msg}
}

func (p *parser) errorAt(off int, msg, lit string) *Error {
	return &Error{Pos: p.pd.Pos(off), Literal: lit, Msg: msg}
}

func (p *parser) trackPos(node *ir.Node, off int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.pd.Pos(off)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpace skips whitespace and comments.
func (p *parser) skipSpace() {
	for !p.eof() {
		c := p.peek()
		if isSpace(c) {
			p.i++
			continue
		}
		if c != '/' || p.i+1 >= len(p.d) {
			return
		}
		switch p.d[p.i+1] {
		case '/':
			for !p.eof() && p.peek() != '\n' {
				p.i++
			}
		case '*':
			end := bytes.Index(p.d[p.i+2:], []byte("*/"))
			if end == -1 {
				p.i = len(p.d)
			} else {
				p.i += 2 + end + 2
			}
		default:
			return
		}
	}
}

// document reads entries until end of input.
func (p *parser) document() (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	p.trackPos(res, 0)
	for {
		p.skipSpace()
		if p.eof() {
			return res, nil
		}
		switch p.peek() {
		case ',':
			p.i++
			continue
		case '}', ']':
			if p.opts.strict {
				return nil, p.errorf("unexpected closing bracket", string(p.peek()))
			}
			p.i++
			continue
		}
		if err := p.entry(res); err != nil {
			return nil, err
		}
	}
}

// entry reads key: value into obj. Entries whose key cannot be read are
// skipped along with their value.
func (p *parser) entry(obj *ir.Node) error {
	key, ok, err := p.key()
	if err != nil {
		return err
	}
	p.skipSpace()
	colon := false
	if !p.eof() && p.peek() == ':' {
		p.i++
		colon = true
	}
	dst := ir.None()
	switch {
	case ok:
		if !colon && p.opts.strict {
			return p.errorf("expected ':' after key", key)
		}
		dst = obj.Field(key)
	case !colon:
		return nil
	}
	if err := p.value(dst); err != nil {
		return err
	}
	p.skipSpace()
	if !p.eof() && p.peek() == ',' {
		p.i++
	}
	return nil
}

// key reads a quoted or bare key. ok is false if the input at the
// current position is not a key, in which case it is skipped.
func (p *parser) key() (string, bool, error) {
	if p.peek() == '"' {
		s, err := p.quoted('"')
		return s, err == nil, err
	}
	start := p.i
	for !p.eof() && token.IsBareByte(p.peek()) {
		p.i++
	}
	if p.i > start {
		return string(p.d[start:p.i]), true, nil
	}
	if p.opts.strict {
		return "", false, p.errorf("expected key", p.rest())
	}
	p.skipJunk(true)
	return "", false, nil
}

// skipJunk consumes at least one byte, then up to the next delimiter.
func (p *parser) skipJunk(stopAtColon bool) {
	start := p.i
	p.i++
	for !p.eof() {
		c := p.peek()
		if isSpace(c) || c == ',' || c == ']' || c == '}' || (stopAtColon && c == ':') {
			break
		}
		p.i++
	}
	if debug.Parse() {
		debug.Logf("skipped %q at offset %d\n", p.d[start:p.i], start)
	}
}

func (p *parser) keyword(kw string) bool {
	if !bytes.HasPrefix(p.d[p.i:], []byte(kw)) {
		return false
	}
	end := p.i + len(kw)
	return end >= len(p.d) || !token.IsBareByte(p.d[end])
}

// value reads one value into dst.
func (p *parser) value(dst *ir.Node) error {
	p.skipSpace()
	start := p.i
	p.trackPos(dst, start)
	if p.eof() {
		if p.opts.strict {
			return p.errorf("unexpected end of input", "")
		}
		*dst = ir.Node{}
		return nil
	}
	switch {
	case p.keyword(token.KeywordNone):
		p.i += len(token.KeywordNone)
		*dst = ir.Node{}
		return nil
	case p.keyword(token.KeywordTrue):
		p.i += len(token.KeywordTrue)
		*dst = *ir.FromBool(true)
		return nil
	case p.keyword(token.KeywordFalse):
		p.i += len(token.KeywordFalse)
		*dst = *ir.FromBool(false)
		return nil
	}
	c := p.peek()
	switch {
	case c == '"':
		s, err := p.quoted('"')
		if err != nil {
			return err
		}
		*dst = *ir.FromString(s)
		return nil
	case c == '\'':
		r, err := p.char()
		if err != nil {
			return err
		}
		*dst = *ir.FromChar(r)
		return nil
	case c == '[':
		return p.array(dst)
	case c == '{':
		return p.object(dst)
	case c == '+' || c == '-' || (c >= '0' && c <= '9'):
		return p.number(dst)
	case c == ',' || c == ']' || c == '}':
		if p.opts.strict {
			return p.errorf("missing value", "")
		}
		*dst = ir.Node{}
		return nil
	}
	if p.opts.strict {
		return p.errorf("unrecognized value", p.rest())
	}
	p.skipJunk(false)
	*dst = ir.Node{}
	return nil
}

// quoted reads a string delimited by q, which is the current byte.
func (p *parser) quoted(q byte) (string, error) {
	start := p.i
	p.i++
	buf := make([]byte, 0, 16)
	for !p.eof() {
		c := p.peek()
		switch {
		case c == q:
			p.i++
			return string(buf), nil
		case c == '\\' && p.i+1 < len(p.d):
			buf = append(buf, token.Unescape(p.d[p.i+1]))
			p.i += 2
		default:
			buf = append(buf, c)
			p.i++
		}
	}
	if p.opts.strict {
		return "", p.errorAt(start, "unterminated string", string(p.d[start:]))
	}
	return string(buf), nil
}

func (p *parser) char() (rune, error) {
	start := p.i
	p.i++
	var r rune
	switch {
	case p.eof():
	case p.peek() == '\'':
		if p.opts.strict {
			return 0, p.errorAt(start, "empty character", "''")
		}
	case p.peek() == '\\' && p.i+1 < len(p.d):
		r = rune(token.Unescape(p.d[p.i+1]))
		p.i += 2
	default:
		var n int
		r, n = utf8.DecodeRune(p.d[p.i:])
		p.i += n
	}
	if !p.eof() && p.peek() == '\'' {
		p.i++
		return r, nil
	}
	if p.opts.strict {
		return 0, p.errorAt(start, "unterminated character", string(p.d[start:p.i]))
	}
	return r, nil
}

func (p *parser) array(dst *ir.Node) error {
	start := p.i
	p.i++
	*dst = ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}
	for {
		p.skipSpace()
		if p.eof() {
			if p.opts.strict {
				return p.errorAt(start, "unterminated array", "")
			}
			return nil
		}
		switch p.peek() {
		case ']':
			p.i++
			return nil
		case '}':
			if p.opts.strict {
				return p.errorf("unexpected '}' in array", "")
			}
			p.i++
			continue
		}
		elt := ir.None()
		if err := p.value(elt); err != nil {
			return err
		}
		dst.Values = append(dst.Values, elt)
		p.skipSpace()
		if !p.eof() && p.peek() == ',' {
			p.i++
		}
	}
}

func (p *parser) object(dst *ir.Node) error {
	start := p.i
	p.i++
	*dst = ir.Node{Type: ir.ObjectType}
	for {
		p.skipSpace()
		if p.eof() {
			if p.opts.strict {
				return p.errorAt(start, "unterminated object", "")
			}
			return nil
		}
		switch p.peek() {
		case '}':
			p.i++
			return nil
		case ',':
			p.i++
			continue
		case ']':
			if p.opts.strict {
				return p.errorf("unexpected ']' in object", "")
			}
			p.i++
			continue
		}
		if err := p.entry(dst); err != nil {
			return err
		}
	}
}

// number reads a numeric literal greedily. Literals containing a
// decimal point or an exponent are floats.
func (p *parser) number(dst *ir.Node) error {
	start := p.i
	p.i++
	for !p.eof() && token.IsNumberByte(p.peek()) {
		p.i++
	}
	lit := string(p.d[start:p.i])
	if strings.ContainsAny(lit, ".eE") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return p.errorAt(start, "invalid number", lit)
		}
		*dst = *ir.FromFloat(f)
		return nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return p.errorAt(start, "invalid number", lit)
	}
	*dst = *ir.FromInt(i)
	return nil
}
