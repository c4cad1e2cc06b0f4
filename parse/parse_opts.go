package parse

import (
	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/token"
)

type parseOpts struct {
	format    format.Format
	strict    bool
	positions map[*ir.Node]*token.Pos
}

// ParseOption configures Parse and ParseValue. The default is a
// permissive cnt parse.
type ParseOption func(*parseOpts)

func collect(opts []ParseOption) *parseOpts {
	res := &parseOpts{format: format.CNTFormat}
	for _, o := range opts {
		o(res)
	}
	return res
}

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

func ParseCNT() ParseOption  { return ParseFormat(format.CNTFormat) }
func ParseJSON() ParseOption { return ParseFormat(format.JSONFormat) }
func ParseYAML() ParseOption { return ParseFormat(format.YAMLFormat) }

// ParseStrict makes recoverable irregularities errors.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParsePositions records where each parsed value starts. Only cnt
// input is tracked.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
