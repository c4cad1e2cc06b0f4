package encode

import "github.com/cntlib/cnt/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeInline writes every container on a single line.
func EncodeInline(v bool) EncodeOption {
	return func(es *EncState) { es.inline = v }
}

// EncodeIndent sets the number of spaces per nesting level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// EncodeInlineMax sets the largest array written on one line.
func EncodeInlineMax(n int) EncodeOption {
	return func(es *EncState) { es.inlineMax = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
