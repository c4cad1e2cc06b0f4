package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Unescape returns the byte denoted by the escape sequence `\c`.
// Unknown escapes denote c itself.
func Unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func escape(buf *strings.Builder, r rune, quote rune) {
	switch r {
	case '\n':
		buf.WriteString(`\n`)
	case '\t':
		buf.WriteString(`\t`)
	case '\r':
		buf.WriteString(`\r`)
	case '\\':
		buf.WriteString(`\\`)
	case quote:
		buf.WriteByte('\\')
		buf.WriteRune(r)
	default:
		buf.WriteRune(r)
	}
}

// Quote renders s as a double quoted string literal.
func Quote(s string) string {
	buf := &strings.Builder{}
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n == 1 {
			// keep invalid bytes as they are
			buf.WriteByte(s[0])
		} else {
			escape(buf, r, '"')
		}
		s = s[n:]
	}
	buf.WriteByte('"')
	return buf.String()
}

// QuoteChar renders r as a single quoted character literal.
func QuoteChar(r rune) string {
	buf := &strings.Builder{}
	buf.WriteByte('\'')
	escape(buf, r, '\'')
	buf.WriteByte('\'')
	return buf.String()
}

func IsBareByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

// IsBare reports whether s can be written as a key without quotes.
func IsBare(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsBareByte(s[i]) {
			return false
		}
	}
	return true
}

// IsNumberByte reports whether c may appear in a numeric literal.
func IsNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

// FormatFloat renders f so that it reads back as a float: a decimal
// point is added to integral values.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}
