package ir

import "unicode/utf8"

func (y *Node) AsInt() (int64, bool) {
	switch y.Type {
	case IntType:
		return y.Int64, true
	case FloatType:
		return int64(y.Float64), true
	}
	return 0, false
}

func (y *Node) AsFloat() (float64, bool) {
	switch y.Type {
	case FloatType:
		return y.Float64, true
	case IntType:
		return float64(y.Int64), true
	}
	return 0, false
}

func (y *Node) AsBool() (bool, bool) {
	if y.Type == BoolType {
		return y.Bool, true
	}
	return false, false
}

func (y *Node) AsString() (string, bool) {
	switch y.Type {
	case StringType:
		return y.String, true
	case CharType:
		return string(y.Char), true
	}
	return "", false
}

// AsChar views a Char, or a String holding exactly one code point, as a
// rune.
func (y *Node) AsChar() (rune, bool) {
	switch y.Type {
	case CharType:
		return y.Char, true
	case StringType:
		r, n := utf8.DecodeRuneInString(y.String)
		if n == 0 || n != len(y.String) || r == utf8.RuneError && n == 1 {
			return 0, false
		}
		return r, true
	}
	return 0, false
}
