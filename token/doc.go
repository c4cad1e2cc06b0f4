// Package token holds the lexical pieces shared by the cnt parser and
// encoder: the escape table for quoted strings and characters, the rules
// for bare keys, float rendering and byte offset to line/column mapping.
package token
