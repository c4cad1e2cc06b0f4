package parse

import (
	"errors"
	"fmt"

	"github.com/cntlib/cnt/token"
)

var ErrParse = errors.New("parse error")

// Error describes where and why a parse failed. It wraps ErrParse.
type Error struct {
	Pos     *token.Pos
	Literal string
	Msg     string
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Literal != "" {
		msg += " " + quoteLiteral(e.Literal)
	}
	if e.Pos == nil {
		return fmt.Sprintf("%s: %s", ErrParse, msg)
	}
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%s: %s at line %d, column %d", ErrParse, msg, line+1, col+1)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

// Line returns the zero based line of the error, or 0 if unknown.
func (e *Error) Line() int {
	if e.Pos == nil {
		return 0
	}
	return e.Pos.Line()
}

// Col returns the zero based column of the error, or 0 if unknown.
func (e *Error) Col() int {
	if e.Pos == nil {
		return 0
	}
	return e.Pos.Col()
}

func quoteLiteral(s string) string {
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return fmt.Sprintf("%q", s)
}
