package eval

import (
	"fmt"
	"strings"

	"github.com/cntlib/cnt/ir"
)

// ExpandString replaces each $[expr] in v by the result of evaluating
// expr. Inside an expression a backslash escapes the next character.
// Text after an unterminated $[ is kept as it is.
func ExpandString(v string, env Env, opts *EvalOptions) (string, error) {
	buf := &strings.Builder{}
	i := 0
	for i < len(v) {
		j := strings.Index(v[i:], "$[")
		if j == -1 {
			buf.WriteString(v[i:])
			break
		}
		buf.WriteString(v[i : i+j])
		start := i + j
		src, end, ok := scanExpr(v, start+2)
		if !ok {
			buf.WriteString(v[start:])
			break
		}
		x, err := run(src, env, opts)
		if err != nil {
			return "", err
		}
		s, err := anyString(x)
		if err != nil {
			return "", fmt.Errorf("could not render result of %q: %w", src, err)
		}
		buf.WriteString(s)
		i = end
	}
	return buf.String(), nil
}

// scanExpr reads an expression starting at v[k] up to the matching ']'.
// It returns the unescaped source and the offset following the ']'.
func scanExpr(v string, k int) (string, int, bool) {
	src := make([]byte, 0, 16)
	depth := 0
	for k < len(v) {
		c := v[k]
		switch {
		case c == '\\' && k+1 < len(v):
			src = append(src, v[k+1])
			k += 2
			continue
		case c == '[':
			depth++
		case c == ']':
			if depth == 0 {
				return strings.TrimSpace(string(src)), k + 1, true
			}
			depth--
		}
		src = append(src, c)
		k++
	}
	return "", 0, false
}

func anyString(x any) (string, error) {
	if s, ok := x.(string); ok {
		return s, nil
	}
	n, err := ir.FromAny(x)
	if err != nil {
		return "", err
	}
	return n.Text(), nil
}

// wholeExpr returns the expression of a string consisting of exactly one
// $[expr].
func wholeExpr(v string) (string, bool) {
	if !strings.HasPrefix(v, "$[") {
		return "", false
	}
	src, end, ok := scanExpr(v, 2)
	if !ok || end != len(v) {
		return "", false
	}
	return src, true
}

// ExpandNode returns a copy of node with every string value expanded.
// A string that is exactly one $[expr] is replaced by the typed result
// of expr; keys are never expanded.
func ExpandNode(node *ir.Node, env Env, opts *EvalOptions) (*ir.Node, error) {
	res := node.Clone()
	if err := expandInPlace(res, env, opts, "$"); err != nil {
		return nil, err
	}
	return res, nil
}

func expandInPlace(node *ir.Node, env Env, opts *EvalOptions, path string) error {
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			if err := expandInPlace(node.Values[i], env, opts, ir.FieldPath(path, f)); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, v := range node.Values {
			if err := expandInPlace(v, env, opts, ir.IndexPath(path, i)); err != nil {
				return err
			}
		}
	case ir.StringType:
		if src, ok := wholeExpr(node.String); ok {
			repl, err := Eval(src, env, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			*node = *repl
			return nil
		}
		s, err := ExpandString(node.String, env, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		node.String = s
	}
	return nil
}
