package eval

import (
	"fmt"
	"os"

	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the variables visible to expressions.
type Env map[string]any

// DocEnv exposes the top level entries of doc as variables.
func DocEnv(doc *ir.Node) Env {
	env := Env{}
	if doc == nil || doc.Type != ir.ObjectType {
		return env
	}
	for i, f := range doc.Fields {
		env[f] = ir.ToAny(doc.Values[i])
	}
	return env
}

// EvalOptions configures expression evaluation.
type EvalOptions struct {
	// Doc, when set, is the document getpath() and haspath() resolve
	// against.
	Doc *ir.Node

	// Getenv looks up environment variables for getenv(). It defaults to
	// os.Getenv.
	Getenv func(string) string
}

func exprOpts(opts *EvalOptions) []expr.Option {
	getenv := os.Getenv
	var doc *ir.Node
	if opts != nil {
		doc = opts.Doc
		if opts.Getenv != nil {
			getenv = opts.Getenv
		}
	}
	res := []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
	if doc == nil {
		return res
	}
	return append(res,
		expr.Function("getpath", func(params ...any) (any, error) {
			node, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(node), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := doc.GetPath(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
	)
}

func run(input string, env Env, opts *EvalOptions, extra ...expr.Option) (any, error) {
	program, err := expr.Compile(input, append(exprOpts(opts), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	if env == nil {
		env = Env{}
	}
	res, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, res)
	}
	return res, nil
}

// Eval evaluates input and converts the result to a node.
func Eval(input string, env Env, opts *EvalOptions) (*ir.Node, error) {
	x, err := run(input, env, opts)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromAny(x)
	if err != nil {
		return nil, fmt.Errorf("could not translate result of %q: %w", input, err)
	}
	return res, nil
}

// Check evaluates a boolean expression.
func Check(input string, env Env, opts *EvalOptions) (bool, error) {
	x, err := run(input, env, opts, expr.AsBool())
	if err != nil {
		return false, err
	}
	b, ok := x.(bool)
	if !ok {
		return false, fmt.Errorf("%q gave %T, not a boolean", input, x)
	}
	return b, nil
}
