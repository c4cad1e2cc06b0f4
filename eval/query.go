package eval

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/ir"

	"github.com/itchyny/gojq"
)

// Query runs the jq filter q against doc and returns every value it
// produces.
func Query(ctx context.Context, q string, doc *ir.Node) ([]*ir.Node, error) {
	query, err := gojq.Parse(q)
	if err != nil {
		return nil, fmt.Errorf("error parsing query %q: %w", q, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("error compiling query %q: %w", q, err)
	}
	var res []*ir.Node
	iter := code.RunWithContext(ctx, jqValue(ir.ToAny(doc)))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			if hErr, ok := err.(*gojq.HaltError); ok && hErr.Value() == nil {
				break
			}
			return nil, fmt.Errorf("error running query %q: %w", q, err)
		}
		if b, ok := v.(*big.Int); ok {
			if b.IsInt64() {
				v = b.Int64()
			} else {
				f, _ := new(big.Float).SetInt(b).Float64()
				v = f
			}
		}
		n, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("could not translate result of %q: %w", q, err)
		}
		res = append(res, n)
	}
	if debug.Eval() {
		debug.Logf("query %q gave %d results\n", q, len(res))
	}
	return res, nil
}

// jqValue converts the int64 values produced by ir.ToAny to int, the
// integer type gojq operates on.
func jqValue(v any) any {
	switch x := v.(type) {
	case int64:
		return int(x)
	case []any:
		for i := range x {
			x[i] = jqValue(x[i])
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = jqValue(e)
		}
		return x
	}
	return v
}
