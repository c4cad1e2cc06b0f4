package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cntlib/cnt/ir"
)

// Out receives debug output.
var Out io.Writer = os.Stderr

// Logf writes a formatted message to Out. Node arguments print as
// inline cnt, plain maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	shown := make([]any, len(args))
	for i, a := range args {
		shown[i] = show(a)
	}
	fmt.Fprintf(Out, msg, shown...)
}

func show(a any) any {
	switch x := a.(type) {
	case *ir.Node:
		if x == nil {
			return "<nil node>"
		}
		return x.Text()
	case map[string]any, []any:
		d, err := json.MarshalIndent(x, "   |", "  ")
		if err != nil {
			return a
		}
		return string(d)
	}
	return a
}
