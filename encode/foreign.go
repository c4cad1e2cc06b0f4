package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/cntlib/cnt/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	indent := ""
	if !es.inline {
		indent = "  "
	}
	var (
		d   []byte
		err error
	)
	if indent == "" {
		d, err = json.Marshal(ir.ToAny(node))
	} else {
		d, err = json.MarshalIndent(ir.ToAny(node), "", indent)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// toYAML is ToAny with objects as ordered yaml.MapSlice.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f, Value: toYAML(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	default:
		return ir.ToAny(node)
	}
}
