package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
)

// parseForeign reads JSON (with comments) or YAML into a node.
func parseForeign(d []byte, f format.Format) (*ir.Node, error) {
	var v any
	switch f {
	case format.JSONFormat:
		// comments and trailing commas are accepted
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(d)))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
			return nil, &Error{Msg: "json: " + err.Error()}
		}
	case format.YAMLFormat:
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, &Error{Msg: "yaml: " + err.Error()}
		}
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, &Error{Msg: err.Error()}
	}
	return res, nil
}
