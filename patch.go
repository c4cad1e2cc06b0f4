package cnt

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"
)

// Patch applies the RFC 6902 JSON Patch in patchJSON to doc and returns
// the result. The document travels as JSON, so characters come back as
// strings and integral floats as integers.
func Patch(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := json.Marshal(ir.ToAny(doc))
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d patch operations to %s\n", len(ops), doc)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return parse.ParseValue(out, parse.ParseFormat(format.JSONFormat))
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := json.Marshal(ir.ToAny(doc))
	if err != nil {
		return nil, err
	}
	p, err := json.Marshal(ir.ToAny(patch))
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return parse.ParseValue(out, parse.ParseFormat(format.JSONFormat))
}

// Patch applies patchJSON to the document in place.
func (c *Config) Patch(patchJSON []byte) error {
	res, err := Patch(c.data, patchJSON)
	if err != nil {
		return err
	}
	return c.Replace(res)
}
