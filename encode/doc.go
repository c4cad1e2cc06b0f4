// Package encode writes IR nodes as cnt text, or as JSON or YAML.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name":    ir.FromString("alice"),
//	    "memory":  ir.FromInt(4096),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// write a whole document as key: value lines
//	err = encode.EncodeDocument(doc, w)
//
//	// JSON
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
// # Layout
//
// Scalars are written inline. Arrays of at most three elements are written
// on one line, as are all their descendants; longer arrays and all non-empty
// objects place one element per line, indented four spaces deeper than the
// enclosing container. Object keys are always quoted inside containers and
// appear in sorted order. EncodeInline forces the single line form
// throughout.
package encode
