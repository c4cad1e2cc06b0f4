package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	path, node := nodeAt(doc, int(params.Position.Line), int(params.Position.Character))
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(path, node),
		},
	}, nil
}

// nodeAt finds the innermost value starting at or before the cursor on
// the cursor's line.
func nodeAt(doc *document, line, col int) (string, *ir.Node) {
	off := token.NewPosDoc([]byte(doc.content)).Offset(line, col)
	var (
		bestPath string
		best     *ir.Node
		bestOff  = -1
	)
	var visit func(path string, node *ir.Node)
	visit = func(path string, node *ir.Node) {
		if pos := doc.positions[node]; pos != nil && path != "$" {
			if pos.Line() == line && pos.I <= off && pos.I >= bestOff {
				best, bestPath, bestOff = node, path, pos.I
			}
		}
		switch node.Type {
		case ir.ObjectType:
			for i, f := range node.Fields {
				visit(ir.FieldPath(path, f), node.Values[i])
			}
		case ir.ArrayType:
			for i, v := range node.Values {
				visit(ir.IndexPath(path, i), v)
			}
		}
	}
	visit("$", doc.node)
	return bestPath, best
}

func hoverText(path string, node *ir.Node) string {
	parts := []string{
		fmt.Sprintf("**Path:** `%s`", path),
		fmt.Sprintf("**Type:** %s", node.Type),
	}
	switch node.Type {
	case ir.ArrayType:
		parts = append(parts, fmt.Sprintf("array with %d elements", node.Size()))
	case ir.ObjectType:
		parts = append(parts, fmt.Sprintf("object with %d keys", node.Size()))
	default:
		val := encode.MustString(node)
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	}
	return strings.Join(parts, "\n\n")
}
