package main

import (
	"context"
	"strings"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	return formatEdits(doc)
}

// formatEdits rewrites the document the way cnt fmt would; editor
// options such as tab size do not apply.
func formatEdits(doc *document) ([]protocol.TextEdit, error) {
	var sb strings.Builder
	if err := encode.EncodeDocument(doc.node, &sb); err != nil {
		return nil, err
	}
	if sb.String() == doc.content {
		return []protocol.TextEdit{}, nil
	}
	line, col := token.NewPosDoc([]byte(doc.content)).LineCol(len(doc.content))
	whole := protocol.Range{
		End: protocol.Position{Line: uint32(line), Character: uint32(col)},
	}
	return []protocol.TextEdit{{Range: whole, NewText: sb.String()}}, nil
}
