package main

import (
	"context"
	"slices"
	"strings"

	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		Items: completions(doc, int(params.Position.Line), int(params.Position.Character)),
	}, nil
}

// linePrefix is the text of line up to col.
func linePrefix(content string, line, col int) string {
	pd := token.NewPosDoc([]byte(content))
	start := pd.Offset(line, 0)
	end := pd.Offset(line, col)
	prefix := content[start:end]
	if i := strings.IndexByte(prefix, '\n'); i != -1 {
		prefix = prefix[:i]
	}
	return prefix
}

// partialWord strips the bare word being typed from the end of s.
func partialWord(s string) string {
	i := len(s)
	for i > 0 && token.IsBareByte(s[i-1]) {
		i--
	}
	return s[:i]
}

func completions(doc *document, line, col int) []protocol.CompletionItem {
	before := strings.TrimRight(partialWord(linePrefix(doc.content, line, col)), " \t")
	items := []protocol.CompletionItem{}
	switch {
	case strings.HasSuffix(before, ":") || strings.HasSuffix(before, "["):
		for _, kw := range token.Keywords() {
			items = append(items, protocol.CompletionItem{
				Label:      kw,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: kw,
			})
		}
		items = append(items,
			protocol.CompletionItem{
				Label:      "empty object",
				Kind:       protocol.CompletionItemKindSnippet,
				InsertText: "{}",
			},
			protocol.CompletionItem{
				Label:      "empty array",
				Kind:       protocol.CompletionItemKindSnippet,
				InsertText: "[]",
			})
	case before == "" || strings.HasSuffix(before, "{") || strings.HasSuffix(before, ","):
		for _, k := range allKeys(doc.node) {
			items = append(items, protocol.CompletionItem{
				Label:      k,
				Kind:       protocol.CompletionItemKindProperty,
				InsertText: k + ": ",
			})
		}
	}
	return items
}

// allKeys lists the keys used anywhere in node, quoted where needed.
func allKeys(node *ir.Node) []string {
	if node == nil {
		return nil
	}
	seen := map[string]bool{}
	var visit func(*ir.Node)
	visit = func(n *ir.Node) {
		for i, f := range n.Fields {
			if !token.IsBare(f) {
				f = token.Quote(f)
			}
			seen[f] = true
			visit(n.Values[i])
		}
		if n.Type == ir.ArrayType {
			for _, v := range n.Values {
				visit(v)
			}
		}
	}
	visit(node)
	res := make([]string, 0, len(seen))
	for k := range seen {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
