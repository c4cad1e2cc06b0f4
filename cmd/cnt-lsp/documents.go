package main

import (
	"context"
	"errors"
	"sync"

	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"
	"github.com/cntlib/cnt/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document and the result of parsing it. When
// the strict parse fails, node holds the permissive parse so hover and
// completion keep working and err holds the strict failure.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{uri: uri, content: content, version: version}
	d := []byte(content)
	doc.positions = map[*ir.Node]*token.Pos{}
	node, err := parse.Parse(d, parse.ParseStrict(true), parse.ParsePositions(doc.positions))
	if err == nil {
		doc.node = node
		return doc
	}
	doc.err = err
	doc.positions = map[*ir.Node]*token.Pos{}
	node, err = parse.Parse(d, parse.ParsePositions(doc.positions))
	if err == nil {
		doc.node = node
	}
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	diag := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "cnt",
	}
	var pErr *parse.Error
	if errors.As(doc.err, &pErr) && pErr.Pos != nil {
		line, col := uint32(pErr.Line()), uint32(pErr.Col())
		end := col + 1
		if n := len(pErr.Literal); n > 0 {
			end = col + uint32(n)
		}
		diag.Range = protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: end},
		}
	}
	return append(res, diag)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	s.notifyDiagnostics(ctx, doc.uri, diagnostics(doc))
}

func (s *Server) notifyDiagnostics(ctx context.Context, uri string, diags []protocol.Diagnostic) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diags,
	})
	if err != nil {
		theLog.Warn("publishing diagnostics", "uri", uri, "error", err)
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	s.notifyDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// applyChange applies one content change. A change with an empty range
// and no range length replaces the whole text.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) && change.RangeLength == 0 {
		return change.Text
	}
	pd := token.NewPosDoc([]byte(content))
	start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
	end := pd.Offset(int(r.End.Line), int(r.End.Character))
	if end < start {
		start, end = end, start
	}
	return content[:start] + change.Text + content[end:]
}
