package main

import (
	"context"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const lsName = "cnt-lsp"

var version = "0.1.0"

// Server implements protocol.Server for cnt documents. Methods it
// does not handle live in unsupported.go.
type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

func NewServer() *Server {
	return &Server{docs: &documentStore{docs: map[string]*document{}}}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	res := &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{Name: lsName, Version: version},
	}
	res.Capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: true,
		Change:    protocol.TextDocumentSyncKindIncremental,
	}
	res.Capabilities.HoverProvider = true
	res.Capabilities.DocumentFormattingProvider = true
	res.Capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{":", "[", "{", ","},
	}
	return res, nil
}

func (s *Server) Initialized(context.Context, *protocol.InitializedParams) error { return nil }

func (s *Server) Shutdown(context.Context) error { return nil }

func (s *Server) Exit(context.Context) error { return nil }

func (s *Server) SetTrace(context.Context, *protocol.SetTraceParams) error { return nil }
