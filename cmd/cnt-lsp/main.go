// Command cnt-lsp is a language server for cnt files. It speaks
// JSON-RPC on stdin and stdout.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// stdout carries the protocol.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if os.Getenv("CNT_LSP_GOPS") != "" {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := serve(ctx, stdio{os.Stdin, os.Stdout}); err != nil {
		theLog.Error("connection closed", "error", err)
		os.Exit(1)
	}
}

// serve runs a Server over rwc until the client hangs up or ctx is done.
func serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	srv := NewServer()
	srv.conn = jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	srv.conn.Go(ctx, protocol.ServerHandler(srv, nil))
	select {
	case <-srv.conn.Done():
		return srv.conn.Err()
	case <-ctx.Done():
		return srv.conn.Close()
	}
}

// stdio joins stdin and stdout; closing it leaves both open.
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error { return nil }
