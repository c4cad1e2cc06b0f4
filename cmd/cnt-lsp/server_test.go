package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const testURI = "file:///launcher.cnt"

func openDoc(t *testing.T, content string) *Server {
	t.Helper()
	s := NewServer()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     testURI,
			Text:    content,
			Version: 1,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDiagnostics(t *testing.T) {
	s := openDoc(t, "name: \"demo\"\nversion: yes\n")
	doc := s.docs.get(testURI)
	diags := diagnostics(doc)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	start := diags[0].Range.Start
	if start.Line != 1 || start.Character != 9 {
		t.Errorf("diagnostic at %d:%d, want 1:9", start.Line, start.Character)
	}
	if doc.node == nil || !doc.node.HasKey("name") {
		t.Errorf("expected the permissive parse to be kept")
	}

	s = openDoc(t, "name: \"demo\"\n")
	if diags := diagnostics(s.docs.get(testURI)); len(diags) != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
}

func TestApplyChange(t *testing.T) {
	content := "name: \"demo\"\nversion: '1'\n"
	tests := []struct {
		name   string
		change protocol.TextDocumentContentChangeEvent
		want   string
	}{
		{
			name:   "full",
			change: protocol.TextDocumentContentChangeEvent{Text: "a: 1\n"},
			want:   "a: 1\n",
		},
		{
			name: "replace",
			change: protocol.TextDocumentContentChangeEvent{
				Range: protocol.Range{
					Start: protocol.Position{Line: 0, Character: 7},
					End:   protocol.Position{Line: 0, Character: 11},
				},
				Text: "game",
			},
			want: "name: \"game\"\nversion: '1'\n",
		},
		{
			name: "insert line",
			change: protocol.TextDocumentContentChangeEvent{
				Range: protocol.Range{
					Start: protocol.Position{Line: 2, Character: 0},
					End:   protocol.Position{Line: 2, Character: 0},
				},
				RangeLength: 0,
				Text:        "flags: []\n",
			},
			want: content + "flags: []\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, applyChange(content, tc.change)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestHover(t *testing.T) {
	s := openDoc(t, "name: \"demo\"\nmeta: {author: \"someone\", build: 42}\n")
	doc := s.docs.get(testURI)
	path, node := nodeAt(doc, 1, 33)
	if path != "$.meta.build" {
		t.Fatalf("got path %q", path)
	}
	text := hoverText(path, node)
	for _, want := range []string{"`$.meta.build`", "Integer", "`42`"} {
		if !strings.Contains(text, want) {
			t.Errorf("hover %q does not contain %q", text, want)
		}
	}
	path, _ = nodeAt(doc, 1, 6)
	if path != "$.meta" {
		t.Errorf("got path %q at the object", path)
	}
	if path, _ := nodeAt(doc, 0, 1); path != "" {
		t.Errorf("got path %q before any value", path)
	}
}

func TestFormatting(t *testing.T) {
	s := openDoc(t, "version:'1',name:\"demo\"")
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if want := "name: \"demo\"\nversion: '1'\n"; edits[0].NewText != want {
		t.Errorf("got %q want %q", edits[0].NewText, want)
	}
	if end := edits[0].Range.End; end.Line != 0 || end.Character != 23 {
		t.Errorf("edit ends at %d:%d", end.Line, end.Character)
	}

	s = openDoc(t, "name: \"demo\"\n")
	edits, err = s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits for a formatted document, got %v", edits)
	}
}

func labels(items []protocol.CompletionItem) []string {
	res := []string{}
	for _, it := range items {
		res = append(res, it.Label)
	}
	return res
}

func TestCompletion(t *testing.T) {
	s := openDoc(t, "name: \"demo\"\nmeta: {author: \"x\"}\nflags: tr\n")
	doc := s.docs.get(testURI)
	got := labels(completions(doc, 2, 9))
	want := []string{"None", "true", "false", "empty object", "empty array"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("value completions (-want +got):\n%s", diff)
	}
	got = labels(completions(doc, 3, 0))
	want = []string{"author", "flags", "meta", "name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("key completions (-want +got):\n%s", diff)
	}
	if got := completions(doc, 0, 7); len(got) != 0 {
		t.Errorf("expected no completions inside a string, got %v", labels(got))
	}
}
