// Package lsp implements a Language Server Protocol server over stdio for
// the minij parser, publishing one diagnostic per reported parse error.
// There is no completion, hover, or go-to-definition support: the parser
// does not resolve names, so there is nothing to offer beyond diagnostics.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/j2lang/minij/java/parser"
)

const lsName = "minijavac"

// Server is a glsp-backed language server. Its document map is guarded by a
// mutex because didOpen/didChange/didClose notifications are not guaranteed
// to be serialized by the transport; the parser itself is still only ever
// invoked on one document's bytes at a time, never shared across calls.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[string][]byte
}

// New constructs a Server. Call RunStdio to start serving.
func New(version string) *Server {
	ls := &Server{
		version: version,
		docs:    make(map[string][]byte),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves requests over stdin/stdout until the client disconnects.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	ls.update(ctx, uri, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.update(ctx, uri, []byte(whole.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	ls.mu.Lock()
	delete(ls.docs, uri)
	ls.mu.Unlock()
	ls.publish(ctx, uri, nil)
	return nil
}

// update stores the document's text, reparses it, and publishes the fresh
// set of diagnostics, replacing whatever the previous version published.
func (ls *Server) update(ctx *glsp.Context, uri string, content []byte) {
	ls.mu.Lock()
	ls.docs[uri] = content
	ls.mu.Unlock()

	sink := &parser.CollectingSink{}
	scanner := parser.NewScanner(uriToPath(uri), content)
	p := parser.NewParser(scanner, sink)
	p.Parse()

	ls.publish(ctx, uri, sink.Diagnostics)
}

func (ls *Server) publish(ctx *glsp.Context, uri string, diags []parser.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: toProtocolDiagnostics(diags),
	})
}

func toProtocolDiagnostics(diags []parser.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, len(diags))
	severity := protocol.DiagnosticSeverityError
	source := lsName
	for i, d := range diags {
		line := protocol.UInteger(0)
		if d.Line > 0 {
			line = protocol.UInteger(d.Line - 1)
		}
		out[i] = protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line, Character: 1 << 16},
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		}
	}
	return out
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
