package parser

import (
	"fmt"
	"io"
)

// DiagnosticSink receives one line of diagnostic text per reported error,
// already formatted as "<file>:<line>: <message>". Factoring this out as an
// interface (rather than hard-wiring os.Stderr, as the original jminusminus
// Parser does) lets the CLI and the LSP server each redirect diagnostics
// without the parser package knowing about files, terminals, or JSON-RPC.
type DiagnosticSink interface {
	Report(file string, line int, message string)
}

// WriterSink writes diagnostics in the exact wire format spec.md §6
// requires: "<file>:<line>: <message>\n".
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Report(file string, line int, message string) {
	fmt.Fprintf(s.W, "%s:%d: %s\n", file, line, message)
}

// DiscardSink swallows every diagnostic; useful for tests that only care
// about errorHasOccurred()/the resulting tree shape.
type DiscardSink struct{}

func (DiscardSink) Report(file string, line int, message string) {}

// CollectingSink records every diagnostic it receives, in report order,
// without writing anywhere. The LSP server uses this to turn parser
// diagnostics into textDocument/publishDiagnostics entries.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

// Diagnostic is one reported error, decoupled from the wire format so
// callers (e.g. the LSP server) can render it however their protocol wants.
type Diagnostic struct {
	File    string
	Line    int
	Message string
}

func (s *CollectingSink) Report(file string, line int, message string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{File: file, Line: line, Message: message})
}
