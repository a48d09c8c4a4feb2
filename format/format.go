// Package format renders a parsed compilation unit back out, either as
// Java-like source text or as JSON, the way the original codebase's
// format.Encoder pair did for its classfile model -- generalized here to
// work over a *parser.CompilationUnit instead.
package format

import (
	"encoding"

	"github.com/j2lang/minij/java/parser"
)

// Encoder renders a *parser.CompilationUnit to some external form.
type Encoder interface {
	encoding.TextMarshaler
	Encode(cu *parser.CompilationUnit) error
}
