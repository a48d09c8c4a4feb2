package format

import (
	"strings"
	"testing"

	"github.com/j2lang/minij/java/parser"
)

func mustParse(t *testing.T, src string) *parser.CompilationUnit {
	t.Helper()
	sink := &parser.CollectingSink{}
	p := parser.NewParser(parser.NewScanner("t.java", []byte(src)), sink)
	cu := p.Parse()
	if len(sink.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics parsing %q: %v", src, sink.Diagnostics)
	}
	return cu
}

// PrettyPrint followed by re-parsing should reach a fixed point: formatting
// an already-canonical rendering twice produces the same text.
func TestPrettyPrintIsIdempotent(t *testing.T) {
	sources := []string{
		`class C { int f(int x) { return x + 1; } }`,
		`class C extends D { C() { super(); } int x, y = 2; void m() { if (x > y) x = 1; else x = 2; } }`,
		`class C { void m() { int[] a; a = new int[3]; while (x) x--; } }`,
	}
	for _, src := range sources {
		cu1 := mustParse(t, src)
		once := PrettyPrint(cu1)
		cu2 := mustParse(t, once)
		twice := PrettyPrint(cu2)
		if once != twice {
			t.Errorf("PrettyPrint is not idempotent for %q:\n--- once ---\n%s\n--- twice ---\n%s", src, once, twice)
		}
	}
}

func TestPrettyPrintPreservesShape(t *testing.T) {
	cu := mustParse(t, `class C { int f() { return (int) -3; } }`)
	out := PrettyPrint(cu)
	if !strings.Contains(out, "(int) -3") {
		t.Errorf("pretty-printed output missing cast, got:\n%s", out)
	}
	reparsed := mustParse(t, out)
	class := reparsed.Decls[0].(*parser.ClassDecl)
	method := class.Members[0].(*parser.MethodDecl)
	ret := method.Body.Stmts[0].(*parser.Return)
	if _, ok := ret.Expr.(*parser.CastOp); !ok {
		t.Errorf("re-parsed output lost its cast: %+v", ret.Expr)
	}
}

func TestASTJSONEncoderProducesValidShape(t *testing.T) {
	cu := mustParse(t, `class C { int f(int x) { return x + 1; } }`)
	enc := NewASTJSONEncoder(nil)
	enc.cu = cu
	text, err := enc.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	out := string(text)
	for _, want := range []string{`"kind": "CompilationUnit"`, `"kind": "ClassDecl"`, `"kind": "MethodDecl"`, `"kind": "PlusOp"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q, got:\n%s", want, out)
		}
	}
}
