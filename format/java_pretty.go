package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/j2lang/minij/java/parser"
)

// JavaEncoder renders a compilation unit as Java-like source text. It does
// not try to reproduce the original formatting byte-for-byte (no comments,
// no original whitespace survive a parse); it produces a canonical
// re-rendering of the tree's structure instead.
type JavaEncoder struct {
	w  io.Writer
	cu *parser.CompilationUnit
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(cu *parser.CompilationUnit) error {
	e.cu = cu
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	printCompilationUnit(&sb, e.cu)
	return []byte(sb.String()), nil
}

// PrettyPrint renders cu directly to a string, for callers that don't need
// an io.Writer (e.g. the round-trip property test).
func PrettyPrint(cu *parser.CompilationUnit) string {
	var sb strings.Builder
	printCompilationUnit(&sb, cu)
	return sb.String()
}

// PrettyPrintJava parses source and renders it back out as canonical Java
// text. If parsing reported any diagnostics, the rendering still reflects
// whatever structurally valid tree recovery produced, and err describes the
// diagnostics joined by "; " -- callers that only want well-formed input
// reformatted should check err before trusting the output.
func PrettyPrintJava(source []byte) ([]byte, error) {
	sink := &parser.CollectingSink{}
	scanner := parser.NewScanner("<stdin>", source)
	p := parser.NewParser(scanner, sink)
	cu := p.Parse()
	out := []byte(PrettyPrint(cu))
	if len(sink.Diagnostics) == 0 {
		return out, nil
	}
	msgs := make([]string, len(sink.Diagnostics))
	for i, d := range sink.Diagnostics {
		msgs[i] = fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
	}
	return out, fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("    ", depth))
}

func printCompilationUnit(sb *strings.Builder, cu *parser.CompilationUnit) {
	if cu.Package != nil {
		fmt.Fprintf(sb, "package %s;\n\n", cu.Package.Name)
	}
	for _, imp := range cu.Imports {
		fmt.Fprintf(sb, "import %s;\n", imp.Name)
	}
	if len(cu.Imports) > 0 {
		sb.WriteString("\n")
	}
	for i, decl := range cu.Decls {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch d := decl.(type) {
		case *parser.ClassDecl:
			printClass(sb, 0, d)
		}
	}
}

func printModifiers(mods []parser.Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, " ") + " "
}

func printClass(sb *strings.Builder, depth int, c *parser.ClassDecl) {
	indent(sb, depth)
	fmt.Fprintf(sb, "%sclass %s", printModifiers(c.Mods), c.Name)
	if named, ok := c.Super.(parser.NamedType); !ok || named.Name != parser.Object.Name {
		fmt.Fprintf(sb, " extends %s", c.Super.String())
	}
	sb.WriteString(" {\n")
	for _, m := range c.Members {
		printMember(sb, depth+1, m)
	}
	indent(sb, depth)
	sb.WriteString("}\n")
}

func printMember(sb *strings.Builder, depth int, m parser.Member) {
	switch d := m.(type) {
	case *parser.FieldDecl:
		indent(sb, depth)
		fmt.Fprintf(sb, "%s%s;\n", printModifiers(d.Mods), printDeclarators(d.Decls))
	case *parser.ConstructorDecl:
		indent(sb, depth)
		fmt.Fprintf(sb, "%s%s%s ", printModifiers(d.Mods), d.Name, printFormalParameters(d.Params))
		printBlock(sb, depth, d.Body)
	case *parser.MethodDecl:
		indent(sb, depth)
		fmt.Fprintf(sb, "%s%s %s%s", printModifiers(d.Mods), d.ReturnType.String(), d.Name, printFormalParameters(d.Params))
		if d.Body == nil {
			sb.WriteString(";\n")
			return
		}
		sb.WriteString(" ")
		printBlock(sb, depth, d.Body)
	}
}

func printFormalParameters(params []*parser.FormalParameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %s", p.Type.String(), p.Name)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printDeclarators(decls []*parser.VariableDeclarator) string {
	if len(decls) == 0 {
		return ""
	}
	typ := decls[0].Type.String()
	parts := make([]string, len(decls))
	for i, d := range decls {
		if d.Initializer == nil {
			parts[i] = d.Name
		} else {
			parts[i] = fmt.Sprintf("%s = %s", d.Name, printExpr(d.Initializer))
		}
	}
	return fmt.Sprintf("%s %s", typ, strings.Join(parts, ", "))
}

func printBlock(sb *strings.Builder, depth int, b *parser.Block) {
	sb.WriteString("{\n")
	for _, s := range b.Stmts {
		printStmt(sb, depth+1, s)
	}
	indent(sb, depth)
	sb.WriteString("}\n")
}

func printStmt(sb *strings.Builder, depth int, s parser.Stmt) {
	switch st := s.(type) {
	case *parser.Block:
		indent(sb, depth)
		printBlock(sb, depth, st)
	case *parser.If:
		indent(sb, depth)
		fmt.Fprintf(sb, "if (%s) ", printExpr(st.Test))
		printInlineOrBlock(sb, depth, st.Then)
		if st.Else != nil {
			indent(sb, depth)
			sb.WriteString("else ")
			printInlineOrBlock(sb, depth, st.Else)
		}
	case *parser.While:
		indent(sb, depth)
		fmt.Fprintf(sb, "while (%s) ", printExpr(st.Test))
		printInlineOrBlock(sb, depth, st.Body)
	case *parser.Return:
		indent(sb, depth)
		if st.Expr == nil {
			sb.WriteString("return;\n")
		} else {
			fmt.Fprintf(sb, "return %s;\n", printExpr(st.Expr))
		}
	case *parser.Empty:
		indent(sb, depth)
		sb.WriteString(";\n")
	case *parser.StatementExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "%s;\n", printExpr(st.Expr))
	case *parser.VariableDeclaration:
		indent(sb, depth)
		fmt.Fprintf(sb, "%s;\n", printDeclarators(st.Decls))
	}
}

// printInlineOrBlock prints a dangling if/while/else body: a Block prints
// in place at the current depth, anything else gets its own line one level
// deeper, the way a single unbraced statement reads in the original source.
func printInlineOrBlock(sb *strings.Builder, depth int, s parser.Stmt) {
	if b, ok := s.(*parser.Block); ok {
		printBlock(sb, depth, b)
		return
	}
	sb.WriteString("\n")
	printStmt(sb, depth+1, s)
}

func printExpr(e parser.Expr) string {
	switch x := e.(type) {
	case *parser.LiteralInt:
		return x.Value
	case *parser.LiteralChar:
		return x.Value
	case *parser.LiteralString:
		return x.Value
	case *parser.LiteralTrue:
		return "true"
	case *parser.LiteralFalse:
		return "false"
	case *parser.LiteralNull:
		return "null"
	case *parser.Variable:
		return x.Name
	case *parser.FieldSelection:
		return fmt.Sprintf("%s.%s", selectionPrefix(x.Target, x.Ambiguous), x.Name)
	case *parser.ArrayExpression:
		return fmt.Sprintf("%s[%s]", printExpr(x.Target), printExpr(x.Index))
	case *parser.MessageExpression:
		prefix := selectionPrefix(x.Target, x.Ambiguous)
		if prefix == "" {
			return fmt.Sprintf("%s(%s)", x.Name, printArgs(x.Args))
		}
		return fmt.Sprintf("%s.%s(%s)", prefix, x.Name, printArgs(x.Args))
	case *parser.This:
		return "this"
	case *parser.Super:
		return "super"
	case *parser.ThisConstruction:
		return fmt.Sprintf("this(%s)", printArgs(x.Args))
	case *parser.SuperConstruction:
		return fmt.Sprintf("super(%s)", printArgs(x.Args))
	case *parser.NewOp:
		return fmt.Sprintf("new %s(%s)", x.Type.String(), printArgs(x.Args))
	case *parser.NewArrayOp:
		return printNewArray(x)
	case *parser.ArrayInitializer:
		parts := make([]string, len(x.Elems))
		for i, el := range x.Elems {
			if el == nil {
				parts[i] = ""
			} else {
				parts[i] = printExpr(el)
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *parser.WildExpression:
		return "<error>"
	case *parser.PreIncrementOp:
		return "++" + printExpr(x.Operand)
	case *parser.PostDecrementOp:
		return printExpr(x.Operand) + "--"
	case *parser.Negate:
		return "-" + printExpr(x.Operand)
	case *parser.UnaryPlus:
		return "+" + printExpr(x.Operand)
	case *parser.LogicalNot:
		return "!" + printExpr(x.Operand)
	case *parser.PlusOp:
		return binExpr(x.Left, "+", x.Right)
	case *parser.SubtractOp:
		return binExpr(x.Left, "-", x.Right)
	case *parser.MultiplyOp:
		return binExpr(x.Left, "*", x.Right)
	case *parser.DivideOp:
		return binExpr(x.Left, "/", x.Right)
	case *parser.ModuloOp:
		return binExpr(x.Left, "%", x.Right)
	case *parser.GreaterThanOp:
		return binExpr(x.Left, ">", x.Right)
	case *parser.LessEqualOp:
		return binExpr(x.Left, "<=", x.Right)
	case *parser.LogicalAndOp:
		return binExpr(x.Left, "&&", x.Right)
	case *parser.EqualOp:
		return binExpr(x.Left, "==", x.Right)
	case *parser.AssignOp:
		return binExpr(x.Left, "=", x.Right)
	case *parser.PlusAssignOp:
		return binExpr(x.Left, "+=", x.Right)
	case *parser.InstanceOfOp:
		return fmt.Sprintf("(%s instanceof %s)", printExpr(x.Left), x.Type.String())
	case *parser.CastOp:
		return fmt.Sprintf("(%s) %s", x.Type.String(), printExpr(x.Expr))
	default:
		return "<unknown>"
	}
}

func binExpr(left parser.Expr, op string, right parser.Expr) string {
	return fmt.Sprintf("(%s %s %s)", printExpr(left), op, printExpr(right))
}

func selectionPrefix(target parser.Expr, ambiguous *parser.AmbiguousName) string {
	if target != nil {
		return printExpr(target)
	}
	if ambiguous != nil {
		return ambiguous.Name
	}
	return ""
}

func printArgs(args []parser.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printExpr(a)
	}
	return strings.Join(parts, ", ")
}

// printNewArray reconstructs "new Base[dim1][dim2]...[]" from Type (a fully
// array-wrapped type) and Dims (the expressions for its sized dimensions,
// innermost-to-outermost in Type but outermost-first in Dims).
func printNewArray(x *parser.NewArrayOp) string {
	base := x.Type
	depth := 0
	for arr, ok := base.(parser.ArrayType); ok; arr, ok = base.(parser.ArrayType) {
		base = arr.Component
		depth++
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "new %s", base.String())
	for i := 0; i < depth; i++ {
		if i < len(x.Dims) {
			fmt.Fprintf(&sb, "[%s]", printExpr(x.Dims[i]))
		} else {
			sb.WriteString("[]")
		}
	}
	return sb.String()
}
