package format

import (
	"encoding/json"
	"io"

	"github.com/j2lang/minij/java/parser"
)

// ASTJSONEncoder renders a compilation unit as a JSON tree, tagging every
// node with its Go type name under "kind" the way the original codebase's
// ASTJSONEncoder tagged its generic Node.Kind.
type ASTJSONEncoder struct {
	w  io.Writer
	cu *parser.CompilationUnit
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(cu *parser.CompilationUnit) error {
	e.cu = cu
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(compilationUnitJSON(e.cu), "", "  ")
}

func compilationUnitJSON(cu *parser.CompilationUnit) map[string]any {
	m := map[string]any{
		"kind": "CompilationUnit",
		"line": cu.LineNo,
		"file": cu.File,
	}
	if cu.Package != nil {
		m["package"] = cu.Package.Name
	}
	if len(cu.Imports) > 0 {
		imports := make([]string, len(cu.Imports))
		for i, imp := range cu.Imports {
			imports[i] = imp.Name
		}
		m["imports"] = imports
	}
	decls := make([]any, len(cu.Decls))
	for i, d := range cu.Decls {
		decls[i] = typeDeclJSON(d)
	}
	m["decls"] = decls
	return m
}

func typeDeclJSON(d parser.TypeDecl) map[string]any {
	switch t := d.(type) {
	case *parser.ClassDecl:
		members := make([]any, len(t.Members))
		for i, mem := range t.Members {
			members[i] = memberJSON(mem)
		}
		return map[string]any{
			"kind":    "ClassDecl",
			"line":    t.Line(),
			"mods":    modifiersJSON(t.Mods),
			"name":    t.Name,
			"super":   t.Super.String(),
			"members": members,
		}
	default:
		return map[string]any{"kind": "UnknownTypeDecl", "line": d.Line()}
	}
}

func modifiersJSON(mods []parser.Modifier) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = string(m)
	}
	return out
}

func memberJSON(m parser.Member) map[string]any {
	switch d := m.(type) {
	case *parser.FieldDecl:
		return map[string]any{
			"kind":  "FieldDecl",
			"line":  d.Line(),
			"mods":  modifiersJSON(d.Mods),
			"decls": declaratorsJSON(d.Decls),
		}
	case *parser.MethodDecl:
		params := make([]any, len(d.Params))
		for i, p := range d.Params {
			params[i] = map[string]any{"name": p.Name, "type": p.Type.String(), "line": p.Line()}
		}
		out := map[string]any{
			"kind":       "MethodDecl",
			"line":       d.Line(),
			"mods":       modifiersJSON(d.Mods),
			"name":       d.Name,
			"returnType": d.ReturnType.String(),
			"params":     params,
		}
		if d.Body != nil {
			out["body"] = stmtJSON(d.Body)
		}
		return out
	case *parser.ConstructorDecl:
		params := make([]any, len(d.Params))
		for i, p := range d.Params {
			params[i] = map[string]any{"name": p.Name, "type": p.Type.String(), "line": p.Line()}
		}
		return map[string]any{
			"kind":   "ConstructorDecl",
			"line":   d.Line(),
			"mods":   modifiersJSON(d.Mods),
			"name":   d.Name,
			"params": params,
			"body":   stmtJSON(d.Body),
		}
	default:
		return map[string]any{"kind": "UnknownMember", "line": m.Line()}
	}
}

func declaratorsJSON(decls []*parser.VariableDeclarator) []any {
	out := make([]any, len(decls))
	for i, d := range decls {
		entry := map[string]any{"name": d.Name, "type": d.Type.String(), "line": d.Line()}
		if d.Initializer != nil {
			entry["initializer"] = exprJSON(d.Initializer)
		}
		out[i] = entry
	}
	return out
}

func stmtJSON(s parser.Stmt) map[string]any {
	switch st := s.(type) {
	case *parser.Block:
		stmts := make([]any, len(st.Stmts))
		for i, inner := range st.Stmts {
			stmts[i] = stmtJSON(inner)
		}
		return map[string]any{"kind": "Block", "line": st.Line(), "stmts": stmts}
	case *parser.If:
		out := map[string]any{
			"kind": "If",
			"line": st.Line(),
			"test": exprJSON(st.Test),
			"then": stmtJSON(st.Then),
		}
		if st.Else != nil {
			out["else"] = stmtJSON(st.Else)
		}
		return out
	case *parser.While:
		return map[string]any{"kind": "While", "line": st.Line(), "test": exprJSON(st.Test), "body": stmtJSON(st.Body)}
	case *parser.Return:
		out := map[string]any{"kind": "Return", "line": st.Line()}
		if st.Expr != nil {
			out["expr"] = exprJSON(st.Expr)
		}
		return out
	case *parser.Empty:
		return map[string]any{"kind": "Empty", "line": st.Line()}
	case *parser.StatementExpression:
		return map[string]any{"kind": "StatementExpression", "line": st.Line(), "expr": exprJSON(st.Expr)}
	case *parser.VariableDeclaration:
		return map[string]any{"kind": "VariableDeclaration", "line": st.Line(), "decls": declaratorsJSON(st.Decls)}
	default:
		return map[string]any{"kind": "UnknownStmt", "line": s.Line()}
	}
}

func exprJSON(e parser.Expr) map[string]any {
	base := func(kind string) map[string]any {
		return map[string]any{"kind": kind, "line": e.Line(), "isStatementExpression": isStatementExpression(e)}
	}
	switch x := e.(type) {
	case *parser.LiteralInt:
		m := base("LiteralInt")
		m["value"] = x.Value
		return m
	case *parser.LiteralChar:
		m := base("LiteralChar")
		m["value"] = x.Value
		return m
	case *parser.LiteralString:
		m := base("LiteralString")
		m["value"] = x.Value
		return m
	case *parser.LiteralTrue:
		return base("LiteralTrue")
	case *parser.LiteralFalse:
		return base("LiteralFalse")
	case *parser.LiteralNull:
		return base("LiteralNull")
	case *parser.Variable:
		m := base("Variable")
		m["name"] = x.Name
		return m
	case *parser.FieldSelection:
		m := base("FieldSelection")
		m["name"] = x.Name
		if x.Target != nil {
			m["target"] = exprJSON(x.Target)
		}
		if x.Ambiguous != nil {
			m["ambiguous"] = x.Ambiguous.Name
		}
		return m
	case *parser.ArrayExpression:
		m := base("ArrayExpression")
		m["target"] = exprJSON(x.Target)
		m["index"] = exprJSON(x.Index)
		return m
	case *parser.MessageExpression:
		m := base("MessageExpression")
		m["name"] = x.Name
		m["args"] = exprListJSON(x.Args)
		if x.Target != nil {
			m["target"] = exprJSON(x.Target)
		}
		if x.Ambiguous != nil {
			m["ambiguous"] = x.Ambiguous.Name
		}
		return m
	case *parser.This:
		return base("This")
	case *parser.Super:
		return base("Super")
	case *parser.ThisConstruction:
		m := base("ThisConstruction")
		m["args"] = exprListJSON(x.Args)
		return m
	case *parser.SuperConstruction:
		m := base("SuperConstruction")
		m["args"] = exprListJSON(x.Args)
		return m
	case *parser.NewOp:
		m := base("NewOp")
		m["type"] = x.Type.String()
		m["args"] = exprListJSON(x.Args)
		return m
	case *parser.NewArrayOp:
		m := base("NewArrayOp")
		m["type"] = x.Type.String()
		m["dims"] = exprListJSON(x.Dims)
		return m
	case *parser.ArrayInitializer:
		m := base("ArrayInitializer")
		m["type"] = x.Type.String()
		elems := make([]any, len(x.Elems))
		for i, el := range x.Elems {
			if el == nil {
				elems[i] = nil
			} else {
				elems[i] = exprJSON(el)
			}
		}
		m["elems"] = elems
		return m
	case *parser.WildExpression:
		return base("WildExpression")
	case *parser.PreIncrementOp:
		return unaryJSON("PreIncrementOp", x.Line(), x.Operand)
	case *parser.PostDecrementOp:
		return unaryJSON("PostDecrementOp", x.Line(), x.Operand)
	case *parser.Negate:
		return unaryJSON("Negate", x.Line(), x.Operand)
	case *parser.UnaryPlus:
		return unaryJSON("UnaryPlus", x.Line(), x.Operand)
	case *parser.LogicalNot:
		return unaryJSON("LogicalNot", x.Line(), x.Operand)
	case *parser.PlusOp:
		return binaryJSON("PlusOp", x.Line(), x.Left, x.Right)
	case *parser.SubtractOp:
		return binaryJSON("SubtractOp", x.Line(), x.Left, x.Right)
	case *parser.MultiplyOp:
		return binaryJSON("MultiplyOp", x.Line(), x.Left, x.Right)
	case *parser.DivideOp:
		return binaryJSON("DivideOp", x.Line(), x.Left, x.Right)
	case *parser.ModuloOp:
		return binaryJSON("ModuloOp", x.Line(), x.Left, x.Right)
	case *parser.GreaterThanOp:
		return binaryJSON("GreaterThanOp", x.Line(), x.Left, x.Right)
	case *parser.LessEqualOp:
		return binaryJSON("LessEqualOp", x.Line(), x.Left, x.Right)
	case *parser.LogicalAndOp:
		return binaryJSON("LogicalAndOp", x.Line(), x.Left, x.Right)
	case *parser.EqualOp:
		return binaryJSON("EqualOp", x.Line(), x.Left, x.Right)
	case *parser.AssignOp:
		return binaryJSON("AssignOp", x.Line(), x.Left, x.Right)
	case *parser.PlusAssignOp:
		return binaryJSON("PlusAssignOp", x.Line(), x.Left, x.Right)
	case *parser.InstanceOfOp:
		m := base("InstanceOfOp")
		m["left"] = exprJSON(x.Left)
		m["type"] = x.Type.String()
		return m
	case *parser.CastOp:
		m := base("CastOp")
		m["type"] = x.Type.String()
		m["expr"] = exprJSON(x.Expr)
		return m
	default:
		return map[string]any{"kind": "Unknown", "line": e.Line()}
	}
}

func unaryJSON(kind string, line int, operand parser.Expr) map[string]any {
	return map[string]any{"kind": kind, "line": line, "operand": exprJSON(operand)}
}

func binaryJSON(kind string, line int, left, right parser.Expr) map[string]any {
	return map[string]any{"kind": kind, "line": line, "left": exprJSON(left), "right": exprJSON(right)}
}

func exprListJSON(exprs []parser.Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = exprJSON(e)
	}
	return out
}

// isStatementExpression reports an expression's IsStatementExpression flag
// without exporting a type switch for every variant twice: every Expr's
// setStatementExpression lives on the embedded exprInfo, but the flag
// itself isn't part of the Expr interface, so JSON rendering asks through
// this tiny adapter instead of a second giant switch.
func isStatementExpression(e parser.Expr) bool {
	type flagged interface{ StatementExpressionFlag() bool }
	if f, ok := e.(flagged); ok {
		return f.StatementExpressionFlag()
	}
	return false
}
