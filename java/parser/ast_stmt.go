package parser

// Block is `{ stmt1 stmt2 ... }`; Stmts preserves source order.
type Block struct {
	stmtInfo
	Stmts []Stmt
}

// If is `if (Test) Then [else Else]`. Else is nil when there is no else
// clause.
type If struct {
	stmtInfo
	Test Expr
	Then Stmt
	Else Stmt
}

// While is `while (Test) Body`.
type While struct {
	stmtInfo
	Test Expr
	Body Stmt
}

// Return is `return [Expr];`. Expr is nil for a bare `return;`.
type Return struct {
	stmtInfo
	Expr Expr
}

// Empty is a lone `;`.
type Empty struct{ stmtInfo }

// StatementExpression wraps an expression used as a statement. Expr's own
// IsStatementExpression flag reflects whether the parser accepted it as
// having a side effect. A rejected statement expression still keeps the
// expression node it parsed; that node is a WildExpression only when the
// expression itself failed to parse (e.g. `new C;`).
type StatementExpression struct {
	stmtInfo
	Expr Expr
}

// VariableDeclarator is `name [= initializer]` within a declaration.
type VariableDeclarator struct {
	LineNo      int
	Name        string
	Type        Type
	Initializer Expr // nil when there is no initializer
}

func (v *VariableDeclarator) Line() int { return v.LineNo }

// VariableDeclaration is a local variable declaration statement:
// `Type declarator1, declarator2, ...;`. Mods is always empty for locals in
// this grammar (local declarations carry no modifiers), but the field
// exists so a field declaration's modifiers (see FieldDecl) and a local
// declaration's can share one shape downstream.
type VariableDeclaration struct {
	stmtInfo
	Mods  []Modifier
	Decls []*VariableDeclarator
}
