package parser

// Node is implemented by every AST node. Line is the source line of the
// token that started the node's production, captured before any tokens for
// that production are consumed.
type Node interface {
	Line() int
}

type lineInfo struct {
	LineNo int
}

func (l lineInfo) Line() int { return l.LineNo }

// exprInfo is embedded by every Expr. IsStatementExpression is set true by
// the parser, never by the expression's own constructor, when the
// expression is accepted as the top-level expression of a statement (see
// statementExpression in parser.go); it tells later phases they may discard
// the expression's value without it being a mistake.
type exprInfo struct {
	lineInfo
	IsStatementExpression bool
}

// Expr is the closed sum of expression forms this language supports.
type Expr interface {
	Node
	exprNode()
	setStatementExpression()
}

func (e *exprInfo) exprNode() {}
func (e *exprInfo) setStatementExpression() {
	e.IsStatementExpression = true
}

// StatementExpressionFlag exposes IsStatementExpression to callers outside
// the package (e.g. format's JSON encoder) without adding a setter to the
// public Expr interface.
func (e *exprInfo) StatementExpressionFlag() bool {
	return e.IsStatementExpression
}

// Stmt is the closed sum of statement forms.
type Stmt interface {
	Node
	stmtNode()
}

type stmtInfo struct{ lineInfo }

func (s stmtInfo) stmtNode() {}

// Member is a class member: a field, method, or constructor declaration.
type Member interface {
	Node
	memberNode()
}

type memberInfo struct{ lineInfo }

func (m memberInfo) memberNode() {}

// TypeDecl is a top-level type declaration. Only ClassDecl exists in this
// language subset, but the interface is kept open the way JAST is in the
// original, so a later phase adding e.g. interfaces doesn't need to change
// CompilationUnit.
type TypeDecl interface {
	Node
	typeDeclNode()
}

// AmbiguousName is the leading dotted prefix of a qualified name whose role
// (package, type, or variable) the parser cannot and does not try to
// determine. It is attached verbatim to FieldSelection and MessageExpression
// nodes for a later semantic phase to resolve.
type AmbiguousName struct {
	LineNo int
	Name   string
}

func (a *AmbiguousName) Line() int { return a.LineNo }

// Modifier is one of the lowercase modifier keywords recorded in source
// order; duplicates and access conflicts are reported but not removed, so
// the list always reflects exactly what was written.
type Modifier string

const (
	ModPublic    Modifier = "public"
	ModProtected Modifier = "protected"
	ModPrivate   Modifier = "private"
	ModStatic    Modifier = "static"
	ModAbstract  Modifier = "abstract"
)
