package parser

// Literal expressions. The lexeme is kept as the scanned image (e.g. "3",
// "'a'", "\"hi\"") rather than an already-decoded value: decoding/escaping
// is a later phase's job, not the parser's.

type LiteralInt struct {
	exprInfo
	Value string
}

type LiteralChar struct {
	exprInfo
	Value string
}

type LiteralString struct {
	exprInfo
	Value string
}

type LiteralTrue struct{ exprInfo }
type LiteralFalse struct{ exprInfo }
type LiteralNull struct{ exprInfo }

// Variable is a bare, unqualified simple name used as an expression.
type Variable struct {
	exprInfo
	Name string
}

// FieldSelection is `target.name`. Exactly one of Target or Ambiguous is
// set: Target when the selection followed a known expression (selector()),
// Ambiguous when it was carved out of a qualified identifier the parser
// could not yet classify (primary()).
type FieldSelection struct {
	exprInfo
	Target    Expr
	Ambiguous *AmbiguousName
	Name      string
}

// ArrayExpression is `target[index]`.
type ArrayExpression struct {
	exprInfo
	Target Expr
	Index  Expr
}

// MessageExpression is a method call `target.name(args)`, `name(args)`, or
// an ambiguous-prefixed `prefix.name(args)`. At most one of Target and
// Ambiguous is set, mirroring FieldSelection.
type MessageExpression struct {
	exprInfo
	Target    Expr
	Ambiguous *AmbiguousName
	Name      string
	Args      []Expr
}

type This struct{ exprInfo }
type Super struct{ exprInfo }

// ThisConstruction is an explicit `this(args)` constructor invocation.
type ThisConstruction struct {
	exprInfo
	Args []Expr
}

// SuperConstruction is an explicit `super(args)` constructor invocation.
type SuperConstruction struct {
	exprInfo
	Args []Expr
}

// NewOp is `new Type(args)`.
type NewOp struct {
	exprInfo
	Type Type
	Args []Expr
}

// NewArrayOp is `new Type[dim1][dim2]...`. Type is the fully-wrapped array
// type (one ArrayType per bracket pair, including trailing dimensionless
// ones); Dims holds only the expressions that had a size, in source order.
type NewArrayOp struct {
	exprInfo
	Type Type
	Dims []Expr
}

// ArrayInitializer is `{e1, e2, ...}`, with a possible trailing comma. The
// parser never stores a nil element: a `{1, , 3}`-style gap is diagnosed and
// kept as a WildExpression.
type ArrayInitializer struct {
	exprInfo
	Type  Type
	Elems []Expr
}

// WildExpression stands in for an expression the parser could not parse; it
// never appears except where a diagnostic was also emitted.
type WildExpression struct{ exprInfo }

// unaryOp is the shared shape of every single-operand expression form.
type unaryOp struct {
	exprInfo
	Operand Expr
}

type PreIncrementOp struct{ unaryOp }
type PostDecrementOp struct{ unaryOp }
type Negate struct{ unaryOp }
type UnaryPlus struct{ unaryOp }
type LogicalNot struct{ unaryOp }

// binaryOp is the shared shape of every two-operand expression form except
// InstanceOfOp, whose right-hand side is a Type rather than an Expr.
type binaryOp struct {
	exprInfo
	Left, Right Expr
}

type PlusOp struct{ binaryOp }
type SubtractOp struct{ binaryOp }
type MultiplyOp struct{ binaryOp }
type DivideOp struct{ binaryOp }
type ModuloOp struct{ binaryOp }
type GreaterThanOp struct{ binaryOp }
type LessEqualOp struct{ binaryOp }
type LogicalAndOp struct{ binaryOp }
type EqualOp struct{ binaryOp }
type AssignOp struct{ binaryOp }
type PlusAssignOp struct{ binaryOp }

// InstanceOfOp is `expr instanceof ReferenceType`.
type InstanceOfOp struct {
	exprInfo
	Left Expr
	Type Type
}

// CastOp is `(Type) expr`.
type CastOp struct {
	exprInfo
	Type Type
	Expr Expr
}
