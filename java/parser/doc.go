// Package parser implements a recursive-descent parser, with its own
// hand-written lexer, for a reduced subset of Java: single-inheritance
// classes, the boolean/char/int primitive types, one-dimensional and
// multi-dimensional arrays, fields, methods, constructors, and the
// if/while/return/assignment/new/cast/this/super statement and expression
// forms. There is no semantic analysis here: names are not resolved, types
// are not checked, and overload resolution does not exist. Parse produces a
// syntax tree and nothing more.
//
// # Grammar
//
// compilationUnit ::= [PACKAGE qualifiedIdentifier SEMI]
//                      {IMPORT qualifiedIdentifier SEMI}
//                      {typeDeclaration} EOF
//
// typeDeclaration ::= modifiers classDeclaration
//
// modifiers ::= {PUBLIC | PROTECTED | PRIVATE | STATIC | ABSTRACT}
//
// classDeclaration ::= CLASS IDENTIFIER [EXTENDS qualifiedIdentifier] classBody
//
// classBody ::= LCURLY {modifiers memberDecl} RCURLY
//
// memberDecl ::= IDENTIFIER formalParameters block
//              | (VOID | type) IDENTIFIER formalParameters (block | SEMI)
//              | type variableDeclarators SEMI
//
// block ::= LCURLY {blockStatement} RCURLY
//
// blockStatement ::= localVariableDeclarationStatement | statement
//
// statement ::= block
//             | IF parExpression statement [ELSE statement]
//             | WHILE parExpression statement
//             | RETURN [expression] SEMI
//             | SEMI
//             | statementExpression SEMI
//
// expression is the usual precedence cascade, lowest to highest:
// assignment, conditional-and, equality, relational, additive,
// multiplicative, unary, simple-unary, postfix, primary. See parser.go for
// every production in full; this doc comment gives the shape, not the
// detail.
//
// # Error recovery
//
// The parser follows the Turner-Morrison strategy: when a required token is
// missing, it reports exactly one diagnostic for the contiguous span of
// input that fails to match, then resynchronizes by discarding tokens until
// it sees the token it was looking for (or EOF) before resuming. This means
// one malformed construct produces one diagnostic, not a cascade, and a file
// with several unrelated mistakes still gets a diagnostic for each. A
// DiagnosticSink receives every reported diagnostic; the parser itself never
// writes to a file, a terminal, or a socket.
//
// # Usage
//
//	scanner := parser.NewScanner("Main.java", src)
//	p := parser.NewParser(scanner, parser.WriterSink{W: os.Stderr})
//	cu := p.Parse()
//	if p.ErrorHasOccurred() {
//	    // cu is still a structurally valid tree; WildExpression nodes and
//	    // Any types mark the spots recovery papered over.
//	}
package parser
