package parser

import (
	"fmt"
	"os"
	"strings"
)

// Parser is a recursive-descent parser for one compilation unit. It holds
// exclusive access to its Scanner for the duration of a parse: there are no
// suspension points and no concurrent use. Construct one with NewParser and
// call Parse exactly once.
type Parser struct {
	scanner Scanner
	sink    DiagnosticSink

	isInError   bool
	isRecovered bool
}

// NewParser constructs a parser over scanner. sink receives diagnostics; if
// nil, diagnostics go to os.Stderr in the "<file>:<line>: <message>" wire
// format. The constructor primes the pump (advances the scanner onto the
// first token), the way the original jminusminus Parser constructor does.
func NewParser(scanner Scanner, sink DiagnosticSink) *Parser {
	if sink == nil {
		sink = WriterSink{W: os.Stderr}
	}
	p := &Parser{scanner: scanner, sink: sink, isRecovered: true}
	scanner.Advance()
	return p
}

// ErrorHasOccurred reports whether any diagnostic has been emitted so far.
func (p *Parser) ErrorHasOccurred() bool {
	return p.isInError
}

// Parse runs compilationUnit and asserts EOF.
func (p *Parser) Parse() *CompilationUnit {
	cu := p.compilationUnit()
	p.mustBe(EOF)
	return cu
}

// ////////////////////////////////////////////////
// Matching primitives
// ////////////////////////////////////////////////

func (p *Parser) see(k TokenKind) bool {
	return p.scanner.Current().Kind == k
}

func (p *Parser) have(k TokenKind) bool {
	if p.see(k) {
		p.scanner.Advance()
		return true
	}
	return false
}

// mustBe implements Turner-Morrison recovery: on a match, consume and mark
// recovered. On a mismatch while recovered, report one diagnostic and go
// unrecovered without consuming. On a mismatch while already unrecovered,
// silently consume tokens until sought or EOF is seen, so a single failure
// region produces one diagnostic instead of a cascade.
func (p *Parser) mustBe(sought TokenKind) {
	if p.see(sought) {
		p.scanner.Advance()
		p.isRecovered = true
		return
	}
	if p.isRecovered {
		p.reportError("%s found where %s sought", p.scanner.Current().Image, sought.Image())
		return
	}
	for !p.see(sought) && !p.see(EOF) {
		p.scanner.Advance()
	}
	if p.see(sought) {
		p.scanner.Advance()
		p.isRecovered = true
	}
}

func (p *Parser) reportError(format string, args ...any) {
	p.isInError = true
	p.isRecovered = false
	p.sink.Report(p.scanner.FileName(), p.scanner.Current().Line, fmt.Sprintf(format, args...))
}

// ambiguousPart pulls the leading dotted prefix out of name, or nil if name
// is a simple (unqualified) name.
func ambiguousPart(name NamedType) *AmbiguousName {
	i := strings.LastIndex(name.Name, ".")
	if i < 0 {
		return nil
	}
	return &AmbiguousName{LineNo: name.Line, Name: name.Name[:i]}
}

// ////////////////////////////////////////////////
// Lookahead predicates
// ////////////////////////////////////////////////

func (p *Parser) seeIdentLParen() bool {
	p.scanner.RecordPosition()
	result := p.have(IDENTIFIER) && p.see(LPAREN)
	p.scanner.ReturnToPosition()
	return result
}

func (p *Parser) seeCast() bool {
	p.scanner.RecordPosition()
	defer p.scanner.ReturnToPosition()
	if !p.have(LPAREN) {
		return false
	}
	if p.seeBasicType() {
		return true
	}
	if !p.see(IDENTIFIER) {
		return false
	}
	p.scanner.Advance()
	for p.have(DOT) {
		if !p.have(IDENTIFIER) {
			return false
		}
	}
	for p.have(LBRACK) {
		if !p.have(RBRACK) {
			return false
		}
	}
	return p.have(RPAREN)
}

func (p *Parser) seeLocalVariableDeclaration() bool {
	p.scanner.RecordPosition()
	defer p.scanner.ReturnToPosition()
	if p.have(IDENTIFIER) {
		for p.have(DOT) {
			if !p.have(IDENTIFIER) {
				return false
			}
		}
	} else if p.seeBasicType() {
		p.scanner.Advance()
	} else {
		return false
	}
	for p.have(LBRACK) {
		if !p.have(RBRACK) {
			return false
		}
	}
	if !p.have(IDENTIFIER) {
		return false
	}
	for p.have(LBRACK) {
		if !p.have(RBRACK) {
			return false
		}
	}
	return true
}

func (p *Parser) seeBasicType() bool {
	return p.see(BOOLEAN) || p.see(CHAR) || p.see(INT)
}

func (p *Parser) seeReferenceType() bool {
	if p.see(IDENTIFIER) {
		return true
	}
	p.scanner.RecordPosition()
	defer p.scanner.ReturnToPosition()
	if p.have(BOOLEAN) || p.have(CHAR) || p.have(INT) {
		if p.have(LBRACK) && p.see(RBRACK) {
			return true
		}
	}
	return false
}

func (p *Parser) seeDims() bool {
	p.scanner.RecordPosition()
	result := p.have(LBRACK) && p.see(RBRACK)
	p.scanner.ReturnToPosition()
	return result
}

// ////////////////////////////////////////////////
// Grammar
// ////////////////////////////////////////////////

// compilationUnit ::= [PACKAGE qualifiedIdentifier SEMI]
//                     {IMPORT qualifiedIdentifier SEMI}
//                     {typeDeclaration} EOF
func (p *Parser) compilationUnit() *CompilationUnit {
	line := p.scanner.Current().Line
	var pkg *NamedType
	if p.have(PACKAGE) {
		name := p.qualifiedIdentifier()
		p.mustBe(SEMI)
		pkg = &name
	}
	var imports []NamedType
	for p.have(IMPORT) {
		imports = append(imports, p.qualifiedIdentifier())
		p.mustBe(SEMI)
	}
	var decls []TypeDecl
	for !p.see(EOF) {
		decls = append(decls, p.typeDeclaration())
	}
	return &CompilationUnit{
		File:    p.scanner.FileName(),
		LineNo:  line,
		Package: pkg,
		Imports: imports,
		Decls:   decls,
	}
}

// qualifiedIdentifier ::= IDENTIFIER {DOT IDENTIFIER}
func (p *Parser) qualifiedIdentifier() NamedType {
	line := p.scanner.Current().Line
	p.mustBe(IDENTIFIER)
	name := p.scanner.Previous().Image
	for p.have(DOT) {
		p.mustBe(IDENTIFIER)
		name += "." + p.scanner.Previous().Image
	}
	return NamedType{Name: name, Line: line}
}

// typeDeclaration ::= modifiers classDeclaration
func (p *Parser) typeDeclaration() TypeDecl {
	return p.classDeclaration(p.modifiers())
}

// modifiers ::= {PUBLIC | PROTECTED | PRIVATE | STATIC | ABSTRACT}
func (p *Parser) modifiers() []Modifier {
	var mods []Modifier
	var seenPublic, seenProtected, seenPrivate, seenStatic, seenAbstract bool
	for {
		switch {
		case p.have(PUBLIC):
			mods = append(mods, ModPublic)
			if seenPublic {
				p.reportError("Repeated modifier: public")
			}
			if seenProtected || seenPrivate {
				p.reportError("Access conflict in modifiers")
			}
			seenPublic = true
		case p.have(PROTECTED):
			mods = append(mods, ModProtected)
			if seenProtected {
				p.reportError("Repeated modifier: protected")
			}
			if seenPublic || seenPrivate {
				p.reportError("Access conflict in modifiers")
			}
			seenProtected = true
		case p.have(PRIVATE):
			mods = append(mods, ModPrivate)
			if seenPrivate {
				p.reportError("Repeated modifier: private")
			}
			if seenPublic || seenProtected {
				p.reportError("Access conflict in modifiers")
			}
			seenPrivate = true
		case p.have(STATIC):
			mods = append(mods, ModStatic)
			if seenStatic {
				p.reportError("Repeated modifier: static")
			}
			seenStatic = true
		case p.have(ABSTRACT):
			mods = append(mods, ModAbstract)
			if seenAbstract {
				p.reportError("Repeated modifier: abstract")
			}
			seenAbstract = true
		default:
			return mods
		}
	}
}

// classDeclaration ::= CLASS IDENTIFIER [EXTENDS qualifiedIdentifier] classBody
func (p *Parser) classDeclaration(mods []Modifier) *ClassDecl {
	line := p.scanner.Current().Line
	p.mustBe(CLASS)
	p.mustBe(IDENTIFIER)
	name := p.scanner.Previous().Image
	var super Type = Object
	if p.have(EXTENDS) {
		super = p.qualifiedIdentifier()
	}
	return &ClassDecl{
		lineInfo: lineInfo{line},
		Mods:     mods,
		Name:     name,
		Super:    super,
		Members:  p.classBody(),
	}
}

// classBody ::= LCURLY {modifiers memberDecl} RCURLY
func (p *Parser) classBody() []Member {
	var members []Member
	p.mustBe(LCURLY)
	for !p.see(RCURLY) && !p.see(EOF) {
		members = append(members, p.memberDecl(p.modifiers()))
	}
	p.mustBe(RCURLY)
	return members
}

// memberDecl ::= IDENTIFIER formalParameters block                         -- constructor
//              | (VOID | type) IDENTIFIER formalParameters (block | SEMI)  -- method
//              | type variableDeclarators SEMI                            -- field
func (p *Parser) memberDecl(mods []Modifier) Member {
	line := p.scanner.Current().Line
	if p.seeIdentLParen() {
		p.mustBe(IDENTIFIER)
		name := p.scanner.Previous().Image
		params := p.formalParameters()
		return &ConstructorDecl{
			memberInfo: memberInfo{lineInfo{line}},
			Mods:       mods,
			Name:       name,
			Params:     params,
			Body:       p.block(),
		}
	}
	if p.have(VOID) {
		p.mustBe(IDENTIFIER)
		name := p.scanner.Previous().Image
		params := p.formalParameters()
		var body *Block
		if !p.have(SEMI) {
			body = p.block()
		}
		return &MethodDecl{
			memberInfo: memberInfo{lineInfo{line}},
			Mods:       mods,
			Name:       name,
			ReturnType: Void,
			Params:     params,
			Body:       body,
		}
	}
	typ := p.typ()
	if p.seeIdentLParen() {
		p.mustBe(IDENTIFIER)
		name := p.scanner.Previous().Image
		params := p.formalParameters()
		var body *Block
		if !p.have(SEMI) {
			body = p.block()
		}
		return &MethodDecl{
			memberInfo: memberInfo{lineInfo{line}},
			Mods:       mods,
			Name:       name,
			ReturnType: typ,
			Params:     params,
			Body:       body,
		}
	}
	decls := p.variableDeclarators(typ)
	p.mustBe(SEMI)
	return &FieldDecl{
		memberInfo: memberInfo{lineInfo{line}},
		Mods:       mods,
		Decls:      decls,
	}
}

// block ::= LCURLY {blockStatement} RCURLY
func (p *Parser) block() *Block {
	line := p.scanner.Current().Line
	var stmts []Stmt
	p.mustBe(LCURLY)
	for !p.see(RCURLY) && !p.see(EOF) {
		stmts = append(stmts, p.blockStatement())
	}
	p.mustBe(RCURLY)
	return &Block{stmtInfo: stmtInfo{lineInfo{line}}, Stmts: stmts}
}

// blockStatement ::= localVariableDeclarationStatement | statement
func (p *Parser) blockStatement() Stmt {
	if p.seeLocalVariableDeclaration() {
		return p.localVariableDeclarationStatement()
	}
	return p.statement()
}

// statement ::= block
//             | IF parExpression statement [ELSE statement]
//             | WHILE parExpression statement
//             | RETURN [expression] SEMI
//             | SEMI
//             | statementExpression SEMI
func (p *Parser) statement() Stmt {
	line := p.scanner.Current().Line
	switch {
	case p.see(LCURLY):
		return p.block()
	case p.have(IF):
		test := p.parExpression()
		then := p.statement()
		var els Stmt
		if p.have(ELSE) {
			els = p.statement()
		}
		return &If{stmtInfo: stmtInfo{lineInfo{line}}, Test: test, Then: then, Else: els}
	case p.have(WHILE):
		test := p.parExpression()
		return &While{stmtInfo: stmtInfo{lineInfo{line}}, Test: test, Body: p.statement()}
	case p.have(RETURN):
		if p.have(SEMI) {
			return &Return{stmtInfo: stmtInfo{lineInfo{line}}}
		}
		expr := p.expression()
		p.mustBe(SEMI)
		return &Return{stmtInfo: stmtInfo{lineInfo{line}}, Expr: expr}
	case p.have(SEMI):
		return &Empty{stmtInfo{lineInfo{line}}}
	default:
		stmt := p.statementExpression()
		p.mustBe(SEMI)
		return stmt
	}
}

// formalParameters ::= LPAREN [formalParameter {COMMA formalParameter}] RPAREN
func (p *Parser) formalParameters() []*FormalParameter {
	var params []*FormalParameter
	p.mustBe(LPAREN)
	if p.have(RPAREN) {
		return params
	}
	for {
		params = append(params, p.formalParameter())
		if !p.have(COMMA) {
			break
		}
	}
	p.mustBe(RPAREN)
	return params
}

// formalParameter ::= type IDENTIFIER
func (p *Parser) formalParameter() *FormalParameter {
	line := p.scanner.Current().Line
	typ := p.typ()
	p.mustBe(IDENTIFIER)
	return &FormalParameter{LineNo: line, Name: p.scanner.Previous().Image, Type: typ}
}

// parExpression ::= LPAREN expression RPAREN
func (p *Parser) parExpression() Expr {
	p.mustBe(LPAREN)
	expr := p.expression()
	p.mustBe(RPAREN)
	return expr
}

// localVariableDeclarationStatement ::= type variableDeclarators SEMI
func (p *Parser) localVariableDeclarationStatement() *VariableDeclaration {
	line := p.scanner.Current().Line
	decls := p.variableDeclarators(p.typ())
	p.mustBe(SEMI)
	return &VariableDeclaration{stmtInfo: stmtInfo{lineInfo{line}}, Decls: decls}
}

// variableDeclarators ::= variableDeclarator {COMMA variableDeclarator}
func (p *Parser) variableDeclarators(typ Type) []*VariableDeclarator {
	var decls []*VariableDeclarator
	for {
		decls = append(decls, p.variableDeclarator(typ))
		if !p.have(COMMA) {
			break
		}
	}
	return decls
}

// variableDeclarator ::= IDENTIFIER [ASSIGN variableInitializer]
func (p *Parser) variableDeclarator(typ Type) *VariableDeclarator {
	line := p.scanner.Current().Line
	p.mustBe(IDENTIFIER)
	name := p.scanner.Previous().Image
	var init Expr
	if p.have(ASSIGN) {
		init = p.variableInitializer(typ)
	}
	return &VariableDeclarator{LineNo: line, Name: name, Type: typ, Initializer: init}
}

// variableInitializer ::= arrayInitializer | expression
func (p *Parser) variableInitializer(typ Type) Expr {
	if p.see(LCURLY) {
		return p.arrayInitializer(typ)
	}
	return p.expression()
}

// arrayInitializer ::= LCURLY [variableInitializer {COMMA variableInitializer} [COMMA]] RCURLY
//
// A COMMA immediately followed by RCURLY is a permitted trailing comma, not
// the start of another element; any other COMMA (including one followed by
// another COMMA) introduces an element, so in "{1, , 3}" the empty slot is
// parsed as an expression, reported as a missing literal, and kept as a
// WildExpression.
func (p *Parser) arrayInitializer(typ Type) *ArrayInitializer {
	line := p.scanner.Current().Line
	var elems []Expr
	p.mustBe(LCURLY)
	if p.have(RCURLY) {
		return &ArrayInitializer{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Type: typ, Elems: elems}
	}
	elems = append(elems, p.variableInitializer(componentType(typ)))
	for p.have(COMMA) {
		if p.see(RCURLY) {
			break
		}
		elems = append(elems, p.variableInitializer(componentType(typ)))
	}
	p.mustBe(RCURLY)
	return &ArrayInitializer{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Type: typ, Elems: elems}
}

// arguments ::= LPAREN [expression {COMMA expression}] RPAREN
func (p *Parser) arguments() []Expr {
	var args []Expr
	p.mustBe(LPAREN)
	if p.have(RPAREN) {
		return args
	}
	for {
		args = append(args, p.expression())
		if !p.have(COMMA) {
			break
		}
	}
	p.mustBe(RPAREN)
	return args
}

// typ ::= referenceType | basicType
func (p *Parser) typ() Type {
	if p.seeReferenceType() {
		return p.referenceType()
	}
	return p.basicType()
}

// basicType ::= BOOLEAN | CHAR | INT
func (p *Parser) basicType() Type {
	switch {
	case p.have(BOOLEAN):
		return Boolean
	case p.have(CHAR):
		return Char
	case p.have(INT):
		return Int
	default:
		p.reportError("Type sought where %s found", p.scanner.Current().Image)
		return Any
	}
}

// referenceType ::= basicType LBRACK RBRACK {LBRACK RBRACK}
//                 | qualifiedIdentifier {LBRACK RBRACK}
func (p *Parser) referenceType() Type {
	var typ Type
	if !p.see(IDENTIFIER) {
		typ = p.basicType()
		p.mustBe(LBRACK)
		p.mustBe(RBRACK)
		typ = ArrayType{Component: typ}
	} else {
		typ = p.qualifiedIdentifier()
	}
	for p.seeDims() {
		p.mustBe(LBRACK)
		p.mustBe(RBRACK)
		typ = ArrayType{Component: typ}
	}
	return typ
}

// statementExpression ::= expression, restricted to forms with a side
// effect: assignment, increment/decrement, a call, or object/array creation.
// Anything else (e.g. a bare "x;" or "x + 1;") is diagnosed but still
// returned, so a caller can keep walking the tree.
func (p *Parser) statementExpression() *StatementExpression {
	line := p.scanner.Current().Line
	expr := p.expression()
	switch expr.(type) {
	case *AssignOp, *PlusAssignOp, *PreIncrementOp, *PostDecrementOp,
		*MessageExpression, *SuperConstruction, *ThisConstruction,
		*NewOp, *NewArrayOp:
		expr.setStatementExpression()
	default:
		p.reportError("Invalid statement expression; it does not have a side-effect")
	}
	return &StatementExpression{stmtInfo: stmtInfo{lineInfo{line}}, Expr: expr}
}

// expression ::= assignmentExpression
func (p *Parser) expression() Expr {
	return p.assignmentExpression()
}

// assignmentExpression ::= conditionalAndExpression
//                            [(ASSIGN | PLUS_ASSIGN) assignmentExpression]
func (p *Parser) assignmentExpression() Expr {
	line := p.scanner.Current().Line
	lhs := p.conditionalAndExpression()
	switch {
	case p.have(ASSIGN):
		return &AssignOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.assignmentExpression()}}
	case p.have(PLUS_ASSIGN):
		return &PlusAssignOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.assignmentExpression()}}
	default:
		return lhs
	}
}

// conditionalAndExpression ::= equalityExpression {LAND equalityExpression}
func (p *Parser) conditionalAndExpression() Expr {
	line := p.scanner.Current().Line
	lhs := p.equalityExpression()
	for p.have(LAND) {
		lhs = &LogicalAndOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.equalityExpression()}}
	}
	return lhs
}

// equalityExpression ::= relationalExpression {EQUAL relationalExpression}
func (p *Parser) equalityExpression() Expr {
	line := p.scanner.Current().Line
	lhs := p.relationalExpression()
	for p.have(EQUAL) {
		lhs = &EqualOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.relationalExpression()}}
	}
	return lhs
}

// relationalExpression ::= additiveExpression
//                            [(GT | LE) additiveExpression | INSTANCEOF referenceType]
//
// Deliberately not left-folded: at most one relational operator is consumed,
// so "a > b > c" fails to parse on the second ">". Kept exactly this way
// rather than generalized to a chain, matching the one-shot relational
// production in the grammar this parser follows.
func (p *Parser) relationalExpression() Expr {
	line := p.scanner.Current().Line
	lhs := p.additiveExpression()
	switch {
	case p.have(GT):
		return &GreaterThanOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.additiveExpression()}}
	case p.have(LE):
		return &LessEqualOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.additiveExpression()}}
	case p.have(INSTANCEOF):
		return &InstanceOfOp{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Left: lhs, Type: p.referenceType()}
	default:
		return lhs
	}
}

// additiveExpression ::= multiplicativeExpression {(MINUS | PLUS) multiplicativeExpression}
func (p *Parser) additiveExpression() Expr {
	line := p.scanner.Current().Line
	lhs := p.multiplicativeExpression()
	for {
		switch {
		case p.have(MINUS):
			lhs = &SubtractOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.multiplicativeExpression()}}
		case p.have(PLUS):
			lhs = &PlusOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.multiplicativeExpression()}}
		default:
			return lhs
		}
	}
}

// multiplicativeExpression ::= unaryExpression {(STAR | DIV | MOD) unaryExpression}
func (p *Parser) multiplicativeExpression() Expr {
	line := p.scanner.Current().Line
	lhs := p.unaryExpression()
	for {
		switch {
		case p.have(STAR):
			lhs = &MultiplyOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.unaryExpression()}}
		case p.have(DIV):
			lhs = &DivideOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.unaryExpression()}}
		case p.have(MOD):
			lhs = &ModuloOp{binaryOp{exprInfo{lineInfo: lineInfo{line}}, lhs, p.unaryExpression()}}
		default:
			return lhs
		}
	}
}

// unaryExpression ::= INC unaryExpression | MINUS unaryExpression | PLUS unaryExpression | simpleUnaryExpression
func (p *Parser) unaryExpression() Expr {
	line := p.scanner.Current().Line
	switch {
	case p.have(INC):
		return &PreIncrementOp{unaryOp{exprInfo{lineInfo: lineInfo{line}}, p.unaryExpression()}}
	case p.have(MINUS):
		return &Negate{unaryOp{exprInfo{lineInfo: lineInfo{line}}, p.unaryExpression()}}
	case p.have(PLUS):
		return &UnaryPlus{unaryOp{exprInfo{lineInfo: lineInfo{line}}, p.unaryExpression()}}
	default:
		return p.simpleUnaryExpression()
	}
}

// simpleUnaryExpression ::= LNOT unaryExpression
//                         | LPAREN basicType RPAREN unaryExpression
//                         | LPAREN referenceType RPAREN simpleUnaryExpression
//                         | postfixExpression
//
// The two cast arms recurse differently on purpose: a basic-type cast allows
// another unary operator right after it ("(int)-x" parses as a cast of a
// negation), while a reference-type cast does not recurse back into
// unaryExpression, so "(T)-x" with T a reference type does not parse as a
// cast of "-x". This asymmetry is kept rather than unified.
func (p *Parser) simpleUnaryExpression() Expr {
	line := p.scanner.Current().Line
	switch {
	case p.have(LNOT):
		return &LogicalNot{unaryOp{exprInfo{lineInfo: lineInfo{line}}, p.unaryExpression()}}
	case p.seeCast():
		p.mustBe(LPAREN)
		isBasic := p.seeBasicType()
		typ := p.typ()
		p.mustBe(RPAREN)
		var expr Expr
		if isBasic {
			expr = p.unaryExpression()
		} else {
			expr = p.simpleUnaryExpression()
		}
		return &CastOp{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Type: typ, Expr: expr}
	default:
		return p.postfixExpression()
	}
}

// postfixExpression ::= primary {selector} {DEC}
func (p *Parser) postfixExpression() Expr {
	line := p.scanner.Current().Line
	expr := p.primary()
	for p.see(DOT) || p.see(LBRACK) {
		expr = p.selector(expr)
	}
	for p.have(DEC) {
		expr = &PostDecrementOp{unaryOp{exprInfo{lineInfo: lineInfo{line}}, expr}}
	}
	return expr
}

// selector ::= DOT IDENTIFIER [arguments] | LBRACK expression RBRACK
func (p *Parser) selector(target Expr) Expr {
	line := p.scanner.Current().Line
	if p.have(DOT) {
		p.mustBe(IDENTIFIER)
		name := p.scanner.Previous().Image
		if p.see(LPAREN) {
			return &MessageExpression{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Target: target, Name: name, Args: p.arguments()}
		}
		return &FieldSelection{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Target: target, Name: name}
	}
	p.mustBe(LBRACK)
	index := p.expression()
	p.mustBe(RBRACK)
	return &ArrayExpression{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Target: target, Index: index}
}

// primary ::= parExpression
//           | THIS [arguments]
//           | SUPER (arguments | DOT IDENTIFIER [arguments])
//           | literal
//           | NEW creator
//           | qualifiedIdentifier [arguments]
func (p *Parser) primary() Expr {
	line := p.scanner.Current().Line
	switch {
	case p.see(LPAREN):
		return p.parExpression()
	case p.have(THIS):
		if p.see(LPAREN) {
			return &ThisConstruction{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Args: p.arguments()}
		}
		return &This{exprInfo{lineInfo: lineInfo{line}}}
	case p.have(SUPER):
		if !p.have(DOT) {
			return &SuperConstruction{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Args: p.arguments()}
		}
		p.mustBe(IDENTIFIER)
		name := p.scanner.Previous().Image
		target := Expr(&Super{exprInfo{lineInfo: lineInfo{line}}})
		if p.see(LPAREN) {
			return &MessageExpression{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Target: target, Name: name, Args: p.arguments()}
		}
		return &FieldSelection{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Target: target, Name: name}
	case p.have(NEW):
		return p.creator()
	case p.see(IDENTIFIER):
		id := p.qualifiedIdentifier()
		amb := ambiguousPart(id)
		switch {
		case p.see(LPAREN):
			return &MessageExpression{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Ambiguous: amb, Name: id.SimpleName(), Args: p.arguments()}
		case amb == nil:
			return &Variable{exprInfo{lineInfo: lineInfo{line}}, id.SimpleName()}
		default:
			return &FieldSelection{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Ambiguous: amb, Name: id.SimpleName()}
		}
	default:
		return p.literal()
	}
}

// creator ::= (basicType | qualifiedIdentifier)
//               ( arguments
//               | LBRACK RBRACK {LBRACK RBRACK} [arrayInitializer]
//               | newArrayDeclarator
//               )
func (p *Parser) creator() Expr {
	line := p.scanner.Current().Line
	var typ Type
	if p.seeBasicType() {
		typ = p.basicType()
	} else {
		typ = p.qualifiedIdentifier()
	}
	switch {
	case p.see(LPAREN):
		return &NewOp{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Type: typ, Args: p.arguments()}
	case p.see(LBRACK) && p.seeDims():
		expected := typ
		for p.have(LBRACK) {
			p.mustBe(RBRACK)
			expected = ArrayType{Component: expected}
		}
		return p.arrayInitializer(expected)
	case p.see(LBRACK):
		return p.newArrayDeclarator(line, typ)
	default:
		p.reportError("( or [ sought where %s found", p.scanner.Current().Image)
		return &WildExpression{exprInfo{lineInfo: lineInfo{line}}}
	}
}

// newArrayDeclarator ::= LBRACK expression RBRACK {LBRACK expression RBRACK} {LBRACK RBRACK}
//
// Only the sized dimensions are collected into Dims; any trailing
// dimensionless brackets ("new int[3][]") still wrap Type but contribute no
// expression.
func (p *Parser) newArrayDeclarator(line int, typ Type) *NewArrayOp {
	var dims []Expr
	p.mustBe(LBRACK)
	dims = append(dims, p.expression())
	p.mustBe(RBRACK)
	typ = ArrayType{Component: typ}
	for p.have(LBRACK) {
		if p.have(RBRACK) {
			typ = ArrayType{Component: typ}
			for p.have(LBRACK) {
				p.mustBe(RBRACK)
				typ = ArrayType{Component: typ}
			}
			break
		}
		dims = append(dims, p.expression())
		typ = ArrayType{Component: typ}
		p.mustBe(RBRACK)
	}
	return &NewArrayOp{exprInfo: exprInfo{lineInfo: lineInfo{line}}, Type: typ, Dims: dims}
}

// literal ::= INT_LITERAL | CHAR_LITERAL | STRING_LITERAL | TRUE | FALSE | NULL
func (p *Parser) literal() Expr {
	line := p.scanner.Current().Line
	switch {
	case p.have(INT_LITERAL):
		return &LiteralInt{exprInfo{lineInfo: lineInfo{line}}, p.scanner.Previous().Image}
	case p.have(CHAR_LITERAL):
		return &LiteralChar{exprInfo{lineInfo: lineInfo{line}}, p.scanner.Previous().Image}
	case p.have(STRING_LITERAL):
		return &LiteralString{exprInfo{lineInfo: lineInfo{line}}, p.scanner.Previous().Image}
	case p.have(TRUE):
		return &LiteralTrue{exprInfo{lineInfo: lineInfo{line}}}
	case p.have(FALSE):
		return &LiteralFalse{exprInfo{lineInfo: lineInfo{line}}}
	case p.have(NULL):
		return &LiteralNull{exprInfo{lineInfo: lineInfo{line}}}
	default:
		p.reportError("Literal sought where %s found", p.scanner.Current().Image)
		return &WildExpression{exprInfo{lineInfo: lineInfo{line}}}
	}
}
