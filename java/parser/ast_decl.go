package parser

// CompilationUnit is the root of the AST: one parsed source file.
type CompilationUnit struct {
	File    string
	LineNo  int
	Package *NamedType // nil when there is no package declaration
	Imports []NamedType
	Decls   []TypeDecl
}

func (c *CompilationUnit) Line() int { return c.LineNo }

// ClassDecl is the only TypeDecl this language supports.
type ClassDecl struct {
	lineInfo
	Mods    []Modifier
	Name    string
	Super   Type
	Members []Member
}

func (c *ClassDecl) typeDeclNode() {}

// FormalParameter is one parameter of a method or constructor.
type FormalParameter struct {
	LineNo int
	Name   string
	Type   Type
}

func (f *FormalParameter) Line() int { return f.LineNo }

// FieldDecl is a class-level variable declaration; unlike a local
// VariableDeclaration, its Mods may be non-empty (public/static/etc).
type FieldDecl struct {
	memberInfo
	Mods  []Modifier
	Decls []*VariableDeclarator
}

// MethodDecl is a method declaration. Body is nil for an abstract method
// (`... ;` instead of a block).
type MethodDecl struct {
	memberInfo
	Mods       []Modifier
	Name       string
	ReturnType Type
	Params     []*FormalParameter
	Body       *Block
}

// ConstructorDecl is a constructor declaration; it has no return type and
// always has a body.
type ConstructorDecl struct {
	memberInfo
	Mods   []Modifier
	Name   string
	Params []*FormalParameter
	Body   *Block
}
