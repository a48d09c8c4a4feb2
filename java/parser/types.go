package parser

import "strings"

// Type is the parser's only notion of a Java type: no resolution, no
// checking, just enough structure to carry through to later compiler
// phases. It is a closed sum over basic types, named (possibly qualified)
// references, and arrays of some other Type.
type Type interface {
	String() string
}

// BasicKind distinguishes the handful of primitive types this language
// subset supports.
type BasicKind int

const (
	BOOLEAN_T BasicKind = iota
	CHAR_T
	INT_T
	VOID_T
	ANY_T // error sentinel
)

var basicImages = map[BasicKind]string{
	BOOLEAN_T: "boolean",
	CHAR_T:    "char",
	INT_T:     "int",
	VOID_T:    "void",
	ANY_T:     "<type error>",
}

// BasicType is one of boolean, char, int, void, or the ANY error sentinel.
// VOID is legal only as a method's return type; ANY never appears in a
// structurally valid tree except to stand in for a type the parser failed
// to recover.
type BasicType struct {
	Kind BasicKind
}

func (t BasicType) String() string { return basicImages[t.Kind] }

var (
	Boolean = BasicType{BOOLEAN_T}
	Char    = BasicType{CHAR_T}
	Int     = BasicType{INT_T}
	Void    = BasicType{VOID_T}
	Any     = BasicType{ANY_T}
)

// NamedType is a reference type named by a (possibly dotted) identifier,
// e.g. "Counter" or "java.lang.Object". Line is the source line of the
// identifier the name started at, for diagnostic attribution downstream.
type NamedType struct {
	Name string
	Line int
}

func (t NamedType) String() string { return t.Name }

// SimpleName returns the last dotted component of the name, e.g. "Object"
// for "java.lang.Object".
func (t NamedType) SimpleName() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// Object is the implicit superclass of any class declared without an
// EXTENDS clause.
var Object = NamedType{Name: "java.lang.Object"}

// ArrayType wraps another Type as its element type. There is no "array of
// nothing": every ArrayType is constructed around a concrete component.
type ArrayType struct {
	Component Type
}

func (t ArrayType) String() string { return t.Component.String() + "[]" }

// ComponentType returns the element type of an array type.
func (t ArrayType) ComponentType() Type {
	return t.Component
}

// componentType returns the type a variable initializer nested one level
// deeper than t should have: for an ArrayType that's its component, and for
// anything else (including Any, if recovery produced it) it's t itself, so
// callers can always recurse one level into an array initializer without a
// type assertion failing.
func componentType(t Type) Type {
	if arr, ok := t.(ArrayType); ok {
		return arr.Component
	}
	return t
}
