// Package ast defines the abstract syntax tree: a trivia-free, normalized
// tree with its own type annotations, built independently of the cst
// package's node shapes rather than as thin views over CST pointers —
// trivia and exact source layout don't belong in a tree meant for type
// resolution and analysis.
package ast

import "github.com/lumenlang/lumen/token"

// Node is implemented by every AST node (declarations, statements,
// expressions, patterns, and type annotations).
type Node interface {
	Span() token.Span
	astNode()
}

type base struct {
	span token.Span
}

func (b base) Span() token.Span { return b.span }
func (base) astNode()           {}

// NewBase is used by the builder to stamp a node's source span.
func NewBase(span token.Span) base { return base{span: span} }

// SetSpan lets the builder backfill a span after constructing a node with
// its zero value (e.g. &Program{}) rather than threading NewBase through
// every literal.
func (b *base) SetSpan(span token.Span) { b.span = span }

// Program is the root of a lowered file.
type Program struct {
	base
	Decls []Decl
}

// Decl is any top-level or member declaration.
type Decl interface {
	Node
	declNode()
}

type declBase struct{ base }

func (declBase) declNode() {}

type Visibility uint8

const (
	VisDefault Visibility = iota
	VisPublic
	VisPrivate
	VisProtected
)

// VarDecl is `var NAME [: TYPE] [= EXPR]`.
type VarDecl struct {
	declBase
	Name       string
	Type       *TypeAnnotation // nil if omitted and not yet inferred
	Value      Expr            // nil if omitted
	IsConst    bool
	Visibility Visibility
	Static     bool
}

// Param is a single function/method parameter.
type Param struct {
	base
	Name    string
	Type    *TypeAnnotation
	Default Expr
}

// FnDecl is a function or method declaration.
type FnDecl struct {
	declBase
	Name       string
	Params     []Param
	ReturnType *TypeAnnotation
	Body       []Stmt // nil for a declaration-only signature (trait/interface member)
	Visibility Visibility
	Static     bool
}

// Field is a class/trait/interface field.
type Field struct {
	declBase
	Name       string
	Type       *TypeAnnotation
	Default    Expr
	Visibility Visibility
	Static     bool
	IsConst    bool
}

// ClassDecl is a class declaration with optional inheritance.
type ClassDecl struct {
	declBase
	Name       string
	Extends    *TypeAnnotation
	Implements []*TypeAnnotation
	Fields     []*Field
	Methods    []*FnDecl
}

// TraitDecl and InterfaceDecl share ClassDecl's member shape but carry no
// instance state of their own beyond method signatures.
type TraitDecl struct {
	declBase
	Name    string
	Methods []*FnDecl
}

type InterfaceDecl struct {
	declBase
	Name    string
	Methods []*FnDecl
}

// ModuleDecl groups declarations under a namespace.
type ModuleDecl struct {
	declBase
	Name  string
	Decls []Decl
}

// TypeDecl is a type alias: `type NAME = TYPE`.
type TypeDecl struct {
	declBase
	Name string
	Type *TypeAnnotation
}

// EnumVariant is one case of an EnumDecl.
type EnumVariant struct {
	Name   string
	Params []Param
}

// EnumDecl is an algebraic enum declaration.
type EnumDecl struct {
	declBase
	Name     string
	Variants []EnumVariant
}

// ImportDecl is `import a.b.c`.
type ImportDecl struct {
	declBase
	Path []string
}

// ErrorDecl stands in for a declaration the builder could not lower,
// keeping the surrounding Program structurally valid — the same error
// tolerance the parser extends to the CST, carried into the AST.
type ErrorDecl struct {
	declBase
	Message string
}
