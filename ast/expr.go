package ast

// Expr is any value-producing expression. Every Expr carries a Type
// pointer, populated per the resolution strategy (IMMEDIATE, DEFERRED,
// or PARTIAL) the builder assigns it — see TypeAnnotation and
// ResolutionState in type.go.
type Expr interface {
	Node
	exprNode()
	ResolvedType() *TypeAnnotation
	SetResolvedType(*TypeAnnotation)
}

type exprBase struct {
	base
	typ *TypeAnnotation
}

func (exprBase) exprNode()                            {}
func (e exprBase) ResolvedType() *TypeAnnotation       { return e.typ }
func (e *exprBase) SetResolvedType(t *TypeAnnotation)  { e.typ = t }

// LiteralKind tags what kind of constant a LiteralExpr holds.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNil
)

type LiteralExpr struct {
	exprBase
	Kind LiteralKind
	Text string // original lexeme, for lossless numeric formatting
}

// IdentExpr references a name resolved against the TypeEnv scope stack.
type IdentExpr struct {
	exprBase
	Name string
}

type ThisExpr struct{ exprBase }
type SuperExpr struct{ exprBase }

// BinaryOp enumerates the binary operators the parser's precedence chain
// recognizes.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAnd
	OpOr
)

type BinaryExpr struct {
	exprBase
	Op          BinaryOp
	Left, Right Expr
}

type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBitNot
)

type UnaryExpr struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignNullCoalesce
)

type AssignExpr struct {
	exprBase
	Op     AssignOp
	Target Expr
	Value  Expr
}

type TernaryExpr struct {
	exprBase
	Cond, Then, Else Expr
}

type RangeExpr struct {
	exprBase
	Start, End Expr
	Inclusive  bool // true for '...'
}

type AwaitExpr struct {
	exprBase
	Operand Expr
}

type CallExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

type IndexExpr struct {
	exprBase
	Target, Index Expr
}

type FieldExpr struct {
	exprBase
	Target Expr
	Name   string
}

type LambdaExpr struct {
	exprBase
	Params     []Param
	ReturnType *TypeAnnotation
	Body       []Stmt
	BodyExpr   Expr // set instead of Body for an expression-bodied lambda
}

type ListExpr struct {
	exprBase
	Elements []Expr
}

type DictEntry struct {
	Key, Value Expr
}

type DictExpr struct {
	exprBase
	Entries []DictEntry
}

// StringInterpExpr is a template string with embedded expressions,
// lowered to an ordered run of literal-text and expression parts.
type StringInterpExpr struct {
	exprBase
	Parts []StringInterpPart
}

type StringInterpPart struct {
	Literal string // set for a plain-text segment
	Expr    Expr   // set for an embedded "{expr}" segment
}

// ErrorExpr stands in for an expression the builder could not lower,
// keeping the surrounding tree well-typed; the builder leaves its
// ResolvedType nil.
type ErrorExpr struct {
	exprBase
	Message string
}
