package build

import (
	"strings"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// binaryOpTable maps an operator token's Kind to the ast.BinaryOp it
// lowers to. BinaryExpr's CST shape is `left OP right` for every
// precedence level the parser's loop climbs (or/and/equality/comparison/
// term/factor/power), so a single table covers all of them.
var binaryOpTable = map[token.Kind]ast.BinaryOp{
	token.Plus:      ast.OpAdd,
	token.Minus:     ast.OpSub,
	token.Star:      ast.OpMul,
	token.Slash:     ast.OpDiv,
	token.Percent:   ast.OpMod,
	token.StarStar:  ast.OpPow,
	token.Eq:        ast.OpEq,
	token.NotEq:     ast.OpNotEq,
	token.Less:      ast.OpLess,
	token.LessEq:    ast.OpLessEq,
	token.Greater:   ast.OpGreater,
	token.GreaterEq: ast.OpGreaterEq,
	token.AndAnd:    ast.OpAnd,
	token.OrOr:      ast.OpOr,
}

var unaryOpTable = map[token.Kind]ast.UnaryOp{
	token.Minus: ast.OpNeg,
	token.Bang:  ast.OpNot,
	token.Tilde: ast.OpBitNot,
}

var assignOpTable = map[token.Kind]ast.AssignOp{
	token.Assign:                 ast.AssignPlain,
	token.PlusAssign:             ast.AssignAdd,
	token.MinusAssign:            ast.AssignSub,
	token.StarAssign:             ast.AssignMul,
	token.SlashAssign:            ast.AssignDiv,
	token.PercentAssign:          ast.AssignMod,
	token.QuestionQuestionAssign: ast.AssignNullCoalesce,
}

// lowerExpr dispatches a CST expression node to its lowering rule. Apart
// from IdentExpr (below), no expression node leaves this pass carrying a
// real resolved type. Literal, string-interpolation, binary, unary,
// assignment, ternary, call, index, lambda and list expressions get a
// "deferred_N" placeholder and an entry on b.deferred, which
// resolveDeferred settles once the whole program's declaration-site
// types are known. Range, await, field, dict, this and super expressions
// and ErrorExpr placeholders get neither: their ResolvedType stays nil.
// IdentExpr's "type" is
// just a read of a name already declared (a var, a param, a field) —
// if that name is still in scope, reusing its already-IMMEDIATE type
// is a lookup, not inference, so it's set directly rather than deferred.
func (b *Builder) lowerExpr(n *cst.Node) ast.Expr {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case cst.LiteralExpr:
		return b.lowerLiteralExpr(n)
	case cst.StringInterpExpr:
		return b.lowerStringInterpExpr(n)
	case cst.IdentExpr:
		return b.lowerIdentExpr(n)
	case cst.ThisExpr:
		e := &ast.ThisExpr{}
		e.SetSpan(n.Span)
		return e
	case cst.SuperExpr:
		e := &ast.SuperExpr{}
		e.SetSpan(n.Span)
		return e
	case cst.GroupExpr:
		if inner := findExprChild(n); inner != nil {
			return b.lowerExpr(inner)
		}
		return b.errorExpr(n, "empty parenthesized expression")
	case cst.BinaryExpr:
		return b.lowerBinaryExpr(n)
	case cst.UnaryExpr:
		return b.lowerUnaryExpr(n)
	case cst.AssignExpr:
		return b.lowerAssignExpr(n)
	case cst.TernaryExpr:
		return b.lowerTernaryExpr(n)
	case cst.RangeExpr:
		return b.lowerRangeExpr(n)
	case cst.AwaitExpr:
		return b.lowerAwaitExpr(n)
	case cst.CallExpr:
		return b.lowerCallExpr(n)
	case cst.IndexExpr:
		return b.lowerIndexExpr(n)
	case cst.FieldExpr:
		return b.lowerFieldExpr(n)
	case cst.LambdaExpr:
		return b.lowerLambdaExpr(n)
	case cst.ListExpr:
		return b.lowerListExpr(n)
	case cst.DictExpr:
		return b.lowerDictExpr(n)
	case cst.ErrorNode:
		return b.errorExpr(n, n.Message)
	default:
		return b.errorExpr(n, "unrecognized expression")
	}
}

func (b *Builder) errorExpr(n *cst.Node, msg string) *ast.ErrorExpr {
	e := &ast.ErrorExpr{Message: msg}
	e.SetSpan(n.Span)
	return e
}

func significantToken(n *cst.Node) *token.Token {
	for _, c := range n.Children {
		if c.Token != nil && c.Token.IsSignificant() {
			return c.Token
		}
	}
	return nil
}

func (b *Builder) lowerLiteralExpr(n *cst.Node) *ast.LiteralExpr {
	tok := significantToken(n)
	e := &ast.LiteralExpr{}
	e.SetSpan(n.Span)
	if tok != nil {
		e.Kind, e.Text = literalKindAndText(*tok)
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

// lowerStringInterpExpr walks a StringInterpExpr node's children in source
// order. The scanner already split the lexeme into real tokens — an
// alternating Str/InterpolationStart/.../InterpolationEnd stream with
// balanced-brace tracking (scanner.go's strFrame) — and the parser already
// parsed each embedded run into its own expression subtree (parseStringExpr
// in parser/expr.go), so lowering here is a walk, not a re-lex: each Str
// child becomes a literal part with its bounding quotes stripped, each
// expression child is lowered through the normal b.lowerExpr path.
func (b *Builder) lowerStringInterpExpr(n *cst.Node) *ast.StringInterpExpr {
	e := &ast.StringInterpExpr{}
	e.SetSpan(n.Span)
	for _, c := range n.Children {
		switch {
		case c.Token != nil && c.Token.Kind == token.Str:
			e.Parts = append(e.Parts, ast.StringInterpPart{Literal: trimStringQuotes(c.Token.Lexeme)})
		case c.Node != nil && isExprKind(c.Node.Kind):
			e.Parts = append(e.Parts, ast.StringInterpPart{Expr: b.lowerExpr(c.Node)})
		}
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

// trimStringQuotes strips whichever of the leading/trailing '"' a Str
// segment carries — the first and last segments of an interpolated string
// keep the literal quote from the scanner, interior segments (between two
// interpolations) carry neither.
func trimStringQuotes(lexeme string) string {
	lexeme = strings.TrimPrefix(lexeme, `"`)
	lexeme = strings.TrimSuffix(lexeme, `"`)
	return lexeme
}

func (b *Builder) lowerIdentExpr(n *cst.Node) *ast.IdentExpr {
	tok := significantToken(n)
	e := &ast.IdentExpr{}
	e.SetSpan(n.Span)
	if tok != nil {
		e.Name = tok.Lexeme
	}
	if t, ok := b.env.Lookup(e.Name); ok {
		e.SetResolvedType(t)
	} else {
		b.deferExpr(e)
	}
	return e
}

func (b *Builder) lowerBinaryExpr(n *cst.Node) *ast.BinaryExpr {
	e := &ast.BinaryExpr{}
	e.SetSpan(n.Span)
	operands := exprOperands(n)
	if len(operands) > 0 {
		e.Left = b.lowerExpr(operands[0])
	}
	if len(operands) > 1 {
		e.Right = b.lowerExpr(operands[1])
	}
	if tok := operatorToken(n, binaryOpTable); tok != nil {
		e.Op = binaryOpTable[tok.Kind]
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

// exprOperands returns the direct child expression nodes of n, in source
// order — used for binary/ternary/range nodes whose CST shape is a flat
// `left OP right` (or `cond ? then : else`) sequence.
func exprOperands(n *cst.Node) []*cst.Node {
	var out []*cst.Node
	for _, c := range n.Children {
		if c.Node != nil && isExprKind(c.Node.Kind) {
			out = append(out, c.Node)
		}
	}
	return out
}

// operatorToken returns the first significant token under n whose Kind is
// a key of table.
func operatorToken(n *cst.Node, table map[token.Kind]ast.BinaryOp) *token.Token {
	for _, c := range n.Children {
		if c.Token == nil || !c.Token.IsSignificant() {
			continue
		}
		if _, ok := table[c.Token.Kind]; ok {
			return c.Token
		}
	}
	return nil
}

func (b *Builder) lowerUnaryExpr(n *cst.Node) *ast.UnaryExpr {
	e := &ast.UnaryExpr{}
	e.SetSpan(n.Span)
	for _, c := range n.Children {
		if c.Token != nil && c.Token.IsSignificant() {
			if op, ok := unaryOpTable[c.Token.Kind]; ok {
				e.Op = op
			}
		}
	}
	if operand := findExprChild(n); operand != nil {
		e.Operand = b.lowerExpr(operand)
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerAssignExpr(n *cst.Node) *ast.AssignExpr {
	e := &ast.AssignExpr{}
	e.SetSpan(n.Span)
	operands := exprOperands(n)
	if len(operands) > 0 {
		e.Target = b.lowerExpr(operands[0])
	}
	if len(operands) > 1 {
		e.Value = b.lowerExpr(operands[1])
	}
	for _, c := range n.Children {
		if c.Token != nil && c.Token.IsSignificant() {
			if op, ok := assignOpTable[c.Token.Kind]; ok {
				e.Op = op
			}
		}
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerTernaryExpr(n *cst.Node) *ast.TernaryExpr {
	e := &ast.TernaryExpr{}
	e.SetSpan(n.Span)
	operands := exprOperands(n)
	if len(operands) > 0 {
		e.Cond = b.lowerExpr(operands[0])
	}
	if len(operands) > 1 {
		e.Then = b.lowerExpr(operands[1])
	}
	if len(operands) > 2 {
		e.Else = b.lowerExpr(operands[2])
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerRangeExpr(n *cst.Node) *ast.RangeExpr {
	e := &ast.RangeExpr{}
	e.SetSpan(n.Span)
	operands := exprOperands(n)
	if len(operands) > 0 {
		e.Start = b.lowerExpr(operands[0])
	}
	if len(operands) > 1 {
		e.End = b.lowerExpr(operands[1])
	}
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.DotDotDot {
			e.Inclusive = true
		}
	}
	return e
}

func (b *Builder) lowerAwaitExpr(n *cst.Node) *ast.AwaitExpr {
	e := &ast.AwaitExpr{}
	e.SetSpan(n.Span)
	if operand := findExprChild(n); operand != nil {
		e.Operand = b.lowerExpr(operand)
	}
	return e
}

func (b *Builder) lowerCallExpr(n *cst.Node) *ast.CallExpr {
	e := &ast.CallExpr{}
	e.SetSpan(n.Span)
	if callee := findExprChild(n); callee != nil {
		e.Callee = b.lowerExpr(callee)
	}
	if al := n.FindChild(cst.ArgList); al != nil {
		for _, arg := range al.FindChildren(cst.Arg) {
			if ex := findExprChild(arg); ex != nil {
				e.Args = append(e.Args, b.lowerExpr(ex))
			}
		}
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerIndexExpr(n *cst.Node) *ast.IndexExpr {
	e := &ast.IndexExpr{}
	e.SetSpan(n.Span)
	operands := exprOperands(n)
	if len(operands) > 0 {
		e.Target = b.lowerExpr(operands[0])
	}
	if len(operands) > 1 {
		e.Index = b.lowerExpr(operands[1])
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerFieldExpr(n *cst.Node) *ast.FieldExpr {
	e := &ast.FieldExpr{}
	e.SetSpan(n.Span)
	if target := findExprChild(n); target != nil {
		e.Target = b.lowerExpr(target)
	}
	// The field name is the last significant Ident token (the first Ident
	// belongs to the target if the target itself collapsed to a bare
	// IdentExpr token sharing this node's Children, which parseCall's
	// postfix-wrap loop never does — target is always already wrapped by
	// the time '.' NAME is appended, so any direct Ident child here is
	// the field name).
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.Ident {
			e.Name = c.Token.Lexeme
		}
	}
	return e
}

func (b *Builder) lowerLambdaExpr(n *cst.Node) *ast.LambdaExpr {
	e := &ast.LambdaExpr{}
	e.SetSpan(n.Span)
	b.env.Push()
	defer b.env.Pop()
	if pl := n.FindChild(cst.ParamList); pl != nil {
		e.Params = b.lowerParamList(pl)
	}
	if rt := findReturnTypeChild(n); rt != nil {
		e.ReturnType = b.lowerType(rt)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		e.Body = b.lowerBlockStmts(blk)
	} else if ex := findExprChild(n); ex != nil {
		e.BodyExpr = b.lowerExpr(ex)
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerListExpr(n *cst.Node) *ast.ListExpr {
	e := &ast.ListExpr{}
	e.SetSpan(n.Span)
	for _, c := range n.Children {
		if c.Node != nil && isExprKind(c.Node.Kind) {
			e.Elements = append(e.Elements, b.lowerExpr(c.Node))
		}
	}
	e.SetResolvedType(b.deferredPlaceholder())
	b.deferExpr(e)
	return e
}

func (b *Builder) lowerDictExpr(n *cst.Node) *ast.DictExpr {
	e := &ast.DictExpr{}
	e.SetSpan(n.Span)
	for _, entry := range n.FindChildren(cst.DictEntry) {
		operands := exprOperands(entry)
		var de ast.DictEntry
		if len(operands) > 0 {
			de.Key = b.lowerExpr(operands[0])
		}
		if len(operands) > 1 {
			de.Value = b.lowerExpr(operands[1])
		}
		e.Entries = append(e.Entries, de)
	}
	return e
}
