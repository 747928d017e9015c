package build

import (
	"fmt"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/token"
)

// deferredEntry is one entry in the builder's second-pass worklist: an
// expression whose TypeAnnotation couldn't be resolved immediately while
// lowering, paired with an optional callback to propagate the eventual
// result (e.g. back into an un-annotated var's Type field).
type deferredEntry struct {
	expr  ast.Expr
	span  token.Span
	after func(*ast.TypeAnnotation)
}

// deferExprThen records expr for the deferred-resolution pass and arranges
// for after to run once a type is found for it.
func (b *Builder) deferExprThen(expr ast.Expr, after func(*ast.TypeAnnotation)) {
	b.deferred = append(b.deferred, deferredEntry{expr: expr, span: expr.Span(), after: after})
}

// deferExpr records expr for the deferred pass with no propagation
// callback; resolveDeferred will still try to fill in expr's own
// ResolvedType.
func (b *Builder) deferExpr(expr ast.Expr) {
	b.deferred = append(b.deferred, deferredEntry{expr: expr, span: expr.Span()})
}

// deferredPlaceholder returns the next "deferred_N" TypeAnnotation: the
// marker an expression node carries the instant it's built, since the
// Builder itself never stamps an expression with a resolved type during
// lowering. resolveDeferred overwrites it once the second pass computes
// a real type; an entry that never resolves keeps the placeholder.
func (b *Builder) deferredPlaceholder() *ast.TypeAnnotation {
	b.deferredSeq++
	return &ast.TypeAnnotation{Name: fmt.Sprintf("deferred_%d", b.deferredSeq), State: ast.Deferred}
}

// resolveDeferred runs the builder's second pass: every expression whose
// resolution strategy was Deferred during lowering gets one
// more lookup attempt now that the whole program's declaration-site types
// are in scope. Entries that still can't resolve keep the ResolvedType
// lowering gave them (a deferred_N placeholder, or nil for an IdentExpr)
// and, for IDENT_EXPR leaves, are reported as an unresolved reference.
func (b *Builder) resolveDeferred() {
	for _, d := range b.deferred {
		t := b.resolveExprType(d.expr)
		if t == nil {
			continue
		}
		d.expr.SetResolvedType(t)
		if d.after != nil {
			d.after(t)
		}
	}
}

// resolveExprType computes the best-effort type of expr using only
// information available after the whole program has been lowered: the
// builder's root-scope TypeEnv (locals from the expression's own
// declaration have since gone out of scope, so this is necessarily an
// approximation for nested-scope identifiers — acceptable because the
// immediate-resolution pass already handled the cases that matter for
// diagnostics raised during parsing).
//
// An expr that already settled to a non-placeholder type — an IdentExpr
// whose name was still in scope when it was lowered, say — is returned
// as-is rather than re-derived, since re-deriving it here (after its
// scope popped) could fail even though the first pass already nailed it
// down correctly.
func (b *Builder) resolveExprType(e ast.Expr) *ast.TypeAnnotation {
	if t := e.ResolvedType(); t != nil && t.State != ast.Deferred {
		return t
	}
	switch x := e.(type) {
	case *ast.IdentExpr:
		if t, ok := b.env.Lookup(x.Name); ok {
			return t
		}
		b.reportf(x.Span(), "B010", "unresolved reference to %q", x.Name)
		return nil
	case *ast.LiteralExpr:
		return literalType(x.Kind)
	case *ast.BinaryExpr:
		if t := b.resolveExprType(x.Left); t != nil {
			return t
		}
		return b.resolveExprType(x.Right)
	case *ast.UnaryExpr:
		if x.Op == ast.OpNot {
			return ast.Builtin("bool")
		}
		return b.resolveExprType(x.Operand)
	case *ast.AssignExpr:
		return b.resolveExprType(x.Target)
	case *ast.TernaryExpr:
		if t := b.resolveExprType(x.Then); t != nil {
			return t
		}
		return b.resolveExprType(x.Else)
	case *ast.IndexExpr:
		if t := b.resolveExprType(x.Target); t != nil && t.Shape == ast.ShapeList {
			return t.Element
		}
		return nil
	case *ast.ListExpr:
		if len(x.Elements) == 0 {
			return nil
		}
		et := b.resolveExprType(x.Elements[0])
		if et == nil {
			return nil
		}
		return &ast.TypeAnnotation{Shape: ast.ShapeList, State: ast.Immediate, Element: et}
	case *ast.LambdaExpr:
		if x.ReturnType == nil {
			return nil
		}
		return &ast.TypeAnnotation{Shape: ast.ShapeFunction, State: ast.Immediate, Returns: x.ReturnType}
	case *ast.CallExpr:
		if callee, ok := x.Callee.(*ast.IdentExpr); ok {
			if t, ok := b.env.Lookup(callee.Name); ok && t.Shape == ast.ShapeFunction {
				return t.Returns
			}
		}
		return nil
	default:
		return nil
	}
}

func literalType(k ast.LiteralKind) *ast.TypeAnnotation {
	switch k {
	case ast.LiteralInt:
		return ast.Builtin("int")
	case ast.LiteralFloat:
		return ast.Builtin("float")
	case ast.LiteralString:
		return ast.Builtin("str")
	case ast.LiteralBool:
		return ast.Builtin("bool")
	default:
		return nil
	}
}
