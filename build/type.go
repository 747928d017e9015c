package build

import (
	"strings"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// lowerType lowers a CST type node into an ast.TypeAnnotation, resolving
// named types IMMEDIATELY against the current TypeEnv scope per the
// strategy matrix: a name found in scope or the builtin
// table gets State == Immediate; a name not in scope (one no declaration
// introduces, or a type alias used before its `type` declaration) gets
// State == Partial with itself recorded in UnresolvedNames. It stays
// Partial: resolveDeferred revisits expression types only, never type
// annotations.
func (b *Builder) lowerType(n *cst.Node) *ast.TypeAnnotation {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case cst.NamedType:
		return b.lowerNamedType(n)
	case cst.RefinedType:
		return b.lowerRefinedType(n)
	case cst.ListType:
		t := &ast.TypeAnnotation{Shape: ast.ShapeList, State: ast.Immediate}
		if inner := findAnyTypeChild(n); inner != nil {
			t.Element = b.lowerType(inner)
		}
		return t
	case cst.DictType:
		t := &ast.TypeAnnotation{Shape: ast.ShapeDict, State: ast.Immediate}
		types := typeOperands(n)
		if len(types) > 0 {
			t.Key = b.lowerType(types[0])
		}
		if len(types) > 1 {
			t.Value = b.lowerType(types[1])
		}
		return t
	case cst.FunctionType:
		t := &ast.TypeAnnotation{Shape: ast.ShapeFunction, State: ast.Immediate}
		if pl := n.FindChild(cst.ParamList); pl != nil {
			for _, p := range pl.FindChildren(cst.Param) {
				if tn := findAnyTypeChild(p); tn != nil {
					t.Params = append(t.Params, b.lowerType(tn))
				} else {
					t.Params = append(t.Params, nil)
				}
			}
		}
		if rt := findAnyTypeChild(n); rt != nil && wasAfterParamList(n, rt) {
			t.Returns = b.lowerType(rt)
		}
		return t
	case cst.UnionType:
		t := &ast.TypeAnnotation{Shape: ast.ShapeUnion, State: ast.Immediate}
		for _, m := range n.Children {
			if m.Node == nil || !isTypeKind(m.Node.Kind) {
				continue
			}
			member := b.lowerType(m.Node)
			if member != nil && member.State == ast.Partial {
				t.State = ast.Partial
				t.UnresolvedNames = append(t.UnresolvedNames, member.UnresolvedNames...)
			}
			t.Members = append(t.Members, member)
		}
		return t
	case cst.OptionalType:
		inner := findAnyTypeChild(n)
		t := &ast.TypeAnnotation{Shape: ast.ShapeOptional, State: ast.Immediate}
		t.Inner = b.lowerType(inner)
		return t
	case cst.FallibleType:
		inner := findAnyTypeChild(n)
		t := &ast.TypeAnnotation{Shape: ast.ShapeFallible, State: ast.Immediate}
		t.Inner = b.lowerType(inner)
		return t
	default:
		return nil
	}
}

// typeOperands returns the direct child type nodes of n, in source order.
func typeOperands(n *cst.Node) []*cst.Node {
	var out []*cst.Node
	for _, c := range n.Children {
		if c.Node != nil && isTypeKind(c.Node.Kind) {
			out = append(out, c.Node)
		}
	}
	return out
}

// wasAfterParamList reports whether rt appears after n's ParamList child,
// distinguishing a function type's return type from its own parameters'
// types (findAnyTypeChild alone can't tell them apart since both are type
// nodes under the same FunctionType parent).
func wasAfterParamList(n *cst.Node, rt *cst.Node) bool {
	seenParams := false
	for _, c := range n.Children {
		if c.Node == nil {
			continue
		}
		if c.Node.Kind == cst.ParamList {
			seenParams = true
			continue
		}
		if c.Node == rt {
			return seenParams
		}
	}
	return false
}

func (b *Builder) lowerNamedType(n *cst.Node) *ast.TypeAnnotation {
	name := qualifiedTypeName(n)
	if t, ok := b.env.Lookup(name); ok {
		return t
	}
	return &ast.TypeAnnotation{
		Name:            name,
		Shape:           ast.ShapeUserDefined,
		State:           ast.Partial,
		UnresolvedNames: []string{name},
	}
}

func (b *Builder) lowerRefinedType(n *cst.Node) *ast.TypeAnnotation {
	base := &ast.TypeAnnotation{
		Name:  qualifiedTypeName(n),
		Shape: ast.ShapeRefined,
		State: ast.Immediate,
	}
	for _, c := range n.Children {
		if c.Node == nil || !isTypeKind(c.Node.Kind) {
			continue
		}
		arg := b.lowerType(c.Node)
		if arg != nil && arg.State == ast.Partial {
			base.State = ast.Partial
			base.UnresolvedNames = append(base.UnresolvedNames, arg.UnresolvedNames...)
		}
		base.TypeArgs = append(base.TypeArgs, arg)
	}
	if resolved, ok := b.env.Lookup(base.Name); ok && base.State == ast.Immediate {
		base.Shape = ast.ShapeRefined
		base.Members = []*ast.TypeAnnotation{resolved}
	}
	return base
}

// qualifiedTypeName joins a (possibly dotted) NamedType/RefinedType node's
// leading name run, e.g. "pkg.Name" or the builtin keyword "int", into a
// single lookup key. The leading token may be a plain Ident (a
// user-defined type) or one of the builtin type keywords (KwInt,
// KwStrType, ...) — either way its Lexeme is the name TypeEnv.Lookup
// expects; only the generic-argument delimiters ('<', ',', '>') that can
// follow in a RefinedType need to be excluded from the join.
func qualifiedTypeName(n *cst.Node) string {
	var parts []string
	for _, c := range n.Children {
		if c.Token == nil || !c.Token.IsSignificant() {
			continue
		}
		switch c.Token.Kind {
		case token.Dot, token.Less, token.Greater, token.Comma:
			continue
		}
		parts = append(parts, c.Token.Lexeme)
	}
	return strings.Join(parts, ".")
}
