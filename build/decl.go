package build

import (
	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// lowerDecl dispatches a top-level or member CST node to its matching
// lowering rule. Grammar productions the parser falls back to at module
// scope (a bare statement or expression at top level) are lowered to an
// ErrorDecl rather than silently dropped, keeping Program structurally
// complete.
func (b *Builder) lowerDecl(n *cst.Node) ast.Decl {
	if n.Variant == cst.Missing {
		d := &ast.ErrorDecl{Message: "missing declaration"}
		d.SetSpan(n.Span)
		return d
	}

	switch n.Kind {
	case cst.VarDecl:
		return b.lowerVarDecl(n)
	case cst.FnDecl:
		return b.lowerFnDecl(n)
	case cst.ClassDecl:
		return b.lowerClassDecl(n)
	case cst.TraitDecl:
		return b.lowerTraitDecl(n)
	case cst.InterfaceDecl:
		return b.lowerInterfaceDecl(n)
	case cst.ModuleDecl:
		return b.lowerModuleDecl(n)
	case cst.TypeDecl:
		return b.lowerTypeDecl(n)
	case cst.EnumDecl:
		return b.lowerEnumDecl(n)
	case cst.ImportDecl:
		return b.lowerImportDecl(n)
	case cst.ErrorNode:
		d := &ast.ErrorDecl{Message: n.Message}
		d.SetSpan(n.Span)
		return d
	default:
		b.reportf(n.Span, "B001", "statement not allowed at module scope: %s", n.Kind)
		d := &ast.ErrorDecl{Message: "unexpected " + n.Kind.String() + " at module scope"}
		d.SetSpan(n.Span)
		return d
	}
}

// leadingVisibility scans the modifier keyword tokens a declaration's
// CST node may carry before its real content (public/private/protected
// and static), translating them into ast.Visibility and a static flag.
func leadingVisibility(n *cst.Node) (ast.Visibility, bool) {
	vis := ast.VisDefault
	static := false
	for _, c := range n.Children {
		if c.Token == nil || !c.Token.IsSignificant() {
			continue
		}
		switch c.Token.Kind {
		case token.KwPublic:
			vis = ast.VisPublic
		case token.KwPrivate:
			vis = ast.VisPrivate
		case token.KwProtected:
			vis = ast.VisProtected
		case token.KwStatic:
			static = true
		default:
			return vis, static
		}
	}
	return vis, static
}

// firstIdent returns the lexeme of the first significant Ident token
// directly under n, skipping any leading keyword/modifier tokens.
func firstIdent(n *cst.Node) string {
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.Ident {
			return c.Token.Lexeme
		}
	}
	return ""
}

func (b *Builder) lowerVarDecl(n *cst.Node) *ast.VarDecl {
	vis, static := leadingVisibility(n)
	d := &ast.VarDecl{Name: firstIdent(n), Visibility: vis, Static: static}
	d.SetSpan(n.Span)

	isConst := false
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.KwConst {
			isConst = true
		}
	}
	d.IsConst = isConst

	if tn := n.FindChild(cst.NamedType); tn != nil {
		d.Type = b.lowerType(tn)
	} else if tn := findAnyTypeChild(n); tn != nil {
		d.Type = b.lowerType(tn)
	}
	if ex := findExprChild(n); ex != nil {
		d.Value = b.lowerExpr(ex)
	}

	if d.Type != nil {
		b.env.Declare(d.Name, d.Type)
	} else if d.Value != nil {
		// No annotation: the declared name's type is only knowable once
		// the initializer's type resolves, so defer it too.
		b.deferExprThen(d.Value, func(t *ast.TypeAnnotation) { d.Type = t })
	}
	return d
}

func (b *Builder) lowerFnDecl(n *cst.Node) *ast.FnDecl {
	vis, static := leadingVisibility(n)
	d := &ast.FnDecl{Name: firstIdent(n), Visibility: vis, Static: static}
	d.SetSpan(n.Span)

	b.env.Push()
	defer b.env.Pop()

	if pl := n.FindChild(cst.ParamList); pl != nil {
		d.Params = b.lowerParamList(pl)
	}
	if rt := findReturnTypeChild(n); rt != nil {
		d.ReturnType = b.lowerType(rt)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		d.Body = b.lowerBlockStmts(blk)
	}
	return d
}

// findReturnTypeChild returns the type node following the ParamList (the
// `-> TYPE` clause), distinguishing it from a class's `extends`/`implements`
// types which share no common parent kind.
func findReturnTypeChild(n *cst.Node) *cst.Node {
	seenParams := false
	for _, c := range n.Children {
		if c.Node == nil {
			continue
		}
		if c.Node.Kind == cst.ParamList {
			seenParams = true
			continue
		}
		if seenParams && isTypeKind(c.Node.Kind) {
			return c.Node
		}
	}
	return nil
}

func findAnyTypeChild(n *cst.Node) *cst.Node {
	for _, c := range n.Children {
		if c.Node != nil && isTypeKind(c.Node.Kind) {
			return c.Node
		}
	}
	return nil
}

func findExprChild(n *cst.Node) *cst.Node {
	for _, c := range n.Children {
		if c.Node != nil && isExprKind(c.Node.Kind) {
			return c.Node
		}
	}
	return nil
}

func isTypeKind(k cst.Kind) bool {
	switch k {
	case cst.NamedType, cst.ListType, cst.DictType, cst.FunctionType,
		cst.UnionType, cst.OptionalType, cst.FallibleType, cst.RefinedType:
		return true
	}
	return false
}

func isExprKind(k cst.Kind) bool {
	switch k {
	case cst.AssignExpr, cst.BinaryExpr, cst.UnaryExpr, cst.CallExpr, cst.IndexExpr,
		cst.FieldExpr, cst.TernaryExpr, cst.RangeExpr, cst.AwaitExpr, cst.LambdaExpr,
		cst.ListExpr, cst.DictExpr, cst.GroupExpr, cst.IdentExpr, cst.LiteralExpr,
		cst.StringInterpExpr, cst.ThisExpr, cst.SuperExpr, cst.ErrorNode:
		return true
	}
	return false
}

func (b *Builder) lowerParamList(n *cst.Node) []ast.Param {
	var out []ast.Param
	for _, p := range n.FindChildren(cst.Param) {
		out = append(out, b.lowerParam(p))
	}
	return out
}

func (b *Builder) lowerParam(n *cst.Node) ast.Param {
	p := ast.Param{Name: firstIdent(n)}
	p.SetSpan(n.Span)
	if tn := findAnyTypeChild(n); tn != nil {
		p.Type = b.lowerType(tn)
	}
	if ex := findExprChild(n); ex != nil {
		p.Default = b.lowerExpr(ex)
	}
	if p.Type != nil {
		b.env.Declare(p.Name, p.Type)
	}
	return p
}

func (b *Builder) lowerClassDecl(n *cst.Node) *ast.ClassDecl {
	d := &ast.ClassDecl{Name: firstIdent(n)}
	d.SetSpan(n.Span)

	types := n.FindChildren(cst.NamedType)
	types = append(types, n.FindChildren(cst.RefinedType)...)
	if len(types) > 0 {
		d.Extends = b.lowerType(types[0])
		for _, t := range types[1:] {
			d.Implements = append(d.Implements, b.lowerType(t))
		}
	}

	b.env.Push()
	defer b.env.Pop()
	for _, f := range n.FindChildren(cst.FieldDecl) {
		field := b.lowerFieldDecl(f)
		d.Fields = append(d.Fields, field)
		// Declared into the class's own scope (not the method's nested
		// one) so every method body can reference a field by its bare
		// name without an explicit `this.` qualifier, matching the
		// language's implicit-this member lookup.
		b.env.Declare(field.Name, field.Type)
	}
	for _, m := range n.FindChildren(cst.MethodDecl) {
		method := b.lowerMethodDecl(m)
		d.Methods = append(d.Methods, method)
	}
	return d
}

func (b *Builder) lowerFieldDecl(n *cst.Node) *ast.Field {
	vis, static := leadingVisibility(n)
	f := &ast.Field{Name: firstIdent(n), Visibility: vis, Static: static}
	f.SetSpan(n.Span)
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.KwConst {
			f.IsConst = true
		}
	}
	if tn := findAnyTypeChild(n); tn != nil {
		f.Type = b.lowerType(tn)
	}
	if ex := findExprChild(n); ex != nil {
		f.Default = b.lowerExpr(ex)
	}
	return f
}

func (b *Builder) lowerMethodDecl(n *cst.Node) *ast.FnDecl {
	vis, static := leadingVisibility(n)
	m := &ast.FnDecl{Name: firstIdent(n), Visibility: vis, Static: static}
	m.SetSpan(n.Span)

	b.env.Push()
	defer b.env.Pop()
	if pl := n.FindChild(cst.ParamList); pl != nil {
		m.Params = b.lowerParamList(pl)
	}
	if rt := findReturnTypeChild(n); rt != nil {
		m.ReturnType = b.lowerType(rt)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		m.Body = b.lowerBlockStmts(blk)
	}
	return m
}

func (b *Builder) lowerTraitDecl(n *cst.Node) *ast.TraitDecl {
	d := &ast.TraitDecl{Name: firstIdent(n)}
	d.SetSpan(n.Span)
	for _, m := range n.FindChildren(cst.MethodDecl) {
		d.Methods = append(d.Methods, b.lowerMethodDecl(m))
	}
	return d
}

func (b *Builder) lowerInterfaceDecl(n *cst.Node) *ast.InterfaceDecl {
	d := &ast.InterfaceDecl{Name: firstIdent(n)}
	d.SetSpan(n.Span)
	for _, m := range n.FindChildren(cst.MethodDecl) {
		d.Methods = append(d.Methods, b.lowerMethodDecl(m))
	}
	return d
}

func (b *Builder) lowerModuleDecl(n *cst.Node) *ast.ModuleDecl {
	d := &ast.ModuleDecl{Name: firstIdent(n)}
	d.SetSpan(n.Span)
	b.env.Push()
	defer b.env.Pop()
	for _, c := range n.Children {
		if c.Node == nil || !isDeclKind(c.Node.Kind) {
			continue
		}
		d.Decls = append(d.Decls, b.lowerDecl(c.Node))
	}
	return d
}

func isDeclKind(k cst.Kind) bool {
	switch k {
	case cst.VarDecl, cst.FnDecl, cst.ClassDecl, cst.TraitDecl, cst.InterfaceDecl,
		cst.ModuleDecl, cst.TypeDecl, cst.EnumDecl, cst.ImportDecl, cst.ErrorNode:
		return true
	}
	return false
}

func (b *Builder) lowerTypeDecl(n *cst.Node) *ast.TypeDecl {
	d := &ast.TypeDecl{Name: firstIdent(n)}
	d.SetSpan(n.Span)
	if tn := findAnyTypeChild(n); tn != nil {
		d.Type = b.lowerType(tn)
		b.env.Declare(d.Name, d.Type)
	}
	return d
}

func (b *Builder) lowerEnumDecl(n *cst.Node) *ast.EnumDecl {
	d := &ast.EnumDecl{Name: firstIdent(n)}
	d.SetSpan(n.Span)

	var variant *ast.EnumVariant
	for _, c := range n.Children {
		switch {
		case c.Token != nil && c.Token.Kind == token.Ident:
			if variant != nil {
				d.Variants = append(d.Variants, *variant)
			}
			variant = &ast.EnumVariant{Name: c.Token.Lexeme}
		case c.Node != nil && c.Node.Kind == cst.ParamList:
			if variant != nil {
				variant.Params = b.lowerParamList(c.Node)
			}
		}
	}
	if variant != nil {
		d.Variants = append(d.Variants, *variant)
	}
	return d
}

func (b *Builder) lowerImportDecl(n *cst.Node) *ast.ImportDecl {
	d := &ast.ImportDecl{}
	d.SetSpan(n.Span)
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.Ident {
			d.Path = append(d.Path, c.Token.Lexeme)
		}
	}
	return d
}
