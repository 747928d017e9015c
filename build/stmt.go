package build

import (
	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/cst"
)

// lowerBlockStmts lowers a Block CST node's statement children, pushing
// and popping a TypeEnv scope around the block so locals declared inside
// don't leak into the enclosing one.
func (b *Builder) lowerBlockStmts(n *cst.Node) []ast.Stmt {
	blk := b.lowerBlock(n)
	return blk.Stmts
}

func (b *Builder) lowerBlock(n *cst.Node) *ast.Block {
	blk := &ast.Block{}
	blk.SetSpan(n.Span)
	b.env.Push()
	defer b.env.Pop()
	for _, c := range n.Children {
		if c.Node == nil || !isStmtKind(c.Node.Kind) {
			continue
		}
		blk.Stmts = append(blk.Stmts, b.lowerStmt(c.Node))
	}
	return blk
}

func isStmtKind(k cst.Kind) bool {
	switch k {
	case cst.Block, cst.IfStmt, cst.WhileStmt, cst.ForStmt, cst.IterStmt, cst.MatchStmt,
		cst.AttemptStmt, cst.ParallelStmt, cst.ConcurrentStmt, cst.UnsafeStmt,
		cst.ContractStmt, cst.ComptimeStmt, cst.ReturnStmt, cst.BreakStmt,
		cst.ContinueStmt, cst.PrintStmt, cst.ExprStmt, cst.VarDecl, cst.ErrorNode:
		return true
	}
	return false
}

// lowerStmt dispatches a CST statement node to its lowering rule.
func (b *Builder) lowerStmt(n *cst.Node) ast.Stmt {
	switch n.Kind {
	case cst.Block:
		return b.lowerBlock(n)
	case cst.IfStmt:
		return b.lowerIfStmt(n)
	case cst.WhileStmt:
		return b.lowerWhileStmt(n)
	case cst.ForStmt:
		return b.lowerForStmt(n)
	case cst.IterStmt:
		return b.lowerIterStmt(n)
	case cst.MatchStmt:
		return b.lowerMatchStmt(n)
	case cst.AttemptStmt:
		return b.lowerAttemptStmt(n)
	case cst.ParallelStmt:
		s := &ast.ParallelStmt{Body: b.lowerBlockFromFirstChild(n)}
		s.SetSpan(n.Span)
		return s
	case cst.ConcurrentStmt:
		s := &ast.ConcurrentStmt{Body: b.lowerBlockFromFirstChild(n)}
		s.SetSpan(n.Span)
		return s
	case cst.UnsafeStmt:
		s := &ast.UnsafeStmt{Body: b.lowerBlockFromFirstChild(n)}
		s.SetSpan(n.Span)
		return s
	case cst.ContractStmt:
		s := &ast.ContractStmt{Body: b.lowerBlockFromFirstChild(n)}
		s.SetSpan(n.Span)
		return s
	case cst.ComptimeStmt:
		s := &ast.ComptimeStmt{Body: b.lowerBlockFromFirstChild(n)}
		s.SetSpan(n.Span)
		return s
	case cst.ReturnStmt:
		s := &ast.ReturnStmt{}
		s.SetSpan(n.Span)
		if ex := findExprChild(n); ex != nil {
			s.Value = b.lowerExpr(ex)
		}
		return s
	case cst.BreakStmt:
		s := &ast.BreakStmt{}
		s.SetSpan(n.Span)
		return s
	case cst.ContinueStmt:
		s := &ast.ContinueStmt{}
		s.SetSpan(n.Span)
		return s
	case cst.PrintStmt:
		s := &ast.PrintStmt{}
		s.SetSpan(n.Span)
		if al := n.FindChild(cst.ArgList); al != nil {
			for _, arg := range al.FindChildren(cst.Arg) {
				if ex := findExprChild(arg); ex != nil {
					s.Args = append(s.Args, b.lowerExpr(ex))
				}
			}
		}
		return s
	case cst.ExprStmt:
		s := &ast.ExprStmt{}
		s.SetSpan(n.Span)
		if ex := findExprChild(n); ex != nil {
			s.Expr = b.lowerExpr(ex)
		}
		return s
	case cst.VarDecl:
		s := &ast.VarDeclStmt{Decl: b.lowerVarDecl(n)}
		s.SetSpan(n.Span)
		return s
	case cst.ErrorNode:
		s := &ast.ErrorStmt{Message: n.Message}
		s.SetSpan(n.Span)
		return s
	default:
		s := &ast.ErrorStmt{Message: "unrecognized statement: " + n.Kind.String()}
		s.SetSpan(n.Span)
		return s
	}
}

func (b *Builder) lowerBlockFromFirstChild(n *cst.Node) *ast.Block {
	if blk := n.FindChild(cst.Block); blk != nil {
		return b.lowerBlock(blk)
	}
	empty := &ast.Block{}
	empty.SetSpan(n.Span)
	return empty
}

func (b *Builder) lowerIfStmt(n *cst.Node) *ast.IfStmt {
	s := &ast.IfStmt{}
	s.SetSpan(n.Span)
	if cond := findExprChild(n); cond != nil {
		s.Cond = b.lowerExpr(cond)
	}
	blocks := n.FindChildren(cst.Block)
	if len(blocks) > 0 {
		s.Then = b.lowerBlock(blocks[0])
	}
	if len(blocks) > 1 {
		s.Else = b.lowerBlock(blocks[1])
	} else if nested := n.FindChild(cst.IfStmt); nested != nil {
		s.Else = b.lowerIfStmt(nested)
	}
	return s
}

func (b *Builder) lowerWhileStmt(n *cst.Node) *ast.WhileStmt {
	s := &ast.WhileStmt{}
	s.SetSpan(n.Span)
	if cond := findExprChild(n); cond != nil {
		s.Cond = b.lowerExpr(cond)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		s.Body = b.lowerBlock(blk)
	}
	return s
}

func (b *Builder) lowerForStmt(n *cst.Node) *ast.ForStmt {
	s := &ast.ForStmt{}
	s.SetSpan(n.Span)
	b.env.Push()
	defer b.env.Pop()
	if pat := findPatternChild(n); pat != nil {
		s.Pattern = b.lowerPattern(pat)
	}
	if it := findExprChild(n); it != nil {
		s.Iter = b.lowerExpr(it)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		s.Body = b.lowerBlock(blk)
	}
	return s
}

func (b *Builder) lowerIterStmt(n *cst.Node) *ast.IterStmt {
	s := &ast.IterStmt{}
	s.SetSpan(n.Span)
	b.env.Push()
	defer b.env.Pop()
	if pat := findPatternChild(n); pat != nil {
		s.Pattern = b.lowerPattern(pat)
	}
	if it := findExprChild(n); it != nil {
		s.Iter = b.lowerExpr(it)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		s.Body = b.lowerBlock(blk)
	}
	return s
}

func findPatternChild(n *cst.Node) *cst.Node {
	for _, c := range n.Children {
		if c.Node == nil {
			continue
		}
		switch c.Node.Kind {
		case cst.IdentPattern, cst.WildcardPattern, cst.LiteralPattern, cst.TuplePattern:
			return c.Node
		}
	}
	return nil
}

func (b *Builder) lowerMatchStmt(n *cst.Node) *ast.MatchStmt {
	s := &ast.MatchStmt{}
	s.SetSpan(n.Span)
	if subj := findExprChild(n); subj != nil {
		s.Subject = b.lowerExpr(subj)
	}
	for _, c := range n.FindChildren(cst.MatchCase) {
		s.Cases = append(s.Cases, b.lowerMatchCase(c))
	}
	return s
}

func (b *Builder) lowerMatchCase(n *cst.Node) ast.MatchCase {
	b.env.Push()
	defer b.env.Pop()
	var mc ast.MatchCase
	if pat := findPatternChild(n); pat != nil {
		mc.Pattern = b.lowerPattern(pat)
	}
	if blk := n.FindChild(cst.Block); blk != nil {
		mc.Body = b.lowerBlockStmts(blk)
	} else if ex := findExprChild(n); ex != nil {
		mc.Expr = b.lowerExpr(ex)
	}
	return mc
}

func (b *Builder) lowerAttemptStmt(n *cst.Node) *ast.AttemptStmt {
	s := &ast.AttemptStmt{}
	s.SetSpan(n.Span)
	blocks := n.FindChildren(cst.Block)
	if len(blocks) > 0 {
		s.Body = b.lowerBlock(blocks[0])
	}
	for _, c := range n.FindChildren(cst.CatchClause) {
		s.Catches = append(s.Catches, b.lowerCatchClause(c))
	}
	if f := n.FindChild(cst.FinallyClause); f != nil {
		if blk := f.FindChild(cst.Block); blk != nil {
			s.Finally = b.lowerBlock(blk)
		}
	}
	return s
}

func (b *Builder) lowerCatchClause(n *cst.Node) ast.CatchClause {
	b.env.Push()
	defer b.env.Pop()
	cc := ast.CatchClause{BindName: firstIdent(n)}
	if blk := n.FindChild(cst.Block); blk != nil {
		cc.Body = b.lowerBlock(blk)
	}
	return cc
}
