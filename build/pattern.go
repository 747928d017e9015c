package build

import (
	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// lowerPattern lowers a match-arm or for/iter binding pattern, declaring
// any identifier bindings it introduces into the current TypeEnv scope
// so later statements that reference them resolve immediately.
func (b *Builder) lowerPattern(n *cst.Node) ast.Pattern {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case cst.WildcardPattern:
		p := &ast.WildcardPattern{}
		p.SetSpan(n.Span)
		return p
	case cst.IdentPattern:
		p := &ast.IdentPattern{Name: firstIdent(n)}
		p.SetSpan(n.Span)
		b.env.Declare(p.Name, nil)
		return p
	case cst.LiteralPattern:
		p := &ast.LiteralPattern{}
		p.SetSpan(n.Span)
		for _, c := range n.Children {
			if c.Token != nil && c.Token.IsSignificant() {
				p.Kind, p.Text = literalKindAndText(*c.Token)
			}
		}
		return p
	case cst.TuplePattern:
		p := &ast.TuplePattern{}
		p.SetSpan(n.Span)
		for _, c := range n.Children {
			if c.Node == nil {
				continue
			}
			p.Elements = append(p.Elements, b.lowerPattern(c.Node))
		}
		return p
	case cst.ErrorNode:
		p := &ast.WildcardPattern{}
		p.SetSpan(n.Span)
		return p
	default:
		return nil
	}
}

func literalKindAndText(t token.Token) (ast.LiteralKind, string) {
	switch t.Kind {
	case token.Int:
		return ast.LiteralInt, t.Lexeme
	case token.Float:
		return ast.LiteralFloat, t.Lexeme
	case token.Str:
		return ast.LiteralString, t.Lexeme
	case token.Bool:
		return ast.LiteralBool, t.Lexeme
	case token.Nil:
		return ast.LiteralNil, t.Lexeme
	default:
		return ast.LiteralNil, t.Lexeme
	}
}
