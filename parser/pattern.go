package parser

import (
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// parsePattern parses a match-arm or for/iter binding pattern: an
// identifier binding, a wildcard (`_`), a literal, or a parenthesized
// tuple of sub-patterns.
func parsePattern(p *Parser) *cst.Node {
	m := p.markerHere()
	switch {
	case p.at(token.Ident) && p.cur.Current().Lexeme == "_":
		p.eat()
		return p.wrap(m, cst.WildcardPattern)
	case p.at(token.Ident):
		p.eat()
		return p.wrap(m, cst.IdentPattern)
	case p.atSet(literalStarters):
		p.eat()
		return p.wrap(m, cst.LiteralPattern)
	case p.at(token.LeftParen):
		p.eat()
		for !p.at(token.RightParen) && !p.atEOF() {
			parsePattern(p)
			if !p.at(token.RightParen) && !p.eatIf(token.Comma) {
				break
			}
		}
		p.expect(token.RightParen)
		return p.wrap(m, cst.TuplePattern)
	}
	p.expected("pattern")
	if !p.atEOF() {
		p.eat()
	}
	return p.wrapError(m, "expected a pattern")
}
