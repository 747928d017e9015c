package parser

import (
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// parseType parses a type annotation: a named/builtin type, optionally
// followed by postfix union (`|`), optional (`?`), or fallible (`!`)
// markers, or a parenthesized-parameter function type.
//
// Ambiguity note: `fn(...) -> T` here is the *function type* production,
// distinct from parseFnDecl's function *declaration* production in
// decl.go even though both start with `fn`. The grammar never confuses
// them because parseType is only ever called from a type position
// (after ':', '->', inside another type, or as a decl's RHS after `=`),
// while parseFnDecl/parseLambdaExpr are only called from declaration or
// expression position — the two never compete for the same token.
func parseType(p *Parser) *cst.Node {
	m := p.markerHere()
	parseTypePrimary(p)
	for {
		switch {
		case p.eatIf(token.Pipe):
			parseTypePrimary(p)
			p.wrap(m, cst.UnionType)
		case p.eatIf(token.Question):
			p.wrap(m, cst.OptionalType)
		case p.eatIf(token.Bang):
			p.wrap(m, cst.FallibleType)
		default:
			return lastNode(p)
		}
	}
}

func parseTypePrimary(p *Parser) *cst.Node {
	m := p.markerHere()
	switch {
	case p.at(token.KwFn):
		p.eat()
		parseParamList(p)
		if p.eatIf(token.Arrow) {
			parseType(p)
		}
		return p.wrap(m, cst.FunctionType)
	case p.at(token.KwList):
		p.eat()
		if p.eatIf(token.Less) {
			parseType(p)
			p.expect(token.Greater)
		}
		return p.wrap(m, cst.ListType)
	case p.at(token.KwDict):
		p.eat()
		if p.eatIf(token.Less) {
			parseType(p)
			p.expect(token.Comma)
			parseType(p)
			p.expect(token.Greater)
		}
		return p.wrap(m, cst.DictType)
	case p.atSet(typeStarters):
		p.eat()
		for p.eatIf(token.Dot) {
			p.expect(token.Ident)
		}
		if p.eatIf(token.Less) {
			parseType(p)
			for p.eatIf(token.Comma) {
				parseType(p)
			}
			p.expect(token.Greater)
			return p.wrap(m, cst.RefinedType)
		}
		return p.wrap(m, cst.NamedType)
	}
	p.expected("type")
	if !p.atEOF() {
		p.eat()
	}
	return p.wrapError(m, "expected a type")
}
