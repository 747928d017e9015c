package parser

import (
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// parseExpr is the expression entry point: the top of the precedence
// chain — assignment, then ternary, range, logical_or, logical_and,
// equality, comparison, term, factor, power, unary, call, primary, each a
// function below
// calling into the next tighter level.
func parseExpr(p *Parser) *cst.Node {
	cleanup := p.enterDepth()
	if cleanup == nil {
		return nil
	}
	defer cleanup()
	return parseAssignment(p)
}

func parseAssignment(p *Parser) *cst.Node {
	m := p.markerHere()
	left := parseTernary(p)
	if p.atSet(assignOps) {
		p.eat()
		parseAssignment(p)
		return p.wrap(m, cst.AssignExpr)
	}
	return left
}

// parseTernary handles `cond ? then : else`. The `?` here is
// unambiguous with the optional-type suffix `T?` because this production
// only ever runs in expression position, never inside parseType; the two
// grammars never see the same token stream position.
func parseTernary(p *Parser) *cst.Node {
	m := p.markerHere()
	cond := parseRange(p)
	if p.eatIf(token.Question) {
		parseExpr(p)
		p.expect(token.Colon)
		parseExpr(p)
		return p.wrap(m, cst.TernaryExpr)
	}
	return cond
}

// parseRange handles `a..b`/`a...b`. Disambiguated from a method-chain
// dot (`a.b`) purely lexically: the scanner only ever emits DotDot or
// DotDotDot for two-or-three-dot runs, so a single Dot can never be
// mistaken for a range operator and vice versa.
func parseRange(p *Parser) *cst.Node {
	m := p.markerHere()
	left := parseLogicalOr(p)
	if p.atSet(token.SetOf(token.DotDot, token.DotDotDot)) {
		p.eat()
		parseLogicalOr(p)
		return p.wrap(m, cst.RangeExpr)
	}
	return left
}

func parseLogicalOr(p *Parser) *cst.Node {
	m := p.markerHere()
	parseLogicalAnd(p)
	for p.eatIf(token.OrOr) {
		parseLogicalAnd(p)
		p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

func parseLogicalAnd(p *Parser) *cst.Node {
	m := p.markerHere()
	parseEquality(p)
	for p.eatIf(token.AndAnd) {
		parseEquality(p)
		p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

func parseEquality(p *Parser) *cst.Node {
	m := p.markerHere()
	parseComparison(p)
	for p.atSet(equalityOps) {
		p.eat()
		parseComparison(p)
		p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

func parseComparison(p *Parser) *cst.Node {
	m := p.markerHere()
	parseTerm(p)
	for p.atSet(comparisonOps) {
		p.eat()
		parseTerm(p)
		p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

func parseTerm(p *Parser) *cst.Node {
	m := p.markerHere()
	parseFactor(p)
	for p.atSet(termOps) {
		p.eat()
		parseFactor(p)
		p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

func parseFactor(p *Parser) *cst.Node {
	m := p.markerHere()
	parsePower(p)
	for p.atSet(factorOps) {
		p.eat()
		parsePower(p)
		p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

// parsePower is right-associative, unlike the other binary levels.
func parsePower(p *Parser) *cst.Node {
	m := p.markerHere()
	parseUnary(p)
	if p.eatIf(token.StarStar) {
		parsePower(p)
		return p.wrap(m, cst.BinaryExpr)
	}
	return lastNode(p)
}

func parseUnary(p *Parser) *cst.Node {
	if p.atSet(unaryOps) {
		m := p.markerHere()
		p.eat()
		parseUnary(p)
		return p.wrap(m, cst.UnaryExpr)
	}
	if p.at(token.KwAwait) {
		m := p.markerHere()
		p.eat()
		parseUnary(p)
		return p.wrap(m, cst.AwaitExpr)
	}
	return parseCall(p)
}

// parseCall handles postfix call/index/field chains following a primary.
func parseCall(p *Parser) *cst.Node {
	m := p.markerHere()
	parsePrimary(p)
	for {
		switch p.current() {
		case token.LeftParen:
			parseArgList(p)
			p.wrap(m, cst.CallExpr)
		case token.LeftBracket:
			p.eat()
			parseExpr(p)
			p.expect(token.RightBracket)
			p.wrap(m, cst.IndexExpr)
		case token.Dot:
			p.eat()
			p.expect(token.Ident)
			p.wrap(m, cst.FieldExpr)
		default:
			return lastNode(p)
		}
	}
}

func parseArgList(p *Parser) *cst.Node {
	m := p.markerHere()
	open := p.cur.Current().Span
	p.eat() // '('
	p.pushBlock("argument list", open)
	for !p.at(token.RightParen) && !p.atEOF() {
		am := p.markerHere()
		parseExpr(p)
		p.wrap(am, cst.Arg)
		if !p.at(token.RightParen) && !p.eatIf(token.Comma) {
			p.expected("',' or ')'")
			break
		}
	}
	p.popBlock()
	p.expect(token.RightParen)
	return p.wrap(m, cst.ArgList)
}

func parsePrimary(p *Parser) *cst.Node {
	m := p.markerHere()
	switch {
	case p.at(token.Str):
		return parseStringExpr(p, m)
	case p.atSet(literalStarters):
		p.eat()
		return p.wrap(m, cst.LiteralExpr)
	case p.at(token.Ident):
		p.eat()
		return p.wrap(m, cst.IdentExpr)
	case p.at(token.KwThis):
		p.eat()
		return p.wrap(m, cst.ThisExpr)
	case p.at(token.KwSuper):
		p.eat()
		return p.wrap(m, cst.SuperExpr)
	case p.at(token.LeftParen):
		open := p.cur.Current().Span
		p.eat()
		p.pushBlock("parenthesized expression", open)
		parseExpr(p)
		p.popBlock()
		p.expect(token.RightParen)
		return p.wrap(m, cst.GroupExpr)
	case p.at(token.LeftBracket):
		return parseListExpr(p, m)
	case p.at(token.LeftBrace):
		return parseDictExpr(p, m)
	case p.at(token.KwFn):
		return parseLambdaExpr(p, m)
	}

	p.unexpected()
	if !p.atEOF() {
		p.eat()
	}
	return p.wrapError(m, "expected an expression")
}

func parseListExpr(p *Parser, m marker) *cst.Node {
	open := p.cur.Current().Span
	p.eat() // '['
	p.pushBlock("list literal", open)
	for !p.at(token.RightBracket) && !p.atEOF() {
		parseExpr(p)
		if !p.at(token.RightBracket) && !p.eatIf(token.Comma) {
			p.expected("',' or ']'")
			break
		}
	}
	p.popBlock()
	p.expect(token.RightBracket)
	return p.wrap(m, cst.ListExpr)
}

func parseDictExpr(p *Parser, m marker) *cst.Node {
	open := p.cur.Current().Span
	p.eat() // '{'
	p.pushBlock("dict literal", open)
	for !p.at(token.RightBrace) && !p.atEOF() {
		em := p.markerHere()
		parseExpr(p)
		p.expect(token.Colon)
		parseExpr(p)
		p.wrap(em, cst.DictEntry)
		if !p.at(token.RightBrace) && !p.eatIf(token.Comma) {
			p.expected("',' or '}'")
			break
		}
	}
	p.popBlock()
	p.expect(token.RightBrace)
	return p.wrap(m, cst.DictExpr)
}

func parseLambdaExpr(p *Parser, m marker) *cst.Node {
	p.eat() // 'fn'
	parseParamList(p)
	if p.eatIf(token.Arrow) {
		parseType(p)
	}
	if p.at(token.LeftBrace) {
		parseBlock(p)
	} else {
		p.expect(token.FatArrow)
		parseExpr(p)
	}
	return p.wrap(m, cst.LambdaExpr)
}

// lastNode returns the node most recently pushed onto the element
// buffer, used by the precedence-chain helpers to hand back whatever
// they last wrapped without threading an explicit return value through
// every loop iteration.
func lastNode(p *Parser) *cst.Node {
	if len(p.elements) == 0 {
		return nil
	}
	return p.elements[len(p.elements)-1].Node
}

// parseStringExpr consumes one string literal. The scanner already split
// an interpolated string into a Str/InterpolationStart/.../InterpolationEnd
// token stream with balanced-brace tracking, so a plain string collapses
// to a single Str token (LiteralExpr) while an interpolated one folds each
// embedded "{expr}" run — parsed as a full expression, not re-lexed text —
// into a StringInterpExpr alongside its surrounding literal segments.
func parseStringExpr(p *Parser, m marker) *cst.Node {
	p.eat() // Str
	if !p.at(token.InterpolationStart) {
		return p.wrap(m, cst.LiteralExpr)
	}
	for p.at(token.InterpolationStart) {
		p.eat()
		parseExpr(p)
		p.expect(token.InterpolationEnd)
		if p.at(token.Str) {
			p.eat()
		}
	}
	return p.wrap(m, cst.StringInterpExpr)
}
