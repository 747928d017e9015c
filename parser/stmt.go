package parser

import (
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

func parseStatement(p *Parser) {
	switch p.current() {
	case token.LeftBrace:
		parseBlock(p)
	case token.KwIf:
		parseIfStmt(p)
	case token.KwWhile:
		parseWhileStmt(p)
	case token.KwFor:
		parseForStmt(p)
	case token.KwIter:
		parseIterStmt(p)
	case token.KwMatch:
		parseMatchStmt(p)
	case token.KwAttempt:
		parseAttemptStmt(p)
	case token.KwParallel:
		parseWrappedBlockStmt(p, token.KwParallel, cst.ParallelStmt, "parallel block")
	case token.KwConcurrent:
		parseWrappedBlockStmt(p, token.KwConcurrent, cst.ConcurrentStmt, "concurrent block")
	case token.KwUnsafe:
		parseWrappedBlockStmt(p, token.KwUnsafe, cst.UnsafeStmt, "unsafe block")
	case token.KwContract:
		parseWrappedBlockStmt(p, token.KwContract, cst.ContractStmt, "contract block")
	case token.KwComptime:
		parseWrappedBlockStmt(p, token.KwComptime, cst.ComptimeStmt, "comptime block")
	case token.KwReturn:
		parseSimpleKeywordStmt(p, token.KwReturn, cst.ReturnStmt, true)
	case token.KwBreak:
		parseSimpleKeywordStmt(p, token.KwBreak, cst.BreakStmt, false)
	case token.KwContinue:
		parseSimpleKeywordStmt(p, token.KwContinue, cst.ContinueStmt, false)
	case token.KwPrint:
		parsePrintStmt(p)
	default:
		parseExprStmt(p)
	}
}

func parseBlock(p *Parser) *cst.Node {
	m := p.markerHere()
	open := p.cur.Current().Span
	if !p.expect(token.LeftBrace) {
		return p.wrapIncomplete(m, cst.Block, "missing '{'")
	}
	p.pushBlock("block", open)
	for !p.at(token.RightBrace) && !p.atEOF() {
		before := p.markerHere()
		parseStatement(p)
		if int(before) == len(p.elements) {
			p.synchronize()
		}
	}
	p.popBlock()
	if !p.eatIf(token.RightBrace) {
		p.expected("'}'")
		return p.wrapIncomplete(m, cst.Block, "unclosed block")
	}
	return p.wrap(m, cst.Block)
}

func parseIfStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'if'
	parseExpr(p)
	parseBlock(p)
	if p.eatIf(token.KwElse) {
		if p.at(token.KwIf) {
			parseIfStmt(p)
		} else {
			parseBlock(p)
		}
	}
	return p.wrap(m, cst.IfStmt)
}

func parseWhileStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'while'
	parseExpr(p)
	parseBlock(p)
	return p.wrap(m, cst.WhileStmt)
}

// parseForStmt handles `for PATTERN in EXPR { ... }`.
func parseForStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'for'
	parsePattern(p)
	p.expect(token.KwIn)
	parseExpr(p)
	parseBlock(p)
	return p.wrap(m, cst.ForStmt)
}

func parseIterStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'iter'
	parsePattern(p)
	p.expect(token.KwIn)
	parseExpr(p)
	parseBlock(p)
	return p.wrap(m, cst.IterStmt)
}

func parseMatchStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'match'
	parseExpr(p)
	open := p.cur.Current().Span
	if p.expect(token.LeftBrace) {
		p.pushBlock("match body", open)
		for !p.at(token.RightBrace) && !p.atEOF() {
			parseMatchCase(p)
		}
		p.popBlock()
		p.expect(token.RightBrace)
	}
	return p.wrap(m, cst.MatchStmt)
}

func parseMatchCase(p *Parser) *cst.Node {
	m := p.markerHere()
	if p.eatIf(token.KwDefault) {
		p.expect(token.FatArrow)
	} else {
		p.expect(token.KwCase)
		parsePattern(p)
		p.expect(token.FatArrow)
	}
	if p.at(token.LeftBrace) {
		parseBlock(p)
	} else {
		parseExpr(p)
		p.eatIf(token.Comma)
	}
	return p.wrap(m, cst.MatchCase)
}

func parseAttemptStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'attempt'
	parseBlock(p)
	for p.at(token.KwCatch) {
		cm := p.markerHere()
		p.eat()
		if p.at(token.Ident) {
			p.eat()
		}
		parseBlock(p)
		p.wrap(cm, cst.CatchClause)
	}
	if p.at(token.KwFinally) {
		fm := p.markerHere()
		p.eat()
		parseBlock(p)
		p.wrap(fm, cst.FinallyClause)
	}
	return p.wrap(m, cst.AttemptStmt)
}

func parseWrappedBlockStmt(p *Parser, kw token.Kind, kind cst.Kind, label string) *cst.Node {
	m := p.markerHere()
	p.eat() // the keyword
	parseBlock(p)
	return p.wrap(m, kind)
}

func parseSimpleKeywordStmt(p *Parser, kw token.Kind, kind cst.Kind, takesValue bool) *cst.Node {
	m := p.markerHere()
	p.eat() // the keyword
	if takesValue && isExprStart(p) {
		parseExpr(p)
	}
	if !p.eatIf(token.Semicolon) {
		p.expected("';'")
	}
	return p.wrap(m, kind)
}

// parsePrintStmt handles `print "(" args ")"` — an argument list, not a
// single optional value, so print(x, y) parses as two args rather than one
// parenthesized GroupExpr.
func parsePrintStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'print'
	if p.at(token.LeftParen) {
		parseArgList(p)
	} else {
		p.expected("'('")
	}
	if !p.eatIf(token.Semicolon) {
		p.expected("';'")
	}
	return p.wrap(m, cst.PrintStmt)
}

func parseExprStmt(p *Parser) *cst.Node {
	m := p.markerHere()
	if !isExprStart(p) {
		p.unexpected()
		if !p.atEOF() {
			p.eat()
		}
		return p.wrapError(m, "unexpected token in statement position")
	}
	parseExpr(p)
	if !p.eatIf(token.Semicolon) {
		p.expected("';'")
	}
	return p.wrap(m, cst.ExprStmt)
}

// isExprStart reports whether the current token can begin an expression,
// used to decide whether an optional-value keyword statement (return,
// break, continue) has a trailing value and whether an unrecognized
// top-level token should fall through to expression-statement parsing.
func isExprStart(p *Parser) bool {
	k := p.current()
	switch k {
	case token.Ident, token.Int, token.Float, token.Str, token.Bool, token.Nil,
		token.LeftParen, token.LeftBracket, token.LeftBrace,
		token.Bang, token.Minus, token.Tilde,
		token.KwThis, token.KwSuper, token.KwAwait, token.KwFn:
		return true
	}
	return false
}
