package parser

import (
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// parseVisibilityThenDecl consumes a leading visibility/storage modifier
// (public/private/protected/static) and parses whatever declaration
// follows it as a child of the same node.
func parseVisibilityThenDecl(p *Parser) {
	m := p.markerHere()
	p.eat() // the modifier keyword
	switch p.current() {
	case token.KwVar, token.KwConst:
		parseVarDeclBody(p, m)
		return
	case token.KwFn:
		parseFnDeclBody(p, m)
		return
	case token.KwClass:
		parseClassDeclBody(p, m)
		return
	}
	p.expected("declaration after visibility modifier")
	p.wrapIncomplete(m, cst.VarDecl, "missing declaration after modifier")
}

// parseVarDecl parses `var NAME [: TYPE] [= EXPR] ;` (or `const` in
// place of `var`).
func parseVarDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	return parseVarDeclBody(p, m)
}

func parseVarDeclBody(p *Parser, m marker) *cst.Node {
	p.eat() // 'var' or 'const'
	p.expect(token.Ident)
	if p.eatIf(token.Colon) {
		parseType(p)
	}
	if p.eatIf(token.Assign) {
		parseExpr(p)
	}
	if !p.eatIf(token.Semicolon) {
		p.expected("';'")
	}
	return p.wrap(m, cst.VarDecl)
}

// parseFnDecl parses a function declaration. The grammar resolves the
// fn-decl-vs-function-type ambiguity positionally: `fn` at a
// declaration/statement boundary always starts a FnDecl; `fn(...) -> T`
// appearing where a type is expected (after ':' or inside a type
// position) is instead routed through parseType's function-type branch,
// so the two productions never compete for the same parser state.
func parseFnDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	return parseFnDeclBody(p, m)
}

func parseFnDeclBody(p *Parser, m marker) *cst.Node {
	p.eat() // 'fn'
	p.expect(token.Ident)
	parseParamList(p)
	if p.eatIf(token.Arrow) {
		parseType(p)
	}
	if p.at(token.LeftBrace) {
		parseBlock(p)
	} else if !p.eatIf(token.Semicolon) {
		p.expected("function body or ';'")
	}
	return p.wrap(m, cst.FnDecl)
}

func parseParamList(p *Parser) *cst.Node {
	m := p.markerHere()
	open := p.cur.Current().Span
	if !p.expect(token.LeftParen) {
		return p.wrapIncomplete(m, cst.ParamList, "missing '('")
	}
	p.pushBlock("parameter list", open)
	defer p.popBlock()

	for !p.at(token.RightParen) && !p.atEOF() {
		parseParam(p)
		if !p.at(token.RightParen) && !p.eatIf(token.Comma) {
			p.expected("',' or ')'")
			break
		}
	}
	p.expect(token.RightParen)
	return p.wrap(m, cst.ParamList)
}

func parseParam(p *Parser) *cst.Node {
	m := p.markerHere()
	p.expect(token.Ident)
	if p.eatIf(token.Colon) {
		parseType(p)
	}
	if p.eatIf(token.Assign) {
		parseExpr(p)
	}
	return p.wrap(m, cst.Param)
}

func parseClassDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	return parseClassDeclBody(p, m)
}

func parseClassDeclBody(p *Parser, m marker) *cst.Node {
	p.eat() // 'class'
	p.expect(token.Ident)
	if p.eatIf(token.KwExtends) {
		parseType(p)
	}
	if p.eatIf(token.KwImplements) {
		parseType(p)
		for p.eatIf(token.Comma) {
			parseType(p)
		}
	}
	parseClassBody(p)
	return p.wrap(m, cst.ClassDecl)
}

func parseClassBody(p *Parser) {
	open := p.cur.Current().Span
	if !p.expect(token.LeftBrace) {
		return
	}
	p.pushBlock("class body", open)
	defer p.popBlock()

	for !p.at(token.RightBrace) && !p.atEOF() {
		before := p.markerHere()
		parseClassMember(p)
		if int(before) == len(p.elements) {
			p.synchronize()
		}
	}
	p.expect(token.RightBrace)
}

func parseClassMember(p *Parser) {
	m := p.markerHere()
	for p.atSet(token.SetOf(token.KwPublic, token.KwPrivate, token.KwProtected, token.KwStatic)) {
		p.eat()
	}
	switch p.current() {
	case token.KwFn:
		p.eat()
		p.expect(token.Ident)
		parseParamList(p)
		if p.eatIf(token.Arrow) {
			parseType(p)
		}
		if p.at(token.LeftBrace) {
			parseBlock(p)
		} else {
			p.eatIf(token.Semicolon)
		}
		p.wrap(m, cst.MethodDecl)
	case token.KwVar, token.KwConst:
		p.eat()
		p.expect(token.Ident)
		if p.eatIf(token.Colon) {
			parseType(p)
		}
		if p.eatIf(token.Assign) {
			parseExpr(p)
		}
		p.eatIf(token.Semicolon)
		p.wrap(m, cst.FieldDecl)
	default:
		p.expected("field or method declaration")
		p.synchronize()
	}
}

func parseTraitDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'trait'
	p.expect(token.Ident)
	parseClassBody(p)
	return p.wrap(m, cst.TraitDecl)
}

func parseInterfaceDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'interface'
	p.expect(token.Ident)
	parseClassBody(p)
	return p.wrap(m, cst.InterfaceDecl)
}

func parseModuleDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'module'
	p.expect(token.Ident)
	open := p.cur.Current().Span
	if p.expect(token.LeftBrace) {
		p.pushBlock("module body", open)
		for !p.at(token.RightBrace) && !p.atEOF() {
			before := p.markerHere()
			parseDeclaration(p)
			if int(before) == len(p.elements) {
				p.synchronize()
			}
		}
		p.popBlock()
		p.expect(token.RightBrace)
	}
	return p.wrap(m, cst.ModuleDecl)
}

func parseTypeDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'type'
	p.expect(token.Ident)
	p.expect(token.Assign)
	parseType(p)
	p.eatIf(token.Semicolon)
	return p.wrap(m, cst.TypeDecl)
}

func parseEnumDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'enum'
	p.expect(token.Ident)
	open := p.cur.Current().Span
	if p.expect(token.LeftBrace) {
		p.pushBlock("enum body", open)
		for !p.at(token.RightBrace) && !p.atEOF() {
			p.expect(token.Ident)
			if p.at(token.LeftParen) {
				parseParamList(p)
			}
			if !p.at(token.RightBrace) && !p.eatIf(token.Comma) {
				break
			}
		}
		p.popBlock()
		p.expect(token.RightBrace)
	}
	return p.wrap(m, cst.EnumDecl)
}

func parseImportDecl(p *Parser) *cst.Node {
	m := p.markerHere()
	p.eat() // 'import'
	p.expect(token.Ident)
	for p.eatIf(token.Dot) {
		p.expect(token.Ident)
	}
	p.eatIf(token.Semicolon)
	return p.wrap(m, cst.ImportDecl)
}
