package parser

import (
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/token"
)

// ParseProgram parses all of text as a Program node: a sequence of
// top-level declarations, recovering between them per RecoveryConfig.
func ParseProgram(p *Parser) *cst.Node {
	m := p.markerHere()
	for !p.atEOF() {
		before := p.markerHere()
		parseDeclaration(p)
		if int(before) == len(p.elements) {
			// No progress was made (an unrecognized token at top level);
			// consume it as an error so the loop can't spin forever.
			p.unexpected()
			if !p.atEOF() {
				p.eat()
			}
			if !p.recovery.ContinueOnError {
				break
			}
		}
	}
	// The EOF token carries any trivia after the last significant token;
	// keeping it in the tree keeps ReconstructSource lossless.
	if p.atEOF() {
		p.eat()
	}
	return p.wrap(m, cst.Program)
}

// parseDeclaration dispatches on the current token to the matching
// top-level or member declaration production.
func parseDeclaration(p *Parser) {
	switch p.current() {
	case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwStatic:
		parseVisibilityThenDecl(p)
	case token.KwVar, token.KwConst:
		parseVarDecl(p)
	case token.KwFn:
		parseFnDecl(p)
	case token.KwClass:
		parseClassDecl(p)
	case token.KwTrait:
		parseTraitDecl(p)
	case token.KwInterface:
		parseInterfaceDecl(p)
	case token.KwModule:
		parseModuleDecl(p)
	case token.KwType:
		parseTypeDecl(p)
	case token.KwEnumType:
		parseEnumDecl(p)
	case token.KwImport:
		parseImportDecl(p)
	default:
		if stmtStarters.Contains(p.current()) || isExprStart(p) {
			parseStatement(p)
			return
		}
		p.synchronize()
	}
}
