package parser

import (
	"fmt"

	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/diag"
	"github.com/lumenlang/lumen/scanner"
	"github.com/lumenlang/lumen/token"
)

// marker is a position in the parser's flat element buffer, captured
// before parsing a construct so it can later be retroactively wrapped
// into a node — the core mechanism behind running one grammar in any of
// the three Modes: record a marker, parse flatly, wrap the range later.
type marker int

// blockContext records an unclosed construct the parser is recovering
// inside of, so a later "expected X" diagnostic can explain itself with
// "caused by: unclosed <context> starting at <span>".
type blockContext struct {
	label string
	span  token.Span
}

// Parser drives the shared grammar over a scanner.Cursor, emitting cst
// Elements into a flat buffer that marker/wrap turn into a tree.
type Parser struct {
	text     string
	cur      *scanner.Cursor
	mode     Mode
	recovery RecoveryConfig
	sink     diag.Sink

	elements []cst.Element
	depth    int
	blocks   []blockContext
	errCount int
}

// New builds a Parser over source text in the given mode.
func New(text string, mode Mode, recovery RecoveryConfig, sink diag.Sink) *Parser {
	return &Parser{
		text:     text,
		cur:      scanner.NewCursor(text, scanner.Config{PreserveWhitespace: true, PreserveComments: true, AttachTrivia: true}),
		mode:     mode,
		recovery: recovery,
		sink:     sink,
	}
}

func (p *Parser) current() token.Kind         { return p.cur.Current().Kind }
func (p *Parser) at(kind token.Kind) bool     { return p.current() == kind }
func (p *Parser) atSet(set token.Set) bool    { return set.Contains(p.current()) }
func (p *Parser) atEOF() bool                 { return p.cur.AtEOF() }
func (p *Parser) peek(k int) token.Kind       { return p.cur.Peek(k).Kind }

func (p *Parser) markerHere() marker {
	return marker(len(p.elements))
}

// eat consumes the current token unconditionally and appends it as a
// leaf Element.
func (p *Parser) eat() token.Token {
	tok := p.cur.Advance()
	p.elements = append(p.elements, cst.TokenElement(tok))
	return tok
}

// eatIf consumes and returns true if the current token matches kind.
func (p *Parser) eatIf(kind token.Kind) bool {
	if p.at(kind) {
		p.eat()
		return true
	}
	return false
}

// wrap wraps elements from from..now into a new Normal node of kind, in
// place of the flat range.
func (p *Parser) wrap(from marker, kind cst.Kind) *cst.Node {
	children := make([]cst.Element, len(p.elements)-int(from))
	copy(children, p.elements[from:])
	p.elements = p.elements[:from]
	n := cst.NewNode(kind, children...)
	p.elements = append(p.elements, cst.NodeElement(n))
	return n
}

// wrapIncomplete wraps from..now into an Incomplete node carrying message.
func (p *Parser) wrapIncomplete(from marker, kind cst.Kind, message string) *cst.Node {
	n := p.wrap(from, kind)
	n.Variant = cst.Incomplete
	n.Message = message
	return n
}

// wrapError wraps from..now into an ErrorNode carrying message.
func (p *Parser) wrapError(from marker, message string) *cst.Node {
	children := make([]cst.Element, len(p.elements)-int(from))
	copy(children, p.elements[from:])
	p.elements = p.elements[:from]
	n := cst.NewErrorNode(message, children...)
	p.elements = append(p.elements, cst.NodeElement(n))
	return n
}

// expect consumes kind, or — per RecoveryConfig — synthesizes a Missing
// node and reports a diagnostic explaining what was expected instead.
func (p *Parser) expect(kind token.Kind) bool {
	if p.eatIf(kind) {
		return true
	}
	p.expected(kind.String())
	if p.recovery.InsertMissingTokens {
		at := p.cur.Current().Span.Start
		missing := cst.NewMissingNode(cst.KindIllegal, at, fmt.Sprintf("expected %s", kind))
		p.elements = append(p.elements, cst.NodeElement(missing))
	}
	return false
}

// expected reports a "expected X, found Y" diagnostic, attaching the
// nearest enclosing block context (if any) and a canned suggestion.
func (p *Parser) expected(what string) {
	found := p.cur.Current()
	msg := fmt.Sprintf("expected %s, found %s", what, found.Kind)
	d := diag.Diagnostic{
		Severity: diag.Error,
		Code:     "E_EXPECTED",
		Span:     found.Span,
		Message:  msg,
	}
	if len(p.blocks) > 0 {
		top := p.blocks[len(p.blocks)-1]
		d.CausedBy = fmt.Sprintf("unclosed %s starting at %s", top.label, top.span)
	}
	p.report(d)
}

// unexpected reports a diagnostic for a token that cannot start anything
// the grammar is prepared for. It does not consume the token; each caller
// decides whether to eat it.
func (p *Parser) unexpected() {
	found := p.cur.Current()
	p.report(diag.Diagnostic{
		Severity: diag.Error,
		Code:     "E_UNEXPECTED",
		Span:     found.Span,
		Message:  fmt.Sprintf("unexpected %s", found.Kind),
	})
}

func (p *Parser) report(d diag.Diagnostic) {
	if p.sink == nil {
		return
	}
	if p.recovery.MaxErrors > 0 && p.errCount >= p.recovery.MaxErrors {
		return
	}
	p.errCount++
	p.sink.Report(d)
}

// pushBlock/popBlock track the stack of unclosed constructs for
// caused-by diagnostics.
func (p *Parser) pushBlock(label string, span token.Span) {
	p.blocks = append(p.blocks, blockContext{label: label, span: span})
}

func (p *Parser) popBlock() {
	if len(p.blocks) > 0 {
		p.blocks = p.blocks[:len(p.blocks)-1]
	}
}

// enterDepth increments the recursion guard and returns a cleanup
// function, or nil (with a diagnostic already reported) once MaxDepth is
// exceeded.
func (p *Parser) enterDepth() func() {
	if p.depth >= MaxDepth {
		p.report(diag.Diagnostic{
			Severity: diag.Error,
			Code:     "E_MAX_DEPTH",
			Span:     p.cur.Current().Span,
			Message:  "expression nested too deeply",
		})
		return nil
	}
	p.depth++
	return func() { p.depth-- }
}

// synchronize discards tokens until one in RecoveryConfig.SyncTokens (or
// EOF) is reached, wrapping the skipped run as an ErrorNode so no source
// bytes are lost — losslessness extends to error recovery output too.
func (p *Parser) synchronize() {
	m := p.markerHere()
	for !p.atEOF() && !p.atSet(p.recovery.SyncTokens) {
		p.eat()
	}
	if int(m) != len(p.elements) {
		p.wrapError(m, "skipped invalid input during recovery")
	}
}

// Errors returns lexical errors the underlying scanner accumulated.
func (p *Parser) Errors() []error {
	return p.cur.Errors()
}
