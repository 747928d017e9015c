// Package scanner implements the trivia-preserving lexical scanner: source
// text in, a token stream out, with every byte of input accounted for
// either as a significant token or as trivia attached to one.
package scanner

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/runenames"

	"github.com/lumenlang/lumen/token"
)

// Config controls what the scanner produces. The zero Config scans only
// significant tokens with trivia discarded.
type Config struct {
	// PreserveWhitespace, when true, emits Whitespace/Newline as trivia
	// instead of silently discarding them.
	PreserveWhitespace bool
	// PreserveComments, when true, emits LineComment/BlockComment as
	// trivia instead of discarding them.
	PreserveComments bool
	// EmitErrorTokens, when true, surfaces invalid input as Error tokens
	// in the stream rather than only recording a diagnostic.
	EmitErrorTokens bool
	// AttachTrivia, when true, runs the deterministic attachment pass so
	// trivia hangs off LeadingTrivia/TrailingTrivia of the nearest
	// significant token rather than appearing inline.
	AttachTrivia bool
}

// Scanner recognizes one token at a time from source text. It is pull
// based: Next can be driven directly by a parser, or drained in one shot
// by ScanAll.
type Scanner struct {
	cur      *runeCursor
	cfg      Config
	errors   []error
	strStack []strFrame
}

// strFrame tracks one currently-open string literal's interpolation
// state. inExpr is true once an unescaped '{' has been seen and
// InterpolationStart emitted for it — while true, Next runs its normal
// token dispatch instead of scanning literal text, so an embedded
// expression lexes exactly like top-level code (including a nested
// string literal, which pushes its own frame). braceDepth counts '{'/'}'
// pairs opened by the embedded expression itself (a dict literal
// argument, say) so they don't prematurely end the interpolation.
type strFrame struct {
	inExpr     bool
	braceDepth int
}

// New creates a Scanner over text configured by cfg.
func New(text string, cfg Config) *Scanner {
	return &Scanner{cur: newRuneCursor(text), cfg: cfg}
}

// Errors returns lexical errors accumulated so far (unclosed strings,
// invalid numeric suffixes, illegal characters).
func (s *Scanner) Errors() []error {
	return s.errors
}

func (s *Scanner) pos() token.Position {
	off, line, col := s.cur.snapshot()
	return token.Position{Offset: off, Line: line, Column: col}
}

// Next recognizes and returns the single next token, significant or
// trivia, or an EOF token once the input is exhausted. It never panics;
// invalid input yields an Error-kind token instead.
func (s *Scanner) Next() token.Token {
	start := s.pos()
	if s.cur.done() {
		return token.Token{Kind: token.EOF, Span: token.NewSpan(start, start)}
	}

	if n := len(s.strStack); n > 0 && !s.strStack[n-1].inExpr {
		return s.stringFrameNext(start)
	}

	c := s.cur.eat()

	switch {
	case isNewlineRune(c):
		return s.finish(token.Newline, start)
	case c == ' ' || c == '\t':
		s.cur.eatWhile(func(r rune) bool { return (r == ' ' || r == '\t') })
		return s.finish(token.Whitespace, start)
	case c == '/' && s.cur.at("/"):
		s.cur.eat()
		s.cur.eatUntil(isNewlineRune)
		return s.finish(token.LineComment, start)
	case c == '/' && s.cur.at("*"):
		s.cur.eat()
		s.blockComment()
		return s.finish(token.BlockComment, start)
	case isIdentStart(c):
		s.cur.eatWhile(isIdentContinue)
		lexeme := s.cur.text[start.Offset:s.cur.offset]
		return s.finish(token.Lookup(lexeme), start)
	case c >= '0' && c <= '9':
		kind := s.number(start, c)
		return s.finish(kind, start)
	case c == '"':
		// Always scan the opening quote as (at least) a one-character Str
		// segment — s.stringFrameNext's "immediate '{' skips to
		// InterpolationStart" shortcut is only for the gap between an
		// interpolation's end and the next one, not for the quote itself.
		s.strStack = append(s.strStack, strFrame{})
		return s.stringSegment(start)
	case c == '{' && len(s.strStack) > 0:
		s.strStack[len(s.strStack)-1].braceDepth++
		return s.finish(token.LeftBrace, start)
	case c == '}' && len(s.strStack) > 0 && s.strStack[len(s.strStack)-1].braceDepth > 0:
		s.strStack[len(s.strStack)-1].braceDepth--
		return s.finish(token.RightBrace, start)
	case c == '}' && len(s.strStack) > 0:
		s.strStack[len(s.strStack)-1].inExpr = false
		return s.finish(token.InterpolationEnd, start)
	}

	kind := s.operator(c, start)
	return s.finish(kind, start)
}

func (s *Scanner) finish(kind token.Kind, start token.Position) token.Token {
	end := s.pos()
	lexeme := s.cur.text[start.Offset:end.Offset]
	tok := token.Token{Kind: kind, Lexeme: lexeme, Span: token.NewSpan(start, end)}
	if kind == token.Error {
		s.errors = append(s.errors, fmt.Errorf("%s: invalid token %q", tok.Span, lexeme))
	}
	return tok
}

func (s *Scanner) blockComment() {
	depth := 1
	for {
		if s.cur.done() {
			s.errors = append(s.errors, fmt.Errorf("%s: unterminated block comment", s.pos()))
			return
		}
		if s.cur.at("*/") {
			s.cur.eat()
			s.cur.eat()
			depth--
			if depth == 0 {
				return
			}
			continue
		}
		if s.cur.at("/*") {
			s.cur.eat()
			s.cur.eat()
			depth++
			continue
		}
		s.cur.eat()
	}
}

// stringFrameNext is Next's entry point whenever the top strFrame is
// already in literal-text mode (called on every token after the first
// inside a string): an unescaped '{' right here starts a new
// interpolation immediately, with no literal text between it and
// whatever came before, so it's emitted directly as InterpolationStart
// rather than as an empty Str segment first.
func (s *Scanner) stringFrameNext(start token.Position) token.Token {
	if s.cur.peek() == '{' {
		s.cur.eat()
		s.strStack[len(s.strStack)-1].inExpr = true
		return s.finish(token.InterpolationStart, start)
	}
	return s.stringSegment(start)
}

// stringSegment scans a run of raw string-literal text, honoring \-escapes,
// starting right after the opening '"' or a prior interpolation's closing
// '}'. It stops at an unescaped '{' (left for the next Next call to turn
// into InterpolationStart) or the closing '"', which it consumes and pops
// this frame for, ending the string literal.
func (s *Scanner) stringSegment(start token.Position) token.Token {
	escaped := false
	for {
		if s.cur.done() {
			s.errors = append(s.errors, fmt.Errorf("%s: unclosed string", start))
			s.strStack = s.strStack[:len(s.strStack)-1]
			return s.finish(token.Error, start)
		}
		c := s.cur.peek()
		if c == '"' && !escaped {
			s.cur.eat()
			s.strStack = s.strStack[:len(s.strStack)-1]
			return s.finish(token.Str, start)
		}
		if c == '{' && !escaped {
			return s.finish(token.Str, start)
		}
		escaped = c == '\\' && !escaped
		s.cur.eat()
	}
}

func (s *Scanner) number(start token.Position, first rune) token.Kind {
	base := 10
	if first == '0' {
		switch {
		case s.cur.eatIf('b'):
			base = 2
		case s.cur.eatIf('o'):
			base = 8
		case s.cur.eatIf('x'):
			base = 16
		}
	}

	if base == 16 {
		s.cur.eatWhile(isHexDigit)
	} else {
		s.cur.eatWhile(isDecDigit)
	}

	isFloat := false
	if base == 10 {
		if s.cur.peek() == '.' && s.cur.peekAt(1) != '.' && !isIdentStart(s.cur.peekAt(1)) {
			s.cur.eat()
			isFloat = true
			s.cur.eatWhile(isDecDigit)
		}
		if s.cur.peek() == 'e' || s.cur.peek() == 'E' {
			s.cur.eat()
			isFloat = true
			if s.cur.peek() == '+' || s.cur.peek() == '-' {
				s.cur.eat()
			}
			s.cur.eatWhile(isDecDigit)
		}
	}

	text := s.cur.text[start.Offset:s.cur.offset]

	if base == 10 && !isFloat {
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			if _, ferr := strconv.ParseFloat(text, 64); ferr == nil {
				isFloat = true
			}
		}
	}

	if isFloat {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			s.errors = append(s.errors, fmt.Errorf("%s: invalid floating point literal %q", start, text))
			return token.Error
		}
		return token.Float
	}

	numPart := text
	if base != 10 {
		numPart = text[2:]
	}
	if _, err := strconv.ParseInt(numPart, base, 64); err != nil {
		s.errors = append(s.errors, fmt.Errorf("%s: invalid integer literal %q", start, text))
		return token.Error
	}
	return token.Int
}

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// operator handles delimiters and operators by greedy longest match.
// c has already been consumed by Next.
func (s *Scanner) operator(c rune, start token.Position) token.Kind {
	switch c {
	case '(':
		return token.LeftParen
	case ')':
		return token.RightParen
	case '{':
		return token.LeftBrace
	case '}':
		return token.RightBrace
	case '[':
		return token.LeftBracket
	case ']':
		return token.RightBracket
	case ',':
		return token.Comma
	case ';':
		return token.Semicolon
	case ':':
		return token.Colon
	case '@':
		return token.At
	case '.':
		if s.cur.eatIf('.') {
			if s.cur.eatIf('.') {
				return token.DotDotDot
			}
			return token.DotDot
		}
		return token.Dot
	case '?':
		if s.cur.eatIf('?') {
			if s.cur.eatIf('=') {
				return token.QuestionQuestionAssign
			}
			return token.QuestionQuestion
		}
		if s.cur.eatIf('.') {
			return token.QuestionDot
		}
		if s.cur.eatIf(':') {
			return token.QuestionColon
		}
		return token.Question
	case '+':
		if s.cur.eatIf('+') {
			return token.PlusPlus
		}
		if s.cur.eatIf('=') {
			return token.PlusAssign
		}
		return token.Plus
	case '-':
		if s.cur.eatIf('-') {
			return token.MinusMinus
		}
		if s.cur.eatIf('=') {
			return token.MinusAssign
		}
		if s.cur.eatIf('>') {
			return token.Arrow
		}
		return token.Minus
	case '*':
		if s.cur.eatIf('*') {
			return token.StarStar
		}
		if s.cur.eatIf('=') {
			return token.StarAssign
		}
		return token.Star
	case '/':
		if s.cur.eatIf('=') {
			return token.SlashAssign
		}
		return token.Slash
	case '%':
		if s.cur.eatIf('=') {
			return token.PercentAssign
		}
		return token.Percent
	case '=':
		if s.cur.eatIf('=') {
			return token.Eq
		}
		if s.cur.eatIf('>') {
			return token.FatArrow
		}
		return token.Assign
	case '!':
		if s.cur.eatIf('=') {
			return token.NotEq
		}
		return token.Bang
	case '<':
		if s.cur.eatIf('=') {
			return token.LessEq
		}
		return token.Less
	case '>':
		if s.cur.eatIf('=') {
			return token.GreaterEq
		}
		return token.Greater
	case '&':
		if s.cur.eatIf('=') {
			return token.AmpAssign
		}
		return token.Amp
	case '|':
		if s.cur.eatIf('=') {
			return token.PipeAssign
		}
		return token.Pipe
	case '^':
		if s.cur.eatIf('=') {
			return token.CaretAssign
		}
		return token.Caret
	case '~':
		return token.Tilde
	}

	s.errors = append(s.errors, fmt.Errorf("%s: unexpected character %q (%s) is not valid here", start, c, runenames.Name(c)))
	return token.Error
}

// ScanAll drains the scanner into a token slice. When cfg.AttachTrivia is
// set, trivia tokens are folded into LeadingTrivia/TrailingTrivia of their
// neighboring significant tokens and do not appear as separate elements;
// otherwise trivia appears interleaved in source order (subject to
// PreserveWhitespace/PreserveComments).
func ScanAll(text string, cfg Config) ([]token.Token, []error) {
	s := New(text, cfg)

	var raw []token.Token
	for {
		tok := s.Next()
		if tok.Kind == token.EOF {
			raw = append(raw, tok)
			break
		}
		if tok.Kind.IsTrivia() {
			if tok.Kind == token.Whitespace && !cfg.PreserveWhitespace {
				continue
			}
			if tok.Kind == token.Newline && !cfg.PreserveWhitespace {
				continue
			}
			if (tok.Kind == token.LineComment || tok.Kind == token.BlockComment) && !cfg.PreserveComments {
				continue
			}
		}
		if tok.Kind == token.Error && !cfg.EmitErrorTokens {
			continue
		}
		raw = append(raw, tok)
	}

	if !cfg.AttachTrivia {
		return raw, s.errors
	}
	return attach(raw), s.errors
}

// attach implements the deterministic trivia-attachment rule: trivia
// accumulates in a pending buffer; it becomes the next
// significant token's LeadingTrivia. A NEWLINE always terminates the
// current token's trailing-trivia window and instead leads the following
// token — it is never attached as anyone's trailing trivia.
func attach(raw []token.Token) []token.Token {
	var out []token.Token
	var pending []token.Token

	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if tok.Kind.IsTrivia() {
			pending = append(pending, tok)
			continue
		}

		tok.LeadingTrivia = pending
		pending = nil

		// Trailing trivia window: consume runs of non-newline trivia
		// immediately following this token, stopping at the first
		// NEWLINE (which instead seeds the next token's leading trivia).
		j := i + 1
		var trailing []token.Token
		for j < len(raw) && raw[j].Kind.IsTrivia() && raw[j].Kind != token.Newline {
			trailing = append(trailing, raw[j])
			j++
		}
		tok.TrailingTrivia = trailing
		out = append(out, tok)
		i = j - 1
	}

	if len(pending) > 0 && len(out) > 0 {
		out[len(out)-1].LeadingTrivia = append(out[len(out)-1].LeadingTrivia, pending...)
	}
	return out
}
