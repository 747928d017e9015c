package scanner

import "github.com/lumenlang/lumen/token"

// Cursor is a pull-based view over a significant (trivia-attached) token
// stream, giving the parser the primitive operation set it needs:
// Advance, Peek(k), Previous, and the current line/column.
// Tokens are produced on demand from the underlying Scanner and cached so
// Peek and Previous can look both ways without re-scanning.
type Cursor struct {
	scanner *Scanner
	cfg     Config
	buf     []token.Token // all tokens produced so far, in order
	pos     int           // index into buf of the "current" (not yet advanced past) token
}

// NewCursor builds a Cursor over text. cfg should set AttachTrivia so the
// parser only ever sees significant tokens.
func NewCursor(text string, cfg Config) *Cursor {
	c := &Cursor{scanner: New(text, cfg), cfg: cfg}
	c.buf = append(c.buf, c.nextSignificant())
	return c
}

// nextSignificant pulls raw tokens from the scanner, attaching trivia by
// hand since the Scanner itself only recognizes one token at a time.
func (c *Cursor) nextSignificant() token.Token {
	var pendingLeading []token.Token
	for {
		tok := c.scanner.Next()
		if tok.Kind == token.EOF {
			tok.LeadingTrivia = append(tok.LeadingTrivia, pendingLeading...)
			return tok
		}
		if tok.Kind.IsTrivia() {
			if c.cfg.AttachTrivia {
				pendingLeading = append(pendingLeading, tok)
			}
			continue
		}
		if tok.Kind == token.Error && !c.cfg.EmitErrorTokens {
			continue
		}
		if c.cfg.AttachTrivia {
			tok.LeadingTrivia = pendingLeading
			tok.TrailingTrivia = c.collectTrailing()
		}
		return tok
	}
}

// collectTrailing consumes same-line trivia immediately following the
// token just produced, stopping at (and not consuming) the first NEWLINE,
// which instead becomes the next token's leading trivia.
func (c *Cursor) collectTrailing() []token.Token {
	var trailing []token.Token
	for {
		save := *c.scanner.cur
		saveStack := append([]strFrame(nil), c.scanner.strStack...)
		saveErrs := len(c.scanner.errors)
		tok := c.scanner.Next()
		if tok.Kind == token.Newline || !tok.Kind.IsTrivia() {
			*c.scanner.cur = save
			c.scanner.strStack = saveStack
			c.scanner.errors = c.scanner.errors[:saveErrs]
			return trailing
		}
		trailing = append(trailing, tok)
	}
}

// Current returns the token at the cursor without advancing.
func (c *Cursor) Current() token.Token {
	return c.buf[c.pos]
}

// Peek returns the token k positions ahead of Current without advancing,
// scanning further into the stream on demand if needed.
func (c *Cursor) Peek(k int) token.Token {
	for c.pos+k >= len(c.buf) {
		last := c.buf[len(c.buf)-1]
		if last.Kind == token.EOF {
			return last
		}
		c.buf = append(c.buf, c.nextSignificant())
	}
	return c.buf[c.pos+k]
}

// Advance returns the current token and moves the cursor forward by one,
// unless already at EOF.
func (c *Cursor) Advance() token.Token {
	cur := c.Current()
	if cur.Kind != token.EOF {
		c.Peek(1) // ensure the next token is buffered
		c.pos++
	}
	return cur
}

// Previous returns the most recently advanced-past token, or the zero
// Token if no token has been consumed yet.
func (c *Cursor) Previous() token.Token {
	if c.pos == 0 {
		return token.Token{}
	}
	return c.buf[c.pos-1]
}

// CurrentLine returns the 1-based source line of the current token.
func (c *Cursor) CurrentLine() int {
	return c.Current().Span.Start.Line
}

// CurrentColumn returns the 1-based source column of the current token.
func (c *Cursor) CurrentColumn() int {
	return c.Current().Span.Start.Column
}

// AtEOF reports whether the cursor has reached the end of the stream.
func (c *Cursor) AtEOF() bool {
	return c.Current().Kind == token.EOF
}

// Errors returns lexical errors accumulated by the underlying scanner.
func (c *Cursor) Errors() []error {
	return c.scanner.Errors()
}
