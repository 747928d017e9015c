package token

// Token is a single lexical token: a kind, the exact source substring it
// covers, its span, and — for significant tokens when the scanner is
// configured with AttachTrivia — the trivia that surrounds it.
//
// Losslessness invariant: concatenating, in order, LeadingTrivia ++
// Lexeme ++ TrailingTrivia for every token in a token stream reproduces
// the source text exactly.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span

	// LeadingTrivia holds trivia immediately preceding this token, in
	// source order: the pending buffer flushed when this token was
	// produced.
	LeadingTrivia []Token

	// TrailingTrivia holds trivia on the same line following this token,
	// up to (not including) the next NEWLINE. A NEWLINE always leads the
	// following significant token instead.
	TrailingTrivia []Token
}

// IsSignificant reports whether this token is neither trivia nor EOF.
func (t Token) IsSignificant() bool {
	return !t.Kind.IsTrivia() && t.Kind != EOF
}

// Reconstruct returns LeadingTrivia ++ Lexeme ++ TrailingTrivia, the unit
// the losslessness invariant is checked against.
func (t Token) Reconstruct() string {
	var b []byte
	for _, lt := range t.LeadingTrivia {
		b = append(b, lt.Lexeme...)
	}
	b = append(b, t.Lexeme...)
	for _, tt := range t.TrailingTrivia {
		b = append(b, tt.Lexeme...)
	}
	return string(b)
}

// EOFToken builds the terminal EOF token at the given position, carrying
// whatever trivia remained pending at end of input as its leading trivia.
func EOFToken(at Position, leading []Token) Token {
	return Token{
		Kind:          EOF,
		Lexeme:        "",
		Span:          Span{Start: at, End: at},
		LeadingTrivia: leading,
	}
}
