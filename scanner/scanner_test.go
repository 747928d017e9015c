package scanner

import (
	"testing"

	"github.com/lumenlang/lumen/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanAllSignificantOnly(t *testing.T) {
	toks, errs := ScanAll("var x = 1 + 2;", Config{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Kind{
		token.KwVar, token.Ident, token.Assign, token.Int, token.Plus, token.Int, token.Semicolon, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanAllReconstructsSource(t *testing.T) {
	src := "var x = 1 // trailing\n// leading\nfn f() {}\n"
	toks, errs := ScanAll(src, Config{PreserveWhitespace: true, PreserveComments: true, AttachTrivia: true})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Reconstruct()
	}
	if rebuilt != src {
		t.Errorf("reconstructed = %q, want %q", rebuilt, src)
	}
}

func TestTrailingTriviaStopsAtNewline(t *testing.T) {
	src := "var x // comment\n= 1;"
	toks, _ := ScanAll(src, Config{PreserveWhitespace: true, PreserveComments: true, AttachTrivia: true})
	// toks: KwVar, Ident("x"), Assign, Int, Semicolon, EOF
	ident := toks[1]
	foundComment := false
	for _, tt := range ident.TrailingTrivia {
		if tt.Kind == token.Newline {
			t.Fatal("newline must never be trailing trivia")
		}
		if tt.Kind == token.LineComment {
			foundComment = true
		}
	}
	if !foundComment {
		t.Error("expected the same-line comment to trail the identifier, not lead the '=' token")
	}
	assign := toks[2]
	foundNewline := false
	for _, lt := range assign.LeadingTrivia {
		if lt.Kind == token.Newline {
			foundNewline = true
		}
	}
	if !foundNewline {
		t.Error("expected the newline to lead the '=' token")
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.Int},
		{"3.14", token.Float},
		{"0x1F", token.Int},
		{"0b101", token.Int},
		{"0o17", token.Int},
		{"1e10", token.Float},
		{"3.field", token.Int}, // dot followed by an identifier is method/field access, not a fraction
	}
	for _, tt := range tests {
		toks, _ := ScanAll(tt.src, Config{})
		if tt.src == "3.field" {
			if toks[0].Kind != token.Int || toks[1].Kind != token.Dot || toks[2].Kind != token.Ident {
				t.Errorf("ScanAll(%q) = %v, want [Int Dot Ident]", tt.src, kinds(toks))
			}
			continue
		}
		if toks[0].Kind != tt.kind {
			t.Errorf("ScanAll(%q)[0].Kind = %s, want %s", tt.src, toks[0].Kind, tt.kind)
		}
	}
}

func TestStringLiteralWithInterpolation(t *testing.T) {
	toks, errs := ScanAll(`"hello {name}!"`, Config{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Kind{token.Str, token.InterpolationStart, token.Ident, token.InterpolationEnd, token.Str, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if toks[0].Lexeme != `"hello ` {
		t.Errorf("toks[0].Lexeme = %q, want %q", toks[0].Lexeme, `"hello `)
	}
	if toks[2].Lexeme != "name" {
		t.Errorf("toks[2].Lexeme = %q, want %q", toks[2].Lexeme, "name")
	}
	if toks[4].Lexeme != `!"` {
		t.Errorf("toks[4].Lexeme = %q, want %q", toks[4].Lexeme, `!"`)
	}
}

func TestStringLiteralWithNestedInterpolation(t *testing.T) {
	toks, errs := ScanAll(`"outer {greet("there")} done"`, Config{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Kind{
		token.Str, token.InterpolationStart,
		token.Ident, token.LeftParen, token.Str, token.RightParen,
		token.InterpolationEnd, token.Str, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStringLiteralWithAdjacentInterpolations(t *testing.T) {
	toks, errs := ScanAll(`"{a}{b}"`, Config{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Kind{
		token.Str, token.InterpolationStart, token.Ident, token.InterpolationEnd,
		token.InterpolationStart, token.Ident, token.InterpolationEnd, token.Str, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUnclosedStringIsError(t *testing.T) {
	_, errs := ScanAll(`"unterminated`, Config{})
	if len(errs) == 0 {
		t.Fatal("expected an unclosed-string error")
	}
}

func TestIllegalCharacterEmitsErrorToken(t *testing.T) {
	toks, errs := ScanAll("var x = #;", Config{EmitErrorTokens: true})
	if len(errs) == 0 {
		t.Fatal("expected a lexical error for '#'")
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == token.Error {
			found = true
		}
	}
	if !found {
		t.Error("expected an Error token to appear in the stream")
	}
}

func TestCursorPullAPI(t *testing.T) {
	c := NewCursor("var x = 1;", Config{AttachTrivia: true})
	if c.Current().Kind != token.KwVar {
		t.Fatalf("Current() = %s, want KwVar", c.Current().Kind)
	}
	if c.Peek(1).Kind != token.Ident {
		t.Fatalf("Peek(1) = %s, want Ident", c.Peek(1).Kind)
	}
	first := c.Advance()
	if first.Kind != token.KwVar {
		t.Fatalf("Advance() returned %s, want KwVar", first.Kind)
	}
	if c.Previous().Kind != token.KwVar {
		t.Fatalf("Previous() = %s, want KwVar", c.Previous().Kind)
	}
	if c.Current().Kind != token.Ident {
		t.Fatalf("Current() after advance = %s, want Ident", c.Current().Kind)
	}
}

func TestCursorStopsAdvancingAtEOF(t *testing.T) {
	c := NewCursor("", Config{})
	if !c.AtEOF() {
		t.Fatal("expected empty source to start at EOF")
	}
	c.Advance()
	if !c.AtEOF() {
		t.Fatal("expected cursor to remain at EOF")
	}
}

func TestRawSourceReconstructWithUnattachedTrivia(t *testing.T) {
	// When AttachTrivia is off and trivia is preserved, tokens interleave
	// in source order so the raw stream itself still reconstructs.
	src := "var   x;"
	toks, _ := ScanAll(src, Config{PreserveWhitespace: true})
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Lexeme
	}
	if rebuilt != src {
		t.Errorf("rebuilt = %q, want %q", rebuilt, src)
	}
}
