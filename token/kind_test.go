package token

import "testing"

func TestKindIsTrivia(t *testing.T) {
	trivia := []Kind{Whitespace, Newline, LineComment, BlockComment}
	notTrivia := []Kind{EOF, Ident, KwVar, Plus}

	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = false, want true", k)
		}
	}
	for _, k := range notTrivia {
		if k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = true, want false", k)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	keywords := []Kind{KwVar, KwFn, KwClass, KwIf, KwParallel, KwAwait}
	notKeywords := []Kind{Ident, Int, Plus, KwInt, EOF}

	for _, k := range keywords {
		if !k.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false, want true", k)
		}
	}
	for _, k := range notKeywords {
		if k.IsKeyword() {
			t.Errorf("%s.IsKeyword() = true, want false", k)
		}
	}
}

func TestKindIsTypeKeyword(t *testing.T) {
	typeKw := []Kind{KwInt, KwStrType, KwList, KwOption, KwAtomic}
	notTypeKw := []Kind{KwVar, Ident, Int}

	for _, k := range typeKw {
		if !k.IsTypeKeyword() {
			t.Errorf("%s.IsTypeKeyword() = false, want true", k)
		}
	}
	for _, k := range notTypeKw {
		if k.IsTypeKeyword() {
			t.Errorf("%s.IsTypeKeyword() = true, want false", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"var", KwVar},
		{"fn", KwFn},
		{"class", KwClass},
		{"int", KwInt},
		{"true", Bool},
		{"false", Bool},
		{"nil", Nil},
		{"notAKeyword", Ident},
		{"", Ident},
	}
	for _, tt := range tests {
		if got := Lookup(tt.text); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestSetMembership(t *testing.T) {
	s := SetOf(KwIf, KwElse, Semicolon)
	if !s.Contains(KwIf) || !s.Contains(KwElse) || !s.Contains(Semicolon) {
		t.Fatal("expected set to contain all added kinds")
	}
	if s.Contains(KwFor) {
		t.Fatal("set should not contain KwFor")
	}
	s = s.Remove(KwIf)
	if s.Contains(KwIf) {
		t.Fatal("expected KwIf removed")
	}
	if s.IsEmpty() {
		t.Fatal("set should not be empty")
	}
}

func TestSpanUnionAndContains(t *testing.T) {
	a := Span{Start: Position{Offset: 5, Line: 1, Column: 6}, End: Position{Offset: 10, Line: 1, Column: 11}}
	b := Span{Start: Position{Offset: 2, Line: 1, Column: 3}, End: Position{Offset: 8, Line: 1, Column: 9}}
	u := a.Union(b)
	if u.Start.Offset != 2 || u.End.Offset != 10 {
		t.Fatalf("Union = %v, want [2,10)", u)
	}
	if !u.Contains(a) || !u.Contains(b) {
		t.Fatal("union should contain both operands")
	}
}

func TestTokenReconstruct(t *testing.T) {
	tok := Token{
		Kind:   KwVar,
		Lexeme: "var",
		LeadingTrivia: []Token{
			{Kind: LineComment, Lexeme: "// hi"},
			{Kind: Newline, Lexeme: "\n"},
		},
		TrailingTrivia: []Token{
			{Kind: Whitespace, Lexeme: " "},
		},
	}
	want := "// hi\nvar "
	if got := tok.Reconstruct(); got != want {
		t.Errorf("Reconstruct() = %q, want %q", got, want)
	}
}
