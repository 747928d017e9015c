package diag

import (
	"strings"
	"testing"

	"github.com/lumenlang/lumen/token"
)

func TestMemorySinkHasErrors(t *testing.T) {
	sink := NewMemorySink()
	if sink.HasErrors() {
		t.Fatal("fresh sink should report no errors")
	}
	sink.Report(Diagnostic{Severity: Warning, Message: "unused variable"})
	if sink.HasErrors() {
		t.Fatal("a warning alone should not count as an error")
	}
	sink.Report(Diagnostic{Severity: Error, Message: "unexpected token"})
	if !sink.HasErrors() {
		t.Fatal("expected HasErrors to report true once an Error is recorded")
	}
	if len(sink.Diagnostics()) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(sink.Diagnostics()))
	}
}

func TestSuggestKnownPair(t *testing.T) {
	if got := Suggest(token.Semicolon, token.RightBrace); got == "" {
		t.Fatal("expected a canned suggestion for missing ';' before '}'")
	}
}

func TestSuggestUnknownPairIsEmpty(t *testing.T) {
	if got := Suggest(token.KwFn, token.KwClass); got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}

func TestRenderIncludesCausedByAndCaret(t *testing.T) {
	d := Diagnostic{
		Severity:      Error,
		Code:          "E0001",
		Span:          token.Span{Start: token.Position{Line: 3, Column: 5}},
		Message:       "expected ';'",
		CausedBy:      "unclosed block starting at 2:1",
		SourceContext: "    var x = 1",
		Suggestion:    "insert ';' at the end of the statement",
	}
	out := Render(d)
	if !strings.Contains(out, "caused by: unclosed block") {
		t.Error("expected rendered output to include the caused-by line")
	}
	if !strings.Contains(out, "^") {
		t.Error("expected rendered output to include a caret")
	}
	if !strings.Contains(out, "suggestion:") {
		t.Error("expected rendered output to include the suggestion line")
	}
}

func TestTruncateSnippetHandlesLongLines(t *testing.T) {
	line := strings.Repeat("x", 200)
	snippet, caret := truncateSnippet(line, 150)
	if len(snippet) == 0 {
		t.Fatal("expected a non-empty snippet")
	}
	if caret < 0 {
		t.Fatal("expected a non-negative caret offset")
	}
}
