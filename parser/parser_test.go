package parser

import (
	"testing"

	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/diag"
)

func parseText(t *testing.T, src string) (*cst.Node, *diag.MemorySink) {
	t.Helper()
	sink := diag.NewMemorySink()
	p := New(src, CSTOnly, DefaultRecoveryConfig(), sink)
	return ParseProgram(p), sink
}

func TestParseSimpleVarDecl(t *testing.T) {
	root, sink := parseText(t, "var x = 1;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	decls := root.FindChildren(cst.VarDecl)
	if len(decls) != 1 {
		t.Fatalf("expected 1 VarDecl, got %d", len(decls))
	}
}

func TestParseFunctionWithBody(t *testing.T) {
	root, sink := parseText(t, "fn add(a: int, b: int) -> int { return a + b; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	if len(root.FindChildren(cst.FnDecl)) != 1 {
		t.Fatal("expected one FnDecl")
	}
}

func TestParseRecoversFromMissingSemicolon(t *testing.T) {
	root, sink := parseText(t, "var x = 1\nvar y = 2;")
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic about the missing ';'")
	}
	if len(root.FindChildren(cst.VarDecl)) != 2 {
		t.Fatal("expected the parser to recover and still find both declarations")
	}
}

func TestParseRecoversFromUnclosedBrace(t *testing.T) {
	root, sink := parseText(t, "fn f() { var x = 1;")
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic about the unclosed block")
	}
	diags := sink.Diagnostics()
	found := false
	for _, d := range diags {
		if d.Message != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected at least one non-empty diagnostic message")
	}
	_ = root
}

func TestOperatorPrecedence(t *testing.T) {
	root, sink := parseText(t, "var x = 1 + 2 * 3;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	decl := root.FindChild(cst.VarDecl)
	if decl == nil {
		t.Fatal("expected a VarDecl")
	}
	bin := findFirst(decl, cst.BinaryExpr)
	if bin == nil {
		t.Fatal("expected a BinaryExpr for '1 + 2 * 3'")
	}
	// The outermost binary node should be the '+', with '2 * 3' nested
	// as its right operand — i.e. the '*' BinaryExpr must be a
	// descendant of the '+' BinaryExpr, not a sibling.
	var nested *cst.Node
	for _, c := range bin.Children {
		if c.Node != nil {
			if found := findFirst(c.Node, cst.BinaryExpr); found != nil {
				nested = found
			}
		}
	}
	if nested == nil {
		t.Fatal("expected '*' to nest inside '+' per precedence")
	}
}

func TestTernaryDoesNotConsumeOptionalTypeQuestion(t *testing.T) {
	_, sink := parseText(t, "fn f(x: int?) -> int { return x ? 1 : 2; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
}

func TestRangeExpression(t *testing.T) {
	root, sink := parseText(t, "for i in 0..10 { print(i); }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	if findFirst(root, cst.RangeExpr) == nil {
		t.Fatal("expected a RangeExpr for '0..10'")
	}
}

func TestPrintStmtParsesMultipleArgsNotAGroup(t *testing.T) {
	root, sink := parseText(t, `fn f() { print("sum is", 1 + 2); }`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	printStmt := findFirst(root, cst.PrintStmt)
	if printStmt == nil {
		t.Fatal("expected a PrintStmt")
	}
	al := printStmt.FindChild(cst.ArgList)
	if al == nil {
		t.Fatal("expected PrintStmt to carry an ArgList, not a single GroupExpr")
	}
	if args := al.FindChildren(cst.Arg); len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func findFirst(n *cst.Node, kind cst.Kind) *cst.Node {
	var found *cst.Node
	cst.WalkPreOrder(n, func(cur *cst.Node) bool {
		if found != nil {
			return false
		}
		if cur.Kind == kind {
			found = cur
			return false
		}
		return true
	})
	return found
}
