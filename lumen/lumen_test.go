package lumen

import (
	"testing"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/build"
	"github.com/lumenlang/lumen/parser"
)

func TestParseCSTProducesLosslessTree(t *testing.T) {
	src := "var x = 1;\n"
	res := ParseCST(src, parser.DefaultRecoveryConfig())
	if res.AST != nil {
		t.Fatal("CST_ONLY mode should not produce an AST")
	}
	if got := res.CST.ReconstructSource(); got != src {
		t.Fatalf("expected lossless reconstruction, got %q want %q", got, src)
	}
}

func TestParseAndBuildProducesBothTrees(t *testing.T) {
	res := ParseAndBuild("fn main() { print(1); }", parser.DefaultRecoveryConfig(), build.DefaultConfig())
	if res.CST == nil {
		t.Fatal("expected a CST")
	}
	if res.AST == nil || len(res.AST.Decls) != 1 {
		t.Fatalf("expected one lowered decl, got %+v", res.AST)
	}
	if _, ok := res.AST.Decls[0].(*ast.FnDecl); !ok {
		t.Fatalf("expected *ast.FnDecl, got %T", res.AST.Decls[0])
	}
}

func TestBuildModeOmitsCST(t *testing.T) {
	res := Build("var x = 1;", parser.DefaultRecoveryConfig(), build.DefaultConfig())
	if res.CST != nil {
		t.Fatal("DIRECT_AST mode should not surface the intermediate CST")
	}
	if res.AST == nil || len(res.AST.Decls) != 1 {
		t.Fatal("expected one lowered decl")
	}
}

func TestTokensReturnsSignificantAndTrivia(t *testing.T) {
	toks, errs := Tokens("var x = 1;\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if len(toks) == 0 {
		t.Fatal("expected a non-empty token stream")
	}
}

func TestVersionReportsMajorZeroMinorOne(t *testing.T) {
	v := Version()
	if v.Major != 0 || v.Minor != 1 {
		t.Fatalf("unexpected version %+v", v)
	}
}
