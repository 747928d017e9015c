package build

import (
	"testing"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/diag"
	"github.com/lumenlang/lumen/parser"
)

func buildText(t *testing.T, src string) (*ast.Program, *diag.MemorySink) {
	t.Helper()
	prog, _, sink := buildTextWithBuilder(t, src)
	return prog, sink
}

// buildTextWithBuilder is buildText but also hands back the Builder so a
// test can inspect its deferred worklist after Build returns — Build never
// clears b.deferred, so the worklist still shows which expression nodes
// were handed a placeholder and queued rather than resolved on the spot.
func buildTextWithBuilder(t *testing.T, src string) (*ast.Program, *Builder, *diag.MemorySink) {
	t.Helper()
	sink := diag.NewMemorySink()
	p := parser.New(src, parser.CSTThenAST, parser.DefaultRecoveryConfig(), sink)
	root := parser.ParseProgram(p)
	b := New(DefaultConfig(), sink)
	prog := b.Build(root)
	return prog, b, sink
}

// wasDeferred reports whether expr has an entry in b's deferred worklist —
// i.e. the lowering pass gave it a placeholder instead of a real type.
func wasDeferred(b *Builder, expr ast.Expr) bool {
	for _, d := range b.deferred {
		if d.expr == expr {
			return true
		}
	}
	return false
}

func TestBuildLowersSimpleVarDecl(t *testing.T) {
	prog, b, sink := buildTextWithBuilder(t, "var x: int = 1;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	v, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", prog.Decls[0])
	}
	if v.Name != "x" {
		t.Fatalf("expected name 'x', got %q", v.Name)
	}
	// The declaration's own annotation is a declaration-site type, so it
	// resolves immediately rather than going through the deferred worklist.
	if v.Type == nil || v.Type.Name != "int" {
		t.Fatalf("expected resolved int type, got %+v", v.Type)
	}
	lit, ok := v.Value.(*ast.LiteralExpr)
	if !ok {
		t.Fatalf("expected *ast.LiteralExpr value, got %T", v.Value)
	}
	// The literal is an expression node: lowering must defer it rather than
	// stamp a resolved type directly, even though it ends up at "int" once
	// the deferred pass runs.
	if !wasDeferred(b, lit) {
		t.Fatal("expected the literal expression to be queued on the deferred worklist, not resolved during lowering")
	}
	if lit.ResolvedType() == nil || lit.ResolvedType().Name != "int" {
		t.Fatal("expected the deferred pass to settle the literal's ResolvedType to builtin int")
	}
}

func TestBuildInfersUnannotatedVarFromInitializer(t *testing.T) {
	prog, sink := buildText(t, "var y = 42;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	v := prog.Decls[0].(*ast.VarDecl)
	if v.Type == nil || v.Type.Name != "int" {
		t.Fatalf("expected the deferred pass to backfill int, got %+v", v.Type)
	}
}

func TestBuildLowersFunctionDeclWithParamsAndBody(t *testing.T) {
	prog, b, sink := buildTextWithBuilder(t, "fn add(a: int, b: int) -> int { return a + b; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	fn, ok := prog.Decls[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("expected *ast.FnDecl, got %T", prog.Decls[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("expected fn add/a,b, got %q %v", fn.Name, fn.Params)
	}
	if fn.ReturnType == nil || fn.ReturnType.Name != "int" {
		t.Fatalf("expected int return type, got %+v", fn.ReturnType)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected one statement in body, got %d", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr return value, got %T", ret.Value)
	}
	if bin.Op != ast.OpAdd {
		t.Fatalf("expected OpAdd, got %v", bin.Op)
	}
	// A BinaryExpr is an expression node: lowering must queue it on the
	// deferred worklist rather than propagate its left operand's type on
	// the spot.
	if !wasDeferred(b, bin) {
		t.Fatal("expected the binary expression to be queued on the deferred worklist, not resolved during lowering")
	}
	if bin.ResolvedType() == nil || bin.ResolvedType().Name != "int" {
		t.Fatalf("expected the deferred pass to resolve the binary expr to int via its operand's declared type, got %+v", bin.ResolvedType())
	}
}

func TestBuildLowersClassWithFieldsAndMethods(t *testing.T) {
	prog, sink := buildText(t, `
class Point {
	var x: int;
	var y: int;
	fn length() -> float { return x; }
}`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	cls, ok := prog.Decls[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", prog.Decls[0])
	}
	if len(cls.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(cls.Fields))
	}
	if len(cls.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(cls.Methods))
	}
}

func TestBuildLowersIfElseChain(t *testing.T) {
	prog, sink := buildText(t, `
fn classify(n: int) -> int {
	if n < 0 {
		return 0;
	} else if n == 0 {
		return 1;
	} else {
		return 2;
	}
}`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	fn := prog.Decls[0].(*ast.FnDecl)
	ifStmt, ok := fn.Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", fn.Body[0])
	}
	elseIf, ok := ifStmt.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected the else branch to be a nested *ast.IfStmt, got %T", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.Block); !ok {
		t.Fatalf("expected the innermost else to be a plain *ast.Block, got %T", elseIf.Else)
	}
}

func TestBuildToleratesMissingSemicolon(t *testing.T) {
	prog, sink := buildText(t, "var x = 1\nvar y = 2;")
	if !sink.HasErrors() {
		t.Fatal("expected the parser's missing-';' diagnostic to survive into the build pass")
	}
	if len(prog.Decls) != 2 {
		t.Fatalf("expected recovery to still yield 2 decls, got %d", len(prog.Decls))
	}
}

func TestBuildLowersMatchStatement(t *testing.T) {
	prog, sink := buildText(t, `
fn describe(n: int) -> str {
	match n {
		case 0 => { return "zero"; }
		default => { return "other"; }
	}
}`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	fn := prog.Decls[0].(*ast.FnDecl)
	m, ok := fn.Body[0].(*ast.MatchStmt)
	if !ok {
		t.Fatalf("expected *ast.MatchStmt, got %T", fn.Body[0])
	}
	if len(m.Cases) != 2 {
		t.Fatalf("expected 2 match cases, got %d", len(m.Cases))
	}
}

func TestBuildLowersListAndDictLiterals(t *testing.T) {
	prog, sink := buildText(t, `var xs = [1, 2, 3];`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	v := prog.Decls[0].(*ast.VarDecl)
	lst, ok := v.Value.(*ast.ListExpr)
	if !ok {
		t.Fatalf("expected *ast.ListExpr, got %T", v.Value)
	}
	if len(lst.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(lst.Elements))
	}
}

func TestBuildLowersPrintStmtWithMultipleArgs(t *testing.T) {
	prog, sink := buildText(t, `fn f() { print("sum is", 1 + 2); }`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	fn := prog.Decls[0].(*ast.FnDecl)
	ps, ok := fn.Body[0].(*ast.PrintStmt)
	if !ok {
		t.Fatalf("expected *ast.PrintStmt, got %T", fn.Body[0])
	}
	if len(ps.Args) != 2 {
		t.Fatalf("expected 2 print args, got %d", len(ps.Args))
	}
	if _, ok := ps.Args[0].(*ast.LiteralExpr); !ok {
		t.Fatalf("expected first arg to be a string literal, got %T", ps.Args[0])
	}
	if _, ok := ps.Args[1].(*ast.BinaryExpr); !ok {
		t.Fatalf("expected second arg to be a binary expr, got %T", ps.Args[1])
	}
}

func TestBuildUnresolvedForwardReferenceRecoversInSecondPass(t *testing.T) {
	prog, sink := buildText(t, `
fn makeBox(v: Box) -> Box { return v; }
class Box { var inner: int; }
`)
	if sink.HasErrors() {
		t.Fatalf("expected the top-level name pre-pass to resolve the forward reference to Box, got: %v", sink.Diagnostics())
	}
	fn := prog.Decls[0].(*ast.FnDecl)
	if fn.Params[0].Type == nil || fn.Params[0].Type.Shape != ast.ShapeUserDefined {
		t.Fatalf("expected Box param type to resolve to a user-defined shape eventually, got %+v", fn.Params[0].Type)
	}
}
