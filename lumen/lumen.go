// Package lumen is the module's entry point: it wires together scanner,
// parser, and build into the three pipeline shapes the language's
// compiler frontend offers (token stream only, CST-then-AST, or
// direct-to-AST) and exposes the module's own version.
package lumen

import (
	"github.com/maloquacious/semver"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/build"
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/diag"
	"github.com/lumenlang/lumen/parser"
	"github.com/lumenlang/lumen/scanner"
	"github.com/lumenlang/lumen/token"
)

// Version reports this module's semantic version, stamped with the
// revision the binary was built from.
func Version() semver.Version {
	return semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
}

// Result bundles the output of running the pipeline to completion: the
// CST (set by ParseCST and ParseAndBuild; Build parses through a CST too
// but leaves this field nil), the AST (nil from ParseCST), and whatever
// diagnostics the scanner,
// parser, and builder accumulated along the way.
type Result struct {
	CST         *cst.Node
	AST         *ast.Program
	Diagnostics []diag.Diagnostic
}

// ParseCST runs the scanner and parser only, producing a lossless CST
// with no AST lowering — the CST_ONLY mode.
func ParseCST(source string, recovery parser.RecoveryConfig) Result {
	sink := diag.NewMemorySink()
	p := parser.New(source, parser.CSTOnly, recovery, sink)
	root := parser.ParseProgram(p)
	return Result{CST: root, Diagnostics: sink.Diagnostics()}
}

// ParseAndBuild runs the full scanner → parser → builder pipeline,
// producing both the CST and its lowered AST — the CST_THEN_AST
// mode, the pipeline used when a caller wants to inspect the parse tree
// (for tooling, formatting, or diagnostics) as well as the normalized
// tree most analyses want to walk.
func ParseAndBuild(source string, recovery parser.RecoveryConfig, buildCfg build.Config) Result {
	sink := diag.NewMemorySink()
	p := parser.New(source, parser.CSTThenAST, recovery, sink)
	root := parser.ParseProgram(p)
	b := build.New(buildCfg, sink)
	prog := b.Build(root)
	return Result{CST: root, AST: prog, Diagnostics: sink.Diagnostics()}
}

// Build runs the pipeline in DIRECT_AST mode: the CST is still produced
// internally (the grammar is one shared grammar over the same marker/wrap
// mechanism regardless of Mode — see parser.Mode's doc comment) but only
// the lowered AST is returned, for callers that never need the
// intermediate tree.
func Build(source string, recovery parser.RecoveryConfig, buildCfg build.Config) Result {
	sink := diag.NewMemorySink()
	p := parser.New(source, parser.DirectAST, recovery, sink)
	root := parser.ParseProgram(p)
	b := build.New(buildCfg, sink)
	prog := b.Build(root)
	return Result{AST: prog, Diagnostics: sink.Diagnostics()}
}

// Tokens runs the scanner alone, returning the full significant-and-trivia
// token stream for source — the lowest-level entry point, useful for
// syntax highlighting or a formatter that never needs to parse at all.
func Tokens(source string) ([]token.Token, []error) {
	return scanner.ScanAll(source, scanner.Config{
		PreserveWhitespace: true,
		PreserveComments:   true,
		AttachTrivia:       true,
	})
}
