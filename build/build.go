// Package build implements the CST→AST lowering Builder: it walks a
// cst.Node tree produced by the parser and produces
// the independently-owned ast.Node tree described in the ast package,
// resolving type annotations as it goes per the strategy matrix in
// resolve.go.
package build

import (
	"fmt"

	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/cst"
	"github.com/lumenlang/lumen/diag"
	"github.com/lumenlang/lumen/token"
)

// Config tunes how tolerant the Builder is of CST errors it finds while
// lowering.
type Config struct {
	// StrictMode is carried in the configuration but the Builder does not
	// consult it: erroneous CST nodes are lowered to ast.Error*
	// placeholders and lowering continues whether or not it is set.
	StrictMode bool
	// MaxErrors stops lowering (returning what's been built so far) once
	// the Builder itself has reported this many diagnostics; 0 means
	// unlimited.
	MaxErrors int
}

// DefaultConfig mirrors the parser's recovery posture: keep going,
// placeholder what can't be lowered.
func DefaultConfig() Config {
	return Config{StrictMode: false, MaxErrors: 0}
}

// Builder lowers a CST into an AST, reporting diagnostics for anything it
// cannot confidently lower, and maintaining the TypeEnv scope stack used
// by the resolution strategy in resolve.go.
type Builder struct {
	cfg  Config
	sink diag.Sink
	env  *ast.TypeEnv

	errCount int

	// deferred collects expressions whose type resolution strategy is
	// Deferred under the resolution strategy matrix: resolveDeferred walks this
	// list in a second pass once every declaration-site type is known,
	// and — when an entry carries an `after` callback — propagates the
	// resolved type back to whatever declaration was waiting on it (e.g.
	// a `var x = expr;` with no annotation of its own).
	deferred []deferredEntry

	// deferredSeq numbers the "deferred_N" placeholder written onto an
	// expression node the moment it's built, before the second pass has
	// had any chance to resolve it.
	deferredSeq int
}

// New builds a Builder ready to lower a CST rooted at a Program node.
func New(cfg Config, sink diag.Sink) *Builder {
	return &Builder{
		cfg:  cfg,
		sink: sink,
		env:  ast.NewTypeEnv(),
	}
}

// Build lowers a cst.Program node into an ast.Program, then runs the
// deferred-resolution pass over every expression type that couldn't be
// resolved immediately.
func (b *Builder) Build(root *cst.Node) *ast.Program {
	prog := &ast.Program{}
	prog.SetSpan(root.Span)
	b.registerTopLevelNames(root)
	for _, child := range root.Children {
		if child.Node == nil {
			continue
		}
		if b.cfg.MaxErrors > 0 && b.errCount >= b.cfg.MaxErrors {
			break
		}
		prog.Decls = append(prog.Decls, b.lowerDecl(child.Node))
	}
	b.resolveDeferred()
	return prog
}

// registerTopLevelNames pre-declares every named type a module introduces
// (class/trait/interface/enum; type aliases are declared only when their
// declaration is lowered) into the root TypeEnv scope
// before any declaration body is lowered, so a forward reference — a
// function whose parameter type names a class defined later in the file —
// resolves IMMEDIATELY rather than falling back to Partial. A two-pass
// declare-signatures-then-lower-bodies resolution keeps order-independence
// out of the grammar and in the builder instead.
func (b *Builder) registerTopLevelNames(root *cst.Node) {
	for _, child := range root.Children {
		if child.Node == nil {
			continue
		}
		name := firstIdent(child.Node)
		if name == "" {
			continue
		}
		switch child.Node.Kind {
		case cst.ClassDecl, cst.TraitDecl, cst.InterfaceDecl, cst.EnumDecl:
			b.env.Declare(name, &ast.TypeAnnotation{Name: name, Shape: ast.ShapeUserDefined, State: ast.Immediate})
		}
	}
}

func (b *Builder) reportf(span token.Span, code diag.Code, format string, args ...any) {
	if b.sink == nil {
		return
	}
	if b.cfg.MaxErrors > 0 && b.errCount >= b.cfg.MaxErrors {
		return
	}
	b.errCount++
	b.sink.Report(diag.Diagnostic{
		Severity: diag.Error,
		Code:     code,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}
