// Package parser implements the dual-mode recursive-descent parser:
// one grammar, driven in one of three modes that trade off how much tree
// the caller actually wants built. The grammar procedures are shared
// across modes via one marker/wrap mechanism: emit children flatly, then
// retroactively wrap a range into a parent node.
package parser

// Mode selects how much of the dual CST/AST output the parser builds.
type Mode int

const (
	// CSTOnly builds only the concrete syntax tree; no AST lowering runs.
	CSTOnly Mode = iota
	// CSTThenAST builds the CST first, then lowers it to an AST via the
	// build package as a separate pass.
	CSTThenAST
	// DirectAST asks the caller only for the lowered AST; the parser
	// still builds the full CST internally (lumen.Build discards it
	// after the build package lowers it) rather than lowering inline
	// production-by-production, so it is a caller-facing distinction,
	// not yet a different code path through the grammar.
	DirectAST
)

func (m Mode) String() string {
	switch m {
	case CSTOnly:
		return "CST_ONLY"
	case CSTThenAST:
		return "CST_THEN_AST"
	case DirectAST:
		return "DIRECT_AST"
	}
	return "UNKNOWN"
}
