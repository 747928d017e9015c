package parser

import "github.com/lumenlang/lumen/token"

// RecoveryConfig tunes how aggressively the parser recovers from
// malformed input instead of giving up on the first error.
type RecoveryConfig struct {
	// MaxErrors caps how many diagnostics the parser reports; once it is
	// reached, further diagnostics are dropped while parsing continues to
	// the end of input. 0 means unlimited.
	MaxErrors int
	// SyncTokens is the set of kinds recovery scans forward to when it
	// can't make local progress (typically statement/declaration
	// starters and closing delimiters).
	SyncTokens token.Set
	// InsertMissingTokens synthesizes a zero-width Missing node for a
	// required token recovery never finds (e.g. a missing ';').
	InsertMissingTokens bool
	// SkipInvalidTokens is carried in the configuration but not consulted
	// by the parser: tokens the grammar can't place are always kept in
	// the tree, wrapped in an ErrorNode.
	SkipInvalidTokens bool
	// CreatePartialNodes is carried in the configuration but not consulted
	// by the parser: a construct missing a required sub-element (an
	// unclosed block, a parameter list with no '(') is always wrapped as
	// Incomplete.
	CreatePartialNodes bool
	// ContinueOnError keeps parsing subsequent declarations/statements
	// after a recovery event instead of aborting the parse.
	ContinueOnError bool
}

// DefaultRecoveryConfig is the default recovery posture: keep going,
// insert what's obviously missing, wrap what it can't place.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		MaxErrors:           0,
		SyncTokens:          defaultSyncTokens,
		InsertMissingTokens: true,
		SkipInvalidTokens:   false,
		CreatePartialNodes:  true,
		ContinueOnError:     true,
	}
}

var defaultSyncTokens = token.SetOf(
	token.Semicolon, token.RightBrace,
	token.KwVar, token.KwFn, token.KwClass, token.KwTrait, token.KwInterface,
	token.KwModule, token.KwType, token.KwEnumType, token.KwImport,
	token.KwIf, token.KwWhile, token.KwFor, token.KwIter, token.KwMatch,
	token.KwReturn, token.KwBreak, token.KwContinue, token.KwPrint,
	token.KwAttempt, token.KwParallel, token.KwConcurrent, token.KwUnsafe,
	token.KwContract, token.KwComptime,
)

// MaxDepth bounds how deeply parseExpr may be re-entered, guarding
// against stack-overflowing on adversarial input.
const MaxDepth = 256
