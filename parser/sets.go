package parser

import "github.com/lumenlang/lumen/token"

var declStarters = token.SetOf(
	token.KwVar, token.KwConst, token.KwFn, token.KwClass, token.KwTrait,
	token.KwInterface, token.KwModule, token.KwType, token.KwEnumType, token.KwImport,
	token.KwPublic, token.KwPrivate, token.KwProtected, token.KwStatic,
)

var stmtStarters = token.SetOf(
	token.KwIf, token.KwWhile, token.KwFor, token.KwIter, token.KwMatch,
	token.KwAttempt, token.KwParallel, token.KwConcurrent, token.KwUnsafe,
	token.KwContract, token.KwComptime, token.KwReturn, token.KwBreak,
	token.KwContinue, token.KwPrint, token.LeftBrace,
)

var assignOps = token.SetOf(
	token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
	token.SlashAssign, token.PercentAssign, token.AmpAssign, token.PipeAssign,
	token.CaretAssign, token.QuestionQuestionAssign,
)

var equalityOps = token.SetOf(token.Eq, token.NotEq)
var comparisonOps = token.SetOf(token.Less, token.LessEq, token.Greater, token.GreaterEq)
var termOps = token.SetOf(token.Plus, token.Minus)
var factorOps = token.SetOf(token.Star, token.Slash, token.Percent)
var unaryOps = token.SetOf(token.Bang, token.Minus, token.Tilde)

var literalStarters = token.SetOf(token.Int, token.Float, token.Str, token.Bool, token.Nil)

var typeStarters = token.SetOf(
	token.KwInt, token.KwUint, token.KwFloatType, token.KwI8, token.KwI16, token.KwI32, token.KwI64,
	token.KwU8, token.KwU16, token.KwU32, token.KwU64, token.KwF32, token.KwF64,
	token.KwStrType, token.KwBoolType, token.KwList, token.KwDict, token.KwArray,
	token.KwSum, token.KwUnion, token.KwOption, token.KwResult, token.KwAny, token.KwVoid,
	token.KwChannel, token.KwAtomic, token.Ident, token.KwFn,
)
