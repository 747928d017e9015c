// Package token defines the closed set of lexical token kinds, the
// half-open source span type, and the Token record produced by the
// scanner, including its attached leading/trailing trivia.
//
// Kind's closed enum and Span's half-open byte range follow the same
// shape as a typesetting-language scanner's token set, generalized here
// from a markup/math/code split to Lumen's single-mode statically-typed
// grammar.
package token

// Kind tags a token (or, reused by the cst package, a syntax tree node).
// The enumeration is closed: new kinds are never added by a caller.
type Kind uint8

const (
	// Illegal is the zero value; a well-formed token stream never emits it.
	Illegal Kind = iota
	EOF
	Error // a scanner-level lexical error (see Token.Lexeme for the offending text)

	// Trivia
	Whitespace
	Newline
	LineComment
	BlockComment

	// Identifiers and literals
	Ident
	Int
	Float
	Str
	InterpolationStart
	InterpolationEnd
	Bool
	Nil

	// Delimiters
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Colon
	Dot
	Arrow     // ->
	DotDot    // ..
	DotDotDot // ...
	QuestionDot
	QuestionColon // ?:
	Question
	QuestionQuestion       // ??
	QuestionQuestionAssign // ??=
	At
	FatArrow // =>
	PlusPlus
	MinusMinus

	// Operators
	Plus
	Minus
	Star
	StarStar // **
	Slash
	Percent
	Bang
	Tilde
	Amp   // &
	Pipe  // |
	Caret // ^
	Assign // =
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AmpAssign
	PipeAssign
	CaretAssign
	Eq // ==
	NotEq
	Less
	LessEq
	Greater
	GreaterEq
	AndAnd // and
	OrOr   // or

	// Keywords: declarations & visibility
	KwVar
	KwFn
	KwClass
	KwTrait
	KwInterface
	KwModule
	KwType
	KwEnum
	KwImport
	KwPublic
	KwPrivate
	KwProtected
	KwStatic
	KwConst
	KwThis
	KwSuper
	KwExtends
	KwImplements

	// Keywords: control flow
	KwIf
	KwElse
	KwWhile
	KwFor
	KwIn
	KwIter
	KwMatch
	KwCase
	KwDefault
	KwReturn
	KwBreak
	KwContinue
	KwPrint

	// Keywords: error handling & concurrency
	KwAttempt
	KwCatch
	KwFinally
	KwThrow
	KwParallel
	KwConcurrent
	KwUnsafe
	KwContract
	KwComptime
	KwAsync
	KwAwait

	// Type keywords
	KwInt
	KwUint
	KwFloatType
	KwI8
	KwI16
	KwI32
	KwI64
	KwU8
	KwU16
	KwU32
	KwU64
	KwF32
	KwF64
	KwStrType
	KwBoolType
	KwList
	KwDict
	KwArray
	KwEnumType
	KwSum
	KwUnion
	KwOption
	KwResult
	KwAny
	KwVoid
	KwChannel
	KwAtomic

	maxKind
)

var names = [maxKind]string{
	Illegal:            "illegal",
	EOF:                "end of file",
	Error:              "lexical error",
	Whitespace:         "whitespace",
	Newline:            "newline",
	LineComment:        "line comment",
	BlockComment:       "block comment",
	Ident:              "identifier",
	Int:                "integer literal",
	Float:              "float literal",
	Str:                "string literal",
	InterpolationStart: "interpolation start",
	InterpolationEnd:   "interpolation end",
	Bool:               "boolean literal",
	Nil:                "`nil`",
	LeftParen:          "'('",
	RightParen:         "')'",
	LeftBrace:          "'{'",
	RightBrace:         "'}'",
	LeftBracket:        "'['",
	RightBracket:       "']'",
	Comma:              "','",
	Semicolon:          "';'",
	Colon:              "':'",
	Dot:                "'.'",
	Arrow:              "'->'",
	DotDot:             "'..'",
	DotDotDot:          "'...'",
	QuestionDot:        "'?.'",
	QuestionColon:      "'?:'",
	Question:           "'?'",
	QuestionQuestion:       "'??'",
	QuestionQuestionAssign: "'??='",
	At:                 "'@'",
	FatArrow:           "'=>'",
	PlusPlus:           "'++'",
	MinusMinus:         "'--'",
	Plus:               "'+'",
	Minus:              "'-'",
	Star:               "'*'",
	StarStar:           "'**'",
	Slash:              "'/'",
	Percent:            "'%'",
	Bang:               "'!'",
	Tilde:              "'~'",
	Amp:                "'&'",
	Pipe:               "'|'",
	Caret:              "'^'",
	Assign:             "'='",
	PlusAssign:         "'+='",
	MinusAssign:        "'-='",
	StarAssign:         "'*='",
	SlashAssign:        "'/='",
	PercentAssign:      "'%='",
	AmpAssign:          "'&='",
	PipeAssign:         "'|='",
	CaretAssign:        "'^='",
	Eq:                 "'=='",
	NotEq:              "'!='",
	Less:               "'<'",
	LessEq:             "'<='",
	Greater:            "'>'",
	GreaterEq:          "'>='",
	AndAnd:             "keyword `and`",
	OrOr:               "keyword `or`",
	KwVar:              "keyword `var`",
	KwFn:               "keyword `fn`",
	KwClass:            "keyword `class`",
	KwTrait:            "keyword `trait`",
	KwInterface:        "keyword `interface`",
	KwModule:           "keyword `module`",
	KwType:             "keyword `type`",
	KwEnum:             "keyword `enum`",
	KwImport:           "keyword `import`",
	KwPublic:           "keyword `public`",
	KwPrivate:          "keyword `private`",
	KwProtected:        "keyword `protected`",
	KwStatic:           "keyword `static`",
	KwConst:            "keyword `const`",
	KwThis:             "keyword `this`",
	KwSuper:            "keyword `super`",
	KwExtends:          "keyword `extends`",
	KwImplements:       "keyword `implements`",
	KwIf:               "keyword `if`",
	KwElse:             "keyword `else`",
	KwWhile:            "keyword `while`",
	KwFor:              "keyword `for`",
	KwIn:               "keyword `in`",
	KwIter:             "keyword `iter`",
	KwMatch:            "keyword `match`",
	KwCase:             "keyword `case`",
	KwDefault:          "keyword `default`",
	KwReturn:           "keyword `return`",
	KwBreak:            "keyword `break`",
	KwContinue:         "keyword `continue`",
	KwPrint:            "keyword `print`",
	KwAttempt:          "keyword `attempt`",
	KwCatch:            "keyword `catch`",
	KwFinally:          "keyword `finally`",
	KwThrow:            "keyword `throw`",
	KwParallel:         "keyword `parallel`",
	KwConcurrent:       "keyword `concurrent`",
	KwUnsafe:           "keyword `unsafe`",
	KwContract:         "keyword `contract`",
	KwComptime:         "keyword `comptime`",
	KwAsync:            "keyword `async`",
	KwAwait:            "keyword `await`",
	KwInt:              "type `int`",
	KwUint:             "type `uint`",
	KwFloatType:        "type `float`",
	KwI8:               "type `i8`",
	KwI16:              "type `i16`",
	KwI32:              "type `i32`",
	KwI64:              "type `i64`",
	KwU8:               "type `u8`",
	KwU16:              "type `u16`",
	KwU32:              "type `u32`",
	KwU64:              "type `u64`",
	KwF32:              "type `f32`",
	KwF64:              "type `f64`",
	KwStrType:          "type `str`",
	KwBoolType:         "type `bool`",
	KwList:             "type `list`",
	KwDict:             "type `dict`",
	KwArray:            "type `array`",
	KwEnumType:         "type `enum`",
	KwSum:              "type `sum`",
	KwUnion:            "type `union`",
	KwOption:           "type `option`",
	KwResult:           "type `result`",
	KwAny:              "type `any`",
	KwVoid:             "type `void`",
	KwChannel:          "type `channel`",
	KwAtomic:           "type `atomic`",
}

// String returns a human-readable, diagnostic-friendly name for the kind.
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "unknown token"
}

// IsTrivia reports whether a kind is never "significant".
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, LineComment, BlockComment:
		return true
	}
	return false
}

// IsKeyword reports whether a kind is one of the reserved-word kinds
// (control-flow, declaration, visibility, concurrency, error-handling).
func (k Kind) IsKeyword() bool {
	return k >= KwVar && k <= KwAwait
}

// IsTypeKeyword reports whether a kind names a built-in type.
func (k Kind) IsTypeKeyword() bool {
	return k >= KwInt && k <= KwAtomic
}

// IsLiteral reports whether a kind introduces a literal expression.
func (k Kind) IsLiteral() bool {
	switch k {
	case Int, Float, Str, Bool, Nil:
		return true
	}
	return false
}

// IsAssignOp reports whether a kind is a compound or plain assignment operator.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, QuestionQuestionAssign:
		return true
	}
	return false
}

// keywords maps identifier text to its keyword Kind. A lookup miss means
// the identifier is a plain IDENTIFIER.
var keywords = map[string]Kind{
	"var": KwVar, "fn": KwFn, "class": KwClass, "trait": KwTrait,
	"interface": KwInterface, "module": KwModule, "type": KwType, "enum": KwEnumType,
	"import": KwImport, "public": KwPublic, "private": KwPrivate, "protected": KwProtected,
	"static": KwStatic, "const": KwConst, "this": KwThis, "super": KwSuper,
	"extends": KwExtends, "implements": KwImplements,
	"if": KwIf, "else": KwElse, "while": KwWhile, "for": KwFor, "in": KwIn,
	"iter": KwIter, "match": KwMatch, "case": KwCase, "default": KwDefault,
	"return": KwReturn, "break": KwBreak, "continue": KwContinue, "print": KwPrint,
	"attempt": KwAttempt, "catch": KwCatch, "finally": KwFinally, "throw": KwThrow,
	"parallel": KwParallel, "concurrent": KwConcurrent, "unsafe": KwUnsafe,
	"contract": KwContract, "comptime": KwComptime, "async": KwAsync, "await": KwAwait,
	"and": AndAnd, "or": OrOr,
	"true": Bool, "false": Bool, "nil": Nil,
	"int": KwInt, "uint": KwUint, "float": KwFloatType,
	"i8": KwI8, "i16": KwI16, "i32": KwI32, "i64": KwI64,
	"u8": KwU8, "u16": KwU16, "u32": KwU32, "u64": KwU64,
	"f32": KwF32, "f64": KwF64, "str": KwStrType, "bool": KwBoolType,
	"list": KwList, "dict": KwDict, "array": KwArray, "sum": KwSum,
	"union": KwUnion, "option": KwOption, "result": KwResult,
	"any": KwAny, "void": KwVoid, "channel": KwChannel, "atomic": KwAtomic,
}

// Lookup classifies an identifier's text against the closed keyword table.
// It returns Ident on a lookup miss.
func Lookup(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
