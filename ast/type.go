package ast

// TypeShape tags which flavor of type a TypeAnnotation describes. Only the
// recursive fields marked below for a shape are populated, keeping
// TypeAnnotation a shape-tagged union rather than one struct per shape.
type TypeShape uint8

const (
	ShapePrimitive TypeShape = iota
	ShapeUserDefined
	ShapeList
	ShapeDict
	ShapeFunction
	ShapeUnion
	ShapeOptional
	ShapeFallible
	ShapeRefined
)

// ResolutionState records how a TypeAnnotation got its Shape/Name filled
// in, per the builder's strategy matrix (build/resolve.go):
//   - Immediate: resolved at the declaration site during lowering.
//   - Deferred: left unresolved during lowering and resolved in a later
//     pass once more of the program is visible (expression types).
//   - Partial: a type naming one or more user-defined names that were not
//     in scope when it was built (a bare unknown name, or a union/refined
//     type containing one).
type ResolutionState uint8

const (
	Immediate ResolutionState = iota
	Deferred
	Partial
)

// TypeAnnotation is the AST's own type record — never a pointer back
// into CST text, so a resolved type outlives whatever tree it came from.
type TypeAnnotation struct {
	Name  string // builtin name ("int", "str", ...) or user-defined type name
	Shape TypeShape
	State ResolutionState

	Element    *TypeAnnotation   // ShapeList
	Key, Value *TypeAnnotation   // ShapeDict
	Params     []*TypeAnnotation // ShapeFunction
	Returns    *TypeAnnotation   // ShapeFunction
	Members    []*TypeAnnotation // ShapeUnion; ShapeRefined: the resolved base type
	Inner      *TypeAnnotation   // ShapeOptional, ShapeFallible
	TypeArgs   []*TypeAnnotation // ShapeRefined (e.g. list<T>'s T)

	// UnresolvedNames lists user-defined type names this annotation
	// still references but couldn't look up at the time it was built
	// (State == Partial). No later pass retries them; the annotation
	// stays Partial.
	UnresolvedNames []string
}

// Builtin primitive type names: the closed vocabulary Builtin recognizes
// and TypeEnv.Lookup falls back to after its scopes.
var builtinTypeNames = []string{
	"int", "uint", "float", "i8", "i16", "i32", "i64",
	"u8", "u16", "u32", "u64", "f32", "f64",
	"str", "bool", "any", "void", "channel", "atomic",
}

// Builtin returns the primitive TypeAnnotation for name, or nil if name
// isn't one of the built-in primitives.
func Builtin(name string) *TypeAnnotation {
	for _, b := range builtinTypeNames {
		if b == name {
			return &TypeAnnotation{Name: name, Shape: ShapePrimitive, State: Immediate}
		}
	}
	return nil
}

// scope is one lexical level of a TypeEnv: declared names to their type.
type scope struct {
	types map[string]*TypeAnnotation
}

// TypeEnv is the builder's symbol table: a stack of unnamed lexical scopes
// over a fixed builtin table. Lookup tries the plain name from the
// innermost scope outward, then the builtin table; there is no
// scope-qualified lookup.
type TypeEnv struct {
	scopes []scope
}

// NewTypeEnv returns a TypeEnv with just the global scope pushed.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{scopes: []scope{{types: map[string]*TypeAnnotation{}}}}
}

// Push enters a new lexical scope (declaration body, block).
func (e *TypeEnv) Push() {
	e.scopes = append(e.scopes, scope{types: map[string]*TypeAnnotation{}})
}

// Pop leaves the innermost lexical scope.
func (e *TypeEnv) Pop() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// Declare binds name to typ in the current innermost scope.
func (e *TypeEnv) Declare(name string, typ *TypeAnnotation) {
	e.scopes[len(e.scopes)-1].types[name] = typ
}

// Lookup resolves name: innermost-to-outermost user scope first (so an
// inner declaration shadows an outer one), then the builtin table.
func (e *TypeEnv) Lookup(name string) (*TypeAnnotation, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if t, ok := e.scopes[i].types[name]; ok {
			return t, true
		}
	}
	if b := Builtin(name); b != nil {
		return b, true
	}
	return nil, false
}
