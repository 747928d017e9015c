package cst

import (
	"github.com/lumenlang/lumen/token"
)

// Variant distinguishes a well-formed node from one produced by error
// recovery.
type Variant uint8

const (
	// Normal is a node built entirely from tokens the parser expected.
	Normal Variant = iota
	// ErrorVariant wraps input the grammar could not make sense of.
	ErrorVariant
	// Missing is a zero-width placeholder standing in for a required
	// element the parser never found.
	Missing
	// Incomplete is a partial construct missing one or more sub-elements
	// but otherwise recognized (e.g. a block with no closing '}').
	Incomplete
)

// Element is either a Token (a leaf) or a *Node (an inner node); exactly
// one field is set. This is the CST's child slot type.
type Element struct {
	Token *token.Token
	Node  *Node
}

// TokenElement wraps a token as a child Element.
func TokenElement(t token.Token) Element {
	return Element{Token: &t}
}

// NodeElement wraps a node as a child Element.
func NodeElement(n *Node) Element {
	return Element{Node: n}
}

// Span returns the element's span, whichever variant it holds.
func (e Element) Span() token.Span {
	if e.Token != nil {
		return e.Token.Span
	}
	if e.Node != nil {
		return e.Node.Span
	}
	return token.Span{}
}

// IsToken reports whether this element is a leaf token.
func (e Element) IsToken() bool { return e.Token != nil }

// Node is a concrete syntax tree node: a Kind tag, a span, and an ordered
// list of child Elements (tokens or further nodes). Every byte of source
// covered by the tree appears in exactly one leaf token, including
// trivia, which is what makes the tree lossless.
type Node struct {
	Kind     Kind
	Span     token.Span
	Variant  Variant
	Children []Element

	// Message carries the recovery diagnostic text for ErrorVariant and
	// Incomplete nodes (e.g. "expected ';'", "unclosed block").
	Message string

	// WantedKind is the kind the parser was trying to build when it had to
	// fall back to a Missing placeholder instead. Only meaningful when
	// Variant == Missing; zero otherwise.
	WantedKind Kind
}

// NewNode builds a Normal node from kind and children, with its span
// computed as the union of all children's spans.
func NewNode(kind Kind, children ...Element) *Node {
	n := &Node{Kind: kind, Children: children}
	for _, c := range children {
		n.Span = n.Span.Union(c.Span())
	}
	return n
}

// NewErrorNode builds an ErrorVariant node spanning the given tokens.
func NewErrorNode(message string, children ...Element) *Node {
	n := NewNode(ErrorNode, children...)
	n.Variant = ErrorVariant
	n.Message = message
	return n
}

// NewMissingNode builds a zero-width Missing placeholder at pos, standing
// in for kind. Span monotonicity still holds because the span is
// zero-width, not absent. kind is preserved on WantedKind so a consumer
// can recover what the parser was looking for without parsing Message.
func NewMissingNode(kind Kind, at token.Position, message string) *Node {
	return &Node{
		Kind:       MissingNode,
		Span:       token.NewSpan(at, at),
		Variant:    Missing,
		Message:    message,
		WantedKind: kind,
	}
}

// NewIncompleteNode builds an Incomplete node: a recognized construct
// missing one or more required sub-elements.
func NewIncompleteNode(kind Kind, message string, children ...Element) *Node {
	n := NewNode(kind, children...)
	n.Variant = Incomplete
	n.Message = message
	return n
}

// Erroneous reports whether this node or any descendant is ErrorVariant,
// Missing, or Incomplete.
func (n *Node) Erroneous() bool {
	if n.Variant != Normal {
		return true
	}
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Erroneous() {
			return true
		}
	}
	return false
}

// SignificantChildren returns only the child Elements that are
// significant tokens or nodes (never bare trivia tokens — trivia only
// ever appears attached to a token's Leading/TrailingTrivia, never as a
// standalone child, so this is equivalent to Children for a
// well-constructed tree; the method exists so callers don't need to know
// that invariant).
func (n *Node) SignificantChildren() []Element {
	out := make([]Element, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsToken() && !c.Token.IsSignificant() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Tokens returns every leaf token under this node, in source order,
// including each token's attached trivia.
func (n *Node) Tokens() []token.Token {
	var out []token.Token
	for _, c := range n.Children {
		if c.Token != nil {
			out = append(out, *c.Token)
		} else if c.Node != nil {
			out = append(out, c.Node.Tokens()...)
		}
	}
	return out
}

// FindChild returns the first direct child Node of the given kind, or nil.
func (n *Node) FindChild(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Kind == kind {
			return c.Node
		}
	}
	return nil
}

// FindChildren returns all direct child Nodes of the given kind.
func (n *Node) FindChildren(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Kind == kind {
			out = append(out, c.Node)
		}
	}
	return out
}

// ReconstructSource rebuilds the exact original source text covered by
// this node, trivia included.
func (n *Node) ReconstructSource() string {
	var b []byte
	for _, tok := range n.Tokens() {
		b = append(b, tok.Reconstruct()...)
	}
	return string(b)
}

// ReconstructSourceWithoutTrivia rebuilds only the significant lexemes
// under this node, space-joined, useful for debug output and snapshot
// tests that shouldn't be sensitive to incidental whitespace changes.
func (n *Node) ReconstructSourceWithoutTrivia() string {
	var b []byte
	for _, tok := range n.Tokens() {
		if !tok.IsSignificant() {
			continue
		}
		if len(b) > 0 {
			b = append(b, ' ')
		}
		b = append(b, tok.Lexeme...)
	}
	return string(b)
}
