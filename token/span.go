package token

import "fmt"

// Position is a byte offset into the input together with the (line, column)
// pair derived from it. Tabs count as width 1.
type Position struct {
	Offset int
	Line   int // 1-based
	Column int // 1-based
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsEmpty reports whether the span covers zero bytes (used for MISSING
// nodes synthesized during error recovery).
func (s Span) IsEmpty() bool {
	return s.Start.Offset == s.End.Offset
}

// Union returns the smallest span containing both s and other. A
// well-formed parent's span is the union of its children's spans.
func (s Span) Union(other Span) Span {
	if other.IsZero() {
		return s
	}
	if s.IsZero() {
		return other
	}
	start, end := s.Start, s.End
	if other.Start.Offset < start.Offset {
		start = other.Start
	}
	if other.End.Offset > end.Offset {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// IsZero reports whether this is the unset zero value.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Contains reports whether other is fully nested within s.
func (s Span) Contains(other Span) bool {
	return s.Start.Offset <= other.Start.Offset && other.End.Offset <= s.End.Offset
}

// String implements fmt.Stringer for debugging.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d..%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
