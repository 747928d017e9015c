package cst

import "fmt"

// Validate checks the structural invariants a well-formed CST must hold:
// span monotonicity (a parent's span contains each child's), token-order
// monotonicity (children's spans never overlap or go backwards), and the
// absence of cycles. It returns every violation found rather than
// stopping at the first.
func Validate(root *Node) []error {
	var errs []error
	seen := make(map[*Node]bool)
	validateNode(root, &errs, seen)
	return errs
}

func validateNode(n *Node, errs *[]error, seen map[*Node]bool) {
	if n == nil {
		return
	}
	if seen[n] {
		*errs = append(*errs, fmt.Errorf("cycle detected at node %s", n.Kind))
		return
	}
	seen[n] = true

	lastEnd := -1
	for _, c := range n.Children {
		span := c.Span()
		if !span.IsZero() {
			if !n.Span.Contains(span) && n.Variant != ErrorVariant {
				*errs = append(*errs, fmt.Errorf(
					"%s: child span %s not contained in parent span %s", n.Kind, span, n.Span))
			}
			if span.Start.Offset < lastEnd {
				*errs = append(*errs, fmt.Errorf(
					"%s: child at %s starts before previous child ended at offset %d", n.Kind, span, lastEnd))
			}
			lastEnd = span.End.Offset
		}
		if c.Node != nil {
			validateNode(c.Node, errs, seen)
		}
	}
}
