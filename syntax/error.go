// Package syntax implements the regex parser: a one-pass recursive-descent
// parser producing an AST, and a lowering pass that composes the AST into
// an NFA via exactly one Thompson constructor call per node.
package syntax

import "fmt"

// ParseError reports a syntax error at a byte offset into the pattern, per
// spec §4.2: unbalanced groups/classes, dangling quantifiers, empty
// classes, inverted ranges, and count overflow all produce this type.
type ParseError struct {
	Index  int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regex parse error at byte %d: %s", e.Index, e.Reason)
}
