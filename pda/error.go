// Package pda implements the pushdown automaton subsystem: a
// nondeterministic stack-machine simulator with BFS over configurations,
// a handful of pre-built PDAs for common context-free languages, and a
// CFG-to-PDA translation.
package pda

import (
	"errors"
	"fmt"
)

// ErrResourceLimit is the sentinel wrapped by ResourceLimitError.
var ErrResourceLimit = errors.New("resource limit exceeded")

// ResourceLimitError is raised when BFS simulation exceeds its
// configuration or depth cap, bounding nontermination from ε-loops per
// spec §5. Per spec §7, a resource limit is a distinguished class of
// rejection, not a logical one: callers may treat it as reject-with-
// warning or as a hard failure.
type ResourceLimitError struct {
	Kind  string
	Limit int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s (limit %d)", e.Kind, e.Limit)
}

func (e *ResourceLimitError) Unwrap() error { return ErrResourceLimit }
