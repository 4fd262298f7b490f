// Package dfa implements deterministic finite automata: subset
// construction from an nfa.NFA, Hopcroft partition-refinement minimization,
// and linear-time execution (Accepts, Trace, FindAll).
package dfa

import (
	"errors"
	"fmt"

	"github.com/kntjspr/automata/symbol"
)

// ErrResourceLimit is the sentinel wrapped by ResourceLimitError, matched
// with errors.Is by callers that only need the error class.
var ErrResourceLimit = errors.New("resource limit exceeded")

// ResourceLimitError is raised when subset construction would exceed the
// configured state cap, bounding the 2^n worst case per spec §5.
type ResourceLimitError struct {
	Kind  string
	Limit int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s (limit %d)", e.Kind, e.Limit)
}

func (e *ResourceLimitError) Unwrap() error { return ErrResourceLimit }

// InvalidStateError reports a StateID not owned by the DFA it was used
// against.
type InvalidStateError struct {
	ID symbol.StateID
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid DFA state %d", e.ID)
}
