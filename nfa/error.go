package nfa

import (
	"errors"
	"fmt"

	"github.com/kntjspr/automata/symbol"
)

// Sentinel errors, matched with errors.Is by callers that only need the
// error class and not the offending state.
var (
	// ErrInvalidState indicates a StateID not owned by the NFA it was used
	// against.
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrUnsupportedConstruct indicates a regex feature this engine does
	// not implement (capture groups, lookaround, backreferences, ...).
	ErrUnsupportedConstruct = errors.New("unsupported construct")
)

// InvalidStateError wraps ErrInvalidState with the offending id.
type InvalidStateError struct {
	ID symbol.StateID
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid NFA state %d", e.ID)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// UnsupportedConstructError wraps ErrUnsupportedConstruct with the feature
// name, surfaced across the external API per spec §6/§7.
type UnsupportedConstructError struct {
	Feature string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Feature)
}

func (e *UnsupportedConstructError) Unwrap() error { return ErrUnsupportedConstruct }
