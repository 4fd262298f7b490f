// Package approx implements the Levenshtein-automaton approximate matcher:
// an NFA over (pattern-position, edits-spent) pairs, and a scanning driver
// that finds fuzzy occurrences inside text, including a DNA bothstrands
// mode that also searches the reverse complement.
package approx

import (
	"errors"
	"fmt"
)

// ErrResourceLimit is the sentinel wrapped by ResourceLimitError.
var ErrResourceLimit = errors.New("resource limit exceeded")

// ResourceLimitError is raised when maxK or the pattern length would make
// the Levenshtein NFA unreasonably large.
type ResourceLimitError struct {
	Kind  string
	Limit int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s (limit %d)", e.Kind, e.Limit)
}

func (e *ResourceLimitError) Unwrap() error { return ErrResourceLimit }

// InvalidConfigError reports a malformed Matcher configuration (e.g.
// negative maxK).
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid approx matcher configuration: %s", e.Reason)
}
