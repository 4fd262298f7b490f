package approx

import (
	"github.com/kntjspr/automata/nfa"
	"github.com/kntjspr/automata/symbol"
)

// EditMask selects which edit operations the Levenshtein NFA enables
// beyond the always-available exact match, per spec §4.4.
type EditMask uint8

const (
	// EditSubstitution enables (i,k) -a-> (i+1,k+1) for a != P[i].
	EditSubstitution EditMask = 1 << iota
	// EditDeletion enables (i,k) -ε-> (i+1,k+1): advance the pattern
	// without consuming input (a pattern character was deleted).
	EditDeletion
	// EditInsertion enables (i,k) -a-> (i,k+1) for any a: consume input
	// without advancing the pattern (an extra character was inserted).
	EditInsertion
)

// EditAll enables every edit operation: standard Levenshtein distance.
const EditAll = EditSubstitution | EditDeletion | EditInsertion

// maxPatternLen and maxEditK bound Levenshtein NFA size: (m+1)*(K+1) states.
const (
	maxPatternLen = 1 << 16
	maxEditK      = 1 << 12
)

// pack encodes the conceptual (i, k) pair into a single dense StateID per
// spec's Levenshtein state encoding: i*(K+1)+k.
func pack(i, k, maxK int) int {
	return i*(maxK+1) + k
}

// buildLevenshteinNFA builds the grid-shaped NFA over (position, edits)
// pairs for pattern against alphabet, per spec §4.4. Accepting states are
// every (m, k) regardless of k.
// editCostOf[id] recovers k (edits spent) for the state at StateID id, so
// the scanner can report the distance at which an accepting state was
// reached without re-deriving (i,k) from the dense encoding.
func buildLevenshteinNFA(pattern string, maxK int, alphabet []byte, mask EditMask) (automaton *nfa.NFA, editCostOf []int, err error) {
	m := len(pattern)
	if m > maxPatternLen {
		return nil, nil, &ResourceLimitError{Kind: "pattern-length", Limit: maxPatternLen}
	}
	if maxK < 0 {
		return nil, nil, &InvalidConfigError{Reason: "maxK must be >= 0"}
	}
	if maxK > maxEditK {
		return nil, nil, &ResourceLimitError{Kind: "max-edits", Limit: maxEditK}
	}

	n := nfa.New()
	ids := make([]int, (m+1)*(maxK+1))
	editCostOf = make([]int, (m+1)*(maxK+1))
	for i := 0; i <= m; i++ {
		for k := 0; k <= maxK; k++ {
			accepting := i == m
			id := n.AddState("", accepting)
			ids[pack(i, k, maxK)] = int(id)
			editCostOf[id] = k
		}
	}
	stateAt := func(i, k int) symbol.StateID {
		return symbol.StateID(ids[pack(i, k, maxK)])
	}
	_ = n.SetStart(stateAt(0, 0))

	for i := 0; i < m; i++ {
		for k := 0; k <= maxK; k++ {
			from := stateAt(i, k)

			// Match: always enabled.
			_ = n.AddTransition(from, stateAt(i+1, k), symbol.Char(pattern[i]))

			if k < maxK {
				if mask&EditSubstitution != 0 {
					for _, a := range alphabet {
						if a != pattern[i] {
							_ = n.AddTransition(from, stateAt(i+1, k+1), symbol.Char(a))
						}
					}
				}
				if mask&EditDeletion != 0 {
					_ = n.AddEpsilon(from, stateAt(i+1, k+1))
				}
			}
		}
	}

	// Insertion is defined for every (i,k) with i<=m, k<maxK: consume
	// input, stay in the pattern.
	if mask&EditInsertion != 0 {
		for i := 0; i <= m; i++ {
			for k := 0; k < maxK; k++ {
				from := stateAt(i, k)
				for _, a := range alphabet {
					_ = n.AddTransition(from, stateAt(i, k+1), symbol.Char(a))
				}
			}
		}
	}

	return n, editCostOf, nil
}
