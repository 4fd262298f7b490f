package approx

import (
	"sort"

	"github.com/coregx/ahocorasick"
	"github.com/kntjspr/automata/nfa"
	"github.com/kntjspr/automata/symbol"
)

// dnaAlphabet is the fixed 4-symbol alphabet used for DNA matching, per
// spec §4.4's "for DNA the alphabet is {A,C,G,T}".
var dnaAlphabet = []byte{'A', 'C', 'G', 'T'}

// Match is a single approximate occurrence: text[Start:End] is within
// Distance edits of the pattern.
type Match struct {
	Start    int
	End      int
	Distance int
}

// Matcher is a compiled Levenshtein automaton over a fixed pattern,
// maximum edit budget, and edit mask.
type Matcher struct {
	pattern    string
	maxK       int
	mask       EditMask
	alphabet   []byte
	automaton  *nfa.NFA
	editCostOf []int

	// exact is an Aho-Corasick automaton over the literal pattern, used as
	// the sole executor when maxK == 0 (satisfying the K=0-agrees-with-
	// exact-regex invariant directly). For K > 0 it is built but not used:
	// Find runs the Levenshtein NFA at every start offset, with no
	// pre-filter.
	exact *ahocorasick.Automaton
}

// Compile builds a Matcher for pattern with a generic text alphabet: the
// union of the pattern's own bytes and the printable ASCII range, standing
// in for "any symbols observed in scanning text" until a text is seen.
func Compile(pattern string, maxK int, mask EditMask) (*Matcher, error) {
	return compile(pattern, maxK, mask, genericAlphabet(pattern))
}

// CompileDNA builds a Matcher restricted to the DNA alphabet {A,C,G,T}.
func CompileDNA(pattern string, maxK int, mask EditMask) (*Matcher, error) {
	return compile(pattern, maxK, mask, dnaAlphabet)
}

func genericAlphabet(pattern string) []byte {
	seen := make(map[byte]bool)
	for i := 0x20; i <= 0x7e; i++ {
		seen[byte(i)] = true
	}
	for i := 0; i < len(pattern); i++ {
		seen[pattern[i]] = true
	}
	out := make([]byte, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func compile(pattern string, maxK int, mask EditMask, alphabet []byte) (*Matcher, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(pattern))
	exact, err := builder.Build()
	if err != nil {
		return nil, err
	}

	m := &Matcher{pattern: pattern, maxK: maxK, mask: mask, alphabet: alphabet, exact: exact}

	if maxK == 0 {
		// Property (6): K=0 agrees exactly with the exact regex derived
		// from the literal pattern. Aho-Corasick over the single literal
		// is exactly that regex's matcher; no Levenshtein NFA is needed.
		return m, nil
	}

	automaton, editCostOf, err := buildLevenshteinNFA(pattern, maxK, alphabet, mask)
	if err != nil {
		return nil, err
	}
	m.automaton = automaton
	m.editCostOf = editCostOf
	return m, nil
}

// Find scans text for occurrences within the matcher's edit budget.
func (m *Matcher) Find(text string) []Match {
	if m.maxK == 0 {
		return m.findExact(text)
	}
	return m.findApprox(text)
}

func (m *Matcher) findExact(text string) []Match {
	var out []Match
	haystack := []byte(text)
	at := 0
	for at <= len(haystack) {
		hit := m.exact.Find(haystack, at)
		if hit == nil {
			break
		}
		out = append(out, Match{Start: hit.Start, End: hit.End, Distance: 0})
		if hit.End > at {
			at = hit.End
		} else {
			at++
		}
	}
	return out
}

// findApprox implements the scan algorithm of spec §4.4: seed a fresh
// epsilon-closure at every position, track every length at which the
// closure contains an accepting state together with the edit distance
// reached there, and report the minimum distance, breaking ties toward
// the longest such length (leftmost-longest, per §9's resolution of the
// source's ambiguous insertion+deletion behavior).
func (m *Matcher) findApprox(text string) []Match {
	maxLen := len(m.pattern) + m.maxK
	var out []Match

	for s := 0; s <= len(text); s++ {
		bestDist := -1
		bestLen := 0

		cur := m.automaton.EpsilonClosure([]symbol.StateID{m.automaton.Start()})
		if d, ok := m.minAcceptingDistance(cur); ok {
			bestDist, bestLen = d, 0
		}

		limit := len(text) - s
		if limit > maxLen {
			limit = maxLen
		}
		for l := 0; l < limit; l++ {
			moved := m.automaton.Move(cur, text[s+l])
			if len(moved) == 0 {
				break
			}
			cur = m.automaton.EpsilonClosure([]symbol.StateID(moved))
			if d, ok := m.minAcceptingDistance(cur); ok {
				length := l + 1
				if bestDist < 0 || d < bestDist || (d == bestDist && length > bestLen) {
					bestDist, bestLen = d, length
				}
			}
		}

		if bestDist >= 0 {
			out = append(out, Match{Start: s, End: s + bestLen, Distance: bestDist})
		}
	}
	return out
}

func (m *Matcher) minAcceptingDistance(set nfa.StateSet) (int, bool) {
	best := -1
	for _, id := range set {
		if !m.automaton.IsAccepting(id) {
			continue
		}
		k := m.editCostOf[id]
		if best < 0 || k < best {
			best = k
		}
	}
	return best, best >= 0
}
