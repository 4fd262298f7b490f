// Package nfa implements the nondeterministic finite automaton at the heart
// of the engine: a directed multigraph with labeled and epsilon edges,
// epsilon-closure/move primitives, and the Thompson constructors used to
// lower a regex AST into an automaton.
//
// Mutation is confined to construction. Once an NFA is handed to the dfa
// or approx packages it is treated as read-only by convention, matching
// this module's single-threaded, synchronous concurrency model.
package nfa

import (
	"sort"

	"github.com/kntjspr/automata/symbol"
)

// State is a single NFA state: an id plus an optional label and an
// accepting flag. States are owned by exactly one NFA.
type State struct {
	ID        symbol.StateID
	Label     string
	Accepting bool
}

// Edge is an NFA transition (from, to, symbol-or-epsilon). Multiple edges
// may share (From, Sym); that is how nondeterminism is represented.
type Edge struct {
	From symbol.StateID
	To   symbol.StateID
	Sym  symbol.Symbol
}

// NFA is (Q, Σ, Δ, q0, F) per the data model: a state table, a flat edge
// list for enumeration, and an adjacency index for closure/move queries.
type NFA struct {
	states []State
	edges  []Edge
	adj    map[symbol.StateID][]Edge
	start  symbol.StateID
}

// New returns an empty NFA with no states and an unset start state.
func New() *NFA {
	return &NFA{
		adj:   make(map[symbol.StateID][]Edge),
		start: symbol.InvalidState,
	}
}

// AddState allocates a fresh state and returns its id.
func (n *NFA) AddState(label string, accepting bool) symbol.StateID {
	id := symbol.StateID(len(n.states))
	n.states = append(n.states, State{ID: id, Label: label, Accepting: accepting})
	return id
}

// valid reports whether id names a state owned by n.
func (n *NFA) valid(id symbol.StateID) bool {
	return int(id) >= 0 && int(id) < len(n.states)
}

// SetStart designates id as the unique start state. It returns
// ErrInvalidState if id is not a member of n.
func (n *NFA) SetStart(id symbol.StateID) error {
	if !n.valid(id) {
		return &InvalidStateError{ID: id}
	}
	n.start = id
	return nil
}

// Start returns the start state.
func (n *NFA) Start() symbol.StateID { return n.start }

// SetAccepting toggles whether id is an accepting state. It returns
// ErrInvalidState if id is not a member of n.
func (n *NFA) SetAccepting(id symbol.StateID, accepting bool) error {
	if !n.valid(id) {
		return &InvalidStateError{ID: id}
	}
	n.states[id].Accepting = accepting
	return nil
}

// IsAccepting reports whether id is an accepting state.
func (n *NFA) IsAccepting(id symbol.StateID) bool {
	return n.valid(id) && n.states[id].Accepting
}

// States returns the state table in id order. Callers must not mutate the
// returned slice.
func (n *NFA) States() []State { return n.states }

// Len returns the number of states in n.
func (n *NFA) Len() int { return len(n.states) }

// Edges returns the flat edge list, in insertion order. Callers must not
// mutate the returned slice.
func (n *NFA) Edges() []Edge { return n.edges }

// AddTransition appends a labeled transition from -> to on sym. sym must
// not be symbol.Epsilon; use AddEpsilon for that.
func (n *NFA) AddTransition(from, to symbol.StateID, sym symbol.Symbol) error {
	if !n.valid(from) || !n.valid(to) {
		return &InvalidStateError{ID: invalidOf(n, from, to)}
	}
	e := Edge{From: from, To: to, Sym: sym}
	n.edges = append(n.edges, e)
	n.adj[from] = append(n.adj[from], e)
	return nil
}

// AddEpsilon appends an epsilon transition from -> to.
func (n *NFA) AddEpsilon(from, to symbol.StateID) error {
	return n.AddTransition(from, to, symbol.Epsilon)
}

func invalidOf(n *NFA, ids ...symbol.StateID) symbol.StateID {
	for _, id := range ids {
		if !n.valid(id) {
			return id
		}
	}
	return symbol.InvalidState
}

// Alphabet returns the set of non-epsilon symbols that appear in n's
// transitions, sorted ascending. It is derived from Δ per the data model's
// invariant that the alphabet need not be stored separately.
func (n *NFA) Alphabet() []byte {
	seen := make(map[byte]bool)
	for _, e := range n.edges {
		if !e.Sym.IsEpsilon() {
			seen[e.Sym.Byte()] = true
		}
	}
	out := make([]byte, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StateSet is a canonical, hashable representation of a set of NFA state
// ids: a strictly ascending slice. Using a sorted slice (rather than a
// bitset) keeps the representation independent of automaton size, at the
// cost of O(n log n) membership; NFAs produced by this engine's regex and
// Levenshtein builders are small enough that this tradeoff is invisible.
type StateSet []symbol.StateID

// newStateSet builds a canonical StateSet from an unordered collection,
// deduplicating and sorting.
func newStateSet(ids map[symbol.StateID]bool) StateSet {
	out := make(StateSet, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a string uniquely identifying this set, suitable as a map
// key for subset construction's state-set -> dfa-id table.
func (s StateSet) Key() string {
	buf := make([]byte, 0, len(s)*5)
	for i, id := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendUint32(buf, uint32(id))
	}
	return string(buf)
}

func appendUint32(buf []byte, v uint32) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [10]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}

// ContainsAccepting reports whether any id in s is accepting in n.
func (s StateSet) ContainsAccepting(n *NFA) bool {
	for _, id := range s {
		if n.IsAccepting(id) {
			return true
		}
	}
	return false
}

// EpsilonClosure returns the smallest set containing seed and closed under
// epsilon edges, computed by worklist over epsilon successors. The result
// is deterministic: a sorted StateSet regardless of worklist order.
func (n *NFA) EpsilonClosure(seed []symbol.StateID) StateSet {
	in := make(map[symbol.StateID]bool, len(seed))
	work := make([]symbol.StateID, 0, len(seed))
	for _, id := range seed {
		if !in[id] {
			in[id] = true
			work = append(work, id)
		}
	}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		for _, e := range n.adj[id] {
			if e.Sym.IsEpsilon() && !in[e.To] {
				in[e.To] = true
				work = append(work, e.To)
			}
		}
	}
	return newStateSet(in)
}

// Move returns the union of non-epsilon successors reachable from any
// state in s on symbol a.
func (n *NFA) Move(s StateSet, a byte) StateSet {
	out := make(map[symbol.StateID]bool)
	for _, id := range s {
		for _, e := range n.adj[id] {
			if !e.Sym.IsEpsilon() && e.Sym.Byte() == a {
				out[e.To] = true
			}
		}
	}
	return newStateSet(out)
}

// ExtendedDelta reads w one byte at a time, interleaving Move and
// EpsilonClosure: extended_delta(S, w) = closure(move(...closure(S)..., w)).
func (n *NFA) ExtendedDelta(s StateSet, w []byte) StateSet {
	cur := n.EpsilonClosure(s)
	for _, b := range w {
		moved := n.Move(cur, b)
		if len(moved) == 0 {
			return nil
		}
		cur = n.EpsilonClosure(moved)
	}
	return cur
}

// Accepts reports whether w is accepted: extended_delta({q0}, w) intersects
// F.
func (n *NFA) Accepts(w string) bool {
	if !n.valid(n.start) {
		return false
	}
	final := n.ExtendedDelta(StateSet{n.start}, []byte(w))
	return final.ContainsAccepting(n)
}

// Clone returns an independent deep copy of n. Clones never share mutable
// state with their source, per the ownership/lifecycle contract.
func (n *NFA) Clone() *NFA {
	out := &NFA{
		states: append([]State(nil), n.states...),
		edges:  append([]Edge(nil), n.edges...),
		adj:    make(map[symbol.StateID][]Edge, len(n.adj)),
		start:  n.start,
	}
	for k, v := range n.adj {
		out.adj[k] = append([]Edge(nil), v...)
	}
	return out
}
