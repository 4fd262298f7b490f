package dfa

import (
	"sort"

	"github.com/kntjspr/automata/nfa"
	"github.com/kntjspr/automata/symbol"
)

// State is a single DFA state.
type State struct {
	ID        symbol.StateID
	Accepting bool
}

// Edge is a DFA transition (from, to, symbol), kept in the flat list for
// enumeration alongside the keyed table used for O(1) stepping.
type Edge struct {
	From symbol.StateID
	To   symbol.StateID
	Sym  byte
}

type edgeKey struct {
	from symbol.StateID
	sym  byte
}

// DFA is (Q, Σ, δ, q0, F) per the data model: δ is a partial function,
// missing transitions denote an implicit non-accepting trap.
type DFA struct {
	states   []State
	edges    []Edge
	keyed    map[edgeKey]symbol.StateID
	start    symbol.StateID
	alphabet []byte
}

// Build runs subset construction on n using cfg's resource bounds,
// producing a DFA equivalent to n per spec §4.3.
func Build(n *nfa.NFA, cfg Config) (*DFA, error) {
	alphabet := n.Alphabet()

	d := &DFA{
		keyed:    make(map[edgeKey]symbol.StateID),
		alphabet: alphabet,
	}

	idOf := make(map[string]symbol.StateID)
	setOf := make(map[symbol.StateID]nfa.StateSet)

	newDFAState := func(set nfa.StateSet) (symbol.StateID, bool, error) {
		key := set.Key()
		if id, ok := idOf[key]; ok {
			return id, false, nil
		}
		if cfg.MaxStates > 0 && len(d.states) >= cfg.MaxStates {
			return 0, false, &ResourceLimitError{Kind: "dfa-states", Limit: cfg.MaxStates}
		}
		id := symbol.StateID(len(d.states))
		d.states = append(d.states, State{ID: id, Accepting: set.ContainsAccepting(n)})
		idOf[key] = id
		setOf[id] = set
		return id, true, nil
	}

	startSet := n.EpsilonClosure([]symbol.StateID{n.Start()})
	startID, _, err := newDFAState(startSet)
	if err != nil {
		return nil, err
	}
	d.start = startID

	worklist := []symbol.StateID{startID}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		set := setOf[id]

		for _, a := range alphabet {
			moved := n.Move(set, a)
			if len(moved) == 0 {
				continue
			}
			target := n.EpsilonClosure([]symbol.StateID(moved))
			if len(target) == 0 {
				continue
			}
			targetID, fresh, err := newDFAState(target)
			if err != nil {
				return nil, err
			}
			d.edges = append(d.edges, Edge{From: id, To: targetID, Sym: a})
			d.keyed[edgeKey{from: id, sym: a}] = targetID
			if fresh {
				worklist = append(worklist, targetID)
			}
		}
	}

	return d, nil
}

// BuildDefault runs Build with DefaultConfig.
func BuildDefault(n *nfa.NFA) (*DFA, error) {
	return Build(n, DefaultConfig())
}

// Start returns the start state.
func (d *DFA) Start() symbol.StateID { return d.start }

// Len returns the number of states.
func (d *DFA) Len() int { return len(d.states) }

// States returns the state table in id order. Callers must not mutate it.
func (d *DFA) States() []State { return d.states }

// Edges returns the flat transition list. Callers must not mutate it.
func (d *DFA) Edges() []Edge { return d.edges }

// Alphabet returns the DFA's explicit, closed alphabet, sorted ascending.
func (d *DFA) Alphabet() []byte { return d.alphabet }

// IsAccepting reports whether id is an accepting state.
func (d *DFA) IsAccepting(id symbol.StateID) bool {
	return int(id) >= 0 && int(id) < len(d.states) && d.states[id].Accepting
}

// Step returns δ(id, a) and whether a transition exists. A missing
// transition denotes the implicit non-accepting trap per spec §3.
func (d *DFA) Step(id symbol.StateID, a byte) (symbol.StateID, bool) {
	to, ok := d.keyed[edgeKey{from: id, sym: a}]
	return to, ok
}

// Accepts walks δ from the start state over w, rejecting immediately on a
// missing transition.
func (d *DFA) Accepts(w string) bool {
	cur := d.start
	for i := 0; i < len(w); i++ {
		next, ok := d.Step(cur, w[i])
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

// TraceStep is a single (state, symbol, next, accepted) transition recorded
// by Trace.
type TraceStep struct {
	State    symbol.StateID
	Sym      byte
	Next     symbol.StateID
	Accepted bool
}

// Trace walks δ over w, recording every step taken. It stops (without
// recording a step for the missing transition) the moment δ is undefined.
func (d *DFA) Trace(w string) []TraceStep {
	steps := make([]TraceStep, 0, len(w))
	cur := d.start
	for i := 0; i < len(w); i++ {
		next, ok := d.Step(cur, w[i])
		if !ok {
			break
		}
		steps = append(steps, TraceStep{State: cur, Sym: w[i], Next: next, Accepted: d.IsAccepting(next)})
		cur = next
	}
	return steps
}

// Match is a (start, end) occurrence reported by FindAll: text[start:end]
// is accepted.
type Match struct {
	Start int
	End   int
}

// FindAll returns every non-overlapping occurrence of the pattern in text,
// scanning left to right. At each start index it runs the DFA forward and
// keeps the longest accepting end reached (leftmost-longest tie-break),
// then advances past that match's end; if no match starts at that index,
// it advances by one byte, per spec §4.3.
func (d *DFA) FindAll(text string) []Match {
	var out []Match
	i := 0
	for i <= len(text) {
		end, found := d.longestMatchFrom(text, i)
		if found {
			out = append(out, Match{Start: i, End: end})
			if end > i {
				i = end
			} else {
				i++
			}
		} else {
			i++
		}
	}
	return out
}

func (d *DFA) longestMatchFrom(text string, start int) (int, bool) {
	cur := d.start
	bestEnd := -1
	if d.IsAccepting(cur) {
		bestEnd = start
	}
	j := start
	for j < len(text) {
		next, ok := d.Step(cur, text[j])
		if !ok {
			break
		}
		cur = next
		j++
		if d.IsAccepting(cur) {
			bestEnd = j
		}
	}
	if bestEnd < 0 {
		return 0, false
	}
	return bestEnd, true
}

// sortedStateIDs is a small helper used by Minimize for deterministic
// iteration over a block's members.
func sortedStateIDs(ids map[symbol.StateID]bool) []symbol.StateID {
	out := make([]symbol.StateID, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
