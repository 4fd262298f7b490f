package pda

import (
	"sort"
	"strings"

	"github.com/kntjspr/automata/symbol"
)

// Config is a PDA configuration: a state, a position in the input, and a
// stack. Stack[0] is the bottom symbol, Stack[len(Stack)-1] is the top, per
// spec §4.5's "first character lies deepest" convention for push strings.
type Config struct {
	State symbol.StateID
	Pos   int
	Stack []byte
}

// key gives a canonical, hashable representation for the visited-set used by
// BFS simulation. Per spec §5, configurations are deduplicated on
// (state, remaining-input-length, stack): remaining input length stands in
// for remaining content because it is always the same fixed suffix of the
// one input string being scanned.
func (c Config) key() string {
	var b strings.Builder
	b.WriteByte(byte(c.State))
	b.WriteByte(byte(c.State >> 8))
	b.WriteByte(byte(c.State >> 16))
	b.WriteByte(byte(c.State >> 24))
	b.WriteByte(byte(c.Pos))
	b.WriteByte(byte(c.Pos >> 8))
	b.WriteByte(byte(c.Pos >> 16))
	b.WriteByte(byte(c.Pos >> 24))
	b.WriteByte(0)
	b.Write(c.Stack)
	return b.String()
}

// Transition is a single PDA edge: on Input (or ε), pop Pop (or ε, meaning
// no pop is required and none occurs), then push Push in order (Push[0]
// ends up deepest, Push[len(Push)-1] ends up on top).
type Transition struct {
	From, To symbol.StateID
	Input    symbol.Symbol
	Pop      symbol.Symbol
	Push     []byte
}

// PDA is a nondeterministic pushdown automaton: a finite set of states, one
// start state, a set of accepting states, an initial stack symbol, and a
// transition relation. Unlike the NFA/DFA subsystem, a PDA's stack gives it
// strictly more than regular power, so it is simulated rather than
// determinized (spec §4.5, §1).
type PDA struct {
	numStates    int
	accepting    map[symbol.StateID]bool
	start        symbol.StateID
	initialStack byte
	hasInitial   bool
	byFrom       map[symbol.StateID][]Transition
}

// Bounds holds the BFS simulator's resource bounds.
type Bounds struct {
	MaxConfigurations int
	MaxDepth          int
}

// DefaultBounds mirrors the DFA/approx subsystems' generous-but-finite
// defaults: large enough for any of the pre-built languages' real inputs,
// small enough to fail fast on a pathological CFG translation.
func DefaultBounds() Bounds {
	return Bounds{MaxConfigurations: 200000, MaxDepth: 5000}
}

// New creates an empty PDA with numStates states (IDs 0..numStates-1) and
// the given initial stack symbol.
func New(numStates int, initialStackSym byte) *PDA {
	return &PDA{
		numStates:    numStates,
		accepting:    make(map[symbol.StateID]bool),
		byFrom:       make(map[symbol.StateID][]Transition),
		initialStack: initialStackSym,
		hasInitial:   true,
	}
}

// SetStart designates s as the single start state.
func (p *PDA) SetStart(s symbol.StateID) { p.start = s }

// Start returns the start state.
func (p *PDA) Start() symbol.StateID { return p.start }

// SetAccepting marks s as an accepting state (for acceptance-by-final-state).
func (p *PDA) SetAccepting(s symbol.StateID) { p.accepting[s] = true }

// IsAccepting reports whether s is an accepting state.
func (p *PDA) IsAccepting(s symbol.StateID) bool { return p.accepting[s] }

// Len returns the number of states declared for this PDA.
func (p *PDA) Len() int { return p.numStates }

// Accepting returns the accepting states, in ascending ID order, for
// introspection and serialization.
func (p *PDA) Accepting() []symbol.StateID {
	out := make([]symbol.StateID, 0, len(p.accepting))
	for id := range p.accepting {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions returns every transition in the PDA, grouped by source state
// in ascending ID order, for introspection and serialization.
func (p *PDA) Transitions() []Transition {
	var out []Transition
	ids := make([]symbol.StateID, 0, len(p.byFrom))
	for id := range p.byFrom {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		out = append(out, p.byFrom[id]...)
	}
	return out
}

// InitialStackSymbol returns the bottom-of-stack symbol this PDA is seeded
// with, or (0, false) if it has none. Every PDA built by New has one; for a
// CFG-translated PDA it is the grammar's start symbol (see CFG.ToPDA).
func (p *PDA) InitialStackSymbol() (byte, bool) {
	return p.initialStack, p.hasInitial
}

// AddTransition adds a single edge to the PDA.
func (p *PDA) AddTransition(t Transition) {
	p.byFrom[t.From] = append(p.byFrom[t.From], t)
}

// InitialConfig returns the starting configuration for scanning input.
func (p *PDA) InitialConfig() Config {
	stack := []byte(nil)
	if p.hasInitial {
		stack = []byte{p.initialStack}
	}
	return Config{State: p.start, Pos: 0, Stack: stack}
}

// Step enumerates every configuration reachable from c in a single
// transition, per spec §4.5's operational semantics: a transition applies
// when its Input matches the next input byte (or is ε) and its Pop matches
// the stack top (or is ε), and in that case the matched input byte is
// consumed, the matched stack top is popped, and Push is appended in order.
func (p *PDA) Step(c Config, input string) []Config {
	var out []Config
	for _, t := range p.byFrom[c.State] {
		if !t.Input.IsEpsilon() {
			if c.Pos >= len(input) || input[c.Pos] != t.Input.Byte() {
				continue
			}
		}
		if !t.Pop.IsEpsilon() {
			if len(c.Stack) == 0 || c.Stack[len(c.Stack)-1] != t.Pop.Byte() {
				continue
			}
		}

		next := Config{State: t.To, Pos: c.Pos}
		if !t.Input.IsEpsilon() {
			next.Pos = c.Pos + 1
		}

		stack := c.Stack
		if !t.Pop.IsEpsilon() {
			stack = stack[:len(stack)-1]
		}
		newStack := make([]byte, 0, len(stack)+len(t.Push))
		newStack = append(newStack, stack...)
		newStack = append(newStack, t.Push...)
		next.Stack = newStack

		out = append(out, next)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].Pos < out[j].Pos
	})
	return out
}
