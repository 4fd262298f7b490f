package pda

import "github.com/kntjspr/automata/symbol"

// GSymbol is a grammar symbol: either a terminal (a literal input byte) or a
// nonterminal (named by an arbitrary string, conventionally upper-case).
type GSymbol struct {
	Terminal    bool
	Term        byte
	Nonterminal string
}

// T builds a terminal grammar symbol.
func T(b byte) GSymbol { return GSymbol{Terminal: true, Term: b} }

// N builds a nonterminal grammar symbol.
func N(name string) GSymbol { return GSymbol{Nonterminal: name} }

// Production is a single CFG rule Head -> Body (Body may be empty for an
// ε-production).
type Production struct {
	Head string
	Body []GSymbol
}

// CFG is a context-free grammar: a start nonterminal and a set of
// productions, per spec §4.6's grammar-driven PDA construction.
type CFG struct {
	Start       string
	Productions []Production
}

// nontermBase is the first byte value reserved for nonterminal stack
// symbols, kept well above the ASCII terminal alphabets used by the
// pre-built languages (parens, a/b, A/C/G/U) so the two never collide.
const nontermBase = 0x80

// ToPDA translates g into a single-state nondeterministic PDA using the
// standard top-down construction (spec §4.6): one state q, the stack
// initialized to [Start], and for every production Head -> X1 X2 ... Xn an
// ε-transition that pops Head and pushes the body in REVERSED order so that
// X1 ends up on top, matching leftmost-derivation order (stack top is
// expanded/matched first). A terminal on the stack top is matched by
// consuming the identical input byte and popping it. The PDA accepts by
// empty stack: the derivation is complete exactly when the stack
// (initialized to [Start], with no separate bottom marker) is exhausted.
//
// Nonterminal names are interned into single stack-alphabet bytes above
// nontermBase; this bounds ToPDA to grammars with at most 128
// nonterminals, ample for the illustrative grammars this subsystem targets.
func (g CFG) ToPDA() *PDA {
	const q = symbol.StateID(0)
	p := New(1, 0)
	p.SetStart(q)

	interned := map[string]byte{}
	next := byte(nontermBase)
	intern := func(name string) byte {
		if b, ok := interned[name]; ok {
			return b
		}
		b := next
		next++
		interned[name] = b
		return b
	}

	startByte := intern(g.Start)
	p.initialStack = startByte

	for _, prod := range g.Productions {
		headByte := intern(prod.Head)
		var push []byte
		for i := len(prod.Body) - 1; i >= 0; i-- {
			s := prod.Body[i]
			if s.Terminal {
				push = append(push, s.Term)
			} else {
				push = append(push, intern(s.Nonterminal))
			}
		}
		p.AddTransition(Transition{From: q, To: q, Input: symbol.Epsilon, Pop: symbol.Char(headByte), Push: push})
	}

	seen := map[byte]bool{}
	for _, prod := range g.Productions {
		for _, s := range prod.Body {
			if s.Terminal && !seen[s.Term] {
				seen[s.Term] = true
				p.AddTransition(Transition{From: q, To: q, Input: symbol.Char(s.Term), Pop: symbol.Char(s.Term), Push: nil})
			}
		}
	}

	return p
}
