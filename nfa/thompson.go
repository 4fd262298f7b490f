package nfa

import "github.com/kntjspr/automata/symbol"

// Fragment constructors per spec §4.1's Thompson table. Each constructor
// yields an NFA with exactly one start state and exactly one accept state.
// Composition always clears the accepting flag on an operand's old accept
// state before wiring in the new one, so fragments compose without
// accidentally leaving stale accepting states behind.

// splice appends a deep copy of src's states and edges into dst, offsetting
// every id by len(dst.states). It returns that offset so the caller can
// translate src-relative ids (start, accept) into dst-relative ones. src's
// accepting flags are cleared on the copies: composition alone decides
// which states accept in the result, per the Thompson table.
func splice(dst *NFA, src *NFA) symbol.StateID {
	offset := symbol.StateID(len(dst.states))
	for _, st := range src.states {
		dst.AddState(st.Label, false)
	}
	for _, e := range src.edges {
		// AddTransition cannot fail here: both endpoints were just created.
		_ = dst.AddTransition(e.From+offset, e.To+offset, e.Sym)
	}
	return offset
}

// acceptOf returns the unique accepting state of a single-accept fragment.
func acceptOf(n *NFA) symbol.StateID {
	for _, st := range n.states {
		if st.Accepting {
			return st.ID
		}
	}
	return symbol.InvalidState
}

// Epsilon returns the fragment for the empty regex: s -ε-> f.
func Epsilon() *NFA {
	n := New()
	s := n.AddState("", false)
	f := n.AddState("", true)
	n.SetStart(s)
	_ = n.AddEpsilon(s, f)
	return n
}

// Literal returns the fragment for a single byte: s -a-> f.
func Literal(b byte) *NFA {
	n := New()
	s := n.AddState("", false)
	f := n.AddState("", true)
	n.SetStart(s)
	_ = n.AddTransition(s, f, symbol.Char(b))
	return n
}

// Union returns the fragment for a|b: a new start epsilon-branches to both
// operands' starts, and both operands' accepts epsilon-join a new accept.
func Union(a, b *NFA) *NFA {
	out := New()
	s := out.AddState("", false)
	aOff := splice(out, a)
	bOff := splice(out, b)
	f := out.AddState("", true)

	_ = out.AddEpsilon(s, a.start+aOff)
	_ = out.AddEpsilon(s, b.start+bOff)
	_ = out.AddEpsilon(acceptOf(a)+aOff, f)
	_ = out.AddEpsilon(acceptOf(b)+bOff, f)

	out.SetStart(s)
	return out
}

// Concat returns the fragment for ab: a's accept epsilon-joins b's start;
// the result starts at a's start and accepts at b's accept.
func Concat(a, b *NFA) *NFA {
	out := New()
	aOff := splice(out, a)
	bOff := splice(out, b)

	_ = out.AddEpsilon(acceptOf(a)+aOff, b.start+bOff)
	out.SetStart(a.start + aOff)
	_ = out.SetAccepting(acceptOf(b)+bOff, true)
	return out
}

// Star returns the fragment for a*: a new start/accept pair bypasses a
// entirely (the ε-shortcut), and a's accept loops back to a's start as well
// as joining the new accept.
func Star(a *NFA) *NFA {
	out := New()
	s := out.AddState("", false)
	aOff := splice(out, a)
	f := out.AddState("", true)

	_ = out.AddEpsilon(s, a.start+aOff)
	_ = out.AddEpsilon(s, f)
	_ = out.AddEpsilon(acceptOf(a)+aOff, a.start+aOff)
	_ = out.AddEpsilon(acceptOf(a)+aOff, f)

	out.SetStart(s)
	return out
}

// Plus returns the fragment for a+: as Star but without the s->f shortcut,
// so at least one pass through a is mandatory.
func Plus(a *NFA) *NFA {
	out := New()
	s := out.AddState("", false)
	aOff := splice(out, a)
	f := out.AddState("", true)

	_ = out.AddEpsilon(s, a.start+aOff)
	_ = out.AddEpsilon(acceptOf(a)+aOff, a.start+aOff)
	_ = out.AddEpsilon(acceptOf(a)+aOff, f)

	out.SetStart(s)
	return out
}

// Quest returns the fragment for a?: a new start epsilon-branches to a's
// start and directly to a new accept; a's accept also joins the new accept.
func Quest(a *NFA) *NFA {
	out := New()
	s := out.AddState("", false)
	aOff := splice(out, a)
	f := out.AddState("", true)

	_ = out.AddEpsilon(s, a.start+aOff)
	_ = out.AddEpsilon(s, f)
	_ = out.AddEpsilon(acceptOf(a)+aOff, f)

	out.SetStart(s)
	return out
}
