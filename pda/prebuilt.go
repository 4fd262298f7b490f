package pda

import "github.com/kntjspr/automata/symbol"

// Every pre-built PDA below ties final-state acceptance to the same
// condition as empty-stack acceptance via one recurring idiom: working
// states push/pop markers above a bottom symbol 'Z' that no production
// ever matches directly, and a single ε-transition popping 'Z' (only
// possible once it is the sole remaining stack symbol) leads to a
// dedicated accepting state. This is the standard empty-stack-to-
// final-state construction; without it, an "accepting" working state
// would trivially accept any input that happens to end while passing
// through it, regardless of unmatched stack content (spec §8 property #9
// requires the two acceptance conventions to coincide).

// BalancedParens builds the PDA accepting strings of balanced '(' ')' over
// {(, )}, per spec §4.5 / §8 scenario #4.
func BalancedParens() *PDA {
	const work, accept = symbol.StateID(0), symbol.StateID(1)
	p := New(2, 'Z')
	p.SetStart(work)
	p.SetAccepting(accept)

	p.AddTransition(Transition{From: work, To: work, Input: symbol.Char('('), Pop: symbol.Epsilon, Push: []byte{'('}})
	p.AddTransition(Transition{From: work, To: work, Input: symbol.Char(')'), Pop: symbol.Char('('), Push: nil})
	p.AddTransition(Transition{From: work, To: accept, Input: symbol.Epsilon, Pop: symbol.Char('Z'), Push: nil})
	return p
}

// AnBn builds the PDA accepting {a^n b^n : n >= 0} over {a, b}, per spec
// §8 scenario #5. q0 pushes an 'A' marker per 'a'; on the first 'b' it
// moves to q1, which pops one 'A' per 'b'. Either state may reach accept
// once the stack is back down to just 'Z' (q0 directly, for n=0; q1 once
// every pushed 'A' has been popped).
func AnBn() *PDA {
	const q0, q1, accept = symbol.StateID(0), symbol.StateID(1), symbol.StateID(2)
	p := New(3, 'Z')
	p.SetStart(q0)
	p.SetAccepting(accept)

	p.AddTransition(Transition{From: q0, To: q0, Input: symbol.Char('a'), Pop: symbol.Epsilon, Push: []byte{'A'}})
	p.AddTransition(Transition{From: q0, To: q1, Input: symbol.Char('b'), Pop: symbol.Char('A'), Push: nil})
	p.AddTransition(Transition{From: q1, To: q1, Input: symbol.Char('b'), Pop: symbol.Char('A'), Push: nil})
	p.AddTransition(Transition{From: q0, To: accept, Input: symbol.Epsilon, Pop: symbol.Char('Z'), Push: nil})
	p.AddTransition(Transition{From: q1, To: accept, Input: symbol.Epsilon, Pop: symbol.Char('Z'), Push: nil})
	return p
}

// Palindrome builds the PDA accepting even-length palindromes over {a, b},
// per spec §8 scenario #6. q0 pushes first-half symbols; an ε-transition
// nondeterministically guesses the midpoint has been reached and moves to
// q1, which pops and matches each remaining input symbol against the
// mirrored stack top. Accept is reached once the stack empties back to
// just 'Z', which only happens when every pushed symbol was matched.
func Palindrome() *PDA {
	const q0, q1, accept = symbol.StateID(0), symbol.StateID(1), symbol.StateID(2)
	p := New(3, 'Z')
	p.SetStart(q0)
	p.SetAccepting(accept)

	for _, c := range []byte{'a', 'b'} {
		p.AddTransition(Transition{From: q0, To: q0, Input: symbol.Char(c), Pop: symbol.Epsilon, Push: []byte{c}})
		p.AddTransition(Transition{From: q1, To: q1, Input: symbol.Char(c), Pop: symbol.Char(c), Push: nil})
	}
	p.AddTransition(Transition{From: q0, To: q1, Input: symbol.Epsilon, Pop: symbol.Epsilon, Push: nil})
	p.AddTransition(Transition{From: q1, To: accept, Input: symbol.Epsilon, Pop: symbol.Char('Z'), Push: nil})
	return p
}

// RNAStemLoop builds a PDA recognizing RNA stem-loop structures over
// {A,C,G,U}: a 5' stem, an unpaired loop of at least minLoop bases, and a
// 3' stem whose bases Watson-Crick-pair (A-U, C-G) against the 5' stem in
// reverse order, per spec §4.5's nucleic-acid structural matching and §8
// scenario #7. Accept requires the entire 5' stem to have been consumed by
// matching 3' bases, i.e. the stack emptying back down to 'Z'; a partial
// pairing that merely happens to end mid-stem is not accepted.
func RNAStemLoop(minLoop int) *PDA {
	const q0, q1, q2, accept = symbol.StateID(0), symbol.StateID(1), symbol.StateID(2), symbol.StateID(3)
	p := New(4+minLoop, 'Z')
	p.SetStart(q0)
	p.SetAccepting(accept)

	pairsWith := map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}

	// q0: 5' stem, push every base.
	for _, c := range []byte{'A', 'C', 'G', 'U'} {
		p.AddTransition(Transition{From: q0, To: q0, Input: symbol.Char(c), Pop: symbol.Epsilon, Push: []byte{c}})
	}
	// ε-move into the loop once at least one stem base has been pushed.
	for _, c := range []byte{'A', 'C', 'G', 'U'} {
		p.AddTransition(Transition{From: q0, To: q1, Input: symbol.Epsilon, Pop: symbol.Char(c), Push: []byte{c}})
	}

	// q1..loopDone: the unpaired loop, consuming at least minLoop bases.
	// Unrolled into one state per mandatory position, since the minimum is
	// small and fixed (biologically, 3).
	loopStates := make([]symbol.StateID, minLoop+1)
	loopStates[0] = q1
	for i := 1; i <= minLoop; i++ {
		loopStates[i] = symbol.StateID(3 + i)
	}
	for i := 0; i < minLoop; i++ {
		from, to := loopStates[i], loopStates[i+1]
		for _, c := range []byte{'A', 'C', 'G', 'U'} {
			p.AddTransition(Transition{From: from, To: to, Input: symbol.Char(c), Pop: symbol.Epsilon, Push: nil})
		}
	}
	loopDone := loopStates[minLoop]
	// Further, unbounded loop bases before the 3' stem begins.
	for _, c := range []byte{'A', 'C', 'G', 'U'} {
		p.AddTransition(Transition{From: loopDone, To: loopDone, Input: symbol.Char(c), Pop: symbol.Epsilon, Push: nil})
	}

	// loopDone/q2 -> q2: 3' stem, pop a base and require its Watson-Crick
	// complement on the input.
	for base, comp := range pairsWith {
		p.AddTransition(Transition{From: loopDone, To: q2, Input: symbol.Char(comp), Pop: symbol.Char(base), Push: nil})
		p.AddTransition(Transition{From: q2, To: q2, Input: symbol.Char(comp), Pop: symbol.Char(base), Push: nil})
	}
	p.AddTransition(Transition{From: q2, To: accept, Input: symbol.Epsilon, Pop: symbol.Char('Z'), Push: nil})
	return p
}
