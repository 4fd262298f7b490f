package syntax

import "github.com/kntjspr/automata/nfa"

// Lower composes an AST into an NFA, calling exactly one Thompson
// constructor per node and composing bottom-up, per spec §4.2.
func Lower(n Node) *nfa.NFA {
	switch v := n.(type) {
	case Empty:
		return nfa.Epsilon()
	case Lit:
		return nfa.Literal(v.B)
	case Class:
		return lowerClass(v)
	case Concat:
		return lowerFold(v.Nodes, nfa.Concat, nfa.Epsilon)
	case Union:
		return lowerFold(v.Nodes, nfa.Union, nfa.Epsilon)
	case Star:
		return nfa.Star(Lower(v.Sub))
	case Plus:
		return nfa.Plus(Lower(v.Sub))
	case Quest:
		return nfa.Quest(Lower(v.Sub))
	default:
		return nfa.Epsilon()
	}
}

// lowerFold composes a sequence of nodes with a binary Thompson combinator,
// left to right. An empty sequence lowers to the identity's fragment.
func lowerFold(nodes []Node, combine func(a, b *nfa.NFA) *nfa.NFA, identity func() *nfa.NFA) *nfa.NFA {
	if len(nodes) == 0 {
		return identity()
	}
	acc := Lower(nodes[0])
	for _, n := range nodes[1:] {
		acc = combine(acc, Lower(n))
	}
	return acc
}

// lowerClass enumerates a character class's ranges into literal bytes and
// composes them with Union, per the finite-set semantics of Class.
func lowerClass(c Class) *nfa.NFA {
	var frags []*nfa.NFA
	for _, r := range c.Ranges {
		for b := int(r.Lo); b <= int(r.Hi); b++ {
			frags = append(frags, nfa.Literal(byte(b)))
		}
	}
	if len(frags) == 0 {
		return nfa.Epsilon()
	}
	acc := frags[0]
	for _, f := range frags[1:] {
		acc = nfa.Union(acc, f)
	}
	return acc
}
