package nfa

import (
	"testing"

	"github.com/kntjspr/automata/symbol"
)

func TestLiteralAccepts(t *testing.T) {
	n := Literal('a')
	if !n.Accepts("a") {
		t.Fatalf("expected Literal('a') to accept \"a\"")
	}
	if n.Accepts("b") || n.Accepts("") || n.Accepts("aa") {
		t.Fatalf("Literal('a') accepted something other than \"a\"")
	}
}

func TestConcat(t *testing.T) {
	n := Concat(Literal('a'), Literal('b'))
	if !n.Accepts("ab") {
		t.Fatalf("expected ab")
	}
	if n.Accepts("a") || n.Accepts("b") || n.Accepts("ba") {
		t.Fatalf("Concat accepted unexpected string")
	}
}

func TestUnion(t *testing.T) {
	n := Union(Literal('a'), Literal('b'))
	for _, w := range []string{"a", "b"} {
		if !n.Accepts(w) {
			t.Fatalf("expected %q to be accepted", w)
		}
	}
	if n.Accepts("c") || n.Accepts("ab") {
		t.Fatalf("Union accepted unexpected string")
	}
}

func TestStarPlusQuest(t *testing.T) {
	star := Star(Literal('a'))
	for _, w := range []string{"", "a", "aaaa"} {
		if !star.Accepts(w) {
			t.Fatalf("Star: expected %q accepted", w)
		}
	}
	if star.Accepts("b") {
		t.Fatalf("Star: unexpected accept")
	}

	plus := Plus(Literal('a'))
	if plus.Accepts("") {
		t.Fatalf("Plus: empty string must be rejected")
	}
	if !plus.Accepts("a") || !plus.Accepts("aaa") {
		t.Fatalf("Plus: expected a/aaa accepted")
	}

	quest := Quest(Literal('a'))
	if !quest.Accepts("") || !quest.Accepts("a") {
		t.Fatalf("Quest: expected \"\" and \"a\" accepted")
	}
	if quest.Accepts("aa") {
		t.Fatalf("Quest: unexpected accept of aa")
	}
}

// a(b|c)*d — scenario #1 from the spec's end-to-end table.
func TestComposedPattern(t *testing.T) {
	bc := Union(Literal('b'), Literal('c'))
	n := Concat(Concat(Literal('a'), Star(bc)), Literal('d'))

	for _, w := range []string{"ad", "abd", "acd", "abcbd", "abcbcbd"} {
		if !n.Accepts(w) {
			t.Fatalf("expected %q accepted", w)
		}
	}
	for _, w := range []string{"a", "d", "abc", "abdd"} {
		if n.Accepts(w) {
			t.Fatalf("expected %q rejected", w)
		}
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	n := Star(Union(Literal('a'), Literal('b')))
	first := n.EpsilonClosure([]symbol.StateID{n.Start()})
	second := n.EpsilonClosure(toIDs(first))
	if len(first) != len(second) {
		t.Fatalf("closure not idempotent: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("closure not idempotent at %d: %v vs %v", i, first, second)
		}
	}
}

func toIDs(s StateSet) []symbol.StateID {
	return []symbol.StateID(s)
}

func TestInvalidState(t *testing.T) {
	n := New()
	s := n.AddState("s", false)
	if err := n.SetStart(s + 1); err == nil {
		t.Fatalf("expected error setting start to unknown state")
	}
	if err := n.AddEpsilon(s, s+5); err == nil {
		t.Fatalf("expected error adding edge to unknown state")
	}
}

func TestThompsonSizeBound(t *testing.T) {
	// |Q| <= 2n for a regex of n tokens: "ab" has 2 literal tokens.
	n := Concat(Literal('a'), Literal('b'))
	if n.Len() > 2*2 {
		t.Fatalf("Thompson size bound violated: %d states for 2 tokens", n.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := Literal('a')
	c := n.Clone()
	_ = c.AddState("extra", false)
	if n.Len() == c.Len() {
		t.Fatalf("clone shares state table with source")
	}
}
