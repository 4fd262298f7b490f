package dfa

import (
	"testing"

	"github.com/kntjspr/automata/nfa"
	"github.com/kntjspr/automata/syntax"
)

func compile(t *testing.T, pattern string) *DFA {
	t.Helper()
	node, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	n := syntax.Lower(node)
	d, err := BuildDefault(n)
	if err != nil {
		t.Fatalf("BuildDefault(%q): %v", pattern, err)
	}
	return d
}

// Scenario #1 from spec §8: a(b|c)*d applied to abcbd. This test checks
// that the NFA, the DFA and the minimized DFA agree, and that minimization
// never grows the state count.
func TestSubsetConstructionAndMinimizeAgreeWithNFA(t *testing.T) {
	node, err := syntax.Parse("a(b|c)*d")
	if err != nil {
		t.Fatal(err)
	}
	n := syntax.Lower(node)
	d, err := BuildDefault(n)
	if err != nil {
		t.Fatal(err)
	}
	m := Minimize(d)

	accept := []string{"ad", "abd", "acd", "abcbd"}
	reject := []string{"a", "d", "abc", "abdd", ""}
	for _, w := range append(append([]string{}, accept...), reject...) {
		want := n.Accepts(w)
		if got := d.Accepts(w); got != want {
			t.Errorf("DFA.Accepts(%q) = %v, want %v (NFA)", w, got, want)
		}
		if got := m.Accepts(w); got != want {
			t.Errorf("minimized.Accepts(%q) = %v, want %v (NFA)", w, got, want)
		}
	}
	if m.Len() > d.Len() {
		t.Errorf("minimize grew state count: %d -> %d", d.Len(), m.Len())
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	d := compile(t, "(ab|ac)*d")
	m1 := Minimize(d)
	m2 := Minimize(m1)
	if m1.Len() != m2.Len() {
		t.Fatalf("minimize not idempotent: %d vs %d states", m1.Len(), m2.Len())
	}
	for _, w := range []string{"d", "abd", "acacd", "abac"} {
		if m1.Accepts(w) != m2.Accepts(w) {
			t.Fatalf("minimize(minimize(D)) disagrees with minimize(D) on %q", w)
		}
	}
}

func TestCountedQuantifierScenario(t *testing.T) {
	d := compile(t, "a{2,3}")
	if !d.Accepts("aa") || !d.Accepts("aaa") {
		t.Fatalf("expected aa and aaa accepted")
	}
	if d.Accepts("a") || d.Accepts("aaaa") {
		t.Fatalf("expected a and aaaa rejected")
	}
}

func TestFindAllExactMatches(t *testing.T) {
	d := compile(t, "ATG")
	text := "ATGCGATCGATCGATGCTAGCTAGATGCGATCGTAGCTAATGCGATCG"
	matches := d.FindAll(text)
	var starts []int
	for _, m := range matches {
		starts = append(starts, m.Start)
	}
	want := []int{0, 13, 24, 39}
	if len(starts) != len(want) {
		t.Fatalf("got %d matches %v, want starts %v", len(starts), starts, want)
	}
	for i, w := range want {
		if starts[i] != w {
			t.Errorf("match %d: start %d, want %d", i, starts[i], w)
		}
	}
}

func TestFindAllLeftmostLongest(t *testing.T) {
	d := compile(t, "a+")
	matches := d.FindAll("baaab")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(matches), matches)
	}
	if matches[0] != (Match{Start: 1, End: 4}) {
		t.Fatalf("expected leftmost-longest match {1,4}, got %v", matches[0])
	}
}

func TestTrace(t *testing.T) {
	d := compile(t, "ab")
	steps := d.Trace("ab")
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if !steps[1].Accepted {
		t.Fatalf("expected final step to be accepting")
	}
	if steps := d.Trace("ac"); len(steps) != 1 {
		t.Fatalf("expected trace to stop at the missing transition, got %d steps", len(steps))
	}
}

func TestEmptyLanguageMinimizesToSingleTrapState(t *testing.T) {
	// [] is rejected by the parser (empty classes are errors), so build an
	// NFA with no accepting state reachable directly instead.
	n := nfa.New()
	s := n.AddState("", false)
	n.SetStart(s)
	d, err := BuildDefault(n)
	if err != nil {
		t.Fatal(err)
	}
	m := Minimize(d)
	if m.Len() != 1 {
		t.Fatalf("expected the empty language to minimize to 1 trap state, got %d", m.Len())
	}
	if m.Accepts("") || m.Accepts("a") {
		t.Fatalf("expected the empty language to reject everything")
	}
}
