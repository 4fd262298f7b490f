package pda

import "testing"

// Scenario #4 (spec §8): balanced parentheses.
func TestBalancedParens(t *testing.T) {
	p := BalancedParens()
	bounds := DefaultBounds()

	for _, s := range []string{"", "()", "(())", "(()())", "()()"} {
		ok, err := p.AcceptsEmpty(s, bounds)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !ok {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"(", ")", "(()", "())", "(()))("} {
		ok, err := p.AcceptsEmpty(s, bounds)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

// Property #9 (spec §8): acceptance by final state and by empty stack
// coincide for the balanced-parentheses PDA.
func TestBalancedParensAcceptanceModesCoincide(t *testing.T) {
	p := BalancedParens()
	bounds := DefaultBounds()

	cases := []string{"", "()", "(())", "(()", ")(", "()()"}
	for _, s := range cases {
		byFinal, err := p.AcceptsFinal(s, bounds)
		if err != nil {
			t.Fatalf("%q final: %v", s, err)
		}
		byEmpty, err := p.AcceptsEmpty(s, bounds)
		if err != nil {
			t.Fatalf("%q empty: %v", s, err)
		}
		if byFinal != byEmpty {
			t.Errorf("%q: final=%v empty=%v, expected agreement", s, byFinal, byEmpty)
		}
	}
}

// Scenario #5 (spec §8): a^n b^n.
func TestAnBn(t *testing.T) {
	p := AnBn()
	bounds := DefaultBounds()

	for _, s := range []string{"", "ab", "aabb", "aaabbb"} {
		ok, err := p.AcceptsFinal(s, bounds)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !ok {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"a", "b", "aab", "abb", "aabbb", "ba"} {
		ok, err := p.AcceptsFinal(s, bounds)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

// Scenario #6 (spec §8): even-length palindromes over {a, b}.
func TestPalindrome(t *testing.T) {
	p := Palindrome()
	bounds := DefaultBounds()

	for _, s := range []string{"", "aa", "abba", "baab", "abab" + "baba"} {
		ok, err := p.AcceptsFinal(s, bounds)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !ok {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"a", "ab", "abab", "aab"} {
		ok, err := p.AcceptsFinal(s, bounds)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

// Scenario #7 (spec §8): RNA stem-loop structure, Watson-Crick pairing a
// 5' stem against a 3' stem across an unpaired loop of at least 3 bases.
func TestRNAStemLoop(t *testing.T) {
	p := RNAStemLoop(3)
	bounds := DefaultBounds()

	// stem "GAC" / loop "AAA" / stem "GUC" is the reverse-complement pairing.
	if ok, err := p.AcceptsFinal("GACAAAGUC", bounds); err != nil || !ok {
		t.Errorf("expected GACAAAGUC to be accepted, got ok=%v err=%v", ok, err)
	}
	if ok, err := p.AcceptsFinal("GACAAAGUG", bounds); err != nil || ok {
		t.Errorf("expected GACAAAGUG (mismatched pairing) to be rejected, got ok=%v err=%v", ok, err)
	}
	if ok, err := p.AcceptsFinal("GACAAGUC", bounds); err != nil || ok {
		t.Errorf("expected a too-short loop to be rejected, got ok=%v err=%v", ok, err)
	}
}

// Property #8 (spec §8): a shortest witness path exists for every accepted
// string, and its final configuration is itself accepting.
func TestWitnessReachesAcceptingConfiguration(t *testing.T) {
	p := AnBn()
	bounds := DefaultBounds()

	path, ok, err := p.Witness("aabb", ByFinalState, bounds)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected aabb to have a witness path")
	}
	if len(path) == 0 {
		t.Fatal("expected a non-empty witness path for a non-start-accepting run")
	}
	final := path[len(path)-1].To
	if !p.accepts(final, 4, ByFinalState) {
		t.Errorf("witness path does not end in an accepting configuration: %+v", final)
	}

	if _, ok, err := p.Witness("aab", ByFinalState, bounds); err != nil {
		t.Fatal(err)
	} else if ok {
		t.Error("expected no witness path for a rejected string")
	}
}

func TestResourceLimitOnPathologicalDepth(t *testing.T) {
	p := BalancedParens()
	tight := Bounds{MaxConfigurations: 2, MaxDepth: 1}
	input := "((((((((((" // far exceeds the tight bounds before any accept is possible
	_, err := p.AcceptsEmpty(input, tight)
	if err == nil {
		t.Fatal("expected a resource-limit error under tight bounds")
	}
}
