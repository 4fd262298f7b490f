package jsonenc

import (
	"strings"
	"testing"

	"github.com/kntjspr/automata/pda"
	"github.com/kntjspr/automata/symbol"
	"github.com/kntjspr/automata/syntax"
)

func TestNFARoundTrip(t *testing.T) {
	node, err := syntax.Parse("a(b|c)*d")
	if err != nil {
		t.Fatal(err)
	}
	n := syntax.Lower(node)

	data, err := MarshalNFA(n)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"states"`) || !strings.Contains(string(data), `"transitions"`) {
		t.Fatalf("envelope missing expected keys: %s", data)
	}

	decoded, err := UnmarshalNFA(data)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"ad", "abd", "abcbcd"} {
		if !decoded.Accepts(w) {
			t.Errorf("round-tripped NFA rejects %q, original accepted it", w)
		}
	}
	for _, w := range []string{"a", "d", ""} {
		if decoded.Accepts(w) {
			t.Errorf("round-tripped NFA accepts %q, original rejected it", w)
		}
	}
}

func TestEpsilonEncodesAndDecodesBothForms(t *testing.T) {
	if got := encodeSymbol(symbol.Epsilon); got != "ε" {
		t.Errorf("encodeSymbol(Epsilon) = %q, want ε", got)
	}
	if !decodeSymbol("ε").IsEpsilon() {
		t.Error(`decodeSymbol("ε") is not epsilon`)
	}
	if !decodeSymbol("").IsEpsilon() {
		t.Error(`decodeSymbol("") is not epsilon`)
	}
	if decodeSymbol("a").IsEpsilon() {
		t.Error(`decodeSymbol("a") incorrectly reports epsilon`)
	}
}

func TestPDAEnvelopeShape(t *testing.T) {
	p := pda.BalancedParens()
	data, err := MarshalPDA(p)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, key := range []string{`"states"`, `"transitions"`, `"start"`, `"accept"`, `"initialStack"`, `"pop"`, `"push"`} {
		if !strings.Contains(s, key) {
			t.Errorf("PDA envelope missing key %s: %s", key, s)
		}
	}
}
