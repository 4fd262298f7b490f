package syntax

import "testing"

func mustParse(t *testing.T, pattern string) Node {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

func TestParseAndLowerAccepts(t *testing.T) {
	cases := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a(b|c)*d", []string{"ad", "abd", "acd", "abcbd"}, []string{"a", "d", "abcbe"}},
		{"a{2,3}", []string{"aa", "aaa"}, []string{"a", "aaaa", ""}},
		{"a{2}", []string{"aa"}, []string{"a", "aaa"}},
		{"a{2,}", []string{"aa", "aaa", "aaaa"}, []string{"a", ""}},
		{"[a-c]+", []string{"a", "abc", "ccc"}, []string{"", "d", "abcd"}},
		{".+", []string{"x", "xyz"}, []string{""}},
		{`\*`, []string{"*"}, []string{"a"}},
	}
	for _, c := range cases {
		node := mustParse(t, c.pattern)
		n := Lower(node)
		for _, w := range c.accept {
			if !n.Accepts(w) {
				t.Errorf("pattern %q: expected %q to be accepted", c.pattern, w)
			}
		}
		for _, w := range c.reject {
			if n.Accepts(w) {
				t.Errorf("pattern %q: expected %q to be rejected", c.pattern, w)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"(",
		")",
		"a)",
		"[",
		"[]",
		"[z-a]",
		"*a",
		"a{5,2}",
		"a{9999999999999999999}",
	}
	for _, p := range bad {
		if _, err := Parse(p); err == nil {
			t.Errorf("pattern %q: expected a ParseError, got nil", p)
		}
	}
}

func TestCountedQuantifierLimit(t *testing.T) {
	cfg := Config{MaxRepetition: 4}
	if _, err := ParseWithConfig("a{5}", cfg); err == nil {
		t.Fatalf("expected repetition limit to be enforced")
	}
	if _, err := ParseWithConfig("a{4}", cfg); err != nil {
		t.Fatalf("a{4} should be within the limit: %v", err)
	}
}

func TestAnchorsAreElided(t *testing.T) {
	node := mustParse(t, "^ab$")
	n := Lower(node)
	if !n.Accepts("ab") {
		t.Fatalf("expected ^ab$ to accept \"ab\"")
	}
}
