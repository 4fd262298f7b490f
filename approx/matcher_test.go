package approx

import (
	"testing"

	"github.com/kntjspr/automata/syntax"
)

func TestExactMatchesK0(t *testing.T) {
	m, err := CompileDNA("ATG", 0, EditAll)
	if err != nil {
		t.Fatal(err)
	}
	text := "ATGCGATCGATCGATGCTAGCTAGATGCGATCGTAGCTAATGCGATCG"
	matches := m.Find(text)
	want := []int{0, 13, 24, 39}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %v", len(matches), len(want), matches)
	}
	for i, w := range want {
		if matches[i].Start != w || matches[i].Distance != 0 {
			t.Errorf("match %d: got %+v, want start %d dist 0", i, matches[i], w)
		}
	}
}

// Property #6: approximate matcher with K=0 agrees with the exact regex
// derived from the literal pattern.
func TestK0AgreesWithExactRegex(t *testing.T) {
	node, err := syntax.Parse("ATG")
	if err != nil {
		t.Fatal(err)
	}
	n := syntax.Lower(node)
	text := "ATGCGATCGATCGATGCTAGCTAGATGCGATCGTAGCTAATGCGATCG"

	m, err := CompileDNA("ATG", 0, EditAll)
	if err != nil {
		t.Fatal(err)
	}
	matches := m.Find(text)
	for _, match := range matches {
		if !n.Accepts(text[match.Start:match.End]) {
			t.Errorf("exact regex rejects %q reported by K=0 matcher", text[match.Start:match.End])
		}
	}
}

// Scenario #3 from spec §8: approximate match ATG with K=1 against
// ATCCGATAGG finds a match at offset 0 with distance <= 1.
func TestApproxScenario(t *testing.T) {
	m, err := CompileDNA("ATG", 1, EditAll)
	if err != nil {
		t.Fatal(err)
	}
	matches := m.Find("ATCCGATAGG")
	var foundAtZero bool
	for _, match := range matches {
		if match.Distance > 1 {
			t.Errorf("match %+v exceeds K=1", match)
		}
		if match.Start == 0 {
			foundAtZero = true
		}
	}
	if !foundAtZero {
		t.Fatalf("expected a match starting at offset 0, got %v", matches)
	}
}

func TestFindBothStrands(t *testing.T) {
	m, err := CompileDNA("ATG", 0, EditAll)
	if err != nil {
		t.Fatal(err)
	}
	// CAT is the reverse complement of ATG.
	dna := "GGGCATGGG"
	matches := m.FindBothStrands(dna)
	var sawForward, sawReverse bool
	for _, match := range matches {
		if match.Strand == Forward && dna[match.Start:match.End] == "ATG" {
			sawForward = true
		}
		if match.Strand == Reverse {
			sawReverse = true
			if dna[match.Start:match.End] != "CAT" {
				t.Errorf("reverse match %+v does not cover CAT in forward coordinates", match)
			}
		}
	}
	if !sawForward {
		t.Errorf("expected a forward-strand ATG match")
	}
	if !sawReverse {
		t.Errorf("expected a reverse-strand match")
	}
}

func TestResourceLimits(t *testing.T) {
	if _, err := CompileDNA("ATG", -1, EditAll); err == nil {
		t.Fatalf("expected error for negative maxK")
	}
}
