// Package dna collects FASTA-adjacent sequence helpers: complement,
// reverse-complement, GC-content, and position-weight-matrix scoring, plus
// exact and fuzzy motif scanning built on top of dfa and approx as black
// boxes. None of it touches automaton internals directly; per spec.md §1's
// Non-goals, these are glue, not core.
package dna

import (
	"math"
	"strings"

	automata "github.com/kntjspr/automata"
	"github.com/kntjspr/automata/approx"
	"github.com/kntjspr/automata/dfa"
)

var complementTable = [256]byte{}

func init() {
	for i := range complementTable {
		complementTable[i] = byte(i)
	}
	complementTable['A'], complementTable['T'] = 'T', 'A'
	complementTable['C'], complementTable['G'] = 'G', 'C'
	complementTable['a'], complementTable['t'] = 't', 'a'
	complementTable['c'], complementTable['g'] = 'g', 'c'
	complementTable['N'], complementTable['n'] = 'N', 'n'
}

// Complement returns the base-by-base Watson-Crick complement of seq,
// preserving order. Unrecognized bytes pass through unchanged.
func Complement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complementTable[seq[i]]
	}
	return string(out)
}

// ReverseComplement returns the reverse complement of seq: complement each
// base, then reverse the whole sequence, per the standard 5'->3' convention
// for reading the opposite strand.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = complementTable[seq[i]]
	}
	return string(out)
}

// GCContent returns the fraction of seq's bases that are G or C, ignoring
// any byte that is not one of A/C/G/T/a/c/g/t. Returns 0 for an empty or
// all-ambiguous sequence.
func GCContent(seq string) float64 {
	var gc, total int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
			total++
		case 'A', 'T', 'a', 't':
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(gc) / float64(total)
}

// baseIndex maps a DNA base to its column in a position weight matrix, in
// the conventional A,C,G,T order.
func baseIndex(b byte) (int, bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}

// PWMScore sums the log-odds weights pwm assigns to window, one row per
// position (pwm[i][baseIndex(window[i])]), per the standard position-
// weight-matrix scoring convention. window must be exactly len(pwm) bases
// long; any other length, or any non-ACGT base in window, yields
// math.Inf(-1) since no weight applies.
func PWMScore(pwm [][4]float64, window string) float64 {
	if len(window) != len(pwm) {
		return math.Inf(-1)
	}
	var score float64
	for i := 0; i < len(window); i++ {
		col, ok := baseIndex(window[i])
		if !ok {
			return math.Inf(-1)
		}
		score += pwm[i][col]
	}
	return score
}

// FindExactMotif reports every exact occurrence of motif in seq, using the
// core regex engine (compiled to a DFA, per spec §6) as the execution
// engine: motif is treated as a literal pattern by escaping any regex
// metacharacters it happens to contain.
func FindExactMotif(seq, motif string) ([]dfa.Match, error) {
	d, err := automata.CompileRegex(escapeLiteral(motif))
	if err != nil {
		return nil, err
	}
	return d.FindAll(seq), nil
}

// FindApproxMotif scans seq for occurrences of motif within maxK edits,
// using the Levenshtein-automaton approximate matcher restricted to the
// DNA alphabet (spec §4.4).
func FindApproxMotif(seq, motif string, maxK int) ([]approx.Match, error) {
	m, err := approx.CompileDNA(motif, maxK, approx.EditAll)
	if err != nil {
		return nil, err
	}
	return m.Find(seq), nil
}

// FindBothStrandsMotif scans both strands of seq for motif within maxK
// edits, delegating to approx.Matcher.FindBothStrands.
func FindBothStrandsMotif(seq, motif string, maxK int) ([]approx.StrandMatch, error) {
	m, err := approx.CompileDNA(motif, maxK, approx.EditAll)
	if err != nil {
		return nil, err
	}
	return m.FindBothStrands(seq), nil
}

var literalEscapes = "\\.+*?()|[]{}^$"

// escapeLiteral quotes every regex metacharacter in s so syntax.Parse
// treats it as a literal string.
func escapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(literalEscapes, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
