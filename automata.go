// Package automata is the stable façade over this module's six
// components: it compiles a regular expression all the way down to a
// minimized DFA and exposes the approximate-matcher constructor, mirroring
// how coregex's root package is a thin façade over its internal meta
// engine. Callers that need lower-level control — raw NFAs, custom
// subset-construction configs, PDA construction — reach past this façade
// directly into symbol, nfa, syntax, dfa, approx, and pda.
package automata

import (
	"github.com/kntjspr/automata/dfa"
	"github.com/kntjspr/automata/syntax"
)

// CompileRegex parses pattern, lowers it to an NFA via Thompson
// construction, determinizes it by subset construction, and minimizes the
// result with Hopcroft's algorithm. The returned DFA is ready for Accepts,
// FindAll, and Trace.
func CompileRegex(pattern string) (*dfa.DFA, error) {
	return CompileRegexWithConfig(pattern, syntax.DefaultConfig(), dfa.DefaultConfig())
}

// CompileRegexWithConfig is CompileRegex with explicit parser and subset-
// construction tunables, for callers that need to raise or lower the
// counted-repetition and DFA-state resource limits (spec §5).
func CompileRegexWithConfig(pattern string, parseCfg syntax.Config, buildCfg dfa.Config) (*dfa.DFA, error) {
	node, err := syntax.ParseWithConfig(pattern, parseCfg)
	if err != nil {
		return nil, err
	}
	n := syntax.Lower(node)
	d, err := dfa.Build(n, buildCfg)
	if err != nil {
		return nil, err
	}
	return dfa.Minimize(d), nil
}

// Stats reports the sizes along a regex's construction pipeline, for
// introspection and tests — mirroring the teacher's Stats idiom for
// exposing compiled-artifact shape without re-walking the automaton.
type Stats struct {
	NFAStates int
	DFAStates int
}

// RegexStats compiles pattern and reports the NFA and minimized-DFA sizes
// without discarding either intermediate, for callers comparing the effect
// of minimization (spec §8's "minimize never increases state count").
func RegexStats(pattern string) (Stats, error) {
	node, err := syntax.Parse(pattern)
	if err != nil {
		return Stats{}, err
	}
	n := syntax.Lower(node)
	d, err := dfa.BuildDefault(n)
	if err != nil {
		return Stats{}, err
	}
	min := dfa.Minimize(d)
	return Stats{NFAStates: n.Len(), DFAStates: min.Len()}, nil
}
