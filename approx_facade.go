package automata

import "github.com/kntjspr/automata/approx"

// CompileApprox builds an approximate matcher for pattern allowing up to
// maxK edits of the kinds selected by mask, over a generic text alphabet.
// Use approx.CompileDNA directly for the 4-symbol DNA alphabet.
func CompileApprox(pattern string, maxK int, mask approx.EditMask) (*approx.Matcher, error) {
	return approx.Compile(pattern, maxK, mask)
}
