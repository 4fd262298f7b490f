package api

import (
	"errors"
	"fmt"

	"github.com/kntjspr/automata/pda"
)

var errMethodNotAllowed = errors.New("method not allowed")

// prebuiltByName resolves a pdaRequest.Name to one of spec §4.5's
// pre-built PDAs, mirroring cmd/automata's runPDA switch.
func prebuiltByName(name string) (*pda.PDA, error) {
	switch name {
	case "parens":
		return pda.BalancedParens(), nil
	case "anbn":
		return pda.AnBn(), nil
	case "palindrome":
		return pda.Palindrome(), nil
	case "rnastemloop":
		return pda.RNAStemLoop(3), nil
	default:
		return nil, fmt.Errorf("unknown PDA %q", name)
	}
}
